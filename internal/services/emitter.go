package services

import "ticket-ledger/internal/models"

// Emitter receives one event per successful mutating call. Emission
// happens after the mutation has committed; emitters must not call back
// into the ledger.
type Emitter interface {
	Emit(ev models.LedgerEvent)
}

// NopEmitter discards all events.
type NopEmitter struct{}

func (NopEmitter) Emit(models.LedgerEvent) {}

// MultiEmitter fans events out to several emitters in order.
type MultiEmitter []Emitter

func (m MultiEmitter) Emit(ev models.LedgerEvent) {
	for _, e := range m {
		e.Emit(ev)
	}
}
