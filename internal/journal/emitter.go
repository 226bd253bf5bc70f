package journal

import (
	"github.com/sirupsen/logrus"

	"ticket-ledger/internal/models"
)

// Emitter adapts the repository to the ledger's emitter interface.
// Append failures are logged, not propagated: the mutation has already
// committed by the time events are emitted.
type Emitter struct {
	repo *Repository
	log  *logrus.Logger
}

// NewEmitter wraps a repository for use as a ledger emitter.
func NewEmitter(repo *Repository, log *logrus.Logger) *Emitter {
	return &Emitter{repo: repo, log: log}
}

func (e *Emitter) Emit(ev models.LedgerEvent) {
	if err := e.repo.Append(ev); err != nil {
		e.log.WithError(err).WithFields(logrus.Fields{
			"event_id":   ev.ID,
			"event_type": ev.Type,
		}).Error("failed to journal ledger event")
	}
}
