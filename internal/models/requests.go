package models

import "time"

// MintRequest carries the parameters for minting a new ticket.
type MintRequest struct {
	To          Principal `json:"to"`
	MetadataRef string    `json:"metadata_ref"`
	EventID     string    `json:"event_id"`
	Price       int64     `json:"price"`
	EventDate   time.Time `json:"event_date"`
}

// Validate checks the static preconditions of a mint against the given
// instant. Role and mint-cap checks are the ledger's responsibility.
func (req *MintRequest) Validate(now time.Time) error {
	if req.To.IsZero() {
		return ErrZeroAddress
	}
	if req.Price < MinPrice {
		return ErrPriceTooLow
	}
	if !req.EventDate.After(now) {
		return ErrEventInPast
	}
	return nil
}
