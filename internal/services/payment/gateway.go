package payment

import (
	"context"

	"facilita/internal/models"
)

// Outcome is the gateway's verdict on a charge attempt.
type Outcome string

const (
	OutcomeApproved Outcome = "approved"
	OutcomePending  Outcome = "pending"
	OutcomeRejected Outcome = "rejected"
)

// Result carries the gateway outcome and an optional provider reference.
type Result struct {
	Outcome     Outcome
	ProviderRef string
}

// Gateway authorizes charges for checkout, deposits and plan purchases.
// Bank transfers settle out of band, so a gateway may answer pending
// and leave settlement to an operator.
type Gateway interface {
	Name() string
	Charge(ctx context.Context, method string, amount float64) (Result, error)
}

// TransactionStatus maps a gateway outcome to the ledger status it
// produces.
func (o Outcome) TransactionStatus() string {
	switch o {
	case OutcomeApproved:
		return models.TransactionStatusApproved
	case OutcomePending:
		return models.TransactionStatusPending
	default:
		return models.TransactionStatusRejected
	}
}
