package payment

import (
	"context"
	"log"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"
	"facilita/internal/utils"
)

// simulatedGateway approves instant methods and leaves bank transfers
// pending until an operator confirms the proof of payment.
type simulatedGateway struct{}

// NewSimulatedGateway returns the default gateway used outside
// production.
func NewSimulatedGateway() Gateway {
	return &simulatedGateway{}
}

func (g *simulatedGateway) Name() string { return "simulated" }

func (g *simulatedGateway) Charge(_ context.Context, method string, amount float64) (Result, error) {
	if amount <= 0 {
		return Result{Outcome: OutcomeRejected}, domainerrors.ErrInvalidAmount
	}

	ref := utils.GenerateReference("SIM")
	switch method {
	case models.PaymentMethodMulticaixa, models.PaymentMethodVisa:
		log.Printf("simulated gateway approved %s charge of %.2f (%s)", method, amount, ref)
		return Result{Outcome: OutcomeApproved, ProviderRef: ref}, nil
	case models.PaymentMethodTransfer:
		return Result{Outcome: OutcomePending, ProviderRef: ref}, nil
	default:
		return Result{Outcome: OutcomeRejected}, domainerrors.NewDomainError("UNSUPPORTED_METHOD", "payment method %q is not supported", method)
	}
}
