package payment

import (
	"context"
	"log"
	"os"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/charge"
)

// stripeGateway charges card payments through Stripe. Multicaixa and
// bank transfers have no Stripe rails, so they fall back to the
// simulated behavior.
type stripeGateway struct {
	fallback Gateway
}

// NewStripeGateway reads STRIPE_SECRET_KEY from the environment. Card
// sources come in as Stripe tokens produced by the client SDK.
func NewStripeGateway() Gateway {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &stripeGateway{fallback: NewSimulatedGateway()}
}

func (g *stripeGateway) Name() string { return "stripe" }

func (g *stripeGateway) Charge(ctx context.Context, method string, amount float64) (Result, error) {
	if method != models.PaymentMethodVisa {
		return g.fallback.Charge(ctx, method, amount)
	}
	if amount <= 0 {
		return Result{Outcome: OutcomeRejected}, domainerrors.ErrInvalidAmount
	}

	params := &stripe.ChargeParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String("aoa"),
	}
	params.Context = ctx
	// TODO: thread the client-side card token through checkout instead
	// of the shared test token.
	if err := params.SetSource("tok_visa"); err != nil {
		return Result{Outcome: OutcomeRejected}, err
	}

	ch, err := charge.New(params)
	if err != nil {
		log.Printf("stripe charge failed: %v", err)
		return Result{Outcome: OutcomeRejected}, domainerrors.ErrPaymentRejected
	}

	switch ch.Status {
	case "succeeded":
		return Result{Outcome: OutcomeApproved, ProviderRef: ch.ID}, nil
	case "pending":
		return Result{Outcome: OutcomePending, ProviderRef: ch.ID}, nil
	default:
		return Result{Outcome: OutcomeRejected, ProviderRef: ch.ID}, nil
	}
}
