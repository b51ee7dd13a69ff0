package payment

import (
	"context"
	"testing"

	domainerrors "facilita/internal/errors"
	"facilita/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedGatewayCharge(t *testing.T) {
	g := NewSimulatedGateway()

	tests := []struct {
		name    string
		method  string
		amount  float64
		want    Outcome
		wantErr bool
	}{
		{"multicaixa approves instantly", models.PaymentMethodMulticaixa, 4500, OutcomeApproved, false},
		{"visa approves instantly", models.PaymentMethodVisa, 4500, OutcomeApproved, false},
		{"bank transfer stays pending", models.PaymentMethodTransfer, 4500, OutcomePending, false},
		{"unknown method is rejected", "Cheque", 4500, OutcomeRejected, true},
		{"zero amount is rejected", models.PaymentMethodVisa, 0, OutcomeRejected, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := g.Charge(context.Background(), tt.method, tt.amount)
			assert.Equal(t, tt.want, res.Outcome)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ProviderRef)
			}
		})
	}
}

func TestChargeAmountValidation(t *testing.T) {
	g := NewSimulatedGateway()
	_, err := g.Charge(context.Background(), models.PaymentMethodVisa, -10)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
}

func TestOutcomeTransactionStatus(t *testing.T) {
	assert.Equal(t, models.TransactionStatusApproved, OutcomeApproved.TransactionStatus())
	assert.Equal(t, models.TransactionStatusPending, OutcomePending.TransactionStatus())
	assert.Equal(t, models.TransactionStatusRejected, OutcomeRejected.TransactionStatus())
}
