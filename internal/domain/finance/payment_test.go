package finance

import (
	"testing"

	"github.com/erp/installment/internal/domain/partner"
	"github.com/erp/installment/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft() PaymentDraft {
	return PaymentDraft{
		PartnerID:   uuid.New(),
		UserID:      uuid.New(),
		Amount:      dec("150"),
		Type:        FlowIn,
		PaymentType: PaymentTypeCash,
	}
}

func TestNewPayment(t *testing.T) {
	p, err := NewPayment(draft())
	require.NoError(t, err)
	assert.True(t, p.BalanceEffect().Equal(dec("150")))

	tests := []struct {
		name   string
		mutate func(*PaymentDraft)
	}{
		{"zero amount", func(d *PaymentDraft) { d.Amount = dec("0") }},
		{"three decimals", func(d *PaymentDraft) { d.Amount = dec("1.005") }},
		{"unknown flow", func(d *PaymentDraft) { d.Type = PaymentFlow("SIDEWAYS") }},
		{"unknown method", func(d *PaymentDraft) { d.PaymentType = PaymentType("CRYPTO") }},
		{"missing user", func(d *PaymentDraft) { d.UserID = uuid.Nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draft()
			tt.mutate(&d)
			_, err := NewPayment(d)
			require.Error(t, err)
			assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
		})
	}
}

func TestPayment_Revise(t *testing.T) {
	p, err := NewPayment(draft())
	require.NoError(t, err)

	t.Run("payment type is immutable", func(t *testing.T) {
		d := p.Draft()
		d.PaymentType = PaymentTypeCard
		err := p.Revise(d)
		require.Error(t, err)
		assert.Equal(t, PaymentTypeCash, p.PaymentType)
	})

	t.Run("empty payment type keeps the current one", func(t *testing.T) {
		d := p.Draft()
		d.PaymentType = ""
		d.Amount = dec("75.50")
		require.NoError(t, p.Revise(d))
		assert.True(t, p.Amount.Equal(dec("75.50")))
		assert.Equal(t, PaymentTypeCash, p.PaymentType)
	})
}

func TestPaymentFlow_Validate(t *testing.T) {
	customer, err := partner.NewPartner("Customer", "", partner.RoleCustomer)
	require.NoError(t, err)
	seller, err := partner.NewPartner("Seller", "", partner.RoleSeller)
	require.NoError(t, err)
	debt := newDebt(t, "1000", 10)

	t.Run("IN without debt accepts any active partner", func(t *testing.T) {
		assert.NoError(t, FlowIn.Validate(FlowTarget{Partner: customer}))
		assert.NoError(t, FlowIn.Validate(FlowTarget{Partner: seller}))
	})

	t.Run("IN with own debt", func(t *testing.T) {
		assert.NoError(t, FlowIn.Validate(FlowTarget{Partner: customer, Debt: debt, DebtOwnerID: customer.ID}))
	})

	t.Run("IN with someone else's debt", func(t *testing.T) {
		err := FlowIn.Validate(FlowTarget{Partner: customer, Debt: debt, DebtOwnerID: uuid.New()})
		require.Error(t, err)
		assert.Equal(t, shared.CodeInvalidState, shared.CodeOf(err))
	})

	t.Run("IN against a closed debt", func(t *testing.T) {
		closed := newDebt(t, "10", 1)
		_, err := NewAmortizer(DueDatePolicyRecompute).Apply(closed, dec("10"))
		require.NoError(t, err)

		err = FlowIn.Validate(FlowTarget{Partner: customer, Debt: closed, DebtOwnerID: customer.ID})
		require.Error(t, err)
		assert.Equal(t, shared.CodeInvalidState, shared.CodeOf(err))
	})

	t.Run("OUT requires a seller", func(t *testing.T) {
		assert.NoError(t, FlowOut.Validate(FlowTarget{Partner: seller}))

		err := FlowOut.Validate(FlowTarget{Partner: customer})
		require.Error(t, err)
		assert.Equal(t, shared.CodeInvalidState, shared.CodeOf(err))
	})

	t.Run("OUT cannot reference a debt", func(t *testing.T) {
		err := FlowOut.Validate(FlowTarget{Partner: seller, Debt: debt, DebtOwnerID: seller.ID})
		require.Error(t, err)
		assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
	})

	t.Run("inactive partner", func(t *testing.T) {
		inactive, err := partner.NewPartner("Gone", "", partner.RoleSeller)
		require.NoError(t, err)
		inactive.Deactivate()
		err = FlowOut.Validate(FlowTarget{Partner: inactive})
		require.Error(t, err)
		assert.Equal(t, shared.CodeInvalidState, shared.CodeOf(err))
	})
}
