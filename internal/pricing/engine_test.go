package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxoffice/internal/money"
	"boxoffice/internal/shared/apperr"
)

func TestComputeBreakdown_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		price      money.Amount
		quantity   int
		rate       money.Rate
		subtotal   string
		serviceFee string
		total      string
	}{
		{"two floor-adjacent tickets", money.Units(99), 2, 1500, "198.00", "29.70", "227.70"},
		{"two theater tickets", money.Units(199), 2, 1500, "398.00", "59.70", "457.70"},
		{"no fee", money.Units(85), 3, 0, "255.00", "0.00", "255.00"},
		{"full fee", money.Cents(1050), 1, money.RateOne, "10.50", "10.50", "21.00"},
		{"fee rounds half up", money.Cents(10), 1, 1500, "0.10", "0.02", "0.12"},
		{"fee rounds down", money.Cents(3), 1, 1500, "0.03", "0.00", "0.03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ComputeBreakdown(tt.price, tt.quantity, tt.rate)
			require.NoError(t, err)
			assert.Equal(t, tt.price, b.TicketPrice)
			assert.Equal(t, tt.quantity, b.Quantity)
			assert.Equal(t, tt.rate, b.ServiceFeeRate)
			assert.Equal(t, tt.subtotal, b.Subtotal.String())
			assert.Equal(t, tt.serviceFee, b.ServiceFee.String())
			assert.Equal(t, tt.total, b.Total.String())
		})
	}
}

func TestComputeBreakdown_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		price    money.Amount
		quantity int
		rate     money.Rate
	}{
		{"zero quantity", money.Units(99), 0, 1500},
		{"negative quantity", money.Units(99), -1, 1500},
		{"zero price", 0, 1, 1500},
		{"negative price", money.Cents(-1), 1, 1500},
		{"rate above one", money.Units(99), 1, 15000},
		{"negative rate", money.Units(99), 1, -1},
		{"subtotal overflow", money.Cents(math.MaxInt64 / 2), 3, 0},
		{"fee overflow", money.Cents(math.MaxInt64 / 2), 1, money.RateOne},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeBreakdown(tt.price, tt.quantity, tt.rate)
			assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		})
	}
}

func TestComputeBreakdown_Properties(t *testing.T) {
	prices := []money.Amount{1, 7, 99, 4999, money.Units(99), money.Units(250), money.Cents(12345)}
	rates := []money.Rate{0, 1, 999, 1500, 3333, money.RateOne}

	for _, price := range prices {
		for quantity := 1; quantity <= 8; quantity++ {
			for _, rate := range rates {
				b, err := ComputeBreakdown(price, quantity, rate)
				require.NoError(t, err)

				assert.Equal(t, price.Cents()*int64(quantity), b.Subtotal.Cents())
				assert.Equal(t, b.Subtotal+b.ServiceFee, b.Total)

				// fee is within half a cent of the exact product
				exact := b.Subtotal.Cents() * rate.BasisPoints()
				diff := b.ServiceFee.Cents()*int64(money.RateOne) - exact
				assert.LessOrEqual(t, 2*diff, int64(money.RateOne))
				assert.Greater(t, 2*diff, -int64(money.RateOne))

				if rate == 0 {
					assert.Equal(t, b.Subtotal, b.Total)
				}
			}
		}
	}
}

func TestComputeBreakdown_Deterministic(t *testing.T) {
	first, err := ComputeBreakdown(money.Units(120), 4, DefaultServiceFeeRate)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ComputeBreakdown(money.Units(120), 4, DefaultServiceFeeRate)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestNewService_FallsBackOnInvalidRate(t *testing.T) {
	assert.Equal(t, DefaultServiceFeeRate, NewService(20000).FeeRate())
	assert.Equal(t, money.Rate(1000), NewService(1000).FeeRate())

	b, err := NewService(DefaultServiceFeeRate).Quote(money.Units(99), 2)
	require.NoError(t, err)
	assert.Equal(t, "227.70", b.Total.String())
}
