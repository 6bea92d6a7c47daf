package pricing

import (
	"fmt"

	"boxoffice/internal/money"
	"boxoffice/internal/shared/apperr"
)

// ComputeBreakdown prices quantity tickets at ticketPrice with a service fee of feeRate.
// The fee is the only rounded value; subtotal and total are exact.
func ComputeBreakdown(ticketPrice money.Amount, quantity int, feeRate money.Rate) (Breakdown, error) {
	if ticketPrice <= 0 {
		return Breakdown{}, fmt.Errorf("%w: ticket price must be positive, got %s", apperr.ErrInvalidInput, ticketPrice)
	}
	if quantity <= 0 {
		return Breakdown{}, fmt.Errorf("%w: quantity must be positive, got %d", apperr.ErrInvalidInput, quantity)
	}
	if !feeRate.InUnitRange() {
		return Breakdown{}, fmt.Errorf("%w: service fee rate must be between 0 and 1, got %s", apperr.ErrInvalidInput, feeRate)
	}

	subtotal, ok := ticketPrice.Mul(int64(quantity))
	if !ok {
		return Breakdown{}, fmt.Errorf("%w: subtotal overflows", apperr.ErrInvalidInput)
	}
	fee, ok := feeRate.Of(subtotal)
	if !ok {
		return Breakdown{}, fmt.Errorf("%w: service fee overflows", apperr.ErrInvalidInput)
	}
	total, ok := subtotal.Add(fee)
	if !ok {
		return Breakdown{}, fmt.Errorf("%w: total overflows", apperr.ErrInvalidInput)
	}

	return Breakdown{
		TicketPrice:    ticketPrice,
		Quantity:       quantity,
		Subtotal:       subtotal,
		ServiceFeeRate: feeRate,
		ServiceFee:     fee,
		Total:          total,
	}, nil
}
