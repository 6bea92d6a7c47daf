package pricing

import "boxoffice/internal/money"

type Service interface {
	// FeeRate is the configured service fee rate.
	FeeRate() money.Rate
	Quote(ticketPrice money.Amount, quantity int) (*Breakdown, error)
	QuoteWithRate(ticketPrice money.Amount, quantity int, feeRate money.Rate) (*Breakdown, error)
}

type service struct {
	feeRate money.Rate
}

// NewService returns a pricing service charging feeRate. A rate outside [0, 1]
// falls back to DefaultServiceFeeRate.
func NewService(feeRate money.Rate) Service {
	if !feeRate.InUnitRange() {
		feeRate = DefaultServiceFeeRate
	}
	return &service{feeRate: feeRate}
}

func (s *service) FeeRate() money.Rate {
	return s.feeRate
}

func (s *service) Quote(ticketPrice money.Amount, quantity int) (*Breakdown, error) {
	return s.QuoteWithRate(ticketPrice, quantity, s.feeRate)
}

func (s *service) QuoteWithRate(ticketPrice money.Amount, quantity int, feeRate money.Rate) (*Breakdown, error) {
	b, err := ComputeBreakdown(ticketPrice, quantity, feeRate)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
