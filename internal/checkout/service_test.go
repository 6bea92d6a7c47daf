package checkout

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxoffice/internal/events"
	"boxoffice/internal/pricing"
	"boxoffice/internal/shared/apperr"
	"boxoffice/pkg/logger"
)

type capturePublisher struct {
	mu     sync.Mutex
	orders []*OrderSubmitted
	err    error
}

func (p *capturePublisher) PublishOrder(_ context.Context, order *OrderSubmitted) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.orders = append(p.orders, order)
	return nil
}

func (p *capturePublisher) Close() error                      { return nil }
func (p *capturePublisher) HealthCheck(context.Context) error { return nil }

func newTestCheckoutService(t *testing.T, publisher OrderPublisher) (*service, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	original := logger.GetDefault()
	logger.SetDefault(logger.NewWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { logger.SetDefault(original) })

	pricingService := pricing.NewService(pricing.DefaultServiceFeeRate)
	eventService := events.NewService(events.NewRepository(), pricingService)
	svc := NewService(eventService, pricingService, publisher).(*service)

	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("order-%d", n)
	}
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) }
	return svc, &buf
}

func TestSubmit_SectionPrice(t *testing.T) {
	publisher := &capturePublisher{}
	svc, logs := newTestCheckoutService(t, publisher)

	receipt, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "order-1", receipt.Reference)
	assert.Equal(t, StatusSubmitted, receipt.Status)
	assert.Equal(t, "**** 4242", receipt.MaskedCard)
	assert.Equal(t, "299.00", receipt.Breakdown.TicketPrice.String())
	assert.Equal(t, "598.00", receipt.Breakdown.Subtotal.String())
	assert.Equal(t, "89.70", receipt.Breakdown.ServiceFee.String())
	assert.Equal(t, "687.70", receipt.Breakdown.Total.String())

	require.Len(t, publisher.orders, 1)
	order := publisher.orders[0]
	assert.Equal(t, "order-1", order.Reference)
	assert.Equal(t, "4242", order.CardLast4)
	assert.Equal(t, []string{"floor-1", "floor-2"}, order.SeatIDs)

	assert.Contains(t, logs.String(), "Checkout Submitted")
	assert.NotContains(t, logs.String(), "4242 4242")
	assert.NotContains(t, logs.String(), "4242424242424242")
	assert.NotContains(t, logs.String(), `"cvv"`)
	assert.NotContains(t, logs.String(), "jordan@example.com")
	assert.Contains(t, logs.String(), "j***@example.com")
}

func TestSubmit_BasePriceWithoutSection(t *testing.T) {
	svc, _ := newTestCheckoutService(t, &capturePublisher{})

	req := validRequest()
	req.EventID = "4"
	req.SectionID = ""
	req.SeatIDs = nil

	receipt, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "398.00", receipt.Breakdown.Subtotal.String())
	assert.Equal(t, "59.70", receipt.Breakdown.ServiceFee.String())
	assert.Equal(t, "457.70", receipt.Breakdown.Total.String())
}

func TestSubmit_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CheckoutRequest)
		target error
	}{
		{"unknown event", func(r *CheckoutRequest) { r.EventID = "404" }, apperr.ErrNotFound},
		{"unknown section", func(r *CheckoutRequest) { r.SectionID = "balcony" }, apperr.ErrNotFound},
		{"quantity mismatch", func(r *CheckoutRequest) { r.Quantity = 3 }, apperr.ErrInvalidInput},
		{"duplicate seat", func(r *CheckoutRequest) { r.SeatIDs = []string{"floor-1", "floor-1"} }, apperr.ErrInvalidInput},
		{"seat outside section", func(r *CheckoutRequest) { r.SeatIDs = []string{"floor-1", "mid-level-2"} }, apperr.ErrInvalidInput},
		{"over max quantity", func(r *CheckoutRequest) { r.SeatIDs = nil; r.Quantity = 9 }, apperr.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &capturePublisher{}
			svc, _ := newTestCheckoutService(t, publisher)

			req := validRequest()
			tt.mutate(&req)
			_, err := svc.Submit(context.Background(), req)
			assert.ErrorIs(t, err, tt.target)
			assert.Empty(t, publisher.orders)
		})
	}
}

func TestSubmit_PublisherFailure(t *testing.T) {
	publisher := &capturePublisher{err: fmt.Errorf("%w: broker down", apperr.ErrUpstream)}
	svc, logs := newTestCheckoutService(t, publisher)

	_, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, apperr.ErrUpstream)
	assert.Contains(t, logs.String(), "Failed to publish order")
	assert.Contains(t, logs.String(), `"reference":"order-1"`)
	assert.Contains(t, logs.String(), "broker down")
}
