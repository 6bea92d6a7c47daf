package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"boxoffice/internal/events"
	"boxoffice/internal/pricing"
	"boxoffice/internal/seats"
	"boxoffice/internal/shared/apperr"
	"boxoffice/pkg/logger"
)

type Service interface {
	// Submit prices the order, logs it and hands it to the publisher.
	Submit(ctx context.Context, req CheckoutRequest) (*Receipt, error)
}

// EventService is the part of the catalog checkout reads.
type EventService interface {
	GetEvent(id string) (events.Event, error)
	Section(eventID, sectionID string) (events.Section, error)
}

type service struct {
	events    EventService
	pricing   pricing.Service
	publisher OrderPublisher
	log       *logger.Logger
	now       func() time.Time
	newID     func() string
}

func NewService(eventService EventService, pricingService pricing.Service, publisher OrderPublisher) Service {
	return &service{
		events:    eventService,
		pricing:   pricingService,
		publisher: publisher,
		log:       logger.GetDefault(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *service) Submit(ctx context.Context, req CheckoutRequest) (*Receipt, error) {
	event, err := s.events.GetEvent(req.EventID)
	if err != nil {
		return nil, err
	}

	price := event.BasePrice
	if req.SectionID != "" {
		section, err := s.events.Section(event.ID, req.SectionID)
		if err != nil {
			return nil, err
		}
		price = section.Price
	}

	if err := validateSeats(req); err != nil {
		return nil, err
	}
	if req.Quantity > event.MaxQuantity {
		return nil, fmt.Errorf("%w: at most %d tickets per order", apperr.ErrInvalidInput, event.MaxQuantity)
	}

	breakdown, err := s.pricing.Quote(price, req.Quantity)
	if err != nil {
		return nil, err
	}

	digits := normalizeCardNumber(req.CardNumber)
	order := &OrderSubmitted{
		Reference:     s.newID(),
		EventID:       event.ID,
		EventTitle:    event.Title,
		SectionID:     req.SectionID,
		SeatIDs:       append([]string(nil), req.SeatIDs...),
		Breakdown:     *breakdown,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CardLast4:     lastFour(digits),
		BillingCity:   req.City,
		BillingState:  req.State,
		BillingZip:    req.ZipCode,
		SubmittedAt:   s.now().UTC(),
	}

	s.log.LogCheckoutSubmitted(ctx, order.Reference, order.EventID, MaskEmail(order.CustomerEmail), breakdown.Quantity, breakdown.Total.String())

	if err := s.publisher.PublishOrder(ctx, order); err != nil {
		s.log.WithError(err).WithFields(map[string]interface{}{
			"reference": order.Reference,
			"event_id":  order.EventID,
		}).ErrorContext(ctx, "Failed to publish order")
		return nil, err
	}

	return &Receipt{
		Reference:   order.Reference,
		Status:      StatusSubmitted,
		EventID:     order.EventID,
		EventTitle:  order.EventTitle,
		SectionID:   order.SectionID,
		SeatIDs:     order.SeatIDs,
		Breakdown:   order.Breakdown,
		MaskedCard:  maskCard(digits),
		SubmittedAt: order.SubmittedAt,
	}, nil
}

// validateSeats checks explicit seat picks: one per ticket, no repeats, and
// all in the chosen section when one is given.
func validateSeats(req CheckoutRequest) error {
	if len(req.SeatIDs) == 0 {
		return nil
	}
	if len(req.SeatIDs) != req.Quantity {
		return fmt.Errorf("%w: %d seats selected for %d tickets", apperr.ErrInvalidInput, len(req.SeatIDs), req.Quantity)
	}

	seen := make(map[string]struct{}, len(req.SeatIDs))
	for _, id := range req.SeatIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: seat %q listed twice", apperr.ErrInvalidInput, id)
		}
		seen[id] = struct{}{}

		if req.SectionID != "" && !seats.BelongsTo(id, req.SectionID) {
			return fmt.Errorf("%w: seat %q is not in section %q", apperr.ErrInvalidInput, id, req.SectionID)
		}
	}
	return nil
}

func lastFour(digits string) string {
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
