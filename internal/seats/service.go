package seats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"boxoffice/internal/events"
	"boxoffice/internal/pricing"
	"boxoffice/internal/shared/apperr"
	"boxoffice/pkg/logger"
)

// SeatMapColumns is the width of the seat grid shown for a section.
const SeatMapColumns = 10

type Service interface {
	StartSession(ctx context.Context, eventID string) (Session, error)
	GetSession(ctx context.Context, sessionID string) (Session, error)
	EndSession(ctx context.Context, sessionID string) error
	SelectSection(ctx context.Context, sessionID, sectionID string) (Session, error)
	ToggleSeat(ctx context.Context, sessionID, seatID string) (Session, error)
	// Quote prices the selected seats at the active section's price.
	Quote(ctx context.Context, sessionID string) (*pricing.Breakdown, error)
	// SeatMap lays out sectionID, or the active section when empty, with the session's picks marked.
	SeatMap(ctx context.Context, sessionID, sectionID string) (*SeatMap, error)
}

// EventService is the part of the catalog the selection flow reads.
type EventService interface {
	GetEvent(id string) (events.Event, error)
	Section(eventID, sectionID string) (events.Section, error)
}

type service struct {
	store   Store
	events  EventService
	pricing pricing.Service
	log     *logger.Logger
	now     func() time.Time
	newID   func() string
}

func NewService(store Store, eventService EventService, pricingService pricing.Service) Service {
	return &service{
		store:   store,
		events:  eventService,
		pricing: pricingService,
		log:     logger.GetDefault(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (s *service) StartSession(ctx context.Context, eventID string) (Session, error) {
	if _, err := s.events.GetEvent(eventID); err != nil {
		return Session{}, err
	}

	now := s.now().UTC()
	session := Session{
		ID:        s.newID(),
		EventID:   eventID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, session); err != nil {
		return Session{}, err
	}

	s.log.LogSelectionStarted(ctx, session.ID, eventID)
	return session, nil
}

func (s *service) GetSession(ctx context.Context, sessionID string) (Session, error) {
	return s.store.Load(ctx, sessionID)
}

func (s *service) EndSession(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.log.WithSessionID(sessionID).InfoContext(ctx, "Selection Ended")
	return nil
}

func (s *service) SelectSection(ctx context.Context, sessionID, sectionID string) (Session, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	if _, err := s.events.Section(session.EventID, sectionID); err != nil {
		return Session{}, err
	}

	session.Selection = session.Selection.SelectSection(sectionID)
	return s.update(ctx, session)
}

func (s *service) ToggleSeat(ctx context.Context, sessionID, seatID string) (Session, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}

	session.Selection = session.Selection.ToggleSeat(seatID)
	return s.update(ctx, session)
}

func (s *service) update(ctx context.Context, session Session) (Session, error) {
	session.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, session); err != nil {
		return Session{}, err
	}

	section, _ := session.Selection.ActiveSection()
	s.log.LogSelectionChanged(ctx, session.ID, section, session.Selection.SelectedCount())
	return session, nil
}

func (s *service) Quote(ctx context.Context, sessionID string) (*pricing.Breakdown, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sectionID, ok := session.Selection.ActiveSection()
	if !ok {
		return nil, fmt.Errorf("%w: no section selected", apperr.ErrInvalidInput)
	}
	count := session.Selection.SelectedCount()
	if count == 0 {
		return nil, fmt.Errorf("%w: no seats selected", apperr.ErrInvalidInput)
	}
	if foreign := seatsOutside(session.Selection, sectionID); len(foreign) > 0 {
		return nil, fmt.Errorf("%w: seats %v are not in section %q", apperr.ErrInvalidInput, foreign, sectionID)
	}

	event, err := s.events.GetEvent(session.EventID)
	if err != nil {
		return nil, err
	}
	if count > event.MaxQuantity {
		return nil, fmt.Errorf("%w: at most %d tickets per order, %d selected", apperr.ErrInvalidInput, event.MaxQuantity, count)
	}

	section, err := s.events.Section(session.EventID, sectionID)
	if err != nil {
		return nil, err
	}
	return s.pricing.Quote(section.Price, count)
}

func (s *service) SeatMap(ctx context.Context, sessionID, sectionID string) (*SeatMap, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sectionID == "" {
		active, ok := session.Selection.ActiveSection()
		if !ok {
			return nil, fmt.Errorf("%w: no section selected", apperr.ErrInvalidInput)
		}
		sectionID = active
	}

	section, err := s.events.Section(session.EventID, sectionID)
	if err != nil {
		return nil, err
	}

	seatMap := &SeatMap{
		EventID: session.EventID,
		Section: section,
		Columns: SeatMapColumns,
		Seats:   make([]SeatCell, 0, section.SeatCount),
	}
	for n := 1; n <= section.SeatCount; n++ {
		id := SeatID(section.ID, n)
		seatMap.Seats = append(seatMap.Seats, SeatCell{
			ID:       id,
			Number:   n,
			Selected: session.Selection.Contains(id),
		})
	}
	return seatMap, nil
}

// seatsOutside lists selected seats that do not belong to sectionID.
func seatsOutside(sel Selection, sectionID string) []string {
	var foreign []string
	for _, id := range sel.Seats() {
		if !BelongsTo(id, sectionID) {
			foreign = append(foreign, id)
		}
	}
	return foreign
}
