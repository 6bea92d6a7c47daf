package events

import (
	"fmt"

	"boxoffice/internal/pricing"
	"boxoffice/internal/shared/apperr"
)

type Service interface {
	ListEvents() []Event
	ListByTab(tab string) ([]Event, error)
	Featured() (Event, error)
	GetEvent(id string) (Event, error)
	Sections(eventID string) ([]Section, error)
	Section(eventID, sectionID string) (Section, error)
	// Quote prices quantity tickets at the event's base price.
	Quote(eventID string, quantity int) (*pricing.Breakdown, error)
}

type service struct {
	repo    Repository
	pricing pricing.Service
}

func NewService(repo Repository, pricingService pricing.Service) Service {
	return &service{
		repo:    repo,
		pricing: pricingService,
	}
}

func (s *service) ListEvents() []Event {
	return s.repo.FindAll()
}

func (s *service) ListByTab(tab string) ([]Event, error) {
	t, err := ParseTab(tab)
	if err != nil {
		return nil, err
	}

	all := s.repo.FindAll()
	filtered := make([]Event, 0, len(all))
	for _, e := range all {
		if t.Includes(e.Category) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *service) Featured() (Event, error) {
	for _, e := range s.repo.FindAll() {
		if e.Featured {
			return e, nil
		}
	}
	return Event{}, fmt.Errorf("%w: no featured event", apperr.ErrNotFound)
}

func (s *service) GetEvent(id string) (Event, error) {
	e, ok := s.repo.FindByID(id)
	if !ok {
		return Event{}, fmt.Errorf("%w: event %q", apperr.ErrNotFound, id)
	}
	return e, nil
}

func (s *service) Sections(eventID string) ([]Section, error) {
	sections, ok := s.repo.FindSections(eventID)
	if !ok {
		return nil, fmt.Errorf("%w: event %q", apperr.ErrNotFound, eventID)
	}
	return sections, nil
}

func (s *service) Section(eventID, sectionID string) (Section, error) {
	sections, err := s.Sections(eventID)
	if err != nil {
		return Section{}, err
	}
	for _, sec := range sections {
		if sec.ID == sectionID {
			return sec, nil
		}
	}
	return Section{}, fmt.Errorf("%w: section %q in event %q", apperr.ErrNotFound, sectionID, eventID)
}

func (s *service) Quote(eventID string, quantity int) (*pricing.Breakdown, error) {
	e, err := s.GetEvent(eventID)
	if err != nil {
		return nil, err
	}
	if quantity > e.MaxQuantity {
		return nil, fmt.Errorf("%w: at most %d tickets per order", apperr.ErrInvalidInput, e.MaxQuantity)
	}
	return s.pricing.Quote(e.BasePrice, quantity)
}
