package events

// Repository is a read-only view over the event catalog. Returned values are
// copies; callers may modify them freely.
type Repository interface {
	FindAll() []Event
	FindByID(id string) (Event, bool)
	FindSections(eventID string) ([]Section, bool)
}

type repository struct {
	events   []Event
	byID     map[string]int
	sections map[string][]Section
}

// NewRepository builds a repository over the storefront catalog.
func NewRepository() Repository {
	return NewRepositoryFrom(Catalog(), DefaultMaxQuantity)
}

// NewRepositoryWithMaxQuantity is NewRepository with a different per-order
// limit for events that do not set their own.
func NewRepositoryWithMaxQuantity(defaultMax int) Repository {
	return NewRepositoryFrom(Catalog(), defaultMax)
}

// NewRepositoryFrom builds a repository over events. Later duplicates of an id are ignored.
// Events without a quantity limit get defaultMax; every event gets the tiered section layout.
func NewRepositoryFrom(events []Event, defaultMax int) Repository {
	if defaultMax <= 0 {
		defaultMax = DefaultMaxQuantity
	}

	r := &repository{
		events:   make([]Event, 0, len(events)),
		byID:     make(map[string]int, len(events)),
		sections: make(map[string][]Section, len(events)),
	}

	for _, e := range events {
		if _, dup := r.byID[e.ID]; dup {
			continue
		}
		e = e.clone()
		if e.MaxQuantity <= 0 {
			e.MaxQuantity = defaultMax
		}
		r.byID[e.ID] = len(r.events)
		r.events = append(r.events, e)
		r.sections[e.ID] = tieredSections(e.BasePrice)
	}
	return r
}

func (r *repository) FindAll() []Event {
	out := make([]Event, len(r.events))
	for i, e := range r.events {
		out[i] = e.clone()
	}
	return out
}

func (r *repository) FindByID(id string) (Event, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Event{}, false
	}
	return r.events[i].clone(), true
}

func (r *repository) FindSections(eventID string) ([]Section, bool) {
	sections, ok := r.sections[eventID]
	if !ok {
		return nil, false
	}
	return append([]Section(nil), sections...), true
}
