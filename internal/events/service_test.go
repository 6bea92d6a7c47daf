package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxoffice/internal/money"
	"boxoffice/internal/pricing"
	"boxoffice/internal/shared/apperr"
)

func newTestService() Service {
	return NewService(NewRepository(), pricing.NewService(pricing.DefaultServiceFeeRate))
}

func eventIDs(events []Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestListEvents_CatalogOrder(t *testing.T) {
	events := newTestService().ListEvents()
	require.Len(t, events, 7)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, eventIDs(events))
	assert.True(t, events[0].Featured)
	assert.Equal(t, DefaultMaxQuantity, events[3].MaxQuantity)
}

func TestGetEvent(t *testing.T) {
	svc := newTestService()

	e, err := svc.GetEvent("4")
	require.NoError(t, err)
	assert.Equal(t, "Hamilton - Broadway Musical", e.Title)
	assert.Equal(t, money.Units(199), e.BasePrice)
	assert.Equal(t, CategoryTheater, e.Category)

	_, err = svc.GetEvent("nonexistent-id")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetEvent_ReturnsCopies(t *testing.T) {
	svc := newTestService()

	e, err := svc.GetEvent("1")
	require.NoError(t, err)
	e.Title = "changed"
	e.Dates[0] = "changed"

	again, err := svc.GetEvent("1")
	require.NoError(t, err)
	assert.Equal(t, "Taylor Swift | The Eras Tour", again.Title)
	assert.Equal(t, "June 15, 2024", again.Dates[0])
}

func TestListByTab(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		tab  string
		want []string
	}{
		{"", []string{"1", "2", "3", "4", "5", "6", "7"}},
		{"all", []string{"1", "2", "3", "4", "5", "6", "7"}},
		{"concerts", []string{"3", "7"}},
		{"Sports", []string{"2", "6"}},
		{"theater", []string{"4"}},
		{"more", []string{"1", "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			events, err := svc.ListByTab(tt.tab)
			require.NoError(t, err)
			assert.Equal(t, tt.want, eventIDs(events))
		})
	}

	_, err := svc.ListByTab("opera")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestFeatured(t *testing.T) {
	e, err := newTestService().Featured()
	require.NoError(t, err)
	assert.Equal(t, "1", e.ID)

	empty := NewService(NewRepositoryFrom(nil, 0), pricing.NewService(pricing.DefaultServiceFeeRate))
	_, err = empty.Featured()
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSections_TieredFromBasePrice(t *testing.T) {
	sections, err := newTestService().Sections("1")
	require.NoError(t, err)
	require.Len(t, sections, 4)

	prices := map[string]string{}
	for _, s := range sections {
		prices[s.ID] = s.Price.String()
		assert.Equal(t, SeatsPerSection, s.SeatCount)
	}
	assert.Equal(t, map[string]string{
		"floor":       "299.00",
		"lower-bowl":  "199.00",
		"mid-level":   "149.00",
		"upper-level": "99.00",
	}, prices)

	_, err = newTestService().Sections("missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSection(t *testing.T) {
	svc := newTestService()

	s, err := svc.Section("2", "floor")
	require.NoError(t, err)
	assert.Equal(t, money.Units(320), s.Price)

	_, err = svc.Section("2", "balcony")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestQuote(t *testing.T) {
	svc := newTestService()

	b, err := svc.Quote("1", 2)
	require.NoError(t, err)
	assert.Equal(t, "198.00", b.Subtotal.String())
	assert.Equal(t, "29.70", b.ServiceFee.String())
	assert.Equal(t, "227.70", b.Total.String())

	_, err = svc.Quote("1", 9)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Quote("1", 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Quote("nope", 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestNewRepositoryFrom_SkipsDuplicates(t *testing.T) {
	repo := NewRepositoryFrom([]Event{
		{ID: "a", Title: "first", BasePrice: money.Units(10)},
		{ID: "a", Title: "second", BasePrice: money.Units(20)},
	}, 0)

	all := repo.FindAll()
	require.Len(t, all, 1)
	assert.Equal(t, "first", all[0].Title)
}

func TestPriceLabel(t *testing.T) {
	assert.Equal(t, "From $99", Event{BasePrice: money.Units(99)}.PriceLabel())
	assert.Equal(t, "From $12.50", Event{BasePrice: money.Cents(1250)}.PriceLabel())
}

func TestNewRepositoryWithMaxQuantity(t *testing.T) {
	repo := NewRepositoryWithMaxQuantity(4)

	hamilton, ok := repo.FindByID("4")
	require.True(t, ok)
	assert.Equal(t, 4, hamilton.MaxQuantity)

	// the featured event carries its own limit
	featured, ok := repo.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, 8, featured.MaxQuantity)
}
