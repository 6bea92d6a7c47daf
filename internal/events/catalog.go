package events

import "boxoffice/internal/money"

// SeatsPerSection is the number of seats in every section of the reference layout.
const SeatsPerSection = 60

// sectionTiers are priced as an offset over the event base price.
var sectionTiers = []struct {
	id     string
	name   string
	markup money.Amount
}{
	{"floor", "Floor", money.Units(200)},
	{"lower-bowl", "Lower Bowl", money.Units(100)},
	{"mid-level", "Mid Level", money.Units(50)},
	{"upper-level", "Upper Level", 0},
}

func tieredSections(base money.Amount) []Section {
	sections := make([]Section, 0, len(sectionTiers))
	for _, tier := range sectionTiers {
		sections = append(sections, Section{
			ID:        tier.id,
			Name:      tier.name,
			Price:     base + tier.markup,
			SeatCount: SeatsPerSection,
		})
	}
	return sections
}

// Catalog returns the storefront's fixed event list, featured event first.
func Catalog() []Event {
	return []Event{
		{
			ID:          "1",
			Title:       "Taylor Swift | The Eras Tour",
			Date:        "Sat, Jun 15, 2024 • 7:00 PM",
			Location:    "SoFi Stadium, Los Angeles",
			Venue:       "SoFi Stadium",
			Address:     "1001 Stadium Dr, Inglewood, CA 90301",
			Description: "Experience the music of Taylor Swift's journey through the musical eras of her career (past and present!)",
			ImageURL:    "/placeholder.svg?height=500&width=1000",
			BasePrice:   money.Units(99),
			Featured:    true,
			Dates:       []string{"June 15, 2024", "June 16, 2024", "June 17, 2024"},
			Times:       []string{"7:00 PM", "8:00 PM"},
			MaxQuantity: 8,
		},
		{
			ID:        "2",
			Title:     "NBA Finals 2024",
			Date:      "Thu, Jun 20, 2024 • 6:30 PM",
			Location:  "Madison Square Garden, New York",
			Venue:     "Madison Square Garden",
			ImageURL:  "/placeholder.svg?height=200&width=300",
			BasePrice: money.Units(120),
			Category:  CategorySports,
		},
		{
			ID:        "3",
			Title:     "Coldplay World Tour",
			Date:      "Fri, Jul 5, 2024 • 8:00 PM",
			Location:  "Wembley Stadium, London",
			Venue:     "Wembley Stadium",
			ImageURL:  "/placeholder.svg?height=200&width=300",
			BasePrice: money.Units(85),
			Category:  CategoryConcerts,
		},
		{
			ID:        "4",
			Title:     "Hamilton - Broadway Musical",
			Date:      "Multiple Dates",
			Location:  "Richard Rodgers Theatre, New York",
			Venue:     "Richard Rodgers Theatre",
			ImageURL:  "/placeholder.svg?height=200&width=300",
			BasePrice: money.Units(199),
			Category:  CategoryTheater,
		},
		{
			ID:        "5",
			Title:     "Comic Con 2024",
			Date:      "Jul 25-28, 2024",
			Location:  "San Diego Convention Center",
			Venue:     "San Diego Convention Center",
			ImageURL:  "/placeholder.svg?height=200&width=300",
			BasePrice: money.Units(65),
			Category:  CategoryConventions,
		},
		{
			ID:        "6",
			Title:     "UFC 300",
			Date:      "Sat, Aug 10, 2024 • 7:00 PM",
			Location:  "T-Mobile Arena, Las Vegas",
			Venue:     "T-Mobile Arena",
			ImageURL:  "/placeholder.svg?height=200&width=300",
			BasePrice: money.Units(225),
			Category:  CategorySports,
		},
		{
			ID:        "7",
			Title:     "Adele Residency",
			Date:      "Multiple Dates",
			Location:  "Caesars Palace, Las Vegas",
			Venue:     "Caesars Palace",
			ImageURL:  "/placeholder.svg?height=200&width=300",
			BasePrice: money.Units(250),
			Category:  CategoryConcerts,
		},
	}
}
