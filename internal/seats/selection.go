package seats

import "encoding/json"

// Selection is the active section plus the seats picked so far, in the order
// they were picked. It is a value: every change returns a new Selection and
// leaves the receiver untouched.
type Selection struct {
	section string
	seats   []string
}

// ActiveSection returns the active section, ok is false before one is chosen.
func (s Selection) ActiveSection() (string, bool) {
	return s.section, s.section != ""
}

// SelectSection makes sectionID active. Moving to a different section drops
// seats that do not belong to it; re-selecting the active section is a no-op.
func (s Selection) SelectSection(sectionID string) Selection {
	if sectionID == s.section {
		return s
	}

	kept := make([]string, 0, len(s.seats))
	for _, id := range s.seats {
		if BelongsTo(id, sectionID) {
			kept = append(kept, id)
		}
	}
	return Selection{section: sectionID, seats: kept}
}

// ToggleSeat removes seatID when selected and appends it otherwise. Any id is accepted.
func (s Selection) ToggleSeat(seatID string) Selection {
	next := make([]string, 0, len(s.seats)+1)
	removed := false
	for _, id := range s.seats {
		if id == seatID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, seatID)
	}
	return Selection{section: s.section, seats: next}
}

func (s Selection) SelectedCount() int {
	return len(s.seats)
}

func (s Selection) Contains(seatID string) bool {
	for _, id := range s.seats {
		if id == seatID {
			return true
		}
	}
	return false
}

// Seats returns a copy of the selected seat ids in selection order.
func (s Selection) Seats() []string {
	return append([]string{}, s.seats...)
}

type selectionJSON struct {
	Section string   `json:"section,omitempty"`
	Seats   []string `json:"seats"`
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(selectionJSON{Section: s.section, Seats: s.Seats()})
}

// UnmarshalJSON restores a selection, dropping duplicate seat ids.
func (s *Selection) UnmarshalJSON(data []byte) error {
	var raw selectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(raw.Seats))
	seats := make([]string, 0, len(raw.Seats))
	for _, id := range raw.Seats {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		seats = append(seats, id)
	}

	*s = Selection{section: raw.Section, seats: seats}
	return nil
}
