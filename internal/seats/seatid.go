package seats

import (
	"strconv"
	"strings"
)

// SeatID names seat ordinal of a section, e.g. "floor-12".
func SeatID(sectionID string, ordinal int) string {
	return sectionID + "-" + strconv.Itoa(ordinal)
}

// ParseSeatID splits a seat id at its last dash. ok is false when the id has no
// section part or the ordinal is not a positive integer.
func ParseSeatID(id string) (sectionID string, ordinal int, ok bool) {
	i := strings.LastIndexByte(id, '-')
	if i <= 0 || i == len(id)-1 {
		return "", 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n <= 0 {
		return "", 0, false
	}
	return id[:i], n, true
}

// BelongsTo reports whether seatID parses to a seat of sectionID.
func BelongsTo(seatID, sectionID string) bool {
	s, _, ok := ParseSeatID(seatID)
	return ok && s == sectionID
}
