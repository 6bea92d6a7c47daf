package events

import (
	"fmt"
	"strings"

	"boxoffice/internal/shared/apperr"
)

type Category string

const (
	CategoryConcerts    Category = "concerts"
	CategorySports      Category = "sports"
	CategoryTheater     Category = "theater"
	CategoryConventions Category = "conventions"
)

// Tab is a browse tab on the storefront home page.
type Tab string

const (
	TabAll      Tab = "all"
	TabConcerts Tab = "concerts"
	TabSports   Tab = "sports"
	TabTheater  Tab = "theater"
	TabMore     Tab = "more"
)

// ParseTab accepts a tab name case-insensitively. An empty string is TabAll.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TabAll, nil
	case TabAll, TabConcerts, TabSports, TabTheater, TabMore:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown tab %q", apperr.ErrInvalidInput, s)
	}
}

// Includes reports whether an event with category c is listed under the tab.
// "more" holds everything outside the three named categories, uncategorized events included.
func (t Tab) Includes(c Category) bool {
	switch t {
	case TabAll:
		return true
	case TabConcerts:
		return c == CategoryConcerts
	case TabSports:
		return c == CategorySports
	case TabTheater:
		return c == CategoryTheater
	case TabMore:
		return c != CategoryConcerts && c != CategorySports && c != CategoryTheater
	}
	return false
}
