package models

import (
	"errors"
	"strings"
)

var ErrSerialRequired = errors.New("serial number is required")

// Item is a single inventory record. Cost is kept as entered.
type Item struct {
	SerialNumber string `json:"serialNumber"`
	Name         string `json:"name"`
	Cost         string `json:"cost"`
}

// Validate reports whether the item can be stored.
func (i Item) Validate() error {
	if strings.TrimSpace(i.SerialNumber) == "" {
		return ErrSerialRequired
	}
	return nil
}

// SearchMode selects the field a search query is matched against
type SearchMode int

const (
	SearchByName SearchMode = iota
	SearchBySerial
)

func (m SearchMode) String() string {
	switch m {
	case SearchByName:
		return "Name"
	case SearchBySerial:
		return "Serial Number"
	default:
		return "Unknown"
	}
}

// SearchModes lists the labels shown by the search radio group, in display order.
func SearchModes() []string {
	return []string{SearchByName.String(), SearchBySerial.String()}
}

// ParseSearchMode maps a radio label to a mode. Anything that is not "Name"
// searches by serial number.
func ParseSearchMode(label string) SearchMode {
	if label == SearchByName.String() {
		return SearchByName
	}
	return SearchBySerial
}

// NotFound is returned by IndexOfSerial when no item matches.
const NotFound = -1

// Filter returns the items whose field selected by mode contains query.
// Matching is case-sensitive and the input order is preserved.
func Filter(items []Item, query string, mode SearchMode) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		field := item.Name
		if mode == SearchBySerial {
			field = item.SerialNumber
		}
		if strings.Contains(field, query) {
			out = append(out, item)
		}
	}
	return out
}

// IndexOfSerial returns the first index whose serial number equals the
// target's, or NotFound.
func IndexOfSerial(items []Item, target Item) int {
	for i, item := range items {
		if item.SerialNumber == target.SerialNumber {
			return i
		}
	}
	return NotFound
}
