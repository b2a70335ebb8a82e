package domain

import "strings"

// VenueChoice is the tagged venue selection: either an entry picked
// from a category's fixed venue list or a free-text manual entry.
// The choice is resolved to a plain string at the API boundary, so the
// "manual entry" sentinel never reaches domain logic.
type VenueChoice struct {
	Custom bool
	Name   string
}

// FixedVenue returns a choice for a venue picked from a catalog list.
func FixedVenue(name string) VenueChoice {
	return VenueChoice{Name: name}
}

// CustomVenue returns a choice for a manually entered venue.
func CustomVenue(name string) VenueChoice {
	return VenueChoice{Custom: true, Name: name}
}

// Resolve returns the plain venue name. Manual entries are trimmed of
// surrounding whitespace; catalog values are passed through verbatim.
func (v VenueChoice) Resolve() string {
	if v.Custom {
		return strings.TrimSpace(v.Name)
	}
	return v.Name
}
