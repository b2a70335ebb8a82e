package domain

// DateFormat is the ISO date layout used for reservation dates.
const DateFormat = "2006-01-02"

// Well-known category tags. Categories themselves are configuration,
// but the recreation closure rule is keyed on the sports tag.
const (
	CategorySports   = "sports"
	CategoryCultural = "cultural"
	CategoryAcademic = "academic"
)

// DraftStyle selects the communication style of a generated draft.
type DraftStyle string

const (
	DraftStyleEmail DraftStyle = "email"
	DraftStyleChat  DraftStyle = "chat"
)

// IsValidDraftStyle reports whether s is a known draft style.
func IsValidDraftStyle(s DraftStyle) bool {
	return s == DraftStyleEmail || s == DraftStyleChat
}
