package domain

// Profile names one of the two fixed journal owners. The active profile is
// session-only state: it gates which views the UI exposes, is never persisted,
// and every process start begins locked (ProfileNone).
type Profile string

const (
	ProfileNone   Profile = ""
	ProfileErik   Profile = "erik"
	ProfileMarisa Profile = "marisa"
)

// Valid reports whether p names an actual profile (not the locked state).
func (p Profile) Valid() bool {
	return p == ProfileErik || p == ProfileMarisa
}

// ViewMode is the persisted list-presentation preference. It has no
// relationship to trip or memory correctness.
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

// Valid reports whether m is a known view mode.
func (m ViewMode) Valid() bool {
	return m == ViewModeGrid || m == ViewModeList
}
