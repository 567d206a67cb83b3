package domain

// Snapshot is the full persisted payload, serialized as one JSON document
// under a single fixed storage key on every mutation. The active profile is
// deliberately absent: sessions never survive a restart.
type Snapshot struct {
	Trips    []Trip   `json:"trips"`
	Memories []Memory `json:"memories"`
	ViewMode ViewMode `json:"viewMode"`
}
