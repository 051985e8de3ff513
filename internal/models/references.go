package models

import "time"

// ReferencesModel References model for related reference data
type ReferencesModel struct {
	Sources []SourceReference `json:"sources"`
}

// SourceReference describes where a constant table was loaded from
type SourceReference struct {
	Source      string `json:"source"`
	EntryCount  int    `json:"entryCount"`
	LastUpdated int64  `json:"lastUpdated"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Sources: []SourceReference{},
	}
}

// NewSourceReference creates a SourceReference for a loaded table
func NewSourceReference(source string, entryCount int, lastUpdated time.Time) SourceReference {
	return SourceReference{
		Source:      source,
		EntryCount:  entryCount,
		LastUpdated: lastUpdated.UnixNano() / int64(time.Millisecond),
	}
}
