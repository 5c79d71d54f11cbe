package entities

import "time"

// PassStats counts what one classifier pass did with the input list.
type PassStats struct {
	SkippedType          int `json:"skipped_type"`
	SkippedWorld         int `json:"skipped_world"`
	SkippedNoID          int `json:"skipped_no_id"`
	SkippedNoSize        int `json:"skipped_no_size"`
	SkippedImpedimentDup int `json:"skipped_impediment_dup"`
	Included             int `json:"included"`
}

// Total returns the number of entities the pass looked at.
func (s PassStats) Total() int {
	return s.SkippedType + s.SkippedWorld + s.SkippedNoID + s.SkippedNoSize + s.SkippedImpedimentDup + s.Included
}

// BuildRun records one completed catalog build.
type BuildRun struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Entities  int       `json:"entities"`
	Main      PassStats `json:"main"`
	QI        PassStats `json:"qi"`
	StartedAt time.Time `json:"started_at"`
}
