package model

// TimeRecord is a clock reading taken for a competitor at a checkpoint.
// ClockTime is an HH:MM:SS time-of-day string; RecordType tags the kind of
// reading (split, finish, ...), its meaning left to the organizer.
type TimeRecord struct {
	ID           int    `json:"id"`
	ClockTime    string `json:"time"`
	RecordType   int    `json:"record_type"`
	CompetitorID int    `json:"competitor_id"`
	RecordedBy   int    `json:"recorded_by"`
	CheckpointID int    `json:"checkpoint_id"`

	CompetitorName       string  `json:"competitor_name,omitempty"`
	CompetitorBib        int     `json:"competitor_bib,omitempty"`
	CheckpointName       string  `json:"checkpoint_name,omitempty"`
	CheckpointDistanceKm float64 `json:"checkpoint_distance_km,omitempty"`
	RecorderName         string  `json:"recorder_name,omitempty"`
}
