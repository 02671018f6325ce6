package model

type Checkpoint struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance_km"`
	EventID    int     `json:"event_id"`
	RecordedBy int     `json:"recorded_by"`

	EventName    string `json:"event_name,omitempty"`
	RecorderName string `json:"recorder_name,omitempty"`
}
