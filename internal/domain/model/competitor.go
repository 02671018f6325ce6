package model

type Competitor struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	BibNumber  int    `json:"bib_number"`
	EventID    int    `json:"event_id"`
	TeamID     int    `json:"team_id"`
	CategoryID int    `json:"category_id"`

	// Display names of related parents, populated by the list variants.
	EventName    string `json:"event_name,omitempty"`
	TeamName     string `json:"team_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
}
