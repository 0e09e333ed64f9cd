package models

// Moment is a user-entered record describing a personal event.
type Moment struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	// DisplayDate is a YYYY-MM-DD Date rendered as DD/MM/YYYY, empty otherwise
	DisplayDate string `json:"display_date,omitempty"`
}

// MomentInput holds the "new moment" form fields.
type MomentInput struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}
