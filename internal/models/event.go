package models

// WSMessage is pushed to every page subscribed on /ws
type WSMessage struct {
	Event   string   `json:"event"` // "snapshot", "photos", "moments", "tab"
	Photos  []Photo  `json:"photos,omitempty"`
	Moments []Moment `json:"moments,omitempty"`
	Tab     string   `json:"tab,omitempty"`
}

// TabResponse describes the shell navigation state
type TabResponse struct {
	Active string   `json:"active"`
	Tabs   []string `json:"tabs"`
}

type SelectTabRequest struct {
	Tab string `json:"tab"`
}
