package domain

import "time"

// LivenessStatus is the last HTTP probe of a domain. It is never persisted.
type LivenessStatus struct {
	Domain    string    `json:"domain"`
	Live      bool      `json:"live"`
	HTTPCode  *int      `json:"http_code,omitempty"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Label renders the status the way the dashboard shows it.
func (s LivenessStatus) Label() string {
	switch {
	case s.Live:
		return "Live"
	case s.HTTPCode != nil:
		return "Down"
	case s.Error != "":
		return "Error"
	default:
		return "Unknown"
	}
}
