package models

// User represents the singleton user/settings record.
type User struct {
	Name    string `json:"name"`
	Premium bool   `json:"premium"`
}

// Theme represents the singleton active-theme record.
type Theme struct {
	ID string `json:"id"`
}
