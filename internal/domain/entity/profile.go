package entity

import "time"

// Profile is a named, stored configuration document.
type Profile struct {
	Name      string
	Document  []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
