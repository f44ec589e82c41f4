package models

import "time"

// User represents a registered viewer account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Video is a curated catalog entry. ProviderID identifies the video at the
// external hosting provider and is never returned to clients as a field; it
// only ever appears inside a constructed embed URL.
type Video struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	ProviderID   string
	Active       bool
	CreatedAt    time.Time
}
