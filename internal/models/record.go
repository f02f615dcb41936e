// Package models defines the data shared between the view controller and
// its storage adapters.
package models

import "time"

// Record is one document of the record collection ("users" or "cats").
// ID is assigned by the store at insert time.
type Record struct {
	ID         string
	Collection string
	Name       string
	CreatedAt  time.Time
}

// UploadedImage is a blob the view can display.
type UploadedImage struct {
	Key string
	URL string
}
