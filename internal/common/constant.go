package common

// Default collection names the record list may be bound to.
const (
	CollectionUsers = "users"
	CollectionCats  = "cats"
)

// DefaultBlobPrefix is the key prefix under which uploaded images live.
const DefaultBlobPrefix = "images/"
