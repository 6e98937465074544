package model

// Edit is a single category correction supplied by the presentation layer.
type Edit struct {
	ID       int    // canonical transaction ID
	Category string // new category name
	Details  string // transaction details, fed back as a learned keyword
}
