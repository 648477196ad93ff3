package entity

import "time"

// Comment is a short text attached to an address.
type Comment struct {
	ID         string
	AddressID  string
	Text       string
	AuthorUID  string
	AuthorName string // Snapshot, same fallback rules as Address.OwnerName.
	CreatedAt  time.Time
}

// IsAuthoredBy reports whether uid wrote the comment.
func (c *Comment) IsAuthoredBy(uid string) bool {
	return uid != "" && c.AuthorUID == uid
}
