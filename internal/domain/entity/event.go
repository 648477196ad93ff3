package entity

import "time"

// AddressEventType names what happened to an address.
type AddressEventType string

const (
	AddressCreated       AddressEventType = "address.created"
	AddressDeleted       AddressEventType = "address.deleted"
	AddressImageAdded    AddressEventType = "address.image_added"
	AddressCommentAdded  AddressEventType = "address.comment_added"
	AddressCommentDelete AddressEventType = "address.comment_deleted"
	AddressRated         AddressEventType = "address.rated"
)

// AddressEvent is published after a successful mutation of an address.
type AddressEvent struct {
	ID         string           `json:"id"`
	RequestID  string           `json:"request_id,omitempty"`
	Type       AddressEventType `json:"type"`
	AddressID  string           `json:"address_id"`
	ActorUID   string           `json:"actor_uid"`
	IsPublic   bool             `json:"is_public"`
	CommentID  string           `json:"comment_id,omitempty"`
	Stars      int              `json:"stars,omitempty"`
	ImageURL   string           `json:"image_url,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
