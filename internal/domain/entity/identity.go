package entity

import (
	"strings"
	"time"
)

// Identity is the signed-in user as seen by the rest of the system.
type Identity struct {
	UID         string
	DisplayName string
	Email       string
	PhotoURL    string
}

// Name returns the name snapshot stored on addresses and comments:
// the display name, else the email, else AnonymousName.
func (i *Identity) Name() string {
	if i == nil {
		return AnonymousName
	}
	if name := strings.TrimSpace(i.DisplayName); name != "" {
		return name
	}
	if email := strings.TrimSpace(i.Email); email != "" {
		return email
	}

	return AnonymousName
}

// Session is an identity together with the bearer token that authenticates it.
type Session struct {
	Identity *Identity
	Token    string
}

// User is a locally stored account, used when the service manages identities itself.
type User struct {
	UID          string
	Email        string
	DisplayName  string
	PhotoURL     string
	PasswordHash string
	TokenVersion int // Bumped on sign-out, invalidating outstanding tokens.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity returns the public view of the user.
func (u *User) Identity() *Identity {
	return &Identity{
		UID:         u.UID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		PhotoURL:    u.PhotoURL,
	}
}

// ProfileUpdate carries the fields a user may change on their profile. Nil fields are left untouched.
type ProfileUpdate struct {
	DisplayName *string
	PhotoURL    *string
}
