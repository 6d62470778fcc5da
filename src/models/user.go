package models

import "time"

type Role string

const (
	RoleUser     Role = "user"
	RoleReviewer Role = "reviewer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleReviewer, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// Admins may delete anyone's content; staff additionally gate the moderation
// actions in the presentation layer.
func (r Role) IsPrivileged() bool {
	return r == RoleStaff || r == RoleAdmin
}

// A flagged user's rating is forced to this sentinel. Valid aggregate ratings
// are always >= 0.
const FlaggedRating = -1

type User struct {
	ID       int    `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Role     Role   `db:"role"`

	// Global aggregate rating. Independent from per-student trust weights;
	// the two are never reconciled.
	Rating float64 `db:"rating"`

	DateJoined time.Time `db:"date_joined"`
}

func (u *User) IsFlagged() bool {
	return u.Rating == FlaggedRating
}
