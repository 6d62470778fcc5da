package models

// Bounds for a student's trust weight on a reviewer. Zero is reserved as the
// "unrated" sentinel returned when no weight record exists.
const (
	MinTrustWeight = 1.0
	MaxTrustWeight = 5.0
)

type TrustedReviewer struct {
	ID               int     `db:"id"`
	StudentUsername  string  `db:"student_username"`
	ReviewerUsername string  `db:"reviewer_username"`
	Weight           float64 `db:"weight"`
}
