package qadata

import (
	"context"
	"errors"

	"github.com/campusqa/campusqa/src/db"
	"github.com/campusqa/campusqa/src/models"
	"github.com/campusqa/campusqa/src/oops"
)

/*
Sets a student's personal weight for a reviewer, adding the reviewer to the
student's trusted list if they are not on it yet. Weights outside
[MinTrustWeight, MaxTrustWeight] are rejected. Each (student, reviewer) pair
keeps exactly one row; concurrent sets end with the last write's weight.
*/
func SetWeight(ctx context.Context, dbConn db.ConnOrTx, studentUsername, reviewerUsername string, weight float64) (bool, error) {
	if weight < models.MinTrustWeight || weight > models.MaxTrustWeight {
		return false, nil
	}

	_, err := dbConn.Exec(ctx,
		`
		INSERT INTO trusted_reviewers (student_username, reviewer_username, weight)
		VALUES ($1, $2, $3)
		ON CONFLICT (student_username, reviewer_username) DO UPDATE
		SET weight = EXCLUDED.weight
		`,
		studentUsername, reviewerUsername, weight,
	)
	if err != nil {
		return false, oops.New(err, "failed to set trust weight")
	}
	return true, nil
}

// Returns 0 when the student has not rated the reviewer.
func GetWeight(ctx context.Context, dbConn db.ConnOrTx, studentUsername, reviewerUsername string) (float64, error) {
	weight, err := db.QueryOneScalar[float64](ctx, dbConn,
		`
		SELECT weight
		FROM trusted_reviewers
		WHERE student_username = $1 AND reviewer_username = $2
		`,
		studentUsername, reviewerUsername,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return 0, nil
		}
		return 0, oops.New(err, "failed to fetch trust weight")
	}
	return weight, nil
}

func RemoveTrustedReviewer(ctx context.Context, dbConn db.ConnOrTx, studentUsername, reviewerUsername string) (bool, error) {
	tag, err := dbConn.Exec(ctx,
		`
		DELETE FROM trusted_reviewers
		WHERE student_username = $1 AND reviewer_username = $2
		`,
		studentUsername, reviewerUsername,
	)
	if err != nil {
		return false, oops.New(err, "failed to remove trusted reviewer")
	}
	return tag.RowsAffected() > 0, nil
}

// Highest weight first; reviewers added earlier win ties.
func ListTrustedReviewers(ctx context.Context, dbConn db.ConnOrTx, studentUsername string) ([]*models.TrustedReviewer, error) {
	reviewers, err := db.Query[models.TrustedReviewer](ctx, dbConn,
		`
		SELECT $columns
		FROM trusted_reviewers
		WHERE student_username = $1
		ORDER BY weight DESC, id
		`,
		studentUsername,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch trusted reviewers")
	}
	return reviewers, nil
}

// The global rating lives on the user row and is independent of any
// student's personal weights. Returns 0 for unknown users.
func GetReviewerRating(ctx context.Context, dbConn db.ConnOrTx, reviewerUsername string) (float64, error) {
	rating, err := db.QueryOneScalar[float64](ctx, dbConn,
		`SELECT rating FROM users WHERE username = $1`,
		reviewerUsername,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return 0, nil
		}
		return 0, oops.New(err, "failed to fetch reviewer rating")
	}
	return rating, nil
}
