package qadata

import (
	"context"
	"errors"

	"github.com/campusqa/campusqa/src/db"
	"github.com/campusqa/campusqa/src/models"
	"github.com/campusqa/campusqa/src/oops"
)

/*
Submits a reviewer promotion request for a student. A student gets one
request ever; if any request exists for them, regardless of status, this is
a no-op and returns false. The unique constraint on student_username backs
this up under concurrent submission.
*/
func SubmitRequest(ctx context.Context, dbConn db.ConnOrTx, studentUsername string) (bool, error) {
	_, err := db.QueryOne[models.ReviewerRequest](ctx, dbConn,
		`
		INSERT INTO reviewer_requests (student_username, status)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
		RETURNING $columns
		`,
		studentUsername, models.RequestStatusPending,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to submit reviewer request")
	}
	return true, nil
}

// Returns RequestStatusNone when the student has never submitted.
func GetRequestStatus(ctx context.Context, dbConn db.ConnOrTx, studentUsername string) (models.RequestStatus, error) {
	status, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT status FROM reviewer_requests WHERE student_username = $1`,
		studentUsername,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return models.RequestStatusNone, nil
		}
		return models.RequestStatusNone, oops.New(err, "failed to fetch reviewer request status")
	}
	return models.RequestStatus(status), nil
}

// Returns db.NotFound if the student has no request.
func GetRequestID(ctx context.Context, dbConn db.ConnOrTx, studentUsername string) (int, error) {
	return db.QueryOneScalar[int](ctx, dbConn,
		`SELECT id FROM reviewer_requests WHERE student_username = $1`,
		studentUsername,
	)
}

func ListPendingRequests(ctx context.Context, dbConn db.ConnOrTx) ([]*models.ReviewerRequest, error) {
	requests, err := db.Query[models.ReviewerRequest](ctx, dbConn,
		`
		SELECT $columns
		FROM reviewer_requests
		WHERE status = $1
		ORDER BY id
		`,
		models.RequestStatusPending,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch pending reviewer requests")
	}
	return requests, nil
}

/*
Approves a pending request and promotes the student to reviewer. Both
updates happen in one transaction: if the student's user row is missing the
whole approval rolls back and the request stays pending. Returns false for
requests that are absent or not pending.
*/
func ApproveRequest(ctx context.Context, dbConn db.ConnOrTx, requestID int) (bool, error) {
	tx, err := dbConn.Begin(ctx)
	if err != nil {
		return false, oops.New(err, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	request, err := db.QueryOne[models.ReviewerRequest](ctx, tx,
		`
		SELECT $columns
		FROM reviewer_requests
		WHERE id = $1
		FOR UPDATE
		`,
		requestID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to fetch reviewer request")
	}
	if !request.Status.CanTransitionTo(models.RequestStatusApproved) {
		return false, nil
	}

	_, err = tx.Exec(ctx,
		`UPDATE reviewer_requests SET status = $1 WHERE id = $2`,
		models.RequestStatusApproved, requestID,
	)
	if err != nil {
		return false, oops.New(err, "failed to update reviewer request status")
	}

	tag, err := tx.Exec(ctx,
		`UPDATE users SET role = $1 WHERE username = $2`,
		models.RoleReviewer, request.StudentUsername,
	)
	if err != nil {
		return false, oops.New(err, "failed to promote user to reviewer")
	}
	if tag.RowsAffected() == 0 {
		return false, oops.New(nil, "no user %s to promote for request %d", request.StudentUsername, requestID)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return false, oops.New(err, "failed to commit reviewer promotion")
	}

	return true, nil
}

// Denies a pending request. The student's role is untouched.
func DenyRequest(ctx context.Context, dbConn db.ConnOrTx, requestID int) (bool, error) {
	tx, err := dbConn.Begin(ctx)
	if err != nil {
		return false, oops.New(err, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	request, err := db.QueryOne[models.ReviewerRequest](ctx, tx,
		`
		SELECT $columns
		FROM reviewer_requests
		WHERE id = $1
		FOR UPDATE
		`,
		requestID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to fetch reviewer request")
	}
	if !request.Status.CanTransitionTo(models.RequestStatusDenied) {
		return false, nil
	}

	_, err = tx.Exec(ctx,
		`UPDATE reviewer_requests SET status = $1 WHERE id = $2`,
		models.RequestStatusDenied, requestID,
	)
	if err != nil {
		return false, oops.New(err, "failed to update reviewer request status")
	}

	err = tx.Commit(ctx)
	if err != nil {
		return false, oops.New(err, "failed to commit reviewer request denial")
	}

	return true, nil
}
