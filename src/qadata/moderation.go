package qadata

import (
	"context"
	"errors"

	"github.com/campusqa/campusqa/src/db"
	"github.com/campusqa/campusqa/src/oops"
)

// Resolution and highlighting are open to any caller; there is no authorship
// requirement on these operations.

// Flips an answer's resolved state in a single statement and returns the new
// state. Concurrent toggles serialize on the row, so each call observes the
// result of its own flip.
func ToggleResolved(ctx context.Context, dbConn db.ConnOrTx, answerID int) (bool, error) {
	resolved, err := db.QueryOneScalar[bool](ctx, dbConn,
		`
		UPDATE answers
		SET resolved = NOT resolved
		WHERE id = $1
		RETURNING resolved
		`,
		answerID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, db.NotFound
		}
		return false, oops.New(err, "failed to toggle answer resolved state")
	}
	return resolved, nil
}

func ToggleClarificationResolved(ctx context.Context, dbConn db.ConnOrTx, clarificationAnswerID int) (bool, error) {
	resolved, err := db.QueryOneScalar[bool](ctx, dbConn,
		`
		UPDATE clarification_answers
		SET resolved = NOT resolved
		WHERE id = $1
		RETURNING resolved
		`,
		clarificationAnswerID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, db.NotFound
		}
		return false, oops.New(err, "failed to toggle clarification answer resolved state")
	}
	return resolved, nil
}

func IsResolved(ctx context.Context, dbConn db.ConnOrTx, answerID int) (bool, error) {
	resolved, err := db.QueryOneScalar[bool](ctx, dbConn,
		`SELECT resolved FROM answers WHERE id = $1`,
		answerID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, db.NotFound
		}
		return false, oops.New(err, "failed to fetch answer resolved state")
	}
	return resolved, nil
}

func IsClarificationResolved(ctx context.Context, dbConn db.ConnOrTx, clarificationAnswerID int) (bool, error) {
	resolved, err := db.QueryOneScalar[bool](ctx, dbConn,
		`SELECT resolved FROM clarification_answers WHERE id = $1`,
		clarificationAnswerID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, db.NotFound
		}
		return false, oops.New(err, "failed to fetch clarification answer resolved state")
	}
	return resolved, nil
}

// Highlighting is one-way; there is no operation to clear it.
func HighlightAnswer(ctx context.Context, dbConn db.ConnOrTx, answerID int) (bool, error) {
	tag, err := dbConn.Exec(ctx,
		`UPDATE answers SET highlighted = TRUE WHERE id = $1`,
		answerID,
	)
	if err != nil {
		return false, oops.New(err, "failed to highlight answer")
	}
	return tag.RowsAffected() > 0, nil
}

func IsHighlighted(ctx context.Context, dbConn db.ConnOrTx, answerID int) (bool, error) {
	highlighted, err := db.QueryOneScalar[bool](ctx, dbConn,
		`SELECT highlighted FROM answers WHERE id = $1`,
		answerID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, db.NotFound
		}
		return false, oops.New(err, "failed to fetch answer highlighted state")
	}
	return highlighted, nil
}
