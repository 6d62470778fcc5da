package qadata

import (
	"context"
	"errors"

	"github.com/campusqa/campusqa/src/db"
	"github.com/campusqa/campusqa/src/models"
	"github.com/campusqa/campusqa/src/oops"
)

// Answers and clarification answers draw ids from the same sequence, so a
// review's answer_id identifies a row in exactly one of the two tables.

func CreateAnswer(ctx context.Context, dbConn db.ConnOrTx, questionID int, text, author string) (*models.Answer, CreateResult, error) {
	if !validText(text, models.MaxContentTextLength) {
		return nil, CreateInvalid, nil
	}

	exists, err := db.QueryOneScalar[bool](ctx, dbConn,
		`
		SELECT EXISTS (
			SELECT 1 FROM answers
			WHERE text = $1 AND author = $2 AND question_id = $3
		)
		`,
		text, author, questionID,
	)
	if err != nil {
		return nil, CreateInvalid, oops.New(err, "failed to check for duplicate answer")
	}
	if exists {
		return nil, CreateDuplicate, nil
	}

	answer, err := db.QueryOne[models.Answer](ctx, dbConn,
		`
		INSERT INTO answers (question_id, text, author)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
		RETURNING $columns
		`,
		questionID, text, author,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, CreateDuplicate, nil
		}
		return nil, CreateInvalid, oops.New(err, "failed to insert answer")
	}

	return answer, CreateOK, nil
}

func FetchAnswers(ctx context.Context, dbConn db.ConnOrTx, questionID int) ([]*models.Answer, error) {
	answers, err := db.Query[models.Answer](ctx, dbConn,
		`
		SELECT $columns
		FROM answers
		WHERE question_id = $1
		ORDER BY highlighted DESC, id
		`,
		questionID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch answers")
	}
	return answers, nil
}

func FetchAnswersByAuthor(ctx context.Context, dbConn db.ConnOrTx, author string) ([]*models.Answer, error) {
	answers, err := db.Query[models.Answer](ctx, dbConn,
		`
		SELECT $columns
		FROM answers
		WHERE author = $1
		ORDER BY id
		`,
		author,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch answers by author")
	}
	return answers, nil
}

func EditAnswer(ctx context.Context, dbConn db.ConnOrTx, answerID int, newText, requester string) (bool, error) {
	if !validText(newText, models.MaxContentTextLength) {
		return false, nil
	}

	author, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT author FROM answers WHERE id = $1`,
		answerID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to look up answer author")
	}
	if !CanMutate(author, requester, false) {
		return false, nil
	}

	tag, err := dbConn.Exec(ctx,
		`UPDATE answers SET text = $1 WHERE id = $2`,
		newText, answerID,
	)
	if err != nil {
		return false, oops.New(err, "failed to edit answer")
	}
	return tag.RowsAffected() > 0, nil
}

// Deletes an answer and its reviews in one transaction.
func DeleteAnswer(ctx context.Context, dbConn db.ConnOrTx, answerID int, requester string, isAdmin bool) (bool, error) {
	author, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT author FROM answers WHERE id = $1`,
		answerID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to look up answer author")
	}
	if !CanMutate(author, requester, isAdmin) {
		return false, nil
	}

	tx, err := dbConn.Begin(ctx)
	if err != nil {
		return false, oops.New(err, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM reviews WHERE answer_id = $1`,
		answerID,
	)
	if err != nil {
		return false, oops.New(err, "failed to delete reviews for answer")
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM answers WHERE id = $1`,
		answerID,
	)
	if err != nil {
		return false, oops.New(err, "failed to delete answer")
	}

	err = tx.Commit(ctx)
	if err != nil {
		return false, oops.New(err, "failed to commit answer delete")
	}

	return tag.RowsAffected() > 0, nil
}

func CreateClarificationAnswer(ctx context.Context, dbConn db.ConnOrTx, clarificationQuestionID int, text, author string) (*models.ClarificationAnswer, CreateResult, error) {
	if !validText(text, models.MaxContentTextLength) {
		return nil, CreateInvalid, nil
	}

	exists, err := db.QueryOneScalar[bool](ctx, dbConn,
		`
		SELECT EXISTS (
			SELECT 1 FROM clarification_answers
			WHERE text = $1 AND author = $2 AND clarification_question_id = $3
		)
		`,
		text, author, clarificationQuestionID,
	)
	if err != nil {
		return nil, CreateInvalid, oops.New(err, "failed to check for duplicate clarification answer")
	}
	if exists {
		return nil, CreateDuplicate, nil
	}

	ca, err := db.QueryOne[models.ClarificationAnswer](ctx, dbConn,
		`
		INSERT INTO clarification_answers (clarification_question_id, text, author)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
		RETURNING $columns
		`,
		clarificationQuestionID, text, author,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, CreateDuplicate, nil
		}
		return nil, CreateInvalid, oops.New(err, "failed to insert clarification answer")
	}

	return ca, CreateOK, nil
}

func FetchClarificationAnswers(ctx context.Context, dbConn db.ConnOrTx, clarificationQuestionID int) ([]*models.ClarificationAnswer, error) {
	cas, err := db.Query[models.ClarificationAnswer](ctx, dbConn,
		`
		SELECT $columns
		FROM clarification_answers
		WHERE clarification_question_id = $1
		ORDER BY id
		`,
		clarificationQuestionID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch clarification answers")
	}
	return cas, nil
}

func EditClarificationAnswer(ctx context.Context, dbConn db.ConnOrTx, clarificationAnswerID int, newText, requester string) (bool, error) {
	if !validText(newText, models.MaxContentTextLength) {
		return false, nil
	}

	author, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT author FROM clarification_answers WHERE id = $1`,
		clarificationAnswerID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to look up clarification answer author")
	}
	if !CanMutate(author, requester, false) {
		return false, nil
	}

	tag, err := dbConn.Exec(ctx,
		`UPDATE clarification_answers SET text = $1 WHERE id = $2`,
		newText, clarificationAnswerID,
	)
	if err != nil {
		return false, oops.New(err, "failed to edit clarification answer")
	}
	return tag.RowsAffected() > 0, nil
}

func DeleteClarificationAnswer(ctx context.Context, dbConn db.ConnOrTx, clarificationAnswerID int, requester string, isAdmin bool) (bool, error) {
	author, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT author FROM clarification_answers WHERE id = $1`,
		clarificationAnswerID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to look up clarification answer author")
	}
	if !CanMutate(author, requester, isAdmin) {
		return false, nil
	}

	tx, err := dbConn.Begin(ctx)
	if err != nil {
		return false, oops.New(err, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM reviews WHERE answer_id = $1`,
		clarificationAnswerID,
	)
	if err != nil {
		return false, oops.New(err, "failed to delete reviews for clarification answer")
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM clarification_answers WHERE id = $1`,
		clarificationAnswerID,
	)
	if err != nil {
		return false, oops.New(err, "failed to delete clarification answer")
	}

	err = tx.Commit(ctx)
	if err != nil {
		return false, oops.New(err, "failed to commit clarification answer delete")
	}

	return tag.RowsAffected() > 0, nil
}
