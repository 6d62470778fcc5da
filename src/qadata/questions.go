package qadata

import (
	"context"
	"errors"

	"github.com/campusqa/campusqa/src/db"
	"github.com/campusqa/campusqa/src/models"
	"github.com/campusqa/campusqa/src/oops"
)

/*
Creates a new question. Returns CreateInvalid for blank or oversized text and
CreateDuplicate when the same author already posted identical text. The
duplicate check is a fast path; the unique constraint on (text, author) is
the real guard against concurrent identical submissions.
*/
func CreateQuestion(ctx context.Context, dbConn db.ConnOrTx, text, author string) (*models.Question, CreateResult, error) {
	if !validText(text, models.MaxContentTextLength) {
		return nil, CreateInvalid, nil
	}

	exists, err := db.QueryOneScalar[bool](ctx, dbConn,
		`
		SELECT EXISTS (
			SELECT 1 FROM questions
			WHERE text = $1 AND author = $2
		)
		`,
		text, author,
	)
	if err != nil {
		return nil, CreateInvalid, oops.New(err, "failed to check for duplicate question")
	}
	if exists {
		return nil, CreateDuplicate, nil
	}

	question, err := db.QueryOne[models.Question](ctx, dbConn,
		`
		INSERT INTO questions (text, author)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
		RETURNING $columns
		`,
		text, author,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			// Somebody else inserted the same question between our check and
			// the insert.
			return nil, CreateDuplicate, nil
		}
		return nil, CreateInvalid, oops.New(err, "failed to insert question")
	}

	return question, CreateOK, nil
}

func FetchQuestions(ctx context.Context, dbConn db.ConnOrTx) ([]*models.Question, error) {
	questions, err := db.Query[models.Question](ctx, dbConn,
		`
		SELECT $columns
		FROM questions
		ORDER BY id
		`,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch questions")
	}
	return questions, nil
}

// Returns db.NotFound if no question has the given id.
func FetchQuestion(ctx context.Context, dbConn db.ConnOrTx, questionID int) (*models.Question, error) {
	return db.QueryOne[models.Question](ctx, dbConn,
		`
		SELECT $columns
		FROM questions
		WHERE id = $1
		`,
		questionID,
	)
}

func FetchQuestionsByAuthor(ctx context.Context, dbConn db.ConnOrTx, author string) ([]*models.Question, error) {
	questions, err := db.Query[models.Question](ctx, dbConn,
		`
		SELECT $columns
		FROM questions
		WHERE author = $1
		ORDER BY id
		`,
		author,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch questions by author")
	}
	return questions, nil
}

// Editing is author-only; a false return means the question does not exist,
// the requester is not the author, or the new text is invalid.
func EditQuestion(ctx context.Context, dbConn db.ConnOrTx, questionID int, newText, requester string) (bool, error) {
	if !validText(newText, models.MaxContentTextLength) {
		return false, nil
	}

	author, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT author FROM questions WHERE id = $1`,
		questionID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to look up question author")
	}
	if !CanMutate(author, requester, false) {
		return false, nil
	}

	tag, err := dbConn.Exec(ctx,
		`UPDATE questions SET text = $1 WHERE id = $2`,
		newText, questionID,
	)
	if err != nil {
		return false, oops.New(err, "failed to edit question")
	}
	return tag.RowsAffected() > 0, nil
}

/*
Deletes a question along with all of its answers, clarification questions,
clarification answers, and the reviews attached to any of them. The content
children go away through the schema's cascading foreign keys; reviews target
answers from two tables and are cleaned up explicitly in the same
transaction.
*/
func DeleteQuestion(ctx context.Context, dbConn db.ConnOrTx, questionID int, requester string, isAdmin bool) (bool, error) {
	author, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT author FROM questions WHERE id = $1`,
		questionID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to look up question author")
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
		`
		DELETE FROM reviews
		WHERE
			answer_id IN (SELECT id FROM answers WHERE question_id = $1)
			OR answer_id IN (
				SELECT ca.id
				FROM
					clarification_answers AS ca
					JOIN clarification_questions AS cq ON ca.clarification_question_id = cq.id
				WHERE cq.question_id = $1
			)
		`,
		questionID,
	)
	if err != nil {
		return false, oops.New(err, "failed to delete reviews for question")
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM questions WHERE id = $1`,
		questionID,
	)
	if err != nil {
		return false, oops.New(err, "failed to delete question")
	}

	err = tx.Commit(ctx)
	if err != nil {
		return false, oops.New(err, "failed to commit question delete")
	}

	return tag.RowsAffected() > 0, nil
}

// Clarification questions are follow-ups under a main question. Unlike main
// questions they are not deduplicated; only the text bounds apply.
func CreateClarificationQuestion(ctx context.Context, dbConn db.ConnOrTx, questionID int, text, author string) (*models.ClarificationQuestion, CreateResult, error) {
	if !validText(text, models.MaxContentTextLength) {
		return nil, CreateInvalid, nil
	}

	cq, err := db.QueryOne[models.ClarificationQuestion](ctx, dbConn,
		`
		INSERT INTO clarification_questions (question_id, text, author)
		VALUES ($1, $2, $3)
		RETURNING $columns
		`,
		questionID, text, author,
	)
	if err != nil {
		return nil, CreateInvalid, oops.New(err, "failed to insert clarification question")
	}

	return cq, CreateOK, nil
}

func FetchClarificationQuestions(ctx context.Context, dbConn db.ConnOrTx, questionID int) ([]*models.ClarificationQuestion, error) {
	cqs, err := db.Query[models.ClarificationQuestion](ctx, dbConn,
		`
		SELECT $columns
		FROM clarification_questions
		WHERE question_id = $1
		ORDER BY id
		`,
		questionID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch clarification questions")
	}
	return cqs, nil
}

func EditClarificationQuestion(ctx context.Context, dbConn db.ConnOrTx, clarificationQuestionID int, newText, requester string) (bool, error) {
	if !validText(newText, models.MaxContentTextLength) {
		return false, nil
	}

	author, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT author FROM clarification_questions WHERE id = $1`,
		clarificationQuestionID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to look up clarification question author")
	}
	if !CanMutate(author, requester, false) {
		return false, nil
	}

	tag, err := dbConn.Exec(ctx,
		`UPDATE clarification_questions SET text = $1 WHERE id = $2`,
		newText, clarificationQuestionID,
	)
	if err != nil {
		return false, oops.New(err, "failed to edit clarification question")
	}
	return tag.RowsAffected() > 0, nil
}

// Deletes a clarification question, its clarification answers (via cascade),
// and any reviews on those answers.
func DeleteClarificationQuestion(ctx context.Context, dbConn db.ConnOrTx, clarificationQuestionID int, requester string, isAdmin bool) (bool, error) {
	author, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT author FROM clarification_questions WHERE id = $1`,
		clarificationQuestionID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to look up clarification question author")
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
		`
		DELETE FROM reviews
		WHERE answer_id IN (
			SELECT id FROM clarification_answers WHERE clarification_question_id = $1
		)
		`,
		clarificationQuestionID,
	)
	if err != nil {
		return false, oops.New(err, "failed to delete reviews for clarification question")
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM clarification_questions WHERE id = $1`,
		clarificationQuestionID,
	)
	if err != nil {
		return false, oops.New(err, "failed to delete clarification question")
	}

	err = tx.Commit(ctx)
	if err != nil {
		return false, oops.New(err, "failed to commit clarification question delete")
	}

	return tag.RowsAffected() > 0, nil
}
