package qadata

import (
	"context"
	"errors"

	"github.com/campusqa/campusqa/src/db"
	"github.com/campusqa/campusqa/src/models"
	"github.com/campusqa/campusqa/src/oops"
)

// Reviews are reviewer feedback on answers. Multiple reviews with identical
// text are allowed; only the text bounds apply.
func CreateReview(ctx context.Context, dbConn db.ConnOrTx, answerID int, text, reviewer string) (*models.Review, CreateResult, error) {
	if !validText(text, models.MaxContentTextLength) {
		return nil, CreateInvalid, nil
	}

	review, err := db.QueryOne[models.Review](ctx, dbConn,
		`
		INSERT INTO reviews (answer_id, text, author)
		VALUES ($1, $2, $3)
		RETURNING $columns
		`,
		answerID, text, reviewer,
	)
	if err != nil {
		return nil, CreateInvalid, oops.New(err, "failed to insert review")
	}

	return review, CreateOK, nil
}

func FetchReviewsForAnswer(ctx context.Context, dbConn db.ConnOrTx, answerID int) ([]*models.Review, error) {
	reviews, err := db.Query[models.Review](ctx, dbConn,
		`
		SELECT $columns
		FROM reviews
		WHERE answer_id = $1
		ORDER BY id
		`,
		answerID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch reviews for answer")
	}
	return reviews, nil
}

func FetchReviewsByReviewer(ctx context.Context, dbConn db.ConnOrTx, reviewer string) ([]*models.Review, error) {
	reviews, err := db.Query[models.Review](ctx, dbConn,
		`
		SELECT $columns
		FROM reviews
		WHERE author = $1
		ORDER BY id
		`,
		reviewer,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch reviews by reviewer")
	}
	return reviews, nil
}

func EditReview(ctx context.Context, dbConn db.ConnOrTx, reviewID int, newText, requester string) (bool, error) {
	if !validText(newText, models.MaxContentTextLength) {
		return false, nil
	}

	author, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT author FROM reviews WHERE id = $1`,
		reviewID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to look up review author")
	}
	if !CanMutate(author, requester, false) {
		return false, nil
	}

	tag, err := dbConn.Exec(ctx,
		`UPDATE reviews SET text = $1 WHERE id = $2`,
		newText, reviewID,
	)
	if err != nil {
		return false, oops.New(err, "failed to edit review")
	}
	return tag.RowsAffected() > 0, nil
}

func DeleteReview(ctx context.Context, dbConn db.ConnOrTx, reviewID int, requester string, isAdmin bool) (bool, error) {
	author, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT author FROM reviews WHERE id = $1`,
		reviewID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to look up review author")
	}
	if !CanMutate(author, requester, isAdmin) {
		return false, nil
	}

	tag, err := dbConn.Exec(ctx,
		`DELETE FROM reviews WHERE id = $1`,
		reviewID,
	)
	if err != nil {
		return false, oops.New(err, "failed to delete review")
	}
	return tag.RowsAffected() > 0, nil
}

// Question reviews attach directly to questions and cascade away with them.
func CreateQuestionReview(ctx context.Context, dbConn db.ConnOrTx, questionID int, text, reviewer string) (*models.QuestionReview, CreateResult, error) {
	if !validText(text, models.MaxContentTextLength) {
		return nil, CreateInvalid, nil
	}

	review, err := db.QueryOne[models.QuestionReview](ctx, dbConn,
		`
		INSERT INTO question_reviews (question_id, text, reviewer)
		VALUES ($1, $2, $3)
		RETURNING $columns
		`,
		questionID, text, reviewer,
	)
	if err != nil {
		return nil, CreateInvalid, oops.New(err, "failed to insert question review")
	}

	return review, CreateOK, nil
}

func FetchQuestionReviewsForQuestion(ctx context.Context, dbConn db.ConnOrTx, questionID int) ([]*models.QuestionReview, error) {
	reviews, err := db.Query[models.QuestionReview](ctx, dbConn,
		`
		SELECT $columns
		FROM question_reviews
		WHERE question_id = $1
		ORDER BY id
		`,
		questionID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch question reviews")
	}
	return reviews, nil
}

func FetchQuestionReviewsByReviewer(ctx context.Context, dbConn db.ConnOrTx, reviewer string) ([]*models.QuestionReview, error) {
	reviews, err := db.Query[models.QuestionReview](ctx, dbConn,
		`
		SELECT $columns
		FROM question_reviews
		WHERE reviewer = $1
		ORDER BY id
		`,
		reviewer,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch question reviews by reviewer")
	}
	return reviews, nil
}

func EditQuestionReview(ctx context.Context, dbConn db.ConnOrTx, reviewID int, newText, requester string) (bool, error) {
	if !validText(newText, models.MaxContentTextLength) {
		return false, nil
	}

	reviewer, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT reviewer FROM question_reviews WHERE id = $1`,
		reviewID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to look up question review author")
	}
	if !CanMutate(reviewer, requester, false) {
		return false, nil
	}

	tag, err := dbConn.Exec(ctx,
		`UPDATE question_reviews SET text = $1 WHERE id = $2`,
		newText, reviewID,
	)
	if err != nil {
		return false, oops.New(err, "failed to edit question review")
	}
	return tag.RowsAffected() > 0, nil
}

func DeleteQuestionReview(ctx context.Context, dbConn db.ConnOrTx, reviewID int, requester string, isAdmin bool) (bool, error) {
	reviewer, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT reviewer FROM question_reviews WHERE id = $1`,
		reviewID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return false, nil
		}
		return false, oops.New(err, "failed to look up question review author")
	}
	if !CanMutate(reviewer, requester, isAdmin) {
		return false, nil
	}

	tag, err := dbConn.Exec(ctx,
		`DELETE FROM question_reviews WHERE id = $1`,
		reviewID,
	)
	if err != nil {
		return false, oops.New(err, "failed to delete question review")
	}
	return tag.RowsAffected() > 0, nil
}
