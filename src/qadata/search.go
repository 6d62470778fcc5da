package qadata

import (
	"context"
	"strings"

	"github.com/campusqa/campusqa/src/db"
	"github.com/campusqa/campusqa/src/models"
	"github.com/campusqa/campusqa/src/oops"
)

// Case-insensitive substring search. An empty keyword matches everything.
func SearchQuestions(ctx context.Context, dbConn db.ConnOrTx, keyword string) ([]*models.Question, error) {
	questions, err := db.Query[models.Question](ctx, dbConn,
		`
		SELECT $columns
		FROM questions
		WHERE text ILIKE $1
		ORDER BY id
		`,
		likePattern(keyword),
	)
	if err != nil {
		return nil, oops.New(err, "failed to search questions")
	}
	return questions, nil
}

func SearchAnswers(ctx context.Context, dbConn db.ConnOrTx, keyword string) ([]*models.Answer, error) {
	answers, err := db.Query[models.Answer](ctx, dbConn,
		`
		SELECT $columns
		FROM answers
		WHERE text ILIKE $1
		ORDER BY id
		`,
		likePattern(keyword),
	)
	if err != nil {
		return nil, oops.New(err, "failed to search answers")
	}
	return answers, nil
}

func likePattern(keyword string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(keyword)
	return "%" + escaped + "%"
}
