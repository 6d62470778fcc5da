package migrations

import (
	"context"
	"time"

	"github.com/campusqa/campusqa/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddReviews{})
}

type AddReviews struct{}

func (m AddReviews) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2026, 7, 19, 16, 40, 33, 0, time.UTC))
}

func (m AddReviews) Name() string {
	return "AddReviews"
}

func (m AddReviews) Description() string {
	return "Adds reviews on answers and reviews on questions"
}

func (m AddReviews) Up(ctx context.Context, tx pgx.Tx) error {
	// reviews.answer_id has no foreign key: it may point into either answers
	// or clarification_answers. Deletes clean up reviews explicitly.
	_, err := tx.Exec(ctx, `
		CREATE TABLE reviews (
			id SERIAL PRIMARY KEY,
			answer_id INT NOT NULL,
			text VARCHAR(500) NOT NULL,
			author VARCHAR(150) NOT NULL
		);
		CREATE INDEX reviews_answer_id ON reviews (answer_id);

		CREATE TABLE question_reviews (
			id SERIAL PRIMARY KEY,
			question_id INT NOT NULL REFERENCES questions (id) ON DELETE CASCADE,
			text VARCHAR(500) NOT NULL,
			reviewer VARCHAR(150) NOT NULL
		);
		CREATE INDEX question_reviews_question_id ON question_reviews (question_id);
	`)
	return err
}

func (m AddReviews) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE question_reviews;
		DROP TABLE reviews;
	`)
	return err
}
