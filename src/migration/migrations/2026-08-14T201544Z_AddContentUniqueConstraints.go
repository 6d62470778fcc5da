package migrations

import (
	"context"
	"time"

	"github.com/campusqa/campusqa/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddContentUniqueConstraints{})
}

type AddContentUniqueConstraints struct{}

func (m AddContentUniqueConstraints) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2026, 8, 14, 20, 15, 44, 0, time.UTC))
}

func (m AddContentUniqueConstraints) Name() string {
	return "AddContentUniqueConstraints"
}

func (m AddContentUniqueConstraints) Description() string {
	return "Enforces content dedup with unique indexes instead of application checks"
}

func (m AddContentUniqueConstraints) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE UNIQUE INDEX questions_text_author ON questions (text, author);
		CREATE UNIQUE INDEX answers_text_author_question ON answers (text, author, question_id);
		CREATE UNIQUE INDEX clarification_answers_text_author_parent ON clarification_answers (text, author, clarification_question_id);
	`)
	return err
}

func (m AddContentUniqueConstraints) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP INDEX clarification_answers_text_author_parent;
		DROP INDEX answers_text_author_question;
		DROP INDEX questions_text_author;
	`)
	return err
}
