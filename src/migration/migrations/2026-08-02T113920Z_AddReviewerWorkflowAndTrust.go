package migrations

import (
	"context"
	"time"

	"github.com/campusqa/campusqa/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddReviewerWorkflowAndTrust{})
}

type AddReviewerWorkflowAndTrust struct{}

func (m AddReviewerWorkflowAndTrust) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2026, 8, 2, 11, 39, 20, 0, time.UTC))
}

func (m AddReviewerWorkflowAndTrust) Name() string {
	return "AddReviewerWorkflowAndTrust"
}

func (m AddReviewerWorkflowAndTrust) Description() string {
	return "Adds reviewer promotion requests and per-student trust weights"
}

func (m AddReviewerWorkflowAndTrust) Up(ctx context.Context, tx pgx.Tx) error {
	// One promotion request per student, ever. Trust weights keep one row per
	// (student, reviewer) pair.
	_, err := tx.Exec(ctx, `
		CREATE TABLE reviewer_requests (
			id SERIAL PRIMARY KEY,
			student_username VARCHAR(150) NOT NULL UNIQUE REFERENCES users (username) ON DELETE CASCADE,
			status VARCHAR(20) NOT NULL DEFAULT 'pending'
		);

		CREATE TABLE trusted_reviewers (
			id SERIAL PRIMARY KEY,
			student_username VARCHAR(150) NOT NULL REFERENCES users (username) ON DELETE CASCADE,
			reviewer_username VARCHAR(150) NOT NULL REFERENCES users (username) ON DELETE CASCADE,
			weight DOUBLE PRECISION NOT NULL,
			UNIQUE (student_username, reviewer_username)
		);
	`)
	return err
}

func (m AddReviewerWorkflowAndTrust) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE trusted_reviewers;
		DROP TABLE reviewer_requests;
	`)
	return err
}
