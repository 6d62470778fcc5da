package migrations

import (
	"context"
	"time"

	"github.com/campusqa/campusqa/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddUsersAndContent{})
}

type AddUsersAndContent struct{}

func (m AddUsersAndContent) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2026, 7, 12, 9, 45, 12, 0, time.UTC))
}

func (m AddUsersAndContent) Name() string {
	return "AddUsersAndContent"
}

func (m AddUsersAndContent) Description() string {
	return "Adds users, invitation codes, questions, answers, and messages"
}

func (m AddUsersAndContent) Up(ctx context.Context, tx pgx.Tx) error {
	// Answers and clarification answers share one id sequence so that a bare
	// answer id is unambiguous across both tables.
	_, err := tx.Exec(ctx, `
		CREATE TABLE users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(150) NOT NULL UNIQUE,
			password VARCHAR(256) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'user',
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			date_joined TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE TABLE invitation_codes (
			code VARCHAR(8) PRIMARY KEY,
			is_used BOOLEAN NOT NULL DEFAULT FALSE
		);

		CREATE TABLE questions (
			id SERIAL PRIMARY KEY,
			text VARCHAR(500) NOT NULL,
			author VARCHAR(150) NOT NULL
		);

		CREATE TABLE clarification_questions (
			id SERIAL PRIMARY KEY,
			question_id INT NOT NULL REFERENCES questions (id) ON DELETE CASCADE,
			text VARCHAR(500) NOT NULL,
			author VARCHAR(150) NOT NULL
		);
		CREATE INDEX clarification_questions_question_id ON clarification_questions (question_id);

		CREATE SEQUENCE answer_ids;

		CREATE TABLE answers (
			id INT PRIMARY KEY DEFAULT nextval('answer_ids'),
			question_id INT NOT NULL REFERENCES questions (id) ON DELETE CASCADE,
			text VARCHAR(500) NOT NULL,
			author VARCHAR(150) NOT NULL,
			resolved BOOLEAN NOT NULL DEFAULT FALSE,
			highlighted BOOLEAN NOT NULL DEFAULT FALSE
		);
		CREATE INDEX answers_question_id ON answers (question_id);

		CREATE TABLE clarification_answers (
			id INT PRIMARY KEY DEFAULT nextval('answer_ids'),
			clarification_question_id INT NOT NULL REFERENCES clarification_questions (id) ON DELETE CASCADE,
			text VARCHAR(500) NOT NULL,
			author VARCHAR(150) NOT NULL,
			resolved BOOLEAN NOT NULL DEFAULT FALSE
		);
		CREATE INDEX clarification_answers_parent ON clarification_answers (clarification_question_id);

		CREATE TABLE messages (
			id SERIAL PRIMARY KEY,
			from_username VARCHAR(150) NOT NULL,
			to_user_id INT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			text VARCHAR(200) NOT NULL
		);
		CREATE INDEX messages_to_user_id ON messages (to_user_id);
	`)
	return err
}

func (m AddUsersAndContent) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE messages;
		DROP TABLE clarification_answers;
		DROP TABLE answers;
		DROP SEQUENCE answer_ids;
		DROP TABLE clarification_questions;
		DROP TABLE questions;
		DROP TABLE invitation_codes;
		DROP TABLE users;
	`)
	return err
}
