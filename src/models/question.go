package models

// The maximum length of question, answer, and review text, enforced on every
// create and edit.
const MaxContentTextLength = 500

type Question struct {
	ID     int    `db:"id"`
	Text   string `db:"text"`
	Author string `db:"author"`
}

// A follow-up question scoped under a parent question, for narrower
// discussion threads.
type ClarificationQuestion struct {
	ID         int    `db:"id"`
	QuestionID int    `db:"question_id"`
	Text       string `db:"text"`
	Author     string `db:"author"`
}
