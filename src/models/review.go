package models

// A reviewer's critique of an answer. AnswerID refers to either an answer or
// a clarification answer; both share the same id space for review purposes.
type Review struct {
	ID       int    `db:"id"`
	Text     string `db:"text"`
	Author   string `db:"author"`
	AnswerID int    `db:"answer_id"`
}

type QuestionReview struct {
	ID         int    `db:"id"`
	Text       string `db:"text"`
	Reviewer   string `db:"reviewer"`
	QuestionID int    `db:"question_id"`
}
