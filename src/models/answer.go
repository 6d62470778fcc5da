package models

type Answer struct {
	ID         int    `db:"id"`
	Text       string `db:"text"`
	Author     string `db:"author"`
	QuestionID int    `db:"question_id"`
	Resolved   bool   `db:"resolved"`

	// Staff endorsement ("superlike"). One-way; there is no unhighlight.
	Highlighted bool `db:"highlighted"`
}

type ClarificationAnswer struct {
	ID                      int    `db:"id"`
	Text                    string `db:"text"`
	Author                  string `db:"author"`
	ClarificationQuestionID int    `db:"clarification_question_id"`
	Resolved                bool   `db:"resolved"`
}
