package models

const MaxMessageTextLength = 200

type Message struct {
	ID           int    `db:"id"`
	FromUsername string `db:"from_username"`
	ToUserID     int    `db:"to_user_id"`
	Text         string `db:"text"`
}
