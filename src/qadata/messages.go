package qadata

import (
	"context"
	"errors"

	"github.com/campusqa/campusqa/src/db"
	"github.com/campusqa/campusqa/src/models"
	"github.com/campusqa/campusqa/src/oops"
)

// Sends a private message. The recipient is looked up by username;
// CreateInvalid covers both bad text and an unknown recipient.
func SendMessage(ctx context.Context, dbConn db.ConnOrTx, fromUsername, toUsername, text string) (*models.Message, CreateResult, error) {
	if !validText(text, models.MaxMessageTextLength) {
		return nil, CreateInvalid, nil
	}

	toUserID, err := db.QueryOneScalar[int](ctx, dbConn,
		`SELECT id FROM users WHERE username = $1`,
		toUsername,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, CreateInvalid, nil
		}
		return nil, CreateInvalid, oops.New(err, "failed to look up message recipient")
	}

	message, err := db.QueryOne[models.Message](ctx, dbConn,
		`
		INSERT INTO messages (from_username, to_user_id, text)
		VALUES ($1, $2, $3)
		RETURNING $columns
		`,
		fromUsername, toUserID, text,
	)
	if err != nil {
		return nil, CreateInvalid, oops.New(err, "failed to insert message")
	}

	return message, CreateOK, nil
}

func FetchMessagesForUser(ctx context.Context, dbConn db.ConnOrTx, userID int) ([]*models.Message, error) {
	messages, err := db.Query[models.Message](ctx, dbConn,
		`
		SELECT $columns
		FROM messages
		WHERE to_user_id = $1
		ORDER BY id
		`,
		userID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch messages")
	}
	return messages, nil
}

// Only the recipient may delete a message; senders and admins may not.
func DeleteMessage(ctx context.Context, dbConn db.ConnOrTx, messageID, requesterUserID int) (bool, error) {
	tag, err := dbConn.Exec(ctx,
		`DELETE FROM messages WHERE id = $1 AND to_user_id = $2`,
		messageID, requesterUserID,
	)
	if err != nil {
		return false, oops.New(err, "failed to delete message")
	}
	return tag.RowsAffected() > 0, nil
}
