package qadata

import (
	"context"
	"errors"
	"strings"

	"github.com/campusqa/campusqa/src/auth"
	"github.com/campusqa/campusqa/src/db"
	"github.com/campusqa/campusqa/src/models"
	"github.com/campusqa/campusqa/src/oops"
	"github.com/google/uuid"
)

// Registers a user with a hashed password. CreateDuplicate means the
// username is taken.
func RegisterUser(ctx context.Context, dbConn db.ConnOrTx, username, password string, role models.Role) (*models.User, CreateResult, error) {
	if strings.TrimSpace(username) == "" || password == "" || !role.IsValid() {
		return nil, CreateInvalid, nil
	}

	hashed := auth.HashPassword(password)

	user, err := db.QueryOne[models.User](ctx, dbConn,
		`
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
		RETURNING $columns
		`,
		username, hashed.String(), role,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, CreateDuplicate, nil
		}
		return nil, CreateInvalid, oops.New(err, "failed to insert user")
	}

	return user, CreateOK, nil
}

// Returns db.NotFound for unknown usernames.
func FetchUser(ctx context.Context, dbConn db.ConnOrTx, username string) (*models.User, error) {
	return db.QueryOne[models.User](ctx, dbConn,
		`
		SELECT $columns
		FROM users
		WHERE username = $1
		`,
		username,
	)
}

func UserExists(ctx context.Context, dbConn db.ConnOrTx, username string) (bool, error) {
	exists, err := db.QueryOneScalar[bool](ctx, dbConn,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
		username,
	)
	if err != nil {
		return false, oops.New(err, "failed to check user existence")
	}
	return exists, nil
}

// Checks a login attempt. Returns the user on success and db.NotFound for a
// bad username or password; callers cannot tell the two apart.
func AuthenticateUser(ctx context.Context, dbConn db.ConnOrTx, username, password string) (*models.User, error) {
	user, err := FetchUser(ctx, dbConn, username)
	if err != nil {
		return nil, err
	}

	hashed, err := auth.ParsePasswordString(user.Password)
	if err != nil {
		return nil, oops.New(err, "failed to parse stored password for user %s", username)
	}
	ok, err := auth.CheckPassword(password, hashed)
	if err != nil {
		return nil, oops.New(err, "failed to check password for user %s", username)
	}
	if !ok {
		return nil, db.NotFound
	}

	return user, nil
}

func GetUserRole(ctx context.Context, dbConn db.ConnOrTx, username string) (models.Role, error) {
	role, err := db.QueryOneScalar[string](ctx, dbConn,
		`SELECT role FROM users WHERE username = $1`,
		username,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return "", db.NotFound
		}
		return "", oops.New(err, "failed to fetch user role")
	}
	return models.Role(role), nil
}

func SetUserRole(ctx context.Context, dbConn db.ConnOrTx, username string, role models.Role) (bool, error) {
	if !role.IsValid() {
		return false, nil
	}
	tag, err := dbConn.Exec(ctx,
		`UPDATE users SET role = $1 WHERE username = $2`,
		role, username,
	)
	if err != nil {
		return false, oops.New(err, "failed to set user role")
	}
	return tag.RowsAffected() > 0, nil
}

func UpdatePassword(ctx context.Context, dbConn db.ConnOrTx, username, newPassword string) (bool, error) {
	if newPassword == "" {
		return false, nil
	}
	hashed := auth.HashPassword(newPassword)
	tag, err := dbConn.Exec(ctx,
		`UPDATE users SET password = $1 WHERE username = $2`,
		hashed.String(), username,
	)
	if err != nil {
		return false, oops.New(err, "failed to update password")
	}
	return tag.RowsAffected() > 0, nil
}

// Flags a user by forcing their rating to the flagged sentinel. Flagging is
// idempotent and does not touch the user's role or content.
func FlagUser(ctx context.Context, dbConn db.ConnOrTx, username string) (bool, error) {
	tag, err := dbConn.Exec(ctx,
		`UPDATE users SET rating = $1 WHERE username = $2`,
		models.FlaggedRating, username,
	)
	if err != nil {
		return false, oops.New(err, "failed to flag user")
	}
	return tag.RowsAffected() > 0, nil
}

func SetUserRating(ctx context.Context, dbConn db.ConnOrTx, username string, rating float64) (bool, error) {
	if rating < 0 {
		return false, nil
	}
	tag, err := dbConn.Exec(ctx,
		`UPDATE users SET rating = $1 WHERE username = $2`,
		rating, username,
	)
	if err != nil {
		return false, oops.New(err, "failed to set user rating")
	}
	return tag.RowsAffected() > 0, nil
}

/*
Generates a fresh one-time invitation code. Codes are short tokens cut from
a random UUID, so a collision with an existing code is possible; on conflict
we just cut a new one.
*/
func GenerateInvitationCode(ctx context.Context, dbConn db.ConnOrTx) (string, error) {
	for {
		code := strings.ReplaceAll(uuid.New().String(), "-", "")[:4]
		tag, err := dbConn.Exec(ctx,
			`
			INSERT INTO invitation_codes (code)
			VALUES ($1)
			ON CONFLICT DO NOTHING
			`,
			code,
		)
		if err != nil {
			return "", oops.New(err, "failed to insert invitation code")
		}
		if tag.RowsAffected() > 0 {
			return code, nil
		}
	}
}

// Redeems an invitation code. The update is atomic, so a code presented by
// two users at once is granted to exactly one of them.
func ValidateInvitationCode(ctx context.Context, dbConn db.ConnOrTx, code string) (bool, error) {
	tag, err := dbConn.Exec(ctx,
		`
		UPDATE invitation_codes
		SET is_used = TRUE
		WHERE code = $1 AND NOT is_used
		`,
		code,
	)
	if err != nil {
		return false, oops.New(err, "failed to validate invitation code")
	}
	return tag.RowsAffected() > 0, nil
}
