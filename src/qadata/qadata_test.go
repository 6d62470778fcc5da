package qadata_test

import (
	"context"
	"os"
	"testing"

	"github.com/campusqa/campusqa/src/db"
	"github.com/campusqa/campusqa/src/migration"
	"github.com/campusqa/campusqa/src/models"
	"github.com/campusqa/campusqa/src/qadata"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run against a real Postgres instance and are skipped unless
// CAMPUSQA_TEST_DB is set. They reset the configured database.
func getTestConn(t *testing.T) *pgx.Conn {
	t.Helper()
	if os.Getenv("CAMPUSQA_TEST_DB") == "" {
		t.Skip("skipping database tests; set CAMPUSQA_TEST_DB to run them")
	}
	migration.ResetDB()
	migration.Migrate(migration.LatestVersion())
	return db.NewConn()
}

func TestQuestionLifecycle(t *testing.T) {
	conn := getTestConn(t)
	ctx := context.Background()
	defer conn.Close(ctx)

	registerTestUsers(t, ctx, conn)

	question, result, err := qadata.CreateQuestion(ctx, conn, "How do generics work?", "alice")
	require.NoError(t, err)
	require.Equal(t, qadata.CreateOK, result)
	assert.Equal(t, "How do generics work?", question.Text)
	assert.Equal(t, "alice", question.Author)

	t.Run("identical resubmission is a duplicate", func(t *testing.T) {
		_, result, err := qadata.CreateQuestion(ctx, conn, "How do generics work?", "alice")
		require.NoError(t, err)
		assert.Equal(t, qadata.CreateDuplicate, result)

		questions, err := qadata.FetchQuestions(ctx, conn)
		require.NoError(t, err)
		assert.Len(t, questions, 1)
	})

	t.Run("same text from another author is fine", func(t *testing.T) {
		_, result, err := qadata.CreateQuestion(ctx, conn, "How do generics work?", "bob")
		require.NoError(t, err)
		assert.Equal(t, qadata.CreateOK, result)
	})

	t.Run("blank and oversized text are invalid", func(t *testing.T) {
		_, result, err := qadata.CreateQuestion(ctx, conn, "   ", "alice")
		require.NoError(t, err)
		assert.Equal(t, qadata.CreateInvalid, result)
	})

	t.Run("editing is author-only", func(t *testing.T) {
		ok, err := qadata.EditQuestion(ctx, conn, question.ID, "How do generics actually work?", "bob")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = qadata.EditQuestion(ctx, conn, question.ID, "How do generics actually work?", "alice")
		require.NoError(t, err)
		assert.True(t, ok)

		fetched, err := qadata.FetchQuestion(ctx, conn, question.ID)
		require.NoError(t, err)
		assert.Equal(t, "How do generics actually work?", fetched.Text)
	})

	t.Run("delete cascades to children and reviews", func(t *testing.T) {
		answer, result, err := qadata.CreateAnswer(ctx, conn, question.ID, "With type parameters.", "bob")
		require.NoError(t, err)
		require.Equal(t, qadata.CreateOK, result)
		_, result, err = qadata.CreateReview(ctx, conn, answer.ID, "Clear and correct.", "rita")
		require.NoError(t, err)
		require.Equal(t, qadata.CreateOK, result)

		ok, err := qadata.DeleteQuestion(ctx, conn, question.ID, "bob", false)
		require.NoError(t, err)
		assert.False(t, ok, "non-author non-admin must not delete")

		ok, err = qadata.DeleteQuestion(ctx, conn, question.ID, "admin", true)
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = qadata.FetchQuestion(ctx, conn, question.ID)
		assert.ErrorIs(t, err, db.NotFound)

		reviews, err := qadata.FetchReviewsForAnswer(ctx, conn, answer.ID)
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})
}

func TestAnswersAndModeration(t *testing.T) {
	conn := getTestConn(t)
	ctx := context.Background()
	defer conn.Close(ctx)

	registerTestUsers(t, ctx, conn)

	question, _, err := qadata.CreateQuestion(ctx, conn, "What is a goroutine?", "alice")
	require.NoError(t, err)

	answer, result, err := qadata.CreateAnswer(ctx, conn, question.ID, "A lightweight thread.", "bob")
	require.NoError(t, err)
	require.Equal(t, qadata.CreateOK, result)

	t.Run("duplicate answer detection is scoped to the question", func(t *testing.T) {
		_, result, err := qadata.CreateAnswer(ctx, conn, question.ID, "A lightweight thread.", "bob")
		require.NoError(t, err)
		assert.Equal(t, qadata.CreateDuplicate, result)

		other, _, err := qadata.CreateQuestion(ctx, conn, "What is a channel?", "alice")
		require.NoError(t, err)
		_, result, err = qadata.CreateAnswer(ctx, conn, other.ID, "A lightweight thread.", "bob")
		require.NoError(t, err)
		assert.Equal(t, qadata.CreateOK, result)
	})

	t.Run("toggle flips and reports the new state", func(t *testing.T) {
		resolved, err := qadata.ToggleResolved(ctx, conn, answer.ID)
		require.NoError(t, err)
		assert.True(t, resolved)

		resolved, err = qadata.ToggleResolved(ctx, conn, answer.ID)
		require.NoError(t, err)
		assert.False(t, resolved)

		_, err = qadata.ToggleResolved(ctx, conn, 999999)
		assert.ErrorIs(t, err, db.NotFound)
	})

	t.Run("highlighting is one-way and sorts first", func(t *testing.T) {
		second, result, err := qadata.CreateAnswer(ctx, conn, question.ID, "A function running concurrently.", "alice")
		require.NoError(t, err)
		require.Equal(t, qadata.CreateOK, result)

		ok, err := qadata.HighlightAnswer(ctx, conn, second.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		highlighted, err := qadata.IsHighlighted(ctx, conn, second.ID)
		require.NoError(t, err)
		assert.True(t, highlighted)

		answers, err := qadata.FetchAnswers(ctx, conn, question.ID)
		require.NoError(t, err)
		require.NotEmpty(t, answers)
		assert.Equal(t, second.ID, answers[0].ID)
	})

	t.Run("clarification thread", func(t *testing.T) {
		cq, result, err := qadata.CreateClarificationQuestion(ctx, conn, question.ID, "Compared to an OS thread?", "charlie")
		require.NoError(t, err)
		require.Equal(t, qadata.CreateOK, result)

		ca, result, err := qadata.CreateClarificationAnswer(ctx, conn, cq.ID, "Much cheaper to create.", "bob")
		require.NoError(t, err)
		require.Equal(t, qadata.CreateOK, result)

		// Clarification answer ids never collide with answer ids.
		assert.NotEqual(t, answer.ID, ca.ID)

		resolved, err := qadata.ToggleClarificationResolved(ctx, conn, ca.ID)
		require.NoError(t, err)
		assert.True(t, resolved)
	})
}

func TestPromotionWorkflow(t *testing.T) {
	conn := getTestConn(t)
	ctx := context.Background()
	defer conn.Close(ctx)

	registerTestUsers(t, ctx, conn)

	t.Run("approve promotes in one step", func(t *testing.T) {
		ok, err := qadata.SubmitRequest(ctx, conn, "bob")
		require.NoError(t, err)
		assert.True(t, ok)

		status, err := qadata.GetRequestStatus(ctx, conn, "bob")
		require.NoError(t, err)
		assert.Equal(t, models.RequestStatusPending, status)

		requestID, err := qadata.GetRequestID(ctx, conn, "bob")
		require.NoError(t, err)

		ok, err = qadata.ApproveRequest(ctx, conn, requestID)
		require.NoError(t, err)
		assert.True(t, ok)

		role, err := qadata.GetUserRole(ctx, conn, "bob")
		require.NoError(t, err)
		assert.Equal(t, models.RoleReviewer, role)

		ok, err = qadata.ApproveRequest(ctx, conn, requestID)
		require.NoError(t, err)
		assert.False(t, ok, "approved requests stay approved")
	})

	t.Run("denied students stay students and cannot resubmit", func(t *testing.T) {
		ok, err := qadata.SubmitRequest(ctx, conn, "charlie")
		require.NoError(t, err)
		require.True(t, ok)

		requestID, err := qadata.GetRequestID(ctx, conn, "charlie")
		require.NoError(t, err)

		ok, err = qadata.DenyRequest(ctx, conn, requestID)
		require.NoError(t, err)
		assert.True(t, ok)

		role, err := qadata.GetUserRole(ctx, conn, "charlie")
		require.NoError(t, err)
		assert.Equal(t, models.RoleUser, role)

		ok, err = qadata.SubmitRequest(ctx, conn, "charlie")
		require.NoError(t, err)
		assert.False(t, ok)

		status, err := qadata.GetRequestStatus(ctx, conn, "charlie")
		require.NoError(t, err)
		assert.Equal(t, models.RequestStatusDenied, status)
	})

	t.Run("users without requests report none", func(t *testing.T) {
		status, err := qadata.GetRequestStatus(ctx, conn, "alice")
		require.NoError(t, err)
		assert.Equal(t, models.RequestStatusNone, status)
	})
}

func TestTrustWeights(t *testing.T) {
	conn := getTestConn(t)
	ctx := context.Background()
	defer conn.Close(ctx)

	registerTestUsers(t, ctx, conn)

	t.Run("setting a weight twice keeps one entry", func(t *testing.T) {
		ok, err := qadata.SetWeight(ctx, conn, "alice", "rita", 3.0)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = qadata.SetWeight(ctx, conn, "alice", "rita", 4.5)
		require.NoError(t, err)
		assert.True(t, ok)

		weight, err := qadata.GetWeight(ctx, conn, "alice", "rita")
		require.NoError(t, err)
		assert.Equal(t, 4.5, weight)

		reviewers, err := qadata.ListTrustedReviewers(ctx, conn, "alice")
		require.NoError(t, err)
		assert.Len(t, reviewers, 1)
	})

	t.Run("out-of-range weights are rejected", func(t *testing.T) {
		ok, err := qadata.SetWeight(ctx, conn, "alice", "rita", 0.5)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = qadata.SetWeight(ctx, conn, "alice", "rita", 5.5)
		require.NoError(t, err)
		assert.False(t, ok)

		weight, err := qadata.GetWeight(ctx, conn, "alice", "rita")
		require.NoError(t, err)
		assert.Equal(t, 4.5, weight, "rejected weights must not be stored")
	})

	t.Run("unrated reviewers report zero", func(t *testing.T) {
		weight, err := qadata.GetWeight(ctx, conn, "bob", "rita")
		require.NoError(t, err)
		assert.Equal(t, 0.0, weight)
	})

	t.Run("flagging forces the sentinel rating", func(t *testing.T) {
		ok, err := qadata.FlagUser(ctx, conn, "rita")
		require.NoError(t, err)
		assert.True(t, ok)

		user, err := qadata.FetchUser(ctx, conn, "rita")
		require.NoError(t, err)
		assert.True(t, user.IsFlagged())

		// Personal trust weights survive a flag.
		weight, err := qadata.GetWeight(ctx, conn, "alice", "rita")
		require.NoError(t, err)
		assert.Equal(t, 4.5, weight)
	})
}

func TestUsersAndMessages(t *testing.T) {
	conn := getTestConn(t)
	ctx := context.Background()
	defer conn.Close(ctx)

	registerTestUsers(t, ctx, conn)

	t.Run("duplicate usernames are rejected", func(t *testing.T) {
		_, result, err := qadata.RegisterUser(ctx, conn, "alice", "hunter2", models.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, qadata.CreateDuplicate, result)
	})

	t.Run("authentication", func(t *testing.T) {
		user, err := qadata.AuthenticateUser(ctx, conn, "alice", "password")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		_, err = qadata.AuthenticateUser(ctx, conn, "alice", "wrong")
		assert.ErrorIs(t, err, db.NotFound)

		_, err = qadata.AuthenticateUser(ctx, conn, "nobody", "password")
		assert.ErrorIs(t, err, db.NotFound)
	})

	t.Run("invitation codes are single-use", func(t *testing.T) {
		code, err := qadata.GenerateInvitationCode(ctx, conn)
		require.NoError(t, err)

		ok, err := qadata.ValidateInvitationCode(ctx, conn, code)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = qadata.ValidateInvitationCode(ctx, conn, code)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("messages are recipient-deletable only", func(t *testing.T) {
		message, result, err := qadata.SendMessage(ctx, conn, "rita", "alice", "Your question got a new review.")
		require.NoError(t, err)
		require.Equal(t, qadata.CreateOK, result)

		alice, err := qadata.FetchUser(ctx, conn, "alice")
		require.NoError(t, err)
		rita, err := qadata.FetchUser(ctx, conn, "rita")
		require.NoError(t, err)

		messages, err := qadata.FetchMessagesForUser(ctx, conn, alice.ID)
		require.NoError(t, err)
		require.Len(t, messages, 1)

		ok, err := qadata.DeleteMessage(ctx, conn, message.ID, rita.ID)
		require.NoError(t, err)
		assert.False(t, ok, "senders must not delete delivered messages")

		ok, err = qadata.DeleteMessage(ctx, conn, message.ID, alice.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown recipients are invalid", func(t *testing.T) {
		_, result, err := qadata.SendMessage(ctx, conn, "rita", "nobody", "hello?")
		require.NoError(t, err)
		assert.Equal(t, qadata.CreateInvalid, result)
	})
}

func TestSearch(t *testing.T) {
	conn := getTestConn(t)
	ctx := context.Background()
	defer conn.Close(ctx)

	registerTestUsers(t, ctx, conn)

	q1, _, err := qadata.CreateQuestion(ctx, conn, "How do Goroutines get scheduled?", "alice")
	require.NoError(t, err)
	_, _, err = qadata.CreateQuestion(ctx, conn, "What does the garbage collector do?", "bob")
	require.NoError(t, err)
	_, _, err = qadata.CreateAnswer(ctx, conn, q1.ID, "The runtime multiplexes goroutines onto OS threads.", "rita")
	require.NoError(t, err)

	questions, err := qadata.SearchQuestions(ctx, conn, "goroutine")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, q1.ID, questions[0].ID)

	answers, err := qadata.SearchAnswers(ctx, conn, "GOROUTINES")
	require.NoError(t, err)
	assert.Len(t, answers, 1)

	questions, err = qadata.SearchQuestions(ctx, conn, "100%")
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func registerTestUsers(t *testing.T, ctx context.Context, conn db.ConnOrTx) {
	t.Helper()
	for _, u := range []struct {
		username string
		role     models.Role
	}{
		{"admin", models.RoleAdmin},
		{"alice", models.RoleUser},
		{"bob", models.RoleUser},
		{"charlie", models.RoleUser},
		{"rita", models.RoleReviewer},
	} {
		_, result, err := qadata.RegisterUser(ctx, conn, u.username, "password", u.role)
		require.NoError(t, err)
		require.Equal(t, qadata.CreateOK, result)
	}
}
