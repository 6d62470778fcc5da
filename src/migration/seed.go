package migration

import (
	"context"
	"fmt"

	"github.com/campusqa/campusqa/src/config"
	"github.com/campusqa/campusqa/src/db"
	"github.com/campusqa/campusqa/src/models"
	"github.com/campusqa/campusqa/src/qadata"
	lorem "github.com/HandmadeNetwork/golorem"
	"github.com/jackc/pgx/v5/tracelog"
)

// Creates only what's necessary to get the system running: a clean schema
// and an admin account. Sample data makes local dev a lot better.
func BareMinimumSeed() {
	ResetDB()
	Migrate(LatestVersion())

	ctx := context.Background()
	conn := db.NewConnWithConfig(config.PostgresConfig{
		LogLevel: tracelog.LogLevelWarn,
	})
	defer conn.Close(ctx)

	fmt.Println("Creating admin user (\"admin\"/\"password\")...")
	seedUser(ctx, conn, "admin", models.RoleAdmin)
}

// Seeds the database with sample data for local dev.
func SampleSeed() {
	BareMinimumSeed()

	ctx := context.Background()
	conn := db.NewConnWithConfig(config.PostgresConfig{
		LogLevel: tracelog.LogLevelWarn,
	})
	defer conn.Close(ctx)

	fmt.Println("Creating users (all with password \"password\")...")
	seedUser(ctx, conn, "staff", models.RoleStaff)
	alice := seedUser(ctx, conn, "alice", models.RoleUser)
	bob := seedUser(ctx, conn, "bob", models.RoleUser)
	charlie := seedUser(ctx, conn, "charlie", models.RoleUser)
	rita := seedUser(ctx, conn, "rita", models.RoleReviewer)

	fmt.Println("Creating questions and answers...")
	for i := 0; i < 5; i++ {
		question, result, err := qadata.CreateQuestion(ctx, conn, lorem.Sentence(4, 14)+"?", alice.Username)
		if err != nil || result != qadata.CreateOK {
			panic(fmt.Errorf("failed to seed question (%v): %w", result, err))
		}

		answer, result, err := qadata.CreateAnswer(ctx, conn, question.ID, lorem.Paragraph(1, 2), bob.Username)
		if err != nil || result != qadata.CreateOK {
			panic(fmt.Errorf("failed to seed answer (%v): %w", result, err))
		}

		cq, result, err := qadata.CreateClarificationQuestion(ctx, conn, question.ID, lorem.Sentence(3, 10)+"?", charlie.Username)
		if err != nil || result != qadata.CreateOK {
			panic(fmt.Errorf("failed to seed clarification question (%v): %w", result, err))
		}
		_, result, err = qadata.CreateClarificationAnswer(ctx, conn, cq.ID, lorem.Sentence(4, 12), alice.Username)
		if err != nil || result != qadata.CreateOK {
			panic(fmt.Errorf("failed to seed clarification answer (%v): %w", result, err))
		}

		_, result, err = qadata.CreateReview(ctx, conn, answer.ID, lorem.Sentence(4, 12), rita.Username)
		if err != nil || result != qadata.CreateOK {
			panic(fmt.Errorf("failed to seed review (%v): %w", result, err))
		}
	}

	fmt.Println("Creating reviewer requests and trust weights...")
	if _, err := qadata.SubmitRequest(ctx, conn, bob.Username); err != nil {
		panic(err)
	}
	if _, err := qadata.SetWeight(ctx, conn, alice.Username, rita.Username, 4.5); err != nil {
		panic(err)
	}
	if _, err := qadata.SetWeight(ctx, conn, charlie.Username, rita.Username, 2.0); err != nil {
		panic(err)
	}

	fmt.Println("Creating messages...")
	if _, result, err := qadata.SendMessage(ctx, conn, rita.Username, alice.Username, lorem.Sentence(3, 10)); err != nil || result != qadata.CreateOK {
		panic(fmt.Errorf("failed to seed message (%v): %w", result, err))
	}

	fmt.Println("Creating invitation codes...")
	for i := 0; i < 3; i++ {
		code, err := qadata.GenerateInvitationCode(ctx, conn)
		if err != nil {
			panic(err)
		}
		fmt.Printf("  %s\n", code)
	}
}

func seedUser(ctx context.Context, conn db.ConnOrTx, username string, role models.Role) *models.User {
	user, result, err := qadata.RegisterUser(ctx, conn, username, "password", role)
	if err != nil || result != qadata.CreateOK {
		panic(fmt.Errorf("failed to seed user %s (%v): %w", username, result, err))
	}
	return user
}
