package admintools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/campusqa/campusqa/src/app"
	"github.com/campusqa/campusqa/src/db"
	"github.com/campusqa/campusqa/src/models"
	"github.com/campusqa/campusqa/src/qadata"
	"github.com/spf13/cobra"
)

func init() {
	adminCommand := &cobra.Command{
		Use:   "admin",
		Short: "Miscellaneous admin commands",
	}
	app.RootCommand.AddCommand(adminCommand)

	createUserCommand := &cobra.Command{
		Use:   "createuser [username] [password] [role]",
		Short: "Create a user account",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 {
				fmt.Printf("You must provide a username and a password.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			username := args[0]
			password := args[1]
			role := models.RoleUser
			if len(args) > 2 {
				role = models.Role(args[2])
			}

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			user, result, err := qadata.RegisterUser(ctx, conn, username, password, role)
			if err != nil {
				panic(err)
			}
			if result != qadata.CreateOK {
				fmt.Printf("Could not create user '%s': %v\n", username, result)
				os.Exit(1)
			}

			fmt.Printf("Successfully created user '%s' with role '%s'\n", user.Username, user.Role)
		},
	}
	adminCommand.AddCommand(createUserCommand)

	setPasswordCommand := &cobra.Command{
		Use:   "setpassword [username] [new password]",
		Short: "Replace a user's password",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 {
				fmt.Printf("You must provide a username and a password.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			username := args[0]
			password := args[1]

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			ok, err := qadata.UpdatePassword(ctx, conn, username, password)
			if err != nil {
				panic(err)
			}
			if !ok {
				fmt.Printf("User '%s' not found\n", username)
				os.Exit(1)
			}

			fmt.Printf("Successfully updated password for '%s'\n", username)
		},
	}
	adminCommand.AddCommand(setPasswordCommand)

	setRoleCommand := &cobra.Command{
		Use:   "setrole [username] [role]",
		Short: "Set a user's role directly, bypassing the promotion workflow",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 2 {
				fmt.Printf("You must provide a username and a role.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			username := args[0]
			role := models.Role(args[1])

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			ok, err := qadata.SetUserRole(ctx, conn, username, role)
			if err != nil {
				panic(err)
			}
			if !ok {
				fmt.Printf("Could not set role; check that user '%s' exists and '%s' is a valid role\n", username, role)
				os.Exit(1)
			}

			fmt.Printf("Successfully set role of '%s' to '%s'\n", username, role)
		},
	}
	adminCommand.AddCommand(setRoleCommand)

	flagUserCommand := &cobra.Command{
		Use:   "flaguser [username]",
		Short: "Flag a user for moderator attention",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				fmt.Printf("You must provide a username.\n\n")
				cmd.Usage()
				os.Exit(1)
			}

			username := args[0]

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			ok, err := qadata.FlagUser(ctx, conn, username)
			if err != nil {
				panic(err)
			}
			if !ok {
				fmt.Printf("User '%s' not found\n", username)
				os.Exit(1)
			}

			fmt.Printf("Successfully flagged '%s'\n", username)
		},
	}
	adminCommand.AddCommand(flagUserCommand)

	inviteCommand := &cobra.Command{
		Use:   "invite [count]",
		Short: "Generate one-time invitation codes",
		Run: func(cmd *cobra.Command, args []string) {
			count := 1
			if len(args) > 0 {
				var err error
				count, err = strconv.Atoi(args[0])
				if err != nil || count < 1 {
					fmt.Printf("Count must be a positive number.\n\n")
					cmd.Usage()
					os.Exit(1)
				}
			}

			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			for i := 0; i < count; i++ {
				code, err := qadata.GenerateInvitationCode(ctx, conn)
				if err != nil {
					panic(err)
				}
				fmt.Println(code)
			}
		},
	}
	adminCommand.AddCommand(inviteCommand)

	promotionsCommand := &cobra.Command{
		Use:   "promotions",
		Short: "List pending reviewer promotion requests",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			conn := db.NewConn()
			defer conn.Close(ctx)

			requests, err := qadata.ListPendingRequests(ctx, conn)
			if err != nil {
				panic(err)
			}
			if len(requests) == 0 {
				fmt.Println("No pending requests.")
				return
			}
			for _, request := range requests {
				fmt.Printf("%d\t%s\n", request.ID, request.StudentUsername)
			}
		},
	}
	adminCommand.AddCommand(promotionsCommand)

	approveCommand := &cobra.Command{
		Use:   "approve [request id]",
		Short: "Approve a reviewer promotion request",
		Run: func(cmd *cobra.Command, args []string) {
			runPromotionDecision(cmd, args, qadata.ApproveRequest, "approved")
		},
	}
	adminCommand.AddCommand(approveCommand)

	denyCommand := &cobra.Command{
		Use:   "deny [request id]",
		Short: "Deny a reviewer promotion request",
		Run: func(cmd *cobra.Command, args []string) {
			runPromotionDecision(cmd, args, qadata.DenyRequest, "denied")
		},
	}
	adminCommand.AddCommand(denyCommand)
}

func runPromotionDecision(
	cmd *cobra.Command,
	args []string,
	decide func(context.Context, db.ConnOrTx, int) (bool, error),
	verb string,
) {
	if len(args) < 1 {
		fmt.Printf("You must provide a request id.\n\n")
		cmd.Usage()
		os.Exit(1)
	}

	requestID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Request id must be a number.\n\n")
		cmd.Usage()
		os.Exit(1)
	}

	ctx := context.Background()
	conn := db.NewConn()
	defer conn.Close(ctx)

	ok, err := decide(ctx, conn, requestID)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			fmt.Printf("Request %d not found\n", requestID)
			os.Exit(1)
		}
		panic(err)
	}
	if !ok {
		fmt.Printf("Request %d is not pending\n", requestID)
		os.Exit(1)
	}

	fmt.Printf("Successfully %s request %d\n", verb, requestID)
}
