// Command feedctl is a session-aware client for the Feed platform's accounts
// API. Every command reconciles persisted session state before running, the
// same way the web client does on page load.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/openfeed/feedctl/internal/bootstrap"
	apperrors "github.com/openfeed/feedctl/internal/errors"
	"github.com/openfeed/feedctl/internal/ports"
	"github.com/openfeed/feedctl/internal/service"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	App    *bootstrap.App
}

func main() {
	logger := bootstrap.InitLogger(false)

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2)
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	if cfg.IsDev {
		logger = bootstrap.InitLogger(true)
	}

	app, err := bootstrap.NewApp(cfg, logger)
	if err != nil {
		logger.Error("wire application", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Warn("close application", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmdCtx := &commandContext{Ctx: ctx, Logger: logger, App: app}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.Error("command failed", "command", cmdName, "error", runErr)
		if writeErr := writef(os.Stderr, "error: %s\n", apperrors.UserMessage(runErr)); writeErr != nil {
			logger.Error("print command failure failed", "error", writeErr)
		}
		os.Exit(1)
	}
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Authenticate with email and password",
			run:         runLogin,
		},
		"register": {
			name:        "register",
			description: "Create an account and sign in",
			run:         runRegister,
		},
		"logout": {
			name:        "logout",
			description: "Sign out and clear local session state",
			run:         runLogout,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the current profile, optionally projected with -query",
			run:         runWhoami,
		},
		"menu": {
			name:        "menu",
			description: "Show visible navigation entries for the current session",
			run:         runMenu,
		},
		"update-profile": {
			name:        "update-profile",
			description: "Update profile fields (only the flags you set are sent)",
			run:         runUpdateProfile,
		},
		"change-password": {
			name:        "change-password",
			description: "Change the account password",
			run:         runChangePassword,
		},
		"delete-account": {
			name:        "delete-account",
			description: "Delete the signed-in account",
			run:         runDeleteAccount,
		},
		"delete-user": {
			name:        "delete-user",
			description: "Delete another account by id (elevated roles only)",
			run:         runDeleteUser,
		},
		"posts": {
			name:        "posts",
			description: "List posts for a user (defaults to the signed-in user)",
			run:         runPosts,
		},
		"delete-post": {
			name:        "delete-post",
			description: "Delete a post by id",
			run:         runDeletePost,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: feedctl <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	names := make([]string, 0, len(commands()))
	for name := range commands() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := commands()[name]
		if err := writef(os.Stdout, "  %-18s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

// initializeAuth reconciles session state the way the web client does before
// rendering. A failed verification settles to anonymous; the command then
// decides whether that is fatal.
func initializeAuth(cmdCtx *commandContext) {
	if err := cmdCtx.App.Session.InitializeAuth(cmdCtx.Ctx); err != nil {
		cmdCtx.Logger.Warn("session verification failed, continuing as anonymous", "error", err)
	}
}

func requireAuth(cmdCtx *commandContext) error {
	if !cmdCtx.App.Session.Authenticated() {
		return apperrors.Authentication("not signed in; run feedctl login")
	}
	return nil
}

func runLogin(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Account password (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*email) == "" || *password == "" {
		return apperrors.Validation("-email and -password are required")
	}

	initializeAuth(cmdCtx)
	if err := cmdCtx.App.Session.Login(cmdCtx.Ctx, *email, *password); err != nil {
		return err
	}

	user := cmdCtx.App.Identity.Current()
	return writef(os.Stdout, "signed in as %s (%s)\n", user.Username, user.Role)
}

func runRegister(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	username := fs.String("username", "", "Username (required)")
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Password (required)")
	confirm := fs.String("password-confirm", "", "Password confirmation (defaults to -password)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*username) == "" || strings.TrimSpace(*email) == "" || *password == "" {
		return apperrors.Validation("-username, -email, and -password are required")
	}
	if *confirm == "" {
		*confirm = *password
	}

	initializeAuth(cmdCtx)
	if err := cmdCtx.App.Session.Register(cmdCtx.Ctx, ports.RegistrationForm{
		Username:        *username,
		Email:           *email,
		Password:        *password,
		PasswordConfirm: *confirm,
	}); err != nil {
		return err
	}

	user := cmdCtx.App.Identity.Current()
	return writef(os.Stdout, "registered and signed in as %s\n", user.Username)
}

func runLogout(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	initializeAuth(cmdCtx)
	cmdCtx.App.Session.Logout(cmdCtx.Ctx)
	return writeln(os.Stdout, "signed out")
}

func runWhoami(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	query := fs.String("query", "", "JMESPath expression to project the profile")
	verify := fs.Bool("verify", false, "Re-verify the session against the server first")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var pq service.ProfileQuery
	if err := pq.Validate(*query); err != nil {
		return err
	}

	initializeAuth(cmdCtx)
	if err := requireAuth(cmdCtx); err != nil {
		return err
	}
	if *verify {
		if err := cmdCtx.App.Session.FetchProfile(cmdCtx.Ctx); err != nil {
			return err
		}
	}

	result, err := pq.Select(cmdCtx.App.Identity.Current(), *query)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func runMenu(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("menu", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	route := fs.String("route", "/feed", "Active route for the sign-in warning check")
	if err := fs.Parse(args); err != nil {
		return err
	}

	initializeAuth(cmdCtx)
	nav := cmdCtx.App.NavStore(*route)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writeln(w, "Key\tLabel\tRoute"); err != nil {
		return err
	}
	for _, e := range nav.VisibleEntries() {
		if err := writef(w, "%s\t%s\t%s\n", e.Key, e.Label, e.Route); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush menu table: %w", err)
	}

	if nav.NeedsAuthWarning() {
		return writef(os.Stdout, "\nroute %s requires signing in\n", *route)
	}
	return nil
}

func runUpdateProfile(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("update-profile", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	username := fs.String("username", "", "New username")
	email := fs.String("email", "", "New email")
	firstName := fs.String("first-name", "", "New first name")
	lastName := fs.String("last-name", "", "New last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	patch := ports.ProfilePatch{}
	fields := 0
	fs.Visit(func(f *flag.Flag) {
		fields++
		switch f.Name {
		case "username":
			patch.Username = username
		case "email":
			patch.Email = email
		case "first-name":
			patch.FirstName = firstName
		case "last-name":
			patch.LastName = lastName
		}
	})
	if fields == 0 {
		return apperrors.Validation("set at least one of -username, -email, -first-name, -last-name")
	}

	initializeAuth(cmdCtx)
	if err := requireAuth(cmdCtx); err != nil {
		return err
	}

	echo, err := cmdCtx.App.Identity.UpdateProfile(cmdCtx.Ctx, patch)
	if err != nil {
		return err
	}

	// Re-seed the held user so the local view matches the server.
	if err := cmdCtx.App.Session.FetchProfile(cmdCtx.Ctx); err != nil {
		return err
	}
	return printRaw(echo)
}

func runChangePassword(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("change-password", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	oldPassword := fs.String("old", "", "Current password (required)")
	newPassword := fs.String("new", "", "New password (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *oldPassword == "" || *newPassword == "" {
		return apperrors.Validation("-old and -new are required")
	}

	initializeAuth(cmdCtx)
	if err := requireAuth(cmdCtx); err != nil {
		return err
	}

	confirmation, err := cmdCtx.App.Identity.ChangePassword(cmdCtx.Ctx, ports.PasswordChange{
		OldPassword: *oldPassword,
		NewPassword: *newPassword,
	})
	if err != nil {
		return err
	}
	return printRaw(confirmation)
}

func runDeleteAccount(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("delete-account", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	yes := fs.Bool("yes", false, "Skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*yes {
		return apperrors.Validation("deleting your account is permanent; re-run with -yes to confirm")
	}

	initializeAuth(cmdCtx)
	if err := requireAuth(cmdCtx); err != nil {
		return err
	}

	if _, err := cmdCtx.App.Identity.DeleteOwnAccount(cmdCtx.Ctx); err != nil {
		return err
	}

	// The account is gone; drop local state too.
	cmdCtx.App.Session.Logout(cmdCtx.Ctx)
	return writeln(os.Stdout, "account deleted")
}

func runDeleteUser(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("delete-user", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	id := fs.Int64("id", 0, "Account id to delete (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return apperrors.Validation("-id is required")
	}

	initializeAuth(cmdCtx)
	if err := requireAuth(cmdCtx); err != nil {
		return err
	}
	if !cmdCtx.App.Session.CanDeleteAccounts() {
		return apperrors.Authorization("your role may not delete other accounts")
	}

	if _, err := cmdCtx.App.Identity.DeleteAccountByID(cmdCtx.Ctx, *id); err != nil {
		return err
	}
	return writef(os.Stdout, "account %d deleted\n", *id)
}

func runPosts(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("posts", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	userID := fs.Int64("user", 0, "User id to list posts for (defaults to the signed-in user)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	initializeAuth(cmdCtx)
	if *userID <= 0 {
		if err := requireAuth(cmdCtx); err != nil {
			return err
		}
		*userID = cmdCtx.App.Identity.Current().ID
	}

	posts, err := cmdCtx.App.Identity.ListPostsForUser(cmdCtx.Ctx, *userID)
	if err != nil {
		return err
	}
	return printJSON(posts)
}

func runDeletePost(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("delete-post", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	id := fs.Int64("id", 0, "Post id to delete (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return apperrors.Validation("-id is required")
	}

	initializeAuth(cmdCtx)
	if err := requireAuth(cmdCtx); err != nil {
		return err
	}

	if err := cmdCtx.App.Identity.DeletePost(cmdCtx.Ctx, *id); err != nil {
		return err
	}
	return writef(os.Stdout, "post %d deleted\n", *id)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return writef(os.Stdout, "%s\n", data)
}

func printRaw(raw json.RawMessage) error {
	if len(raw) == 0 {
		return writeln(os.Stdout, "ok")
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return writef(os.Stdout, "%s\n", raw)
	}
	return printJSON(v)
}

func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func writeln(w io.Writer, args ...any) error {
	if _, err := fmt.Fprintln(w, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
