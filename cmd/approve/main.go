package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/infra"
)

func main() {
	var (
		idFlag      string
		emailFlag   string
		approveFlag bool
		chatFlag    bool
	)

	flag.StringVar(&idFlag, "id", "", "user ID to update (UUID)")
	flag.StringVar(&emailFlag, "email", "", "user email to update")
	flag.BoolVar(&approveFlag, "approve", true, "grant (true) or revoke (false) account approval")
	flag.BoolVar(&chatFlag, "chat", false, "grant chatbot access alongside approval")
	flag.Parse()

	userID := strings.TrimSpace(idFlag)
	email := strings.TrimSpace(emailFlag)
	if userID == "" && email == "" {
		exitWithError(errors.New("either -id or -email must be provided"))
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "approve").Logger()
	profiles := repo.NewProfileRepository(infra.NewSQLRunner(pool, logger))

	lookupCtx, cancelLookup := context.WithTimeout(context.Background(), 5*time.Second)
	var profile *domain.Profile
	if userID != "" {
		profile, err = profiles.GetByID(lookupCtx, userID)
	} else {
		profile, err = profiles.GetByEmail(lookupCtx, email)
	}
	cancelLookup()
	if err != nil {
		exitWithError(fmt.Errorf("failed to load profile: %w", err))
	}

	// Revoking approval always revokes chat too.
	canChat := chatFlag && approveFlag

	updateCtx, cancelUpdate := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelUpdate()
	updated, err := profiles.SetApproval(updateCtx, profile.ID, approveFlag, canChat)
	if err != nil {
		exitWithError(fmt.Errorf("failed to update profile: %w", err))
	}

	out, err := json.MarshalIndent(updated, "", "  ")
	if err != nil {
		exitWithError(err)
	}
	fmt.Println(string(out))
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
