package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/worklog/internal/cli"
	"github.com/alexanderramin/worklog/internal/config"
	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/repository"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	breakRepo := repository.NewSQLiteBreakRepo(database)
	actionRepo := repository.NewSQLiteActionLogRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional transitions
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	var opts []service.Option
	if cfg.LogUseCases {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}
	if cfg.NormOverridden {
		opts = append(opts, service.WithNormOverride(cfg.WorkNormSeconds))
	}

	app := &cli.App{
		Worklog:  service.NewWorklogService(sessionRepo, breakRepo, uow, opts...),
		Revoke:   service.NewRevokeService(actionRepo, uow, opts...),
		Reports:  service.NewReportService(sessionRepo, breakRepo),
		Settings: service.NewSettingsService(settingsRepo),
	}

	// Detect interactive terminal for confirmation prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
