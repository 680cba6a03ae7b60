package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/Guffawaffle/majel/internal/cli"
	"github.com/Guffawaffle/majel/internal/db"
	"github.com/Guffawaffle/majel/internal/llm"
	"github.com/Guffawaffle/majel/internal/repository"
	"github.com/Guffawaffle/majel/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.majel/majel.db
	dbPath := os.Getenv("MAJEL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".majel", "majel.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	uow := db.NewSQLiteUnitOfWork(database)
	officerRepo := repository.NewSQLiteOfficerRepo(database)
	ruleRepo := repository.NewSQLiteRuleRepo(database)
	receiptRepo := repository.NewSQLiteReceiptRepo(database)
	transcriptRepo := repository.NewSQLiteTranscriptRepo(database)

	// Wire the model client
	llmCfg := llm.LoadConfig()
	var llmObserver llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewGeminiClient(llmCfg, llmObserver)
	if !llmCfg.Enabled {
		client = llm.NewDisabledClient()
	}

	// Wire services
	var observer service.UseCaseObserver
	if os.Getenv("MAJEL_LOG_USE_CASES") == "true" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	receiptLogger := service.NewSlogReceiptLogger(os.Stderr)

	app := &cli.App{
		Assistant:   service.NewAssistantService(officerRepo, ruleRepo, receiptRepo, transcriptRepo, client, receiptLogger, observer),
		Roster:      service.NewRosterService(officerRepo, uow, observer),
		Rules:       service.NewRuleService(ruleRepo),
		Receipts:    service.NewReceiptService(receiptRepo),
		Transcripts: service.NewTranscriptService(transcriptRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
