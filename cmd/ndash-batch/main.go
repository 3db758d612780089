package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tykimikk/ndash-extract/constants"
	"github.com/tykimikk/ndash-extract/internal/common"
	"github.com/tykimikk/ndash-extract/internal/document"
	"github.com/tykimikk/ndash-extract/internal/extract"
	"github.com/tykimikk/ndash-extract/internal/llm/openai"
	"github.com/tykimikk/ndash-extract/internal/pipeline"
	repo "github.com/tykimikk/ndash-extract/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem  = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir    = flag.String("dir", "", "directory of admission documents to process (required)")
		update = flag.String("update", "", "existing patient UUID to re-extract into (requires exactly one document in --dir)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	updateID := uuid.Nil
	if *update != "" {
		parsed, err := uuid.Parse(*update)
		if err != nil {
			printError("Error: invalid --update UUID: %v\n", err)
			os.Exit(1)
		}
		updateID = parsed
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// The completion client is optional here, so only the store is checked.
	cfg := common.LoadConfig()
	if !*inmem && cfg.Database.DSN == "" {
		logger.Error("DB_URL is required without --inmem")
		os.Exit(1)
	}

	// Open database
	db, pool, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(db, pool, logger)

	if err := repo.Migrate(ctx, db); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	patientsRepo := repo.NewPatientRepository(db, logger)

	// Setup completion client (graceful if missing)
	var engine *extract.Engine
	engineCfg := extract.Config{
		Attempts:       cfg.Extract.Attempts,
		AttemptTimeout: cfg.Extract.AttemptTimeout,
		TimeoutStep:    cfg.Extract.TimeoutStep,
		CharBudget:     cfg.Extract.CharBudget,
		MaxTokens:      cfg.LLM.MaxTokens,
	}
	if cfg.LLM.APIKey != "" {
		client := openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		}, logger)
		engine = extract.NewEngine(client, engineCfg, logger)
		logger.Info("completion client initialized", "model", cfg.LLM.Model)
	} else {
		engine = extract.NewEngine(nil, engineCfg, logger)
		logger.Warn("OPENAI_API_KEY not configured, using pattern extraction only")
	}

	docs := document.NewExtractor(logger)
	processor := pipeline.NewProcessor(docs, engine, logger)

	// Collect candidate documents
	var paths []string
	err = filepath.WalkDir(*dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("scan complete", "dir", *dir, "documents", len(paths))

	// Re-extraction mode: one document overwrites one existing record.
	if updateID != uuid.Nil {
		if len(paths) != 1 {
			logger.Error("--update requires exactly one document", "documents", len(paths))
			os.Exit(1)
		}
		ctx = common.WithPatientID(ctx, updateID.String())
		patient, err := processor.ProcessDocument(ctx, paths[0])
		if err != nil {
			logger.Error("failed to process document", "path", paths[0], "error", err)
			os.Exit(1)
		}
		if err := patientsRepo.UpdatePatient(ctx, updateID, patient); err != nil {
			logger.Error("failed to update patient", "patient_id", updateID, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Patient %s updated from %s\n", updateID, paths[0])
		return
	}

	processed := 0
	failures := 0
	for _, path := range paths {
		patient, err := processor.ProcessDocument(ctx, path)
		if err != nil {
			logger.Error("failed to process document", "path", path, "error", err)
			failures++
			continue
		}
		id, err := patientsRepo.CreatePatient(ctx, patient)
		if err != nil {
			logger.Error("failed to persist patient", "path", path, "error", err)
			failures++
			continue
		}
		logger.Info("patient created", "path", path, "patient_id", id, "name", patient.Name)
		processed++
	}

	logger.Info("batch processing complete",
		"documents", len(paths),
		"processed", processed,
		"failures", failures)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents found: %d\n", len(paths))
	fmt.Printf("- Patients created: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
}

// openDatabase picks in-memory SQLite or the configured Postgres pool. The
// pool is nil in the SQLite case.
func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*sql.DB, *pgxpool.Pool, error) {
	if inmem {
		db, err := repo.OpenSQLite("file:ndash?mode=memory&cache=shared", logger)
		return db, nil, err
	}
	return repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
}
