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

	"github.com/tykimikk/ndash-extract/internal/common"
	"github.com/tykimikk/ndash-extract/internal/document"
	"github.com/tykimikk/ndash-extract/internal/export"
	"github.com/tykimikk/ndash-extract/internal/extract"
	"github.com/tykimikk/ndash-extract/internal/llm/openai"
	"github.com/tykimikk/ndash-extract/internal/pipeline"
	repo "github.com/tykimikk/ndash-extract/internal/repository"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		file    = flag.String("file", "", "lab report document to import (required)")
		patient = flag.String("patient", "", "patient UUID to attach results to (required unless --inmem)")
		out     = flag.String("out", "", "optional XLSX export path for the patient's lab history")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	patientID := uuid.Nil
	if *patient != "" {
		parsed, err := uuid.Parse(*patient)
		if err != nil {
			printError("Error: invalid --patient UUID: %v\n", err)
			os.Exit(1)
		}
		patientID = parsed
	} else if !*inmem {
		printError("Error: --patient is required\n")
		os.Exit(1)
	} else {
		// Throwaway database, mint a patient ID for the run.
		patientID = uuid.New()
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if !*inmem && cfg.Database.DSN == "" {
		logger.Error("DB_URL is required without --inmem")
		os.Exit(1)
	}
	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY is required for lab imports")
		os.Exit(1)
	}

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

	labsRepo := repo.NewLabResultRepository(db, logger)

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}, logger)
	engine := extract.NewEngine(client, extract.Config{
		Attempts:       cfg.Extract.Attempts,
		AttemptTimeout: cfg.Extract.AttemptTimeout,
		TimeoutStep:    cfg.Extract.TimeoutStep,
		CharBudget:     cfg.Extract.CharBudget,
		MaxTokens:      cfg.LLM.MaxTokens,
	}, logger)

	docs := document.NewExtractor(logger)
	importer := pipeline.NewLabImporter(docs, engine, labsRepo, cfg.Extract.ChunkBudget, logger)

	ctx = common.WithPatientID(ctx, patientID.String())
	imported, sum, err := importer.ImportLabReport(ctx, *file, patientID)
	if err != nil {
		logger.Error("lab import failed", "file", *file, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Lab import complete!\n")
	fmt.Printf("- Chunks: %d (failed: %d)\n", sum.Chunks, sum.FailedChunks)
	fmt.Printf("- Candidates: %d\n", sum.Candidates)
	fmt.Printf("- Imported: %d, skipped: %d, failed: %d\n", sum.Imported, sum.Skipped, sum.Failed)
	for _, lr := range imported {
		fmt.Printf("  %s  %-30s %s %s [%s/%s]\n",
			lr.TestDate.Format("2006-01-02"), lr.TestName, lr.Result, lr.Unit, lr.Status, lr.Severity)
	}

	if *out != "" {
		exporter := export.NewService(labsRepo, logger)
		xlsxBytes, err := exporter.ExportLabResultsXLSX(ctx, patientID)
		if err != nil {
			logger.Error("failed to export lab history", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
		fmt.Printf("- Exported lab history: %s\n", filepath.Clean(*out))
	}
}

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
