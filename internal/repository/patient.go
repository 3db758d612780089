package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tykimikk/ndash-extract/internal/common"
	"github.com/tykimikk/ndash-extract/internal/record"
)

// PatientRepository is the persistence collaborator for patient records. The
// pipeline treats it as opaque create/read operations; it owns no extraction
// semantics.
type PatientRepository interface {
	CreatePatient(ctx context.Context, p *record.Patient) (uuid.UUID, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, p *record.Patient) error
	GetPatientByID(ctx context.Context, id uuid.UUID) (*record.Patient, error)
}

type patientRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewPatientRepository(db *sql.DB, logger *slog.Logger) PatientRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &patientRepository{db: db, logger: logger}
}

func (r *patientRepository) CreatePatient(ctx context.Context, p *record.Patient) (uuid.UUID, error) {
	id := uuid.New()
	doc, err := json.Marshal(p)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal patient record: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO patients (id, name, gender, birth_date, record, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id.String(), p.Name, p.Gender, p.BirthDate, string(doc), now, now,
	)
	if err != nil {
		r.logger.Error("failed to create patient", "error", err)
		return uuid.Nil, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return id, nil
}

func (r *patientRepository) UpdatePatient(ctx context.Context, id uuid.UUID, p *record.Patient) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal patient record: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	res, err := r.db.ExecContext(ctx,
		`UPDATE patients SET name = $1, gender = $2, birth_date = $3, record = $4, updated_at = $5
		 WHERE id = $6`,
		p.Name, p.Gender, p.BirthDate, string(doc), now, id.String(),
	)
	if err != nil {
		r.logger.Error("failed to update patient", "patient_id", id, "error", err)
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *patientRepository) GetPatientByID(ctx context.Context, id uuid.UUID) (*record.Patient, error) {
	var doc string
	err := r.db.QueryRowContext(ctx,
		`SELECT record FROM patients WHERE id = $1`, id.String(),
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to load patient", "patient_id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrDatabase, err)
	}

	// Decode over a fresh scaffold so records written by older versions
	// still come back fully shaped.
	p := record.NewPatient()
	if err := json.Unmarshal([]byte(doc), p); err != nil {
		return nil, fmt.Errorf("unmarshal patient record: %w", err)
	}
	return p, nil
}
