package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tykimikk/ndash-extract/constants"
	"github.com/tykimikk/ndash-extract/internal/common"
	"github.com/tykimikk/ndash-extract/internal/record"
)

const dateLayout = "2006-01-02"

// LabResultRepository persists individual lab results. Each create is
// independent; the batch importer relies on that for partial success.
type LabResultRepository interface {
	CreateLabResult(ctx context.Context, lr *record.LabResult) error
	UpdateLabResult(ctx context.Context, lr *record.LabResult) error
	DeleteLabResult(ctx context.Context, id uuid.UUID) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*record.LabResult, error)
}

type labResultRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewLabResultRepository(db *sql.DB, logger *slog.Logger) LabResultRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &labResultRepository{db: db, logger: logger}
}

func (r *labResultRepository) CreateLabResult(ctx context.Context, lr *record.LabResult) error {
	if lr.ID == uuid.Nil {
		lr.ID = uuid.New()
	}
	now := time.Now().UTC()
	lr.CreatedAt = now
	lr.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO lab_results
		 (id, patient_id, test_name, category, result, unit, reference_range, status, severity, test_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		lr.ID.String(), lr.PatientID.String(), lr.TestName, string(lr.Category),
		lr.Result, lr.Unit, lr.ReferenceRange, string(lr.Status), string(lr.Severity),
		lr.TestDate.Format(dateLayout), now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		r.logger.Error("failed to create lab result", "patient_id", lr.PatientID, "test", lr.TestName, "error", err)
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}

func (r *labResultRepository) UpdateLabResult(ctx context.Context, lr *record.LabResult) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE lab_results SET test_name = $1, category = $2, result = $3, unit = $4,
		 reference_range = $5, status = $6, severity = $7, test_date = $8, updated_at = $9
		 WHERE id = $10`,
		lr.TestName, string(lr.Category), lr.Result, lr.Unit,
		lr.ReferenceRange, string(lr.Status), string(lr.Severity),
		lr.TestDate.Format(dateLayout), now.Format(time.RFC3339), lr.ID.String(),
	)
	if err != nil {
		r.logger.Error("failed to update lab result", "id", lr.ID, "error", err)
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	lr.UpdatedAt = now
	return nil
}

func (r *labResultRepository) DeleteLabResult(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lab_results WHERE id = $1`, id.String())
	if err != nil {
		r.logger.Error("failed to delete lab result", "id", id, "error", err)
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *labResultRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*record.LabResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, patient_id, test_name, category, result, unit, reference_range,
		        status, severity, test_date, created_at, updated_at
		 FROM lab_results WHERE patient_id = $1 ORDER BY test_date, test_name`,
		patientID.String(),
	)
	if err != nil {
		r.logger.Error("failed to list lab results", "patient_id", patientID, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrDatabase, err)
	}
	defer rows.Close()

	var out []*record.LabResult
	for rows.Next() {
		var (
			lr                       record.LabResult
			id, pid                  string
			category, status, sev    string
			testDate, created, updat string
		)
		if err := rows.Scan(&id, &pid, &lr.TestName, &category, &lr.Result, &lr.Unit,
			&lr.ReferenceRange, &status, &sev, &testDate, &created, &updat); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrDatabase, err)
		}
		if lr.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse lab result id: %w", err)
		}
		if lr.PatientID, err = uuid.Parse(pid); err != nil {
			return nil, fmt.Errorf("parse patient id: %w", err)
		}
		lr.Category = constants.LabCategory(category)
		lr.Status = constants.ResultStatus(status)
		lr.Severity = constants.ResultSeverity(sev)
		lr.TestDate, _ = time.Parse(dateLayout, testDate)
		lr.CreatedAt, _ = time.Parse(time.RFC3339, created)
		lr.UpdatedAt, _ = time.Parse(time.RFC3339, updat)
		out = append(out, &lr)
	}
	return out, rows.Err()
}
