package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"race_timing/internal/common"
	"race_timing/internal/domain/model"
)

type TimeRepository interface {
	Create(ctx context.Context, record *model.TimeRecord) error
	List(ctx context.Context) ([]model.TimeRecord, error)
	ListByCompetitor(ctx context.Context, competitorID int) ([]model.TimeRecord, error)
	ListByCheckpoint(ctx context.Context, checkpointID int) ([]model.TimeRecord, error)
	FindByID(ctx context.Context, id int) (*model.TimeRecord, error)
	Update(ctx context.Context, id int, params UpdateTimeParams) (*model.TimeRecord, error)
	Delete(ctx context.Context, id int) error
}

// UpdateTimeParams carries a partial update; nil fields are left untouched.
type UpdateTimeParams struct {
	ClockTime    *string
	RecordType   *int
	CompetitorID *int
	RecordedBy   *int
	CheckpointID *int
}

type pgTimeRepository struct {
	db *sql.DB
}

func NewPgTimeRepository(db *sql.DB) TimeRepository {
	return &pgTimeRepository{db: db}
}

func (r *pgTimeRepository) Create(ctx context.Context, t *model.TimeRecord) error {
	// The cast back to text guarantees the stored value round-trips as the
	// HH:MM:SS string the caller sent.
	query := `INSERT INTO times (clock_time, record_type, competitor_id, recorded_by, checkpoint_id)
	          VALUES ($1::time, $2, $3, $4, $5)
	          RETURNING id, to_char(clock_time, 'HH24:MI:SS')`
	err := r.db.QueryRowContext(ctx, query, t.ClockTime, t.RecordType, t.CompetitorID, t.RecordedBy, t.CheckpointID).
		Scan(&t.ID, &t.ClockTime)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("referenced competitor, user or checkpoint does not exist: %w", common.ErrNotFound)
		}
		return fmt.Errorf("pgTimeRepository.Create: %w", err)
	}
	return nil
}

// List returns every record annotated with recorder, competitor and
// checkpoint display fields.
func (r *pgTimeRepository) List(ctx context.Context) ([]model.TimeRecord, error) {
	query := `
		SELECT t.id, to_char(t.clock_time, 'HH24:MI:SS'), t.record_type,
		       t.competitor_id, t.recorded_by, t.checkpoint_id,
		       c.name, c.bib_number, cp.name, cp.distance_km, u.name
		FROM times t
		JOIN competitors c ON t.competitor_id = c.id
		JOIN checkpoints cp ON t.checkpoint_id = cp.id
		JOIN users u ON t.recorded_by = u.id
		ORDER BY t.id`
	return r.list(ctx, query, true)
}

func (r *pgTimeRepository) ListByCompetitor(ctx context.Context, competitorID int) ([]model.TimeRecord, error) {
	query := `
		SELECT t.id, to_char(t.clock_time, 'HH24:MI:SS'), t.record_type,
		       t.competitor_id, t.recorded_by, t.checkpoint_id,
		       c.name, c.bib_number, cp.name, cp.distance_km
		FROM times t
		JOIN competitors c ON t.competitor_id = c.id
		JOIN checkpoints cp ON t.checkpoint_id = cp.id
		WHERE t.competitor_id = $1
		ORDER BY t.id`
	return r.list(ctx, query, false, competitorID)
}

func (r *pgTimeRepository) ListByCheckpoint(ctx context.Context, checkpointID int) ([]model.TimeRecord, error) {
	query := `
		SELECT t.id, to_char(t.clock_time, 'HH24:MI:SS'), t.record_type,
		       t.competitor_id, t.recorded_by, t.checkpoint_id,
		       c.name, c.bib_number, cp.name, cp.distance_km
		FROM times t
		JOIN competitors c ON t.competitor_id = c.id
		JOIN checkpoints cp ON t.checkpoint_id = cp.id
		WHERE t.checkpoint_id = $1
		ORDER BY t.id`
	return r.list(ctx, query, false, checkpointID)
}

func (r *pgTimeRepository) list(ctx context.Context, query string, withRecorder bool, args ...interface{}) ([]model.TimeRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgTimeRepository.list query: %w", err)
	}
	defer rows.Close()

	records := []model.TimeRecord{}
	for rows.Next() {
		var t model.TimeRecord
		dest := []interface{}{
			&t.ID, &t.ClockTime, &t.RecordType,
			&t.CompetitorID, &t.RecordedBy, &t.CheckpointID,
			&t.CompetitorName, &t.CompetitorBib, &t.CheckpointName, &t.CheckpointDistanceKm,
		}
		if withRecorder {
			dest = append(dest, &t.RecorderName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("pgTimeRepository.list scan: %w", err)
		}
		records = append(records, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgTimeRepository.list rows.Err: %w", err)
	}
	return records, nil
}

func (r *pgTimeRepository) FindByID(ctx context.Context, id int) (*model.TimeRecord, error) {
	query := `SELECT id, to_char(clock_time, 'HH24:MI:SS'), record_type, competitor_id, recorded_by, checkpoint_id
	          FROM times WHERE id = $1`
	t := &model.TimeRecord{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.ClockTime, &t.RecordType, &t.CompetitorID, &t.RecordedBy, &t.CheckpointID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgTimeRepository.FindByID: %w", err)
	}
	return t, nil
}

func (r *pgTimeRepository) Update(ctx context.Context, id int, params UpdateTimeParams) (*model.TimeRecord, error) {
	query := `UPDATE times
	          SET clock_time = COALESCE($2::time, clock_time),
	              record_type = COALESCE($3, record_type),
	              competitor_id = COALESCE($4, competitor_id),
	              recorded_by = COALESCE($5, recorded_by),
	              checkpoint_id = COALESCE($6, checkpoint_id)
	          WHERE id = $1
	          RETURNING id, to_char(clock_time, 'HH24:MI:SS'), record_type, competitor_id, recorded_by, checkpoint_id`
	t := &model.TimeRecord{}
	err := r.db.QueryRowContext(ctx, query, id, params.ClockTime, params.RecordType, params.CompetitorID, params.RecordedBy, params.CheckpointID).
		Scan(&t.ID, &t.ClockTime, &t.RecordType, &t.CompetitorID, &t.RecordedBy, &t.CheckpointID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("referenced competitor, user or checkpoint does not exist: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("pgTimeRepository.Update: %w", err)
	}
	return t, nil
}

func (r *pgTimeRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM times WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgTimeRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgTimeRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
