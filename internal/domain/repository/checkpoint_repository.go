package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"race_timing/internal/common"
	"race_timing/internal/domain/model"
)

type CheckpointRepository interface {
	Create(ctx context.Context, checkpoint *model.Checkpoint) error
	List(ctx context.Context) ([]model.Checkpoint, error)
	ListByEvent(ctx context.Context, eventID int) ([]model.Checkpoint, error)
	ListByUser(ctx context.Context, userID int) ([]model.Checkpoint, error)
	FindByID(ctx context.Context, id int) (*model.Checkpoint, error)
	Update(ctx context.Context, id int, params UpdateCheckpointParams) (*model.Checkpoint, error)
	Delete(ctx context.Context, id int) error
}

type UpdateCheckpointParams struct {
	Name       *string
	DistanceKm *float64
	EventID    *int
	RecordedBy *int
}

type pgCheckpointRepository struct {
	db *sql.DB
}

func NewPgCheckpointRepository(db *sql.DB) CheckpointRepository {
	return &pgCheckpointRepository{db: db}
}

func (r *pgCheckpointRepository) Create(ctx context.Context, cp *model.Checkpoint) error {
	query := `INSERT INTO checkpoints (name, distance_km, event_id, recorded_by)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, cp.Name, cp.DistanceKm, cp.EventID, cp.RecordedBy).
		Scan(&cp.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("referenced event or user does not exist: %w", common.ErrNotFound)
		}
		return fmt.Errorf("pgCheckpointRepository.Create: %w", err)
	}
	return nil
}

func (r *pgCheckpointRepository) List(ctx context.Context) ([]model.Checkpoint, error) {
	query := `
		SELECT cp.id, cp.name, cp.distance_km, cp.event_id, cp.recorded_by, e.name, u.name
		FROM checkpoints cp
		JOIN events e ON cp.event_id = e.id
		JOIN users u ON cp.recorded_by = u.id
		ORDER BY cp.id`
	return r.list(ctx, query, func(rows *sql.Rows, cp *model.Checkpoint) error {
		return rows.Scan(&cp.ID, &cp.Name, &cp.DistanceKm, &cp.EventID, &cp.RecordedBy, &cp.EventName, &cp.RecorderName)
	})
}

func (r *pgCheckpointRepository) ListByEvent(ctx context.Context, eventID int) ([]model.Checkpoint, error) {
	query := `
		SELECT cp.id, cp.name, cp.distance_km, cp.event_id, cp.recorded_by, e.name
		FROM checkpoints cp
		JOIN events e ON cp.event_id = e.id
		WHERE cp.event_id = $1
		ORDER BY cp.id`
	return r.list(ctx, query, func(rows *sql.Rows, cp *model.Checkpoint) error {
		return rows.Scan(&cp.ID, &cp.Name, &cp.DistanceKm, &cp.EventID, &cp.RecordedBy, &cp.EventName)
	}, eventID)
}

func (r *pgCheckpointRepository) ListByUser(ctx context.Context, userID int) ([]model.Checkpoint, error) {
	query := `
		SELECT cp.id, cp.name, cp.distance_km, cp.event_id, cp.recorded_by, u.name
		FROM checkpoints cp
		JOIN users u ON cp.recorded_by = u.id
		WHERE cp.recorded_by = $1
		ORDER BY cp.id`
	return r.list(ctx, query, func(rows *sql.Rows, cp *model.Checkpoint) error {
		return rows.Scan(&cp.ID, &cp.Name, &cp.DistanceKm, &cp.EventID, &cp.RecordedBy, &cp.RecorderName)
	}, userID)
}

func (r *pgCheckpointRepository) list(ctx context.Context, query string, scan func(*sql.Rows, *model.Checkpoint) error, args ...interface{}) ([]model.Checkpoint, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgCheckpointRepository.list query: %w", err)
	}
	defer rows.Close()

	checkpoints := []model.Checkpoint{}
	for rows.Next() {
		var cp model.Checkpoint
		if err := scan(rows, &cp); err != nil {
			return nil, fmt.Errorf("pgCheckpointRepository.list scan: %w", err)
		}
		checkpoints = append(checkpoints, cp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCheckpointRepository.list rows.Err: %w", err)
	}
	return checkpoints, nil
}

func (r *pgCheckpointRepository) FindByID(ctx context.Context, id int) (*model.Checkpoint, error) {
	query := `SELECT id, name, distance_km, event_id, recorded_by FROM checkpoints WHERE id = $1`
	cp := &model.Checkpoint{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&cp.ID, &cp.Name, &cp.DistanceKm, &cp.EventID, &cp.RecordedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgCheckpointRepository.FindByID: %w", err)
	}
	return cp, nil
}

func (r *pgCheckpointRepository) Update(ctx context.Context, id int, params UpdateCheckpointParams) (*model.Checkpoint, error) {
	query := `UPDATE checkpoints SET
	            name = COALESCE($2, name),
	            distance_km = COALESCE($3, distance_km),
	            event_id = COALESCE($4, event_id),
	            recorded_by = COALESCE($5, recorded_by)
	          WHERE id = $1
	          RETURNING id, name, distance_km, event_id, recorded_by`
	cp := &model.Checkpoint{}
	err := r.db.QueryRowContext(ctx, query, id, params.Name, params.DistanceKm, params.EventID, params.RecordedBy).
		Scan(&cp.ID, &cp.Name, &cp.DistanceKm, &cp.EventID, &cp.RecordedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("referenced event or user does not exist: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("pgCheckpointRepository.Update: %w", err)
	}
	return cp, nil
}

func (r *pgCheckpointRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM checkpoints WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("checkpoint %d is still referenced: %w", id, common.ErrConflict)
		}
		return fmt.Errorf("pgCheckpointRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgCheckpointRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
