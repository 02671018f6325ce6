package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"race_timing/internal/common"
	"race_timing/internal/domain/model"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	List(ctx context.Context) ([]model.Event, error)
	ListByCategory(ctx context.Context, categoryID int) ([]model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	Update(ctx context.Context, id int, params UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id int) error
}

type UpdateEventParams struct {
	Name       *string
	Date       *time.Time
	Location   *string
	CategoryID *int
}

type pgEventRepository struct {
	db *sql.DB
}

func NewPgEventRepository(db *sql.DB) EventRepository {
	return &pgEventRepository{db: db}
}

func (r *pgEventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `INSERT INTO events (name, event_date, location, category_id)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, event.Name, event.Date, event.Location, event.CategoryID).
		Scan(&event.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("category %d does not exist: %w", event.CategoryID, common.ErrNotFound)
		}
		return fmt.Errorf("pgEventRepository.Create: %w", err)
	}
	return nil
}

const eventListQuery = `
	SELECT e.id, e.name, e.event_date, e.location, e.category_id, c.name
	FROM events e
	JOIN categories c ON e.category_id = c.id`

func (r *pgEventRepository) List(ctx context.Context) ([]model.Event, error) {
	return r.list(ctx, eventListQuery+` ORDER BY e.id`)
}

func (r *pgEventRepository) ListByCategory(ctx context.Context, categoryID int) ([]model.Event, error) {
	return r.list(ctx, eventListQuery+` WHERE e.category_id = $1 ORDER BY e.id`, categoryID)
}

func (r *pgEventRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgEventRepository.list query: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Location, &e.CategoryID, &e.CategoryName); err != nil {
			return nil, fmt.Errorf("pgEventRepository.list scan: %w", err)
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgEventRepository.list rows.Err: %w", err)
	}
	return events, nil
}

func (r *pgEventRepository) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := `SELECT id, name, event_date, location, category_id FROM events WHERE id = $1`
	event := &model.Event{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&event.ID, &event.Name, &event.Date, &event.Location, &event.CategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgEventRepository.FindByID: %w", err)
	}
	return event, nil
}

func (r *pgEventRepository) Update(ctx context.Context, id int, params UpdateEventParams) (*model.Event, error) {
	query := `UPDATE events SET
	            name = COALESCE($2, name),
	            event_date = COALESCE($3, event_date),
	            location = COALESCE($4, location),
	            category_id = COALESCE($5, category_id)
	          WHERE id = $1
	          RETURNING id, name, event_date, location, category_id`
	event := &model.Event{}
	err := r.db.QueryRowContext(ctx, query, id, params.Name, params.Date, params.Location, params.CategoryID).
		Scan(&event.ID, &event.Name, &event.Date, &event.Location, &event.CategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("referenced category does not exist: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("pgEventRepository.Update: %w", err)
	}
	return event, nil
}

func (r *pgEventRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("event %d is still referenced: %w", id, common.ErrConflict)
		}
		return fmt.Errorf("pgEventRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgEventRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
