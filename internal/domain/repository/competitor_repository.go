package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"race_timing/internal/common"
	"race_timing/internal/domain/model"
)

type CompetitorRepository interface {
	Create(ctx context.Context, competitor *model.Competitor) error
	List(ctx context.Context) ([]model.Competitor, error)
	ListByEvent(ctx context.Context, eventID int) ([]model.Competitor, error)
	ListByTeam(ctx context.Context, teamID int) ([]model.Competitor, error)
	ListByCategory(ctx context.Context, categoryID int) ([]model.Competitor, error)
	FindByID(ctx context.Context, id int) (*model.Competitor, error)
	Update(ctx context.Context, id int, params UpdateCompetitorParams) (*model.Competitor, error)
	Delete(ctx context.Context, id int) error
}

type UpdateCompetitorParams struct {
	Name       *string
	BibNumber  *int
	EventID    *int
	TeamID     *int
	CategoryID *int
}

type pgCompetitorRepository struct {
	db *sql.DB
}

func NewPgCompetitorRepository(db *sql.DB) CompetitorRepository {
	return &pgCompetitorRepository{db: db}
}

func (r *pgCompetitorRepository) Create(ctx context.Context, c *model.Competitor) error {
	query := `INSERT INTO competitors (name, bib_number, event_id, team_id, category_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.Name, c.BibNumber, c.EventID, c.TeamID, c.CategoryID).
		Scan(&c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("referenced event, team or category does not exist: %w", common.ErrNotFound)
		}
		return fmt.Errorf("pgCompetitorRepository.Create: %w", err)
	}
	return nil
}

// List annotates each competitor with its category name, the lookup clients
// most often need alongside the roster.
func (r *pgCompetitorRepository) List(ctx context.Context) ([]model.Competitor, error) {
	query := `
		SELECT c.id, c.name, c.bib_number, c.event_id, c.team_id, c.category_id, cat.name
		FROM competitors c
		JOIN categories cat ON c.category_id = cat.id
		ORDER BY c.id`
	return r.list(ctx, query, func(rows *sql.Rows, c *model.Competitor) error {
		return rows.Scan(&c.ID, &c.Name, &c.BibNumber, &c.EventID, &c.TeamID, &c.CategoryID, &c.CategoryName)
	})
}

func (r *pgCompetitorRepository) ListByEvent(ctx context.Context, eventID int) ([]model.Competitor, error) {
	query := `
		SELECT c.id, c.name, c.bib_number, c.event_id, c.team_id, c.category_id, e.name
		FROM competitors c
		JOIN events e ON c.event_id = e.id
		WHERE c.event_id = $1
		ORDER BY c.id`
	return r.list(ctx, query, func(rows *sql.Rows, c *model.Competitor) error {
		return rows.Scan(&c.ID, &c.Name, &c.BibNumber, &c.EventID, &c.TeamID, &c.CategoryID, &c.EventName)
	}, eventID)
}

func (r *pgCompetitorRepository) ListByTeam(ctx context.Context, teamID int) ([]model.Competitor, error) {
	query := `
		SELECT c.id, c.name, c.bib_number, c.event_id, c.team_id, c.category_id, t.name
		FROM competitors c
		JOIN teams t ON c.team_id = t.id
		WHERE c.team_id = $1
		ORDER BY c.id`
	return r.list(ctx, query, func(rows *sql.Rows, c *model.Competitor) error {
		return rows.Scan(&c.ID, &c.Name, &c.BibNumber, &c.EventID, &c.TeamID, &c.CategoryID, &c.TeamName)
	}, teamID)
}

func (r *pgCompetitorRepository) ListByCategory(ctx context.Context, categoryID int) ([]model.Competitor, error) {
	query := `
		SELECT c.id, c.name, c.bib_number, c.event_id, c.team_id, c.category_id, cat.name
		FROM competitors c
		JOIN categories cat ON c.category_id = cat.id
		WHERE c.category_id = $1
		ORDER BY c.id`
	return r.list(ctx, query, func(rows *sql.Rows, c *model.Competitor) error {
		return rows.Scan(&c.ID, &c.Name, &c.BibNumber, &c.EventID, &c.TeamID, &c.CategoryID, &c.CategoryName)
	}, categoryID)
}

func (r *pgCompetitorRepository) list(ctx context.Context, query string, scan func(*sql.Rows, *model.Competitor) error, args ...interface{}) ([]model.Competitor, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgCompetitorRepository.list query: %w", err)
	}
	defer rows.Close()

	competitors := []model.Competitor{}
	for rows.Next() {
		var c model.Competitor
		if err := scan(rows, &c); err != nil {
			return nil, fmt.Errorf("pgCompetitorRepository.list scan: %w", err)
		}
		competitors = append(competitors, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCompetitorRepository.list rows.Err: %w", err)
	}
	return competitors, nil
}

func (r *pgCompetitorRepository) FindByID(ctx context.Context, id int) (*model.Competitor, error) {
	query := `SELECT id, name, bib_number, event_id, team_id, category_id FROM competitors WHERE id = $1`
	c := &model.Competitor{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.BibNumber, &c.EventID, &c.TeamID, &c.CategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgCompetitorRepository.FindByID: %w", err)
	}
	return c, nil
}

func (r *pgCompetitorRepository) Update(ctx context.Context, id int, params UpdateCompetitorParams) (*model.Competitor, error) {
	query := `UPDATE competitors SET
	            name = COALESCE($2, name),
	            bib_number = COALESCE($3, bib_number),
	            event_id = COALESCE($4, event_id),
	            team_id = COALESCE($5, team_id),
	            category_id = COALESCE($6, category_id)
	          WHERE id = $1
	          RETURNING id, name, bib_number, event_id, team_id, category_id`
	c := &model.Competitor{}
	err := r.db.QueryRowContext(ctx, query, id, params.Name, params.BibNumber, params.EventID, params.TeamID, params.CategoryID).
		Scan(&c.ID, &c.Name, &c.BibNumber, &c.EventID, &c.TeamID, &c.CategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("referenced event, team or category does not exist: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("pgCompetitorRepository.Update: %w", err)
	}
	return c, nil
}

func (r *pgCompetitorRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM competitors WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("competitor %d is still referenced: %w", id, common.ErrConflict)
		}
		return fmt.Errorf("pgCompetitorRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgCompetitorRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
