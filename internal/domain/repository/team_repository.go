package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"race_timing/internal/common"
	"race_timing/internal/domain/model"
)

type TeamRepository interface {
	Create(ctx context.Context, team *model.Team) error
	List(ctx context.Context) ([]model.Team, error)
	FindByID(ctx context.Context, id int) (*model.Team, error)
	Update(ctx context.Context, id int, params UpdateTeamParams) (*model.Team, error)
	Delete(ctx context.Context, id int) error
}

type UpdateTeamParams struct {
	Name *string
}

type pgTeamRepository struct {
	db *sql.DB
}

func NewPgTeamRepository(db *sql.DB) TeamRepository {
	return &pgTeamRepository{db: db}
}

func (r *pgTeamRepository) Create(ctx context.Context, team *model.Team) error {
	query := `INSERT INTO teams (name) VALUES ($1) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, team.Name).Scan(&team.ID); err != nil {
		return fmt.Errorf("pgTeamRepository.Create: %w", err)
	}
	return nil
}

func (r *pgTeamRepository) List(ctx context.Context) ([]model.Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM teams ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pgTeamRepository.List query: %w", err)
	}
	defer rows.Close()

	teams := []model.Team{}
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("pgTeamRepository.List scan: %w", err)
		}
		teams = append(teams, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgTeamRepository.List rows.Err: %w", err)
	}
	return teams, nil
}

func (r *pgTeamRepository) FindByID(ctx context.Context, id int) (*model.Team, error) {
	team := &model.Team{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM teams WHERE id = $1`, id).
		Scan(&team.ID, &team.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgTeamRepository.FindByID: %w", err)
	}
	return team, nil
}

func (r *pgTeamRepository) Update(ctx context.Context, id int, params UpdateTeamParams) (*model.Team, error) {
	query := `UPDATE teams SET name = COALESCE($2, name) WHERE id = $1 RETURNING id, name`
	team := &model.Team{}
	err := r.db.QueryRowContext(ctx, query, id, params.Name).Scan(&team.ID, &team.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgTeamRepository.Update: %w", err)
	}
	return team, nil
}

func (r *pgTeamRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("team %d is still referenced: %w", id, common.ErrConflict)
		}
		return fmt.Errorf("pgTeamRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgTeamRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
