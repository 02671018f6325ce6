package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"race_timing/internal/common"
	"race_timing/internal/domain/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int) (*model.Category, error)
	Update(ctx context.Context, id int, params UpdateCategoryParams) (*model.Category, error)
	Delete(ctx context.Context, id int) error
}

// UpdateCategoryParams carries a partial update; nil fields are left untouched.
type UpdateCategoryParams struct {
	Name *string
}

type pgCategoryRepository struct {
	db *sql.DB
}

func NewPgCategoryRepository(db *sql.DB) CategoryRepository {
	return &pgCategoryRepository{db: db}
}

func (r *pgCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, category.Name).Scan(&category.ID); err != nil {
		return fmt.Errorf("pgCategoryRepository.Create: %w", err)
	}
	return nil
}

func (r *pgCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgCategoryRepository.List query: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("pgCategoryRepository.List scan: %w", err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCategoryRepository.List rows.Err: %w", err)
	}
	return categories, nil
}

func (r *pgCategoryRepository) FindByID(ctx context.Context, id int) (*model.Category, error) {
	query := `SELECT id, name FROM categories WHERE id = $1`
	category := &model.Category{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgCategoryRepository.FindByID: %w", err)
	}
	return category, nil
}

func (r *pgCategoryRepository) Update(ctx context.Context, id int, params UpdateCategoryParams) (*model.Category, error) {
	query := `UPDATE categories SET name = COALESCE($2, name) WHERE id = $1 RETURNING id, name`
	category := &model.Category{}
	err := r.db.QueryRowContext(ctx, query, id, params.Name).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgCategoryRepository.Update: %w", err)
	}
	return category, nil
}

func (r *pgCategoryRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("category %d is still referenced: %w", id, common.ErrConflict)
		}
		return fmt.Errorf("pgCategoryRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgCategoryRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
