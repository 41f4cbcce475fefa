package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"materieelbeheer/internal/entities"
	apperrors "materieelbeheer/pkg/errors"
)

const (
	werfTable  = "werven"
	werfFields = "id, name, address, is_deleted, created_at, updated_at"
)

type WerfRepositoryInterface interface {
	GetWerven(ctx context.Context) ([]*entities.Werf, error)
	FindWerf(ctx context.Context, id uint64) (*entities.Werf, error)
	CreateWerf(ctx context.Context, w entities.Werf) (uint64, error)
	UpdateWerf(ctx context.Context, id uint64, w entities.Werf) error
	DeleteWerf(ctx context.Context, id uint64) error
}

type werfRepository struct {
	storage *pgxpool.Pool
}

func NewWerfRepository(storage *pgxpool.Pool) WerfRepositoryInterface {
	return &werfRepository{storage: storage}
}

func scanWerf(row pgx.Row) (*entities.Werf, error) {
	var w entities.Werf
	err := row.Scan(&w.ID, &w.Name, &w.Address, &w.IsDeleted, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("fout bij scannen van werven: %w", err)
	}
	return &w, nil
}

func (r *werfRepository) GetWerven(ctx context.Context) ([]*entities.Werf, error) {
	rows, err := r.storage.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE is_deleted = FALSE ORDER BY name`, werfFields, werfTable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*entities.Werf
	for rows.Next() {
		w, err := scanWerf(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

func (r *werfRepository) FindWerf(ctx context.Context, id uint64) (*entities.Werf, error) {
	return scanWerf(r.storage.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND is_deleted = FALSE`, werfFields, werfTable), id))
}

func (r *werfRepository) CreateWerf(ctx context.Context, w entities.Werf) (uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert(werfTable).
		Columns("name", "address").
		Values(w.Name, w.Address).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *werfRepository) UpdateWerf(ctx context.Context, id uint64, w entities.Werf) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE werven SET name = $1, address = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3 AND is_deleted = FALSE`,
		w.Name, w.Address, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *werfRepository) DeleteWerf(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE werven SET is_deleted = TRUE, updated_at = CURRENT_TIMESTAMP WHERE id = $1 AND is_deleted = FALSE`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
