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
	materialTypeTable  = "material_types"
	materialTypeFields = "id, name, inspection_validity_days, created_at, updated_at"
)

type MaterialTypeRepositoryInterface interface {
	GetMaterialTypes(ctx context.Context) ([]*entities.MaterialType, error)
	FindMaterialType(ctx context.Context, id uint64) (*entities.MaterialType, error)
	CreateMaterialType(ctx context.Context, mt entities.MaterialType) (uint64, error)
	UpdateMaterialType(ctx context.Context, id uint64, mt entities.MaterialType) error
	DeleteMaterialType(ctx context.Context, id uint64) error
}

type materialTypeRepository struct {
	storage *pgxpool.Pool
}

func NewMaterialTypeRepository(storage *pgxpool.Pool) MaterialTypeRepositoryInterface {
	return &materialTypeRepository{storage: storage}
}

func scanMaterialType(row pgx.Row) (*entities.MaterialType, error) {
	var mt entities.MaterialType
	err := row.Scan(&mt.ID, &mt.Name, &mt.InspectionValidityDays, &mt.CreatedAt, &mt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("fout bij scannen van material_types: %w", err)
	}
	return &mt, nil
}

func (r *materialTypeRepository) GetMaterialTypes(ctx context.Context) ([]*entities.MaterialType, error) {
	rows, err := r.storage.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM %s ORDER BY name`, materialTypeFields, materialTypeTable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*entities.MaterialType
	for rows.Next() {
		mt, err := scanMaterialType(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, mt)
	}
	return list, rows.Err()
}

func (r *materialTypeRepository) FindMaterialType(ctx context.Context, id uint64) (*entities.MaterialType, error) {
	return scanMaterialType(r.storage.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, materialTypeFields, materialTypeTable), id))
}

func (r *materialTypeRepository) CreateMaterialType(ctx context.Context, mt entities.MaterialType) (uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert(materialTypeTable).
		Columns("name", "inspection_validity_days").
		Values(mt.Name, mt.InspectionValidityDays).
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

func (r *materialTypeRepository) UpdateMaterialType(ctx context.Context, id uint64, mt entities.MaterialType) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE material_types SET name = $1, inspection_validity_days = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3`,
		mt.Name, mt.InspectionValidityDays, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *materialTypeRepository) DeleteMaterialType(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM material_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
