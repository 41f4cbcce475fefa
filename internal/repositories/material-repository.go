package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"materieelbeheer/internal/entities"
	apperrors "materieelbeheer/pkg/errors"
	"materieelbeheer/pkg/types"
)

const (
	materialTable  = "materials"
	materialFields = "id, name, serial, type, material_type_id, werf_id, site, assigned_to, status, inspection_status, last_inspection, is_deleted, created_at, updated_at"
)

// Witte lijst voor filtering (bescherming tegen SQL-injectie).
var allowedMaterialFilters = map[string]string{
	"id":                "id",
	"name":              "name",
	"serial":            "serial",
	"type":              "type",
	"material_type_id":  "material_type_id",
	"werf_id":           "werf_id",
	"status":            "status",
	"inspection_status": "inspection_status",
}

var allowedMaterialSortFields = map[string]bool{
	"id":                true,
	"name":              true,
	"serial":            true,
	"status":            true,
	"inspection_status": true,
	"last_inspection":   true,
	"created_at":        true,
	"updated_at":        true,
}

type MaterialRepositoryInterface interface {
	GetMaterials(ctx context.Context, filter types.Filter) ([]*entities.Material, uint64, error)
	FindMaterial(ctx context.Context, id uint64) (*entities.Material, error)
	CreateMaterial(ctx context.Context, m entities.Material) (uint64, error)
	UpdateMaterial(ctx context.Context, id uint64, m entities.Material) error
	DeleteMaterial(ctx context.Context, id uint64) error

	// Lifecycle-engine.
	GetAllForReconciliation(ctx context.Context) ([]entities.Material, error)
	UpdateInspectionStatus(ctx context.Context, materialID uint64, status string) error
	RecordInspectionOutcome(ctx context.Context, q Querier, materialID uint64, status string, lastInspection time.Time) error

	// Uitleenadministratie (binnen de check-out/check-in transactie).
	UpdateUsageState(ctx context.Context, q Querier, materialID uint64, status string, assignedTo null.String, werfID null.Uint64, site null.String) error
}

type materialRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMaterialRepository(storage *pgxpool.Pool, logger *zap.Logger) MaterialRepositoryInterface {
	return &materialRepository{storage: storage, logger: logger}
}

func scanMaterial(row pgx.Row) (*entities.Material, error) {
	var m entities.Material
	err := row.Scan(
		&m.ID, &m.Name, &m.Serial, &m.Type, &m.MaterialTypeID, &m.WerfID,
		&m.Site, &m.AssignedTo, &m.Status, &m.InspectionStatus,
		&m.LastInspection, &m.IsDeleted, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("fout bij scannen van materials: %w", err)
	}
	return &m, nil
}

func (r *materialRepository) GetMaterials(ctx context.Context, filter types.Filter) ([]*entities.Material, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(materialFields).From(materialTable).Where(sq.Eq{"is_deleted": false})
	countBuilder := psql.Select("COUNT(*)").From(materialTable).Where(sq.Eq{"is_deleted": false})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		cond := sq.Or{sq.ILike{"name": like}, sq.ILike{"serial": like}, sq.ILike{"type": like}}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	for jsonField, val := range filter.Filter {
		dbCol, ok := allowedMaterialFilters[jsonField]
		if !ok {
			continue
		}
		var cond sq.Sqlizer
		if s, isStr := val.(string); isStr && strings.Contains(s, ",") {
			cond = sq.Eq{dbCol: strings.Split(s, ",")}
		} else {
			cond = sq.Eq{dbCol: val}
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}

	ordered := false
	for jsonField, dir := range filter.Sort {
		if !allowedMaterialSortFields[jsonField] {
			continue
		}
		sqlDir := "ASC"
		if strings.ToLower(dir) == "desc" {
			sqlDir = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", jsonField, sqlDir))
		ordered = true
	}
	if !ordered {
		builder = builder.OrderBy("name ASC")
	}

	if filter.WithPagination {
		if filter.Limit > 0 {
			builder = builder.Limit(uint64(filter.Limit))
		}
		if filter.Offset >= 0 {
			builder = builder.Offset(uint64(filter.Offset))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("fout bij bouwen van materials-query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []*entities.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *materialRepository) FindMaterial(ctx context.Context, id uint64) (*entities.Material, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(materialFields).From(materialTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	m, err := scanMaterial(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	if m.MaterialTypeID.Valid {
		var mt entities.MaterialType
		err := r.storage.QueryRow(ctx,
			`SELECT id, name, inspection_validity_days FROM material_types WHERE id = $1`,
			m.MaterialTypeID.Uint64,
		).Scan(&mt.ID, &mt.Name, &mt.InspectionValidityDays)
		if err == nil {
			m.MaterialType = &mt
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	if m.WerfID.Valid {
		var w entities.Werf
		err := r.storage.QueryRow(ctx,
			`SELECT id, name, address FROM werven WHERE id = $1`,
			m.WerfID.Uint64,
		).Scan(&w.ID, &w.Name, &w.Address)
		if err == nil {
			m.Werf = &w
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	return m, nil
}

func (r *materialRepository) CreateMaterial(ctx context.Context, m entities.Material) (uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert(materialTable).
		Columns("name", "serial", "type", "material_type_id", "werf_id", "site", "status", "inspection_status").
		Values(m.Name, m.Serial, m.Type, m.MaterialTypeID, m.WerfID, m.Site, m.Status, m.InspectionStatus).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("fout bij aanmaken van materiaal: %w", err)
	}
	return id, nil
}

func (r *materialRepository) UpdateMaterial(ctx context.Context, id uint64, m entities.Material) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Update(materialTable).
		Set("name", m.Name).
		Set("serial", m.Serial).
		Set("type", m.Type).
		Set("material_type_id", m.MaterialTypeID).
		Set("werf_id", m.WerfID).
		Set("site", m.Site).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id, "is_deleted": false}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMaterial is een soft delete: het uitleen- en keuringslogboek blijft
// verwijsbaar.
func (r *materialRepository) DeleteMaterial(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE materials SET is_deleted = TRUE, updated_at = CURRENT_TIMESTAMP WHERE id = $1 AND is_deleted = FALSE`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *materialRepository) GetAllForReconciliation(ctx context.Context) ([]entities.Material, error) {
	rows, err := r.storage.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE is_deleted = FALSE`, materialFields, materialTable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}

func (r *materialRepository) UpdateInspectionStatus(ctx context.Context, materialID uint64, status string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE materials SET inspection_status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		status, materialID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *materialRepository) RecordInspectionOutcome(ctx context.Context, q Querier, materialID uint64, status string, lastInspection time.Time) error {
	result, err := q.Exec(ctx,
		`UPDATE materials SET inspection_status = $1, last_inspection = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $3`,
		status, lastInspection, materialID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *materialRepository) UpdateUsageState(ctx context.Context, q Querier, materialID uint64, status string, assignedTo null.String, werfID null.Uint64, site null.String) error {
	result, err := q.Exec(ctx,
		`UPDATE materials SET status = $1, assigned_to = $2, werf_id = COALESCE($3, werf_id), site = COALESCE($4, site), updated_at = CURRENT_TIMESTAMP WHERE id = $5`,
		status, assignedTo, werfID, site, materialID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
