package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"materieelbeheer/internal/entities"
	apperrors "materieelbeheer/pkg/errors"
)

const (
	usageTable  = "material_usages"
	usageFields = "id, material_id, user_id, used_by, werf_id, site, start_time, end_time, is_active, created_at"
)

type UsageRepositoryInterface interface {
	GetUsagesByMaterial(ctx context.Context, materialID uint64) ([]entities.UsageRecord, error)
	GetAllUsages(ctx context.Context) ([]entities.UsageRecord, error)
	GetActiveUsages(ctx context.Context) ([]entities.UsageRecord, error)
	FindUsage(ctx context.Context, id uint64) (*entities.UsageRecord, error)

	// Schrijfoperaties lopen binnen de check-out/check-in transactie.
	CreateUsage(ctx context.Context, q Querier, u entities.UsageRecord) (uint64, error)
	StopUsage(ctx context.Context, q Querier, id uint64, endTime time.Time) error
	AssignToWerf(ctx context.Context, id uint64, werfID uint64, site string) error
}

type usageRepository struct {
	storage *pgxpool.Pool
}

func NewUsageRepository(storage *pgxpool.Pool) UsageRepositoryInterface {
	return &usageRepository{storage: storage}
}

func scanUsage(row pgx.Row) (*entities.UsageRecord, error) {
	var u entities.UsageRecord
	err := row.Scan(
		&u.ID, &u.MaterialID, &u.UserID, &u.UsedBy, &u.WerfID, &u.Site,
		&u.StartTime, &u.EndTime, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("fout bij scannen van material_usages: %w", err)
	}
	return &u, nil
}

func (r *usageRepository) queryUsages(ctx context.Context, query string, args ...any) ([]entities.UsageRecord, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.UsageRecord
	for rows.Next() {
		u, err := scanUsage(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *u)
	}
	return list, rows.Err()
}

func (r *usageRepository) GetUsagesByMaterial(ctx context.Context, materialID uint64) ([]entities.UsageRecord, error) {
	return r.queryUsages(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE material_id = $1 ORDER BY start_time DESC NULLS LAST, id DESC`, usageFields, usageTable),
		materialID)
}

// GetAllUsages levert het volledige logboek in één query, voor de
// batchresolutie van actueel gebruik over alle materialen.
func (r *usageRepository) GetAllUsages(ctx context.Context) ([]entities.UsageRecord, error) {
	return r.queryUsages(ctx,
		fmt.Sprintf(`SELECT %s FROM %s`, usageFields, usageTable))
}

func (r *usageRepository) GetActiveUsages(ctx context.Context) ([]entities.UsageRecord, error) {
	rows, err := r.storage.Query(ctx, fmt.Sprintf(`
		SELECT u.id, u.material_id, u.user_id, u.used_by, u.werf_id, u.site,
		       u.start_time, u.end_time, u.is_active, u.created_at,
		       m.id, m.name, m.serial
		FROM %s u
			JOIN materials m ON m.id = u.material_id
		WHERE u.is_active AND m.is_deleted = FALSE
		ORDER BY u.start_time DESC NULLS LAST, u.id DESC`, usageTable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.UsageRecord
	for rows.Next() {
		var u entities.UsageRecord
		var m entities.Material
		err := rows.Scan(
			&u.ID, &u.MaterialID, &u.UserID, &u.UsedBy, &u.WerfID, &u.Site,
			&u.StartTime, &u.EndTime, &u.IsActive, &u.CreatedAt,
			&m.ID, &m.Name, &m.Serial,
		)
		if err != nil {
			return nil, err
		}
		u.Material = &m
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *usageRepository) FindUsage(ctx context.Context, id uint64) (*entities.UsageRecord, error) {
	return scanUsage(r.storage.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, usageFields, usageTable), id))
}

func (r *usageRepository) CreateUsage(ctx context.Context, q Querier, u entities.UsageRecord) (uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert(usageTable).
		Columns("material_id", "user_id", "used_by", "werf_id", "site", "start_time", "is_active").
		Values(u.MaterialID, u.UserID, u.UsedBy, u.WerfID, u.Site, u.StartTime, true).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id uint64
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("fout bij aanmaken van uitleenrij: %w", err)
	}
	return id, nil
}

// StopUsage sluit een actieve rij af. Het logboek is append-only: alleen
// end_time en is_active worden aangepast, de rij blijft bestaan.
func (r *usageRepository) StopUsage(ctx context.Context, q Querier, id uint64, endTime time.Time) error {
	result, err := q.Exec(ctx,
		`UPDATE material_usages SET end_time = $1, is_active = FALSE WHERE id = $2 AND is_active`,
		endTime, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *usageRepository) AssignToWerf(ctx context.Context, id uint64, werfID uint64, site string) error {
	result, err := r.storage.Exec(ctx,
		`UPDATE material_usages SET werf_id = $1, site = $2 WHERE id = $3 AND is_active`,
		werfID, site, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
