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
	inspectionTable  = "inspection_records"
	inspectionFields = "id, material_id, serial, inspection_date, result, performed_by, notes, next_due_date, certificate_path, created_at"
)

type InspectionRepositoryInterface interface {
	GetByMaterial(ctx context.Context, materialID uint64) ([]entities.InspectionRecord, error)
	FindRecord(ctx context.Context, id uint64) (*entities.InspectionRecord, error)
	LatestByMaterial(ctx context.Context) (map[uint64]entities.InspectionRecord, error)
	GetAllWithMaterial(ctx context.Context) ([]entities.InspectionRecord, map[uint64]*entities.Material, error)

	// CreateRecord hoort bij de keuringsresultaat-transactie: record
	// toevoegen en materiaalstatus bijwerken gebeuren samen.
	CreateRecord(ctx context.Context, q Querier, rec entities.InspectionRecord) (uint64, error)

	SetCertificatePath(ctx context.Context, id uint64, path string) error
}

type inspectionRepository struct {
	storage *pgxpool.Pool
}

func NewInspectionRepository(storage *pgxpool.Pool) InspectionRepositoryInterface {
	return &inspectionRepository{storage: storage}
}

func scanInspection(row pgx.Row) (*entities.InspectionRecord, error) {
	var rec entities.InspectionRecord
	err := row.Scan(
		&rec.ID, &rec.MaterialID, &rec.Serial, &rec.InspectionDate, &rec.Result,
		&rec.PerformedBy, &rec.Notes, &rec.NextDueDate, &rec.CertificatePath, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("fout bij scannen van inspection_records: %w", err)
	}
	return &rec, nil
}

func (r *inspectionRepository) GetByMaterial(ctx context.Context, materialID uint64) ([]entities.InspectionRecord, error) {
	rows, err := r.storage.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE material_id = $1 ORDER BY inspection_date DESC, id DESC`, inspectionFields, inspectionTable),
		materialID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.InspectionRecord
	for rows.Next() {
		rec, err := scanInspection(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *rec)
	}
	return list, rows.Err()
}

func (r *inspectionRepository) FindRecord(ctx context.Context, id uint64) (*entities.InspectionRecord, error) {
	return scanInspection(r.storage.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, inspectionFields, inspectionTable), id))
}

// LatestByMaterial haalt in één query per materiaal de meest recente
// keuring op: hoogste datum, bij gelijke datum het hoogste id.
func (r *inspectionRepository) LatestByMaterial(ctx context.Context) (map[uint64]entities.InspectionRecord, error) {
	rows, err := r.storage.Query(ctx, fmt.Sprintf(`
		SELECT DISTINCT ON (material_id) %s
		FROM %s
		ORDER BY material_id, inspection_date DESC, id DESC`, inspectionFields, inspectionTable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	latest := make(map[uint64]entities.InspectionRecord)
	for rows.Next() {
		rec, err := scanInspection(rows)
		if err != nil {
			return nil, err
		}
		latest[rec.MaterialID] = *rec
	}
	return latest, rows.Err()
}

func (r *inspectionRepository) GetAllWithMaterial(ctx context.Context) ([]entities.InspectionRecord, map[uint64]*entities.Material, error) {
	rows, err := r.storage.Query(ctx, fmt.Sprintf(`
		SELECT r.id, r.material_id, r.serial, r.inspection_date, r.result,
		       r.performed_by, r.notes, r.next_due_date, r.certificate_path, r.created_at,
		       m.id, m.name, m.serial, m.inspection_status
		FROM %s r
			JOIN materials m ON m.id = r.material_id
		WHERE m.is_deleted = FALSE
		ORDER BY r.inspection_date DESC, r.id DESC`, inspectionTable))
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var list []entities.InspectionRecord
	mats := make(map[uint64]*entities.Material)
	for rows.Next() {
		var rec entities.InspectionRecord
		var m entities.Material
		err := rows.Scan(
			&rec.ID, &rec.MaterialID, &rec.Serial, &rec.InspectionDate, &rec.Result,
			&rec.PerformedBy, &rec.Notes, &rec.NextDueDate, &rec.CertificatePath, &rec.CreatedAt,
			&m.ID, &m.Name, &m.Serial, &m.InspectionStatus,
		)
		if err != nil {
			return nil, nil, err
		}
		list = append(list, rec)
		if _, ok := mats[m.ID]; !ok {
			mc := m
			mats[m.ID] = &mc
		}
	}
	return list, mats, rows.Err()
}

func (r *inspectionRepository) CreateRecord(ctx context.Context, q Querier, rec entities.InspectionRecord) (uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert(inspectionTable).
		Columns("material_id", "serial", "inspection_date", "result", "performed_by", "notes", "next_due_date", "certificate_path").
		Values(rec.MaterialID, rec.Serial, rec.InspectionDate, rec.Result, rec.PerformedBy, rec.Notes, rec.NextDueDate, rec.CertificatePath).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id uint64
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("fout bij aanmaken van keuringsrecord: %w", err)
	}
	return id, nil
}

func (r *inspectionRepository) SetCertificatePath(ctx context.Context, id uint64, path string) error {
	tag, err := r.storage.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET certificate_path = $1 WHERE id = $2`, inspectionTable), path, id)
	if err != nil {
		return fmt.Errorf("fout bij koppelen van certificaat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
