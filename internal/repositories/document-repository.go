package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"materieelbeheer/internal/entities"
	apperrors "materieelbeheer/pkg/errors"
)

const (
	documentTable  = "documents"
	documentFields = "id, material_id, doc_type, file_name, file_path, note, created_at"
)

type DocumentRepositoryInterface interface {
	GetByMaterial(ctx context.Context, materialID uint64) ([]entities.Document, error)
	CreateDocument(ctx context.Context, d entities.Document) (uint64, error)
	DeleteDocument(ctx context.Context, id uint64) error
}

type documentRepository struct {
	storage *pgxpool.Pool
}

func NewDocumentRepository(storage *pgxpool.Pool) DocumentRepositoryInterface {
	return &documentRepository{storage: storage}
}

func (r *documentRepository) GetByMaterial(ctx context.Context, materialID uint64) ([]entities.Document, error) {
	rows, err := r.storage.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE material_id = $1 ORDER BY created_at DESC`, documentFields, documentTable),
		materialID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Document
	for rows.Next() {
		var d entities.Document
		if err := rows.Scan(&d.ID, &d.MaterialID, &d.DocType, &d.FileName, &d.FilePath, &d.Note, &d.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *documentRepository) CreateDocument(ctx context.Context, d entities.Document) (uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert(documentTable).
		Columns("material_id", "doc_type", "file_name", "file_path", "note").
		Values(d.MaterialID, d.DocType, d.FileName, d.FilePath, d.Note).
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

func (r *documentRepository) DeleteDocument(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
