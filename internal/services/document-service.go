package services

import (
	"context"
	"mime/multipart"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"materieelbeheer/internal/entities"
	"materieelbeheer/internal/repositories"
	apperrors "materieelbeheer/pkg/errors"
	"materieelbeheer/pkg/filestorage"
)

type DocumentServiceInterface interface {
	GetByMaterial(ctx context.Context, materialID uint64) ([]entities.Document, error)
	UploadDocument(ctx context.Context, materialID uint64, docType, note string, file *multipart.FileHeader) (*entities.Document, error)
	DeleteDocument(ctx context.Context, materialID, documentID uint64) error
}

type DocumentService struct {
	documentRepo repositories.DocumentRepositoryInterface
	materialRepo repositories.MaterialRepositoryInterface
	storage      filestorage.FileStorage
	logger       *zap.Logger
}

func NewDocumentService(
	documentRepo repositories.DocumentRepositoryInterface,
	materialRepo repositories.MaterialRepositoryInterface,
	storage filestorage.FileStorage,
	logger *zap.Logger,
) DocumentServiceInterface {
	return &DocumentService{
		documentRepo: documentRepo,
		materialRepo: materialRepo,
		storage:      storage,
		logger:       logger,
	}
}

func (s *DocumentService) GetByMaterial(ctx context.Context, materialID uint64) ([]entities.Document, error) {
	if _, err := s.materialRepo.FindMaterial(ctx, materialID); err != nil {
		return nil, err
	}
	return s.documentRepo.GetByMaterial(ctx, materialID)
}

func (s *DocumentService) UploadDocument(ctx context.Context, materialID uint64, docType, note string, file *multipart.FileHeader) (*entities.Document, error) {
	if _, err := s.materialRepo.FindMaterial(ctx, materialID); err != nil {
		return nil, err
	}

	path, err := s.storage.Save(file, "documents")
	if err != nil {
		return nil, err
	}

	doc := entities.Document{
		MaterialID: materialID,
		DocType:    null.NewString(docType, docType != ""),
		FileName:   file.Filename,
		FilePath:   path,
		Note:       null.NewString(note, note != ""),
	}
	id, err := s.documentRepo.CreateDocument(ctx, doc)
	if err != nil {
		// Zonder databaserij hoort het bestand er ook niet te zijn.
		if rmErr := s.storage.Remove(path); rmErr != nil {
			s.logger.Warn("wees-bestand opruimen mislukt", zap.String("path", path), zap.Error(rmErr))
		}
		return nil, err
	}
	doc.ID = id

	s.logger.Info("document geüpload",
		zap.Uint64("material_id", materialID),
		zap.Uint64("document_id", id),
		zap.String("file", file.Filename))
	return &doc, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, materialID, documentID uint64) error {
	docs, err := s.documentRepo.GetByMaterial(ctx, materialID)
	if err != nil {
		return err
	}

	for _, d := range docs {
		if d.ID != documentID {
			continue
		}
		if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
			return err
		}
		if err := s.storage.Remove(d.FilePath); err != nil {
			s.logger.Warn("documentbestand verwijderen mislukt", zap.String("path", d.FilePath), zap.Error(err))
		}
		return nil
	}
	return apperrors.ErrNotFound
}
