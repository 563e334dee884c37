package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"pdfscan/internal/extract"
	"pdfscan/internal/model"
	"pdfscan/internal/repository"
	"pdfscan/internal/storage"
)

// PDFMimeType is the only declared content type accepted for uploads.
const PDFMimeType = "application/pdf"

// PDFService defines the use cases for scanned documents.
type PDFService interface {
	// Upload extracts text and page count from the PDF bytes, stores the
	// record, and returns its metadata (text excluded). When an archive is
	// configured the raw bytes are archived best-effort.
	Upload(ctx context.Context, data []byte, filename, mimeType string, size int64, ownerID *int64) (*model.DocumentInfo, error)

	// Scan returns the full record including extracted text.
	Scan(ctx context.Context, id int64) (*model.Document, error)

	// ListForOwner returns the owner's documents, text excluded, insertion order.
	ListForOwner(ctx context.Context, ownerID int64) ([]model.DocumentInfo, error)

	// Delete removes the document matching both id and owner; a missing id
	// and an ownership mismatch both fail with ErrNotFound.
	Delete(ctx context.Context, id, ownerID int64) error
}

type pdfService struct {
	repo      repository.DocumentRepository
	extractor extract.Extractor
	archive   storage.Archive // nil when the archive capability is not configured
}

// NewPDFService constructs a new PDFService. archive may be nil.
func NewPDFService(repo repository.DocumentRepository, extractor extract.Extractor, archive storage.Archive) PDFService {
	return &pdfService{repo: repo, extractor: extractor, archive: archive}
}

func (s *pdfService) Upload(ctx context.Context, data []byte, filename, mimeType string, size int64, ownerID *int64) (*model.DocumentInfo, error) {
	if len(data) == 0 {
		return nil, ErrNoFile
	}
	if mimeType != PDFMimeType {
		return nil, ErrNotPDF
	}

	res, err := s.extractor.Extract(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("extract pdf: %w", err)
	}

	var archiveKey string
	if s.archive != nil {
		archiveKey = "pdfs/" + uuid.NewString() + ".pdf"
		err := s.archive.Put(ctx, archiveKey, bytes.NewReader(data), storage.PutOptions{
			Size:        int64(len(data)),
			ContentType: PDFMimeType,
			Metadata:    map[string]string{"original-filename": filename},
		})
		if err != nil {
			// The in-memory store is the record of truth; a failed archive
			// write must not fail the upload.
			log.Printf("archive put failed for %s: %v", archiveKey, err)
			archiveKey = ""
		}
	}

	doc, err := s.repo.Create(ctx, &model.Document{
		Filename:   filename,
		Size:       size,
		Pages:      res.Pages,
		Text:       res.Text,
		UploadedAt: time.Now().UTC(),
		OwnerID:    ownerID,
		ArchiveKey: archiveKey,
	})
	if err != nil {
		return nil, err
	}

	info := doc.Info()
	return &info, nil
}

func (s *pdfService) Scan(ctx context.Context, id int64) (*model.Document, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *pdfService) ListForOwner(ctx context.Context, ownerID int64) ([]model.DocumentInfo, error) {
	docs, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	infos := make([]model.DocumentInfo, 0, len(docs))
	for i := range docs {
		infos = append(infos, docs[i].Info())
	}
	return infos, nil
}

func (s *pdfService) Delete(ctx context.Context, id, ownerID int64) error {
	doc, err := s.repo.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if s.archive != nil && doc.ArchiveKey != "" {
		if err := s.archive.Delete(ctx, doc.ArchiveKey); err != nil {
			log.Printf("archive delete failed for %s: %v", doc.ArchiveKey, err)
		}
	}
	return nil
}
