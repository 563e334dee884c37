package model

import "time"

// Document is a scanned PDF held by the in-memory document repository.
// Text holds the full extracted content and is only returned by the scan
// endpoint; everywhere else the Info projection is used.
//
// OwnerID is nil for anonymous uploads. ArchiveKey is the object-storage key
// of the raw PDF when the archive capability is configured; it never leaves
// the process.
type Document struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	Pages      int       `json:"pages"`
	Text       string    `json:"text"`
	UploadedAt time.Time `json:"uploadedAt"`
	OwnerID    *int64    `json:"userId"`
	ArchiveKey string    `json:"-"`
}

// DocumentInfo is the metadata projection of a Document with the extracted
// text excluded.
type DocumentInfo struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	Pages      int       `json:"pages"`
	UploadedAt time.Time `json:"uploadedAt"`
	OwnerID    *int64    `json:"userId"`
}

// Info returns the document's metadata without the extracted text.
func (d *Document) Info() DocumentInfo {
	return DocumentInfo{
		ID:         d.ID,
		Filename:   d.Filename,
		Size:       d.Size,
		Pages:      d.Pages,
		UploadedAt: d.UploadedAt,
		OwnerID:    d.OwnerID,
	}
}
