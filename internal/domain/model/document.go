package model

import "time"

// Document is a downloadable file in the documentation section
// (activity reports, registration forms). The binary lives in object
// storage under ObjectKey; this record is its catalog entry.
type Document struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	FileName    string    `json:"file_name"`
	ObjectKey   string    `json:"-"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedBy  int64     `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}
