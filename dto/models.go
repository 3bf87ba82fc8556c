package dto

import (
	"path/filepath"
	"strings"
	"time"
)

type DocumentKind string

const (
	KindPDF   DocumentKind = "pdf"
	KindImage DocumentKind = "image"
)

// KindFromFilename maps a file extension to a document kind.
// Accepted uploads are .pdf, .png, .jpg and .jpeg.
func KindFromFilename(name string) (DocumentKind, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF, true
	case ".png", ".jpg", ".jpeg":
		return KindImage, true
	default:
		return "", false
	}
}

type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
)

// Anomaly is a single finding on a document. Severity is used for
// display grouping and counting only.
type Anomaly struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// DocumentRecord is one processed upload. Records are immutable once
// created and live in the session store until it is cleared.
type DocumentRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentHash string    `json:"content_hash"`
	Text        string    `json:"-"`
	Anomalies   []Anomaly `json:"anomalies"`
	Timestamp   time.Time `json:"timestamp"`
}

// ParsedFields holds the regex-extracted invoice fields. Every field is
// optional; a false presence flag means the pattern did not match, which
// is an expected outcome rather than an error.
type ParsedFields struct {
	GSTIN       string
	HasGSTIN    bool
	GSTRate     string
	HasGSTRate  bool
	Subtotal    float64
	HasSubtotal bool
	Tax         float64
	HasTax      bool
	Total       float64
	HasTotal    bool
}

// UploadedFile is a file pulled out of the multipart form by the handler.
type UploadedFile struct {
	Name string
	Data []byte
}
