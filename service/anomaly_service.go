package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/priyanshu-sharma/financial-anomaly-detector/dto"
	"github.com/priyanshu-sharma/financial-anomaly-detector/store"
	"github.com/priyanshu-sharma/financial-anomaly-detector/utils"
)

const textPreviewLimit = 1000

// AnomalyService runs the detection pipeline: extract text, fingerprint
// it, parse the invoice fields and evaluate the rule checks, then append
// the record to the session store.
type AnomalyService struct {
	extractor   Extractor
	store       *store.SessionStore
	maxFileSize int64
}

func NewAnomalyService(extractor Extractor, st *store.SessionStore, maxFileSize int64) *AnomalyService {
	return &AnomalyService{
		extractor:   extractor,
		store:       st,
		maxFileSize: maxFileSize,
	}
}

// ProcessBatch processes the uploaded files strictly in upload order.
// Duplicate detection depends on what the store already holds, so later
// files in a batch do see earlier ones. A single file's failure never
// aborts the rest of the batch.
func (s *AnomalyService) ProcessBatch(files []dto.UploadedFile) []dto.DocumentResult {
	results := make([]dto.DocumentResult, 0, len(files))

	for _, file := range files {
		kind, ok := dto.KindFromFilename(file.Name)
		if !ok {
			log.Printf("Skipping %s: unsupported file type", file.Name)
			results = append(results, dto.DocumentResult{
				Name:      file.Name,
				Anomalies: []dto.Anomaly{},
				Error:     fmt.Sprintf("unsupported file type: %s", file.Name),
			})
			continue
		}

		if s.maxFileSize > 0 && int64(len(file.Data)) > s.maxFileSize {
			log.Printf("Skipping %s: file exceeds maximum size", file.Name)
			results = append(results, dto.DocumentResult{
				Name:      file.Name,
				Anomalies: []dto.Anomaly{},
				Error:     fmt.Sprintf("file exceeds maximum size of %d bytes", s.maxFileSize),
			})
			continue
		}

		rec := s.processDocument(file.Name, file.Data, kind)
		results = append(results, dto.DocumentResult{
			ID:          rec.ID,
			Name:        rec.Name,
			ContentHash: rec.ContentHash,
			Anomalies:   rec.Anomalies,
		})
	}

	return results
}

// processDocument runs the full pipeline for one file and appends the
// resulting record to the store. Extraction failure is converted into a
// Critical anomaly; the record is stored either way so the document
// stays visible in results.
func (s *AnomalyService) processDocument(name string, data []byte, kind dto.DocumentKind) dto.DocumentRecord {
	log.Printf("Processing %s (%s)", name, kind)

	text, err := s.extractor.Extract(name, data, kind)
	if err != nil {
		log.Printf("Extraction failed for %s: %v", name, err)
		text = ""
	}

	rec := dto.DocumentRecord{
		ID:          uuid.NewString(),
		Name:        name,
		ContentHash: utils.Fingerprint(text),
		Text:        text,
		Timestamp:   time.Now(),
	}

	if strings.TrimSpace(text) == "" {
		rec.Anomalies = []dto.Anomaly{{
			Severity: dto.SeverityCritical,
			Message:  "Could not extract text from document",
		}}
	} else {
		fields := utils.ParseInvoiceFields(text)
		duplicate := s.store.ContainsHash(rec.ContentHash)
		rec.Anomalies = detectAnomalies(fields, duplicate)
	}

	s.store.Append(rec)
	return rec
}

// BuildReport summarizes the whole session: the four counters plus one
// section per document with its anomalies and a text preview.
func (s *AnomalyService) BuildReport() dto.SessionReport {
	records := s.store.Records()

	report := dto.SessionReport{
		Documents: make([]dto.DocumentSection, 0, len(records)),
	}
	report.Summary.TotalDocuments = len(records)

	for _, rec := range records {
		report.Summary.TotalAnomalies += len(rec.Anomalies)
		for _, a := range rec.Anomalies {
			switch a.Severity {
			case dto.SeverityCritical:
				report.Summary.CriticalAnomalies++
			case dto.SeverityHigh:
				report.Summary.HighAnomalies++
			}
		}

		report.Documents = append(report.Documents, dto.DocumentSection{
			ID:           rec.ID,
			Name:         rec.Name,
			Timestamp:    rec.Timestamp,
			AnomalyCount: len(rec.Anomalies),
			Anomalies:    rec.Anomalies,
			TextPreview:  previewText(rec.Text),
		})
	}

	return report
}

// Clear empties the session store.
func (s *AnomalyService) Clear() {
	s.store.Clear()
	log.Println("Session store cleared")
}

// previewText returns the first 1000 characters of the extracted text,
// with a truncation indicator when there is more.
func previewText(text string) string {
	runes := []rune(text)
	if len(runes) <= textPreviewLimit {
		return text
	}
	return string(runes[:textPreviewLimit]) + "..."
}
