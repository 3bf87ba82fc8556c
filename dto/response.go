package dto

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// DocumentResult is the per-file outcome of a processing batch.
type DocumentResult struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	ContentHash string    `json:"content_hash,omitempty"`
	Anomalies   []Anomaly `json:"anomalies"`
	Error       string    `json:"error,omitempty"`
}

// ProcessResponse is returned by POST /documents/process.
type ProcessResponse struct {
	Processed int              `json:"processed"`
	Results   []DocumentResult `json:"results"`
}

// ReportSummary holds the four session-wide counters.
type ReportSummary struct {
	TotalDocuments    int `json:"total_documents"`
	TotalAnomalies    int `json:"total_anomalies"`
	CriticalAnomalies int `json:"critical_anomalies"`
	HighAnomalies     int `json:"high_anomalies"`
}

// DocumentSection is one document's entry in the session report,
// including a preview of the first 1000 characters of extracted text.
type DocumentSection struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Timestamp    time.Time `json:"timestamp"`
	AnomalyCount int       `json:"anomaly_count"`
	Anomalies    []Anomaly `json:"anomalies"`
	TextPreview  string    `json:"text_preview"`
}

// SessionReport is returned by GET /documents/report.
type SessionReport struct {
	Summary   ReportSummary     `json:"summary"`
	Documents []DocumentSection `json:"documents"`
}
