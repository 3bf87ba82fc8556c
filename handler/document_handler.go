package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/priyanshu-sharma/financial-anomaly-detector/dto"
	"github.com/priyanshu-sharma/financial-anomaly-detector/service"
)

type DocumentHandler struct {
	anomalyService *service.AnomalyService
}

func NewDocumentHandler(anomalyService *service.AnomalyService) *DocumentHandler {
	return &DocumentHandler{
		anomalyService: anomalyService,
	}
}

// ProcessDocuments handles the POST /documents/process endpoint
func (h *DocumentHandler) ProcessDocuments(c *gin.Context) {
	log.Println("Received document processing request")

	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return
	}

	fileHeaders := form.File["files[]"]
	if len(fileHeaders) == 0 {
		h.sendError(c, http.StatusBadRequest, "No files provided", nil)
		return
	}

	files := make([]dto.UploadedFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			h.sendError(c, http.StatusBadRequest, "Failed to open uploaded file", err)
			return
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			h.sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
			return
		}

		files = append(files, dto.UploadedFile{Name: fh.Filename, Data: data})
	}

	log.Printf("Processing %d files", len(files))

	results := h.anomalyService.ProcessBatch(files)

	// Rejected files (unsupported type, oversize) get a result entry
	// but no store record, so they do not count as processed.
	processed := 0
	for _, r := range results {
		if r.Error == "" {
			processed++
		}
	}

	c.JSON(http.StatusOK, dto.ProcessResponse{
		Processed: processed,
		Results:   results,
	})
}

// GetReport handles the GET /documents/report endpoint
func (h *DocumentHandler) GetReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.anomalyService.BuildReport())
}

// ClearDocuments handles the DELETE /documents endpoint
func (h *DocumentHandler) ClearDocuments(c *gin.Context) {
	h.anomalyService.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// sendError sends a structured error response
func (h *DocumentHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "PROCESSING_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
