package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/priyanshu-sharma/financial-anomaly-detector/client"
	"github.com/priyanshu-sharma/financial-anomaly-detector/config"
	"github.com/priyanshu-sharma/financial-anomaly-detector/handler"
	"github.com/priyanshu-sharma/financial-anomaly-detector/service"
	"github.com/priyanshu-sharma/financial-anomaly-detector/store"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()
	log.Println("TESSDATA_PREFIX resolved to:", cfg.TesseractDataPath)

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize PDF processor and extractor
	pdfProcessor := service.NewPDFProcessor()
	extractor := service.NewDocumentExtractor(tesseractClient, pdfProcessor)

	// Session-scoped document store
	sessionStore := store.NewSessionStore()

	// Initialize service layer
	anomalyService := service.NewAnomalyService(extractor, sessionStore, cfg.MaxFileSize)

	// Initialize handler layer
	documentHandler := handler.NewDocumentHandler(anomalyService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Financial Document Anomaly Detector",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		documents := api.Group("/documents")
		{
			documents.POST("/process", documentHandler.ProcessDocuments)
			documents.GET("/report", documentHandler.GetReport)
			documents.DELETE("", documentHandler.ClearDocuments)
		}
	}

	// Start server
	log.Printf("Starting Financial Document Anomaly Detector on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
