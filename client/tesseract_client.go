package client

import (
	"fmt"
	"log"
	"os"

	"github.com/otiai10/gosseract/v2"
)

type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{
		dataPath: dataPath,
	}
}

// ExtractTextFromImage runs OCR over raw image bytes. The bytes are
// staged in a temporary file because Tesseract reads from disk.
func (tc *TesseractClient) ExtractTextFromImage(data []byte, ext string) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	tempFile.Close()

	return tc.ExtractTextFromImageFile(tempFile.Name())
}

// ExtractTextFromImageFile runs OCR over an image file on disk.
func (tc *TesseractClient) ExtractTextFromImageFile(filePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.dataPath)

	if err := client.SetLanguage("eng"); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return text, nil
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
