package service

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PDFProcessor interface {
	ExtractText(pdfData []byte) (string, error)
	ExtractPageImages(pdfData []byte) ([]image.Image, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractText pulls the embedded text layer page by page. Pages without
// a text layer contribute nothing; scanned PDFs therefore come back
// (near-)empty and the caller falls over to OCR.
func (p *pdfProcessor) ExtractText(pdfData []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", err
	}

	var textBuilder bytes.Buffer
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
	}
	return textBuilder.String(), nil
}

// ExtractPageImages extracts the page images of a scanned PDF so they
// can be fed to OCR.
func (p *pdfProcessor) ExtractPageImages(pdfData []byte) ([]image.Image, error) {
	tempDir, err := os.MkdirTemp("", "pdf_images")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile, err := os.CreateTemp("", "doc-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(pdfData); err != nil {
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}
	tempFile.Close()

	conf := model.NewDefaultConfiguration()

	// nil selects all pages
	if err := api.ExtractImagesFile(tempFile.Name(), tempDir, nil, conf); err != nil {
		return nil, fmt.Errorf("failed to extract images: %w", err)
	}

	var images []image.Image
	files, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp dir: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		imgPath := filepath.Join(tempDir, file.Name())
		imgFile, err := os.Open(imgPath)
		if err != nil {
			continue
		}

		img, _, err := image.Decode(imgFile)
		imgFile.Close()
		if err != nil {
			continue
		}
		images = append(images, img)
	}

	return images, nil
}
