package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/priyanshu-sharma/financial-anomaly-detector/dto"
)

// A PDF text layer shorter than this is treated as unusable, which
// usually means a scanned PDF. A shorter layer still wins over a failed
// OCR fallback.
const minTextLayerLen = 20

// OCRClient is the narrow OCR contract the extractor depends on,
// satisfied by client.TesseractClient.
type OCRClient interface {
	ExtractTextFromImage(data []byte, ext string) (string, error)
	ExtractTextFromImageFile(filePath string) (string, error)
}

// Extractor converts an uploaded file into plain text. The underlying
// libraries are slow and can fail; an error here means every strategy
// was exhausted and the caller should record an extraction anomaly
// rather than abort the batch.
type Extractor interface {
	Extract(filename string, data []byte, kind dto.DocumentKind) (string, error)
}

type documentExtractor struct {
	ocr OCRClient
	pdf PDFProcessor
}

func NewDocumentExtractor(ocr OCRClient, pdf PDFProcessor) Extractor {
	return &documentExtractor{
		ocr: ocr,
		pdf: pdf,
	}
}

// Extract runs the strategies for the declared kind in order. PDFs try
// the embedded text layer first and fall back to page-image OCR exactly
// once; images go straight to OCR. There is no partial-result merging
// across strategies.
func (e *documentExtractor) Extract(filename string, data []byte, kind dto.DocumentKind) (string, error) {
	switch kind {
	case dto.KindPDF:
		return e.extractPDF(filename, data)
	case dto.KindImage:
		return e.extractImage(filename, data)
	default:
		return "", fmt.Errorf("unknown document kind: %s", kind)
	}
}

func (e *documentExtractor) extractPDF(filename string, data []byte) (string, error) {
	layerText, err := e.pdf.ExtractText(data)
	if err != nil {
		log.Printf("PDF text extraction failed for %s: %v", filename, err)
		layerText = ""
	}
	if len(strings.TrimSpace(layerText)) >= minTextLayerLen {
		return layerText, nil
	}
	if err == nil {
		log.Printf("PDF %s has minimal text, attempting image-based OCR", filename)
	}

	ocrText, ocrErr := e.ocrPDFPages(filename, data)
	if ocrErr != nil {
		// A short but successfully extracted text layer is still a
		// result; only give up when the layer produced nothing.
		if strings.TrimSpace(layerText) != "" {
			log.Printf("OCR fallback failed for %s, keeping short text layer: %v", filename, ocrErr)
			return layerText, nil
		}
		return "", ocrErr
	}
	return ocrText, nil
}

func (e *documentExtractor) ocrPDFPages(filename string, data []byte) (string, error) {
	images, imgErr := e.pdf.ExtractPageImages(data)
	if imgErr != nil {
		return "", fmt.Errorf("failed to extract images from PDF %s: %w", filename, imgErr)
	}
	if len(images) == 0 {
		return "", fmt.Errorf("no page images found in PDF %s", filename)
	}

	var combined strings.Builder
	var pages int
	for _, img := range images {
		tempImgFile, err := saveImageToTempFile(img)
		if err != nil {
			log.Printf("Failed to save temporary image for OCR: %v", err)
			continue
		}

		pageText, ocrErr := e.ocr.ExtractTextFromImageFile(tempImgFile)
		os.Remove(tempImgFile)
		if ocrErr != nil {
			log.Printf("OCR failed for a page in %s: %v", filename, ocrErr)
			continue
		}

		combined.WriteString(pageText)
		combined.WriteString("\n")
		pages++

		if payload, qrErr := decodeInvoiceQR(img); qrErr == nil {
			combined.WriteString(payload)
			combined.WriteString("\n")
		}
	}

	if pages == 0 {
		return "", fmt.Errorf("OCR produced no text for PDF %s", filename)
	}
	return combined.String(), nil
}

func (e *documentExtractor) extractImage(filename string, data []byte) (string, error) {
	text, err := e.ocr.ExtractTextFromImage(data, filepath.Ext(filename))
	if err != nil {
		return "", fmt.Errorf("image OCR failed for %s: %w", filename, err)
	}

	if img, _, decErr := image.Decode(bytes.NewReader(data)); decErr == nil {
		if payload, qrErr := decodeInvoiceQR(img); qrErr == nil {
			text = text + "\n" + payload
		}
	}

	return text, nil
}

// saveImageToTempFile saves an image.Image to a temporary PNG file.
func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-img-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	return tempFile.Name(), nil
}
