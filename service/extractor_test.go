package service

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"

	"github.com/priyanshu-sharma/financial-anomaly-detector/dto"
)

type fakeOCRClient struct {
	text string
	err  error
}

func (f fakeOCRClient) ExtractTextFromImage(data []byte, ext string) (string, error) {
	return f.text, f.err
}

func (f fakeOCRClient) ExtractTextFromImageFile(filePath string) (string, error) {
	return f.text, f.err
}

type fakePDFProcessor struct {
	text    string
	textErr error
	images  []image.Image
	imgErr  error
}

func (f fakePDFProcessor) ExtractText(pdfData []byte) (string, error) {
	return f.text, f.textErr
}

func (f fakePDFProcessor) ExtractPageImages(pdfData []byte) ([]image.Image, error) {
	return f.images, f.imgErr
}

func qrImage(t *testing.T, payload string) *gozxing.BitMatrix {
	t.Helper()
	matrix, err := qrcode.NewQRCodeWriter().Encode(payload, gozxing.BarcodeFormat_QR_CODE, 256, 256, nil)
	assert.NoError(t, err)
	return matrix
}

func TestExtractImageAppendsQRPayload(t *testing.T) {
	payload := "GSTIN:27AAAPL1234C1Z5|INV-2024-001|118.00"
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, qrImage(t, payload)))

	e := NewDocumentExtractor(fakeOCRClient{text: "Invoice scan text"}, fakePDFProcessor{})

	text, err := e.Extract("invoice.png", buf.Bytes(), dto.KindImage)

	assert.NoError(t, err)
	assert.Contains(t, text, "Invoice scan text")
	assert.Contains(t, text, payload)
}

func TestExtractImageWithoutQR(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 64))))

	e := NewDocumentExtractor(fakeOCRClient{text: "plain scan"}, fakePDFProcessor{})

	text, err := e.Extract("scan.jpg", buf.Bytes(), dto.KindImage)

	assert.NoError(t, err)
	assert.Equal(t, "plain scan", text)
}

func TestExtractPDFFallbackAppendsQRPayload(t *testing.T) {
	payload := "GSTIN:29AAAPL1234C1Z5"
	pdf := fakePDFProcessor{
		textErr: errors.New("damaged xref table"),
		images:  []image.Image{qrImage(t, payload)},
	}

	e := NewDocumentExtractor(fakeOCRClient{text: "page one"}, pdf)

	text, err := e.Extract("scan.pdf", nil, dto.KindPDF)

	assert.NoError(t, err)
	assert.Contains(t, text, "page one")
	assert.Contains(t, text, payload)
}

func TestExtractPDFTextLayerPreferred(t *testing.T) {
	pdf := fakePDFProcessor{text: "A reasonably long embedded text layer"}

	e := NewDocumentExtractor(fakeOCRClient{text: "should not be used"}, pdf)

	text, err := e.Extract("digital.pdf", nil, dto.KindPDF)

	assert.NoError(t, err)
	assert.Equal(t, "A reasonably long embedded text layer", text)
}

// A short text layer triggers the OCR fallback, but if that fallback
// fails the layer text is still the extraction result.
func TestExtractPDFKeepsShortTextLayerWhenOCRFails(t *testing.T) {
	pdf := fakePDFProcessor{
		text:   "Total : 5.00",
		imgErr: errors.New("no images in pdf"),
	}

	e := NewDocumentExtractor(fakeOCRClient{}, pdf)

	text, err := e.Extract("short.pdf", nil, dto.KindPDF)

	assert.NoError(t, err)
	assert.Equal(t, "Total : 5.00", text)
}

func TestExtractPDFAllStrategiesFail(t *testing.T) {
	pdf := fakePDFProcessor{
		textErr: errors.New("bad pdf"),
		imgErr:  errors.New("bad pdf"),
	}

	e := NewDocumentExtractor(fakeOCRClient{}, pdf)

	_, err := e.Extract("broken.pdf", nil, dto.KindPDF)

	assert.Error(t, err)
}
