package service

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// decodeInvoiceQR attempts a single QR decode on a page image. GST
// e-invoices carry an IRN QR whose payload repeats the seller GSTIN, so
// a successful decode gives the field parsers a clean copy of data OCR
// tends to mangle. Most documents carry no QR at all; the caller treats
// a decode failure as silence.
func decodeInvoiceQR(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", err
	}

	return result.GetText(), nil
}
