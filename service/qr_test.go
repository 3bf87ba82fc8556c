package service

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeInvoiceQR(t *testing.T) {
	payload := "GSTIN:27AAAPL1234C1Z5|TOTAL:118.00"

	decoded, err := decodeInvoiceQR(qrImage(t, payload))

	assert.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestDecodeInvoiceQRNoCode(t *testing.T) {
	_, err := decodeInvoiceQR(image.NewRGBA(image.Rect(0, 0, 64, 64)))

	assert.Error(t, err)
}
