package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for generating the storefront QR codes
// pharmacies print and display at the counter.
type QRCodeService interface {
	// GeneratePharmacyQR renders a PNG QR code encoding the pharmacy ID.
	GeneratePharmacyQR(pharmacyID uuid.UUID) ([]byte, error)

	// ParsePharmacyQR decodes scanned QR data back to the pharmacy ID.
	ParsePharmacyQR(qrData string) (uuid.UUID, error)
}
