// Package qrcode renders the storefront QR codes pharmacies display at the
// counter so shoppers can pull up the pharmacy directly.
package qrcode

import (
	"encoding/json"
	"fmt"

	"medifind/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	PharmacyID string `json:"pharmacy_id"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePharmacyQR renders a PNG QR code encoding the pharmacy ID.
func (s *qrcodeService) GeneratePharmacyQR(pharmacyID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		PharmacyID: pharmacyID.String(),
		Type:       "pharmacy",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePharmacyQR decodes scanned QR data back to the pharmacy ID.
func (s *qrcodeService) ParsePharmacyQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "pharmacy" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	pharmacyID, err := uuid.Parse(data.PharmacyID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse pharmacy ID: %w", err)
	}

	return pharmacyID, nil
}
