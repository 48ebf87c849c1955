package service

// QRCodeService renders resume-registration QR codes.
type QRCodeService interface {
	// GenerateResumeQR encodes the resume URL for a registration key as a PNG.
	GenerateResumeQR(key string) ([]byte, error)
}
