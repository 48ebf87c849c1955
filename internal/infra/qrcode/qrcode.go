// Package qrcode renders resume-registration QR codes.
package qrcode

import (
	"fmt"
	"net/url"

	"testament/config"
	"testament/internal/domain/service"

	"github.com/pkg/errors"
	qrcodeLib "github.com/skip2/go-qrcode"
)

const defaultImageSize = 256

// generator implements service.QRCodeService on top of skip2/go-qrcode.
type generator struct {
	baseURL string
	size    int
	level   qrcodeLib.RecoveryLevel
}

// NewGenerator is the constructor for generator.
func NewGenerator(cfg *config.Config) (service.QRCodeService, error) {
	baseURL := ""
	if cfg.Registration != nil {
		baseURL = cfg.Registration.ResumeBaseURL
	}
	if baseURL == "" {
		return nil, errors.New("registration resume base URL must be configured")
	}

	size := defaultImageSize
	level := qrcodeLib.Medium
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		parsed, err := parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	return &generator{
		baseURL: baseURL,
		size:    size,
		level:   level,
	}, nil
}

// GenerateResumeQR encodes the resume URL for a registration key as a PNG.
func (g *generator) GenerateResumeQR(key string) ([]byte, error) {
	resumeURL := fmt.Sprintf("%s?key=%s", g.baseURL, url.QueryEscape(key))

	png, err := qrcodeLib.Encode(resumeURL, g.level, g.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode resume QR code")
	}

	return png, nil
}

func parseRecoveryLevel(level string) (qrcodeLib.RecoveryLevel, error) {
	switch level {
	case "", "medium":
		return qrcodeLib.Medium, nil
	case "low":
		return qrcodeLib.Low, nil
	case "high":
		return qrcodeLib.High, nil
	case "highest":
		return qrcodeLib.Highest, nil
	default:
		return qrcodeLib.Medium, errors.Errorf("unknown QR error correction level: %s", level)
	}
}
