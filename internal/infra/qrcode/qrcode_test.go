package qrcode

import (
	"bytes"
	"testing"

	"testament/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQRConfig() *config.Config {
	return &config.Config{
		Registration: &config.RegistrationConfig{
			ResumeBaseURL: "https://wills.example.com/resume",
		},
		QRCode: &config.QRCodeConfig{
			Size:                 128,
			ErrorCorrectionLevel: "medium",
		},
	}
}

func TestNewGenerator_RequiresResumeBaseURL(t *testing.T) {
	_, err := NewGenerator(&config.Config{})

	require.Error(t, err)
}

func TestNewGenerator_RejectsUnknownRecoveryLevel(t *testing.T) {
	cfg := newTestQRConfig()
	cfg.QRCode.ErrorCorrectionLevel = "extreme"

	_, err := NewGenerator(cfg)

	require.Error(t, err)
}

func TestGenerator_GenerateResumeQR_ProducesPNG(t *testing.T) {
	generator, err := NewGenerator(newTestQRConfig())
	require.NoError(t, err)

	png, err := generator.GenerateResumeQR("some-registration-key")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte{0x89, 0x50, 0x4e, 0x47}), "output must be a PNG image")
}

func TestGenerator_GenerateResumeQR_EscapesKey(t *testing.T) {
	generator, err := NewGenerator(newTestQRConfig())
	require.NoError(t, err)

	// Keys are base64url so this should never happen, but a hostile value must
	// not break URL encoding.
	png, err := generator.GenerateResumeQR("a key&with=odd chars")

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
