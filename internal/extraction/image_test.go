package extraction

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func TestDecodeImage(t *testing.T) {
	pngB64 := base64.StdEncoding.EncodeToString(pngHeader)

	tests := []struct {
		name     string
		encoded  string
		mimeType string
		wantMIME string
	}{
		{"sniffs png", pngB64, "", "image/png"},
		{"sniffs jpeg", base64.StdEncoding.EncodeToString(jpegHeader), "", "image/jpeg"},
		{"explicit mime wins", pngB64, "image/webp", "image/webp"},
		{"data url hint", "data:image/heic;base64," + pngB64, "", "image/heic"},
		{"explicit beats data url", "data:image/heic;base64," + pngB64, "image/png", "image/png"},
		{"url-safe alphabet", base64.URLEncoding.EncodeToString([]byte{0xfb, 0xff, 0xfe}), "", "image/jpeg"},
		{"surrounding whitespace", "  " + pngB64 + "\n", "", "image/png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeImage(tt.encoded, tt.mimeType)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMIME, img.MIMEType)
			assert.NotEmpty(t, img.Data)
		})
	}

	t.Run("invalid base64", func(t *testing.T) {
		_, err := DecodeImage("not base64!!", "")
		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := DecodeImage("", "")
		assert.ErrorIs(t, err, ErrEmptyImage)
	})

	t.Run("too large", func(t *testing.T) {
		big := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("a", MaxImageBytes+1)))
		_, err := DecodeImage(big, "")
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})
}

func TestImageHash(t *testing.T) {
	a := Image{Data: []byte("photo"), MIMEType: "image/jpeg"}
	b := Image{Data: []byte("photo"), MIMEType: "image/png"}
	c := Image{Data: []byte("other"), MIMEType: "image/jpeg"}

	assert.Equal(t, a.Hash(), b.Hash(), "hash covers content only")
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.Len(t, a.Hash(), 64)
}
