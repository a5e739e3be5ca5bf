package extraction

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// MaxImageBytes bounds a decoded document photo.
const MaxImageBytes = 10 << 20

const defaultMIME = "image/jpeg"

var (
	// ErrInvalidImage indicates an upload that is not valid base64.
	ErrInvalidImage = errors.New("invalid image encoding")
	// ErrImageTooLarge indicates an upload above MaxImageBytes.
	ErrImageTooLarge = errors.New("image too large")
	// ErrEmptyImage indicates an upload with no bytes.
	ErrEmptyImage = errors.New("empty image")
)

// Image is a decoded document photo ready to be sent to an extractor.
type Image struct {
	Data     []byte
	MIMEType string
}

// DecodeImage decodes a base64 payload that may carry a data-URL prefix. The
// MIME type is taken from mimeType, then the data-URL prefix, then sniffed.
func DecodeImage(encoded, mimeType string) (Image, error) {
	data, hint, err := decodeBase64MaybeDataURL(encoded)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return Image{}, ErrEmptyImage
	}
	if len(data) > MaxImageBytes {
		return Image{}, fmt.Errorf("%w: %d bytes", ErrImageTooLarge, len(data))
	}
	return Image{Data: data, MIMEType: pickMIME(mimeType, hint, data)}, nil
}

// Hash identifies the image content. It is safe to log and is used as the
// cache key.
func (i Image) Hash() string {
	sum := sha256.Sum256(i.Data)
	return hex.EncodeToString(sum[:])
}

// decodeBase64MaybeDataURL accepts "data:<mime>;base64,<payload>" or a bare
// payload in standard or URL-safe alphabet.
func decodeBase64MaybeDataURL(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	var hint string
	if strings.HasPrefix(s, "data:") {
		if idx := strings.IndexByte(s, ','); idx > 0 {
			meta := s[len("data:"):idx]
			if semi := strings.IndexByte(meta, ';'); semi >= 0 {
				hint = meta[:semi]
			} else {
				hint = meta
			}
			s = s[idx+1:]
		}
	}
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, hint, nil
	} else if b2, err2 := base64.URLEncoding.DecodeString(s); err2 == nil {
		return b2, hint, nil
	} else {
		return nil, "", err
	}
}

func pickMIME(explicit, hint string, data []byte) string {
	if exp := strings.TrimSpace(explicit); exp != "" {
		return exp
	}
	if h := strings.TrimSpace(hint); h != "" {
		return h
	}
	if len(data) > 0 {
		if sniffed := http.DetectContentType(data); sniffed != "application/octet-stream" {
			return sniffed
		}
	}
	return defaultMIME
}
