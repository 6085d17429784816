// Package imagedata converts between raw image bytes and the data URLs the
// web client and the Gemini API exchange.
package imagedata

import (
	"encoding/base64"
	"fmt"
	"strings"
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// MediaType normalizes a Content-Type header value to its bare media type,
// dropping parameters such as "; charset=...".
func MediaType(contentType string) string {
	mediaType := strings.TrimSpace(strings.ToLower(contentType))
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	return mediaType
}

// IsAllowedType reports whether the declared media type is accepted for
// upload.
func IsAllowedType(contentType string) bool {
	return allowedTypes[MediaType(contentType)]
}

// Encode builds a base64 data URL from raw image bytes.
func Encode(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode splits a data URL into its media type and raw bytes.
func Decode(dataURL string) (string, []byte, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}
	rest := dataURL[len("data:"):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, fmt.Errorf("data URL is not base64 encoded")
	}
	mimeType := rest[:sep]
	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return mimeType, data, nil
}

// Ext maps a media type to a file extension for downloads.
func Ext(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
