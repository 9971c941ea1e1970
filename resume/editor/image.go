package editor

import (
	"encoding/base64"
	"errors"
	"strings"
)

// MaxProfilePictureBytes caps the decoded size of an inline profile picture.
const MaxProfilePictureBytes = 5 << 20 // 5MB

var (
	// ErrNotDataURI indicates the value is not a data: URI.
	ErrNotDataURI = errors.New("profile picture must be a base64 data URI")

	// ErrUnsupportedImage indicates a non-image payload.
	ErrUnsupportedImage = errors.New("profile picture must be an image")

	// ErrImageTooLarge indicates the decoded payload exceeds the cap.
	ErrImageTooLarge = errors.New("profile picture exceeds the 5MB limit")
)

// ImageData describes a parsed inline image payload.
type ImageData struct {
	MimeType  string
	SizeBytes int
}

// ParseImageDataURI validates a self-describing inline image string of the
// form data:image/<subtype>;base64,<payload> and reports its decoded size.
// The size check runs before decoding so oversized uploads are rejected
// without buffering them.
func ParseImageDataURI(value string) (ImageData, error) {
	rest, ok := strings.CutPrefix(value, "data:")
	if !ok {
		return ImageData{}, ErrNotDataURI
	}
	mimeType, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return ImageData{}, ErrNotDataURI
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return ImageData{}, ErrUnsupportedImage
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxProfilePictureBytes {
		return ImageData{}, ErrImageTooLarge
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ImageData{}, ErrNotDataURI
	}
	if len(decoded) > MaxProfilePictureBytes {
		return ImageData{}, ErrImageTooLarge
	}
	return ImageData{MimeType: mimeType, SizeBytes: len(decoded)}, nil
}
