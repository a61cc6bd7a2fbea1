// Package attachment handles the inline binary attachments carried inside
// entity records. Files are embedded as data URLs next to their original
// file name; there is no separate blob store.
package attachment

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
)

// MaxSize is the upload limit for any single attachment.
const MaxSize = 5 * 1024 * 1024 // 5 MiB

// Attachment is an accepted upload ready to be stored inline.
type Attachment struct {
	DataURL  string
	FileName string
}

// FromBytes validates raw file content against the size gate and encodes it
// as a data URL. Content of exactly MaxSize is accepted; one byte more is
// rejected with ErrAttachmentTooLarge and nothing is stored.
func FromBytes(fileName, contentType string, content []byte) (*Attachment, error) {
	if len(content) > MaxSize {
		return nil, apperrors.ErrAttachmentTooLarge
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	encoded := base64.StdEncoding.EncodeToString(content)
	return &Attachment{
		DataURL:  fmt.Sprintf("data:%s;base64,%s", contentType, encoded),
		FileName: fileName,
	}, nil
}

// FromDataURL validates an already-encoded data URL against the size gate.
// The gate applies to the decoded payload size, matching FromBytes.
func FromDataURL(fileName, dataURL string) (*Attachment, error) {
	payload := dataURL
	if idx := strings.Index(dataURL, ","); idx >= 0 {
		payload = dataURL[idx+1:]
	}

	if base64.StdEncoding.DecodedLen(len(payload)) > MaxSize+2 {
		// DecodedLen over-counts by up to two padding bytes; decode to be exact.
		return nil, apperrors.ErrAttachmentTooLarge
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, apperrors.NewValidationError("attachment is not valid base64 data")
	}
	if len(decoded) > MaxSize {
		return nil, apperrors.ErrAttachmentTooLarge
	}

	return &Attachment{DataURL: dataURL, FileName: fileName}, nil
}

// IsImage reports whether a stored data URL holds image content.
func IsImage(dataURL string) bool {
	return strings.HasPrefix(dataURL, "data:image/")
}
