package attachment

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanyilmaz/placehub/internal/pkg/apperrors"
)

func TestFromBytesAtLimit(t *testing.T) {
	content := bytes.Repeat([]byte{0xAB}, MaxSize)

	att, err := FromBytes("exact.bin", "application/pdf", content)
	require.NoError(t, err, "content of exactly the limit must be accepted")
	assert.Equal(t, "exact.bin", att.FileName)
	assert.True(t, strings.HasPrefix(att.DataURL, "data:application/pdf;base64,"))
}

func TestFromBytesOverLimit(t *testing.T) {
	content := bytes.Repeat([]byte{0xAB}, MaxSize+1)

	att, err := FromBytes("big.bin", "application/pdf", content)
	assert.Nil(t, att)
	assert.True(t, errors.Is(err, apperrors.ErrAttachmentTooLarge))
}

func TestFromBytesDefaultsContentType(t *testing.T) {
	att, err := FromBytes("blob", "", []byte("hi"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(att.DataURL, "data:application/octet-stream;base64,"))
}

func TestFromDataURL(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("hello world"))
	dataURL := "data:text/plain;base64," + payload

	att, err := FromDataURL("notes.txt", dataURL)
	require.NoError(t, err)
	assert.Equal(t, dataURL, att.DataURL)
	assert.Equal(t, "notes.txt", att.FileName)
}

func TestFromDataURLOverLimit(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, MaxSize+1))
	dataURL := "data:application/pdf;base64," + payload

	att, err := FromDataURL("big.pdf", dataURL)
	assert.Nil(t, att)
	assert.True(t, errors.Is(err, apperrors.ErrAttachmentTooLarge))
}

func TestFromDataURLAtLimit(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, MaxSize))
	dataURL := "data:application/pdf;base64," + payload

	att, err := FromDataURL("exact.pdf", dataURL)
	require.NoError(t, err, "decoded payload of exactly the limit must be accepted")
	assert.NotNil(t, att)
}

func TestFromDataURLInvalidBase64(t *testing.T) {
	_, err := FromDataURL("bad.bin", "data:text/plain;base64,%%%not-base64%%%")
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("data:image/png;base64,abcd"))
	assert.False(t, IsImage("data:application/pdf;base64,abcd"))
	assert.False(t, IsImage(""))
}
