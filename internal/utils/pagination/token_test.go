package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := "3f6c1d1e-8f33-4a34-9f14-2f2b8f6f0001"

	token := EncodeCursor(createdAt, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedAt, "Creation time should match after decode")
	assert.Equal(t, id, decodedID, "ID should match after decode")
}

func TestDecodeCursorInvalid(t *testing.T) {
	_, _, err := DecodeCursor("not-base64!!")
	assert.Error(t, err, "Invalid base64 should fail")

	// Valid base64 but missing the separator
	_, _, err = DecodeCursor("aGVsbG8=")
	assert.Error(t, err, "Token without separator should fail")
}

func TestCursorIDWithSeparator(t *testing.T) {
	// IDs containing the separator survive because only the first one splits
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	id := "left|right"

	token := EncodeCursor(createdAt, id)
	_, decodedID, err := DecodeCursor(token)
	assert.NoError(t, err)
	assert.Equal(t, id, decodedID)
}
