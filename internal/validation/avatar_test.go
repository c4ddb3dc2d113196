package validation

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestValidateAvatarAccepted(t *testing.T) {
	assert.NoError(t, ValidateAvatar("image/png", pngBytes(t, 64, 64)))
}

func TestValidateAvatarRejectsBadType(t *testing.T) {
	// Un GIF carré et léger reste refusé : le type seul suffit à rejeter
	err := ValidateAvatar("image/gif", pngBytes(t, 64, 64))
	assert.ErrorIs(t, err, ErrAvatarType)
}

func TestValidateAvatarRejectsTooLarge(t *testing.T) {
	oversized := make([]byte, MaxAvatarBytes+1)
	err := ValidateAvatar("image/png", oversized)
	assert.ErrorIs(t, err, ErrAvatarTooLarge)
}

func TestValidateAvatarRejectsNonSquare(t *testing.T) {
	err := ValidateAvatar("image/png", pngBytes(t, 64, 48))
	assert.ErrorIs(t, err, ErrAvatarNotSquare)
}

func TestValidateAvatarRejectsGarbage(t *testing.T) {
	err := ValidateAvatar("image/png", []byte("pas une image"))
	assert.Error(t, err)
}
