package ratings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleRoundTrip(t *testing.T) {
	// Toute note en demi-étoiles doit survivre à l'aller-retour UI → backend → UI
	for r := 0.5; r <= 5.0; r += 0.5 {
		backend := ToBackend(r)
		assert.Equal(t, r*2, backend)
		assert.Equal(t, r, ToUI(backend))
	}
}

func TestValidateUI(t *testing.T) {
	for r := 0.5; r <= 5.0; r += 0.5 {
		require.NoError(t, ValidateUI(r))
	}

	assert.Error(t, ValidateUI(0))
	assert.Error(t, ValidateUI(0.4))
	assert.Error(t, ValidateUI(2.75))
	assert.Error(t, ValidateUI(5.5))
	assert.Error(t, ValidateUI(-1))
}
