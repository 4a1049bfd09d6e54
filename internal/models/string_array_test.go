package models_test

import (
	"testing"

	"github.com/codeverse-africa/whingan-core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayRoundTrip(t *testing.T) {
	arr := models.StringArray{"one", "two"}

	v, err := arr.Value()
	require.NoError(t, err)

	var decoded models.StringArray
	require.NoError(t, decoded.Scan(v))
	assert.Equal(t, arr, decoded)
}

func TestStringArrayScanLegacyPlainString(t *testing.T) {
	// Rows written before the JSON migration hold a bare string.
	var decoded models.StringArray
	require.NoError(t, decoded.Scan("politics"))
	assert.Equal(t, models.StringArray{"politics"}, decoded)
}

func TestStringArrayScanNil(t *testing.T) {
	var decoded models.StringArray
	require.NoError(t, decoded.Scan(nil))
	assert.Empty(t, decoded)
}
