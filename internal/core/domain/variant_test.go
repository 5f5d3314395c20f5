package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantByName(t *testing.T) {
	v, err := VariantByName("tracking")
	require.NoError(t, err)
	assert.Equal(t, VariantTracking, v)

	v, err = VariantByName("scanpak")
	require.NoError(t, err)
	assert.Equal(t, VariantScanPak, v)
}

func TestVariantByName_Unknown(t *testing.T) {
	_, err := VariantByName("warehouse")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestVariants_DistinctNamespaces(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range Variants() {
		assert.False(t, seen[v.Namespace], "namespace %q reused", v.Namespace)
		seen[v.Namespace] = true
		assert.NotEmpty(t, v.PathPrefix)
	}
}
