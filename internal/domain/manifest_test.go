package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contractgate/contractgate/internal/domain"
)

func TestParseManifest(t *testing.T) {
	m, err := domain.ParseManifest([]byte(`{"name": "orders", "version": "1.2.3"}`))
	require.NoError(t, err)
	assert.Equal(t, "orders", m.Name)
	assert.Equal(t, "1.2.3", m.Version)
}

func TestParseManifest_MissingVersion(t *testing.T) {
	_, err := domain.ParseManifest([]byte(`{"name": "orders"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestParseManifest_MalformedJSON(t *testing.T) {
	_, err := domain.ParseManifest([]byte(`{"name": `))
	require.Error(t, err)
}
