package yamlfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
products:
  - sku: item0001
    name: Widget
    price: 9.99
  - sku: item0002
    name: Premium Widget
    price: "19.99"
`

func TestSourceList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o600))

	products, err := NewSource(path).List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "item0001", products[0].SKU)
	assert.Equal(t, "9.99", products[0].Price.String())
	assert.Equal(t, "Premium Widget", products[1].Name)
	assert.Equal(t, "19.99", products[1].Price.String())
}

func TestSourceMissingFile(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "nope.yaml")).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog file")
}

func TestParseBadPrice(t *testing.T) {
	_, err := Parse([]byte("products:\n  - sku: item0001\n    name: Widget\n    price: cheap\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cheap")
}
