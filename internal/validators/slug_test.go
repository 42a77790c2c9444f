package validators

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeStoreSlug(t *testing.T) {
	assert.Equal(t, "adi-shan", MakeStoreSlug("Adi Shan"))
	assert.Equal(t, "adi-shan", MakeStoreSlug("  Adi   Shan  "))
	assert.Equal(t, "cafe-creme", MakeStoreSlug("Café Crème"))
	assert.Equal(t, "", MakeStoreSlug("   "))
}

func TestEnsureUniqueSlug(t *testing.T) {
	t.Run("free slug is kept as-is", func(t *testing.T) {
		got, err := EnsureUniqueSlug("adi-shan", func(string) (bool, error) {
			return false, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "adi-shan", got)
	})

	t.Run("taken slug gets a numeric suffix", func(t *testing.T) {
		taken := map[string]bool{"adi-shan": true}
		got, err := EnsureUniqueSlug("adi-shan", func(candidate string) (bool, error) {
			return taken[candidate], nil
		})
		require.NoError(t, err)
		assert.Equal(t, "adi-shan-1", got)
	})

	t.Run("suffix keeps counting past earlier collisions", func(t *testing.T) {
		taken := map[string]bool{"adi-shan": true, "adi-shan-1": true, "adi-shan-2": true}
		got, err := EnsureUniqueSlug("adi-shan", func(candidate string) (bool, error) {
			return taken[candidate], nil
		})
		require.NoError(t, err)
		assert.Equal(t, "adi-shan-3", got)
	})

	t.Run("lookup errors propagate", func(t *testing.T) {
		_, err := EnsureUniqueSlug("adi-shan", func(string) (bool, error) {
			return false, errors.New("database unreachable")
		})
		assert.Error(t, err)
	})
}
