package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedFiles(t *testing.T) {
	assert.Contains(t, string(Index()), `id="ticker-form"`)

	for _, name := range []string{"app.js", "styles.css"} {
		b, err := fs.ReadFile(Assets(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, b)
	}
}
