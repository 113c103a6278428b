package benchmark

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomName(t *testing.T) {
	a, err := GenerateRandomName(8)
	require.NoError(t, err)
	b, err := GenerateRandomName(8)
	require.NoError(t, err)

	assert.Len(t, a, 16, "hex doubles the byte length")
	assert.NotEqual(t, a, b)
}

func TestObjectKey(t *testing.T) {
	prefix := RunPrefix()
	assert.True(t, strings.HasSuffix(prefix, "/"))

	key := ObjectKey(prefix, "/tmp/bench/file_8MB.bin")
	assert.Equal(t, prefix+"file_8MB.bin", key)
}
