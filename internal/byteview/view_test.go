package byteview

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/graphver/pkg/graphver"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Graph.obj")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestOpen_ReadsFileContent(t *testing.T) {
	path := writeFile(t, []byte("\x00\x05hello"))

	v, err := Open(path)
	require.NoError(t, err)
	defer v.Close()

	assert.Equal(t, 7, v.Len())
	assert.Equal(t, byte(0x05), v.At(1))
	assert.Equal(t, byte('o'), v.At(6))
	assert.Equal(t, []byte("\x00\x05hello"), v.Bytes())
}

func TestOpen_Failures(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.obj")
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.obj")},
		{"directory", dir},
		{"empty", empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Open(tt.path)
			assert.Nil(t, v)
			assert.True(t, errors.Is(err, graphver.ErrIO), "expected ErrIO, got: %v", err)
		})
	}
}

func TestAt_OutOfBoundsPanics(t *testing.T) {
	v := New([]byte("abc"))

	for _, pos := range []int{-1, 3, 100} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected panic at %d", pos)
				oob, ok := r.(*OutOfBoundsError)
				require.True(t, ok, "unexpected panic value %T", r)
				assert.Equal(t, pos, oob.Pos)
				assert.Equal(t, 3, oob.Len)
			}()
			v.At(pos)
		}()
	}
}

func TestClose_Idempotent(t *testing.T) {
	v, err := Open(writeFile(t, []byte("graph")))
	require.NoError(t, err)

	assert.NoError(t, v.Close())
	assert.NoError(t, v.Close())
	assert.Equal(t, 0, v.Len())
}

func TestNew_NotMapped(t *testing.T) {
	v := New([]byte("x"))
	assert.False(t, v.Mapped())
	assert.NoError(t, v.Close())
}
