package fixtures

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphBuilder_Encoding(t *testing.T) {
	b := NewGraphBuilder().
		String("abc").
		TCString("de").
		Prefixed(300, "x").
		Raw(0xaa).
		Text("yz")

	assert.Equal(t, []byte{
		0x00, 0x03, 'a', 'b', 'c',
		0x74, 0x00, 0x02, 'd', 'e',
		0x01, 0x2c, 'x',
		0xaa,
		'y', 'z',
	}, b.Bytes())
	assert.Equal(t, 16, b.Len())
}

func TestGraphBuilder_FillerHasNoPrintableBytes(t *testing.T) {
	for _, c := range NewGraphBuilder().Filler(600).Bytes() {
		widened := int(int8(c))
		assert.False(t, widened >= 32 && widened <= 128, "filler byte 0x%02x is printable", c)
	}
}

func TestGraphBuilder_WriteFile(t *testing.T) {
	b := SampleGraph(SampleCommit, "1.2.3")
	path := b.WriteFile(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, b.Bytes(), data)
	assert.Len(t, SampleCommit, 40)
}
