package checksum

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var fingerprintPattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

func TestFingerprint_KnownValue(t *testing.T) {
	assert.Equal(t, "2d06800538d394c2", New().Fingerprint(nil))
	assert.Equal(t, "2d06800538d394c2", New().Fingerprint([]byte{}))
}

func TestFingerprint_ShapeAndDeterminism(t *testing.T) {
	c := New()
	inputs := [][]byte{
		[]byte("a"),
		[]byte("org.opentripplanner.common.MavenVersion"),
		make([]byte, 4096),
	}

	seen := map[string]bool{}
	for _, in := range inputs {
		fp := c.Fingerprint(in)
		assert.Regexp(t, fingerprintPattern, fp)
		assert.Equal(t, fp, c.Fingerprint(in))
		assert.False(t, seen[fp], "collision for %q", in)
		seen[fp] = true
	}
}

func TestPad16(t *testing.T) {
	assert.Equal(t, "000000000000000f", pad16("f"))
	assert.Equal(t, "ffffffffffffffff", pad16("ffffffffffffffff"))
}

func TestCalculatorInterface(t *testing.T) {
	var _ Calculator = New()
}
