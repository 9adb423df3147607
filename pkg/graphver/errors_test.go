package graphver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", fmt.Errorf("accepts 1 arg(s), received 2: %w", ErrUsage), ExitUsageError},
		{"io", fmt.Errorf("open Graph.obj: %w", ErrIO), ExitIOError},
		{"anchor", ErrAnchorNotFound, ExitAnchorNotFound},
		{"extraction", fmt.Errorf("no fields: %w", ErrExtraction), ExitExtractionError},
		{"config", fmt.Errorf("min_string_length: %w", ErrInvalidConfig), ExitConfigError},
		{"unclassified", errors.New("boom"), ExitExtractionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}

func TestStringRun_EndAndAccepted(t *testing.T) {
	run := StringRun{Position: 10, RawLength: 8, EncodedLength: 5, Length: 5}
	assert.Equal(t, 15, run.End())
	assert.True(t, run.Accepted())

	rejected := StringRun{Position: 10, RawLength: 3, EncodedLength: 5}
	assert.False(t, rejected.Accepted())
	assert.Equal(t, 10, rejected.End())
}

func TestExtractedVersion_Empty(t *testing.T) {
	v := &ExtractedVersion{AnchorPosition: 4, CommitPosition: -1, VersionPosition: -1}
	assert.True(t, v.Empty())

	s := "1.2.3"
	v.Version = &s
	assert.False(t, v.Empty())
}
