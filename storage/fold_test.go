package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Smith", "smith"},
		{"SMITH", "smith"},
		{"smith", "smith"},
		{"O'Brien", "o'brien"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, foldName(tt.in), "foldName(%q)", tt.in)
	}
}

func TestFoldNameUnicode(t *testing.T) {
	// Folding, not ASCII lowercasing: both casings of a non-ASCII name
	// must land on the same index key.
	assert.Equal(t, foldName("Müller"), foldName("MÜLLER"))
	assert.Equal(t, foldName("Ólafsson"), foldName("ÓLAFSSON"))
}
