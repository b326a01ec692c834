package peps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNumber_AcceptsIntegersUnchanged(t *testing.T) {
	for _, in := range []string{"0", "8", "0008", "20000", "+8", "-3", "123456789012345678901234567890"} {
		got, err := ValidateNumber(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, got)
	}
}

func TestValidateNumber_AcceptsRandomOnly(t *testing.T) {
	got, err := ValidateNumber("random")
	require.NoError(t, err)
	assert.Equal(t, "random", got)

	for _, in := range []string{"abc", "Random", "RANDOM", " random", "", "8.0", "0x10", "1e3", "8a"} {
		_, err := ValidateNumber(in)
		assert.ErrorIs(t, err, ErrInvalidArgument, in)
	}
}

// The identifier also becomes part of a file name, so only plain decimal
// digits with an optional sign are integers here.
func TestValidateNumber_RejectsPaddedAndGroupedDigits(t *testing.T) {
	for _, in := range []string{" 8", "8 ", "\t8", "8\n", "1_000", "1,000", "+-8"} {
		_, err := ValidateNumber(in)
		assert.ErrorIs(t, err, ErrInvalidArgument, "%q", in)
	}
}

func TestValidateNumber_ErrorMessageNamesConstraint(t *testing.T) {
	_, err := ValidateNumber("abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer or 'random'")
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"8", "pep-0008.md"},
		{"0", "pep-0000.md"},
		{"257", "pep-0257.md"},
		{"0008", "pep-0008.md"},
		{"3000", "pep-3000.md"},
		{"20000", "pep-20000.md"},
		{"-3", "pep--003.md"},
		{"+8", "pep-+008.md"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.in), tt.in)
	}
}
