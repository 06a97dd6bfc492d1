package figlet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/crust/internal/errors"
)

func TestProfiles(t *testing.T) {
	assert.Equal(t, []Profile{Standard, Big}, Profiles())
	for _, p := range Profiles() {
		assert.True(t, p.IsValid(), "%s should be valid", p)
	}
}

func TestProfileArgs(t *testing.T) {
	args, err := Standard.Args(76)
	require.NoError(t, err)
	assert.Equal(t, []string{"-k", "-w", "76"}, args)

	args, err = Big.Args(76)
	require.NoError(t, err)
	assert.Equal(t, []string{"-k", "-f", "big", "-w", "76"}, args)
}

func TestProfileArgs_DoesNotAliasTable(t *testing.T) {
	a, err := Big.Args(10)
	require.NoError(t, err)
	a[0] = "mutated"

	b, err := Big.Args(10)
	require.NoError(t, err)
	assert.Equal(t, "-k", b[0])
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Profile
		wantErr  bool
		wantHint string
	}{
		{name: "std", input: "std", want: Standard},
		{name: "big", input: "big", want: Big},
		{name: "typo suggests big", input: "bgi", wantErr: true, wantHint: `Did you mean "big"?`},
		{name: "typo suggests std", input: "st", wantErr: true, wantHint: `Did you mean "std"?`},
		{name: "far off has no suggestion", input: "gothic", wantErr: true},
		{name: "case sensitive", input: "BIG", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfile(tt.input, "figlet.footer_profile")
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))

			var detail *oerrors.DetailError
			require.True(t, errors.As(err, &detail))
			assert.Equal(t, "figlet.footer_profile", detail.Field)
			if tt.wantHint != "" {
				assert.Contains(t, detail.Hint, tt.wantHint)
			} else {
				assert.NotContains(t, detail.Hint, "Did you mean")
			}
		})
	}
}
