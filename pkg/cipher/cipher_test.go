package cipher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErebusAres/DriftShell/pkg/cipher"
	"github.com/ErebusAres/DriftShell/pkg/state"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    cipher.Kind
		wantErr bool
	}{
		{in: "rot13", want: cipher.ROT13},
		{in: "rot", want: cipher.ROT13},
		{in: "r13", want: cipher.ROT13},
		{in: "ROT13", want: cipher.ROT13},
		{in: "b64", want: cipher.Base64},
		{in: "base64", want: cipher.Base64},
		{in: "caesar", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			kind, err := cipher.ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, cipher.ErrUnknownCipher)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestResolve(t *testing.T) {
	got, err := cipher.Resolve("explicit", "cached")
	require.NoError(t, err)
	assert.Equal(t, "explicit", got)

	got, err = cipher.Resolve("", "cached")
	require.NoError(t, err)
	assert.Equal(t, "cached", got)

	_, err = cipher.Resolve("", "")
	assert.ErrorIs(t, err, cipher.ErrNoCipher)
}

func TestRot13(t *testing.T) {
	decoded, err := cipher.Decode(cipher.ROT13, "rzore vf gur qevsg. gur nepuvir jnagf n onqtr naq n znfx.")
	require.NoError(t, err)
	assert.Equal(t, "ember is the drift. the archive wants a badge and a mask.", decoded)

	// Case and punctuation pass through.
	decoded, err = cipher.Decode(cipher.ROT13, "Uryyb, Jbeyq! 123")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World! 123", decoded)
}

func TestRot13Involution(t *testing.T) {
	inputs := []string{
		"the quick brown fox",
		"MIXED Case With Spaces",
		"gur eryvp xrl jnvgf va gur pnpur.",
	}
	for _, in := range inputs {
		once, err := cipher.Decode(cipher.ROT13, in)
		require.NoError(t, err)
		twice, err := cipher.Decode(cipher.ROT13, once)
		require.NoError(t, err)
		assert.Equal(t, in, twice)
	}
}

func TestBase64(t *testing.T) {
	decoded, err := cipher.Decode(cipher.Base64, "U0lHSUw6IExBVFRJQ0U=")
	require.NoError(t, err)
	assert.Equal(t, "SIGIL: LATTICE", decoded)

	_, err = cipher.Decode(cipher.Base64, "not!!valid@@b64")
	assert.ErrorIs(t, err, cipher.ErrDecode)

	// Valid base64 of invalid UTF-8 decodes with replacement, not an error.
	decoded, err = cipher.Decode(cipher.Base64, "/w==")
	require.NoError(t, err)
	assert.Equal(t, "�", decoded)
}

func TestScanSigils(t *testing.T) {
	s := state.New("ghost")

	cipher.ScanSigils(s, "ember is the drift.")
	assert.True(t, s.HasFlag("ember_phrase"))
	assert.False(t, s.HasFlag("lattice_sigil"))
	assert.Equal(t, []string{"Decoded ember phrase"}, s.Log)

	// Re-scanning the same phrase does not duplicate the event.
	cipher.ScanSigils(s, "EMBER again")
	assert.Len(t, s.Log, 1)

	cipher.ScanSigils(s, "SIGIL: LATTICE")
	assert.True(t, s.HasFlag("lattice_sigil"))
	assert.Len(t, s.Log, 2)
}

func TestScanSigilsBothFireFromOneDecode(t *testing.T) {
	s := state.New("ghost")

	cipher.ScanSigils(s, "the ember lights the lattice")
	assert.True(t, s.HasFlag("ember_phrase"))
	assert.True(t, s.HasFlag("lattice_sigil"))
	assert.Len(t, s.Log, 2)
}
