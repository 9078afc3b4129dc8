// Package cipher decodes the encoded payloads scattered through the drift:
// rot13 notes and base64 sigils. Decoding is pure; flag unlocking happens in
// ScanSigils so callers control when state is touched.
package cipher

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Kind is a supported cipher.
type Kind string

const (
	ROT13  Kind = "rot13"
	Base64 Kind = "base64"
)

var (
	// ErrUnknownCipher is returned for a cipher name with no decoder.
	ErrUnknownCipher = errors.New("unknown cipher")
	// ErrNoCipher is returned when neither a payload nor a cached cipher
	// text is available.
	ErrNoCipher = errors.New("no cached cipher")
	// ErrDecode wraps a malformed-payload failure.
	ErrDecode = errors.New("decode failed")
)

// ParseKind resolves a user-typed cipher name, accepting the short aliases.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "rot13", "rot", "r13":
		return ROT13, nil
	case "b64", "base64":
		return Base64, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCipher, name)
	}
}

// Resolve picks the payload to decode: an explicit payload wins, otherwise
// the last cipher text the player read.
func Resolve(payload, cached string) (string, error) {
	if payload != "" {
		return payload, nil
	}
	if cached != "" {
		return cached, nil
	}
	return "", ErrNoCipher
}

// Decode decodes payload with the given cipher. rot13 cannot fail; base64
// rejects malformed input rather than producing partial output, and decoded
// bytes are treated as UTF-8 with invalid sequences replaced.
func Decode(kind Kind, payload string) (string, error) {
	switch kind {
	case ROT13:
		return rot13(payload), nil
	case Base64:
		raw, err := base64.StdEncoding.Strict().DecodeString(payload)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return strings.ToValidUTF8(string(raw), "�"), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCipher, kind)
	}
}

// rot13 is its own inverse: letters rotate 13 places, case preserved,
// everything else passes through.
func rot13(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+13)%26
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+13)%26
		default:
			return r
		}
	}, s)
}
