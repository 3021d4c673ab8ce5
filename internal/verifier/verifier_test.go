package verifier

import (
	"errors"
	"testing"

	"housebid/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

func TestFixtureVerifier_VerifyCiphertext(t *testing.T) {
	t.Parallel()

	v := NewFixtureVerifier()
	handle := v.RegisterCiphertext(42)

	require.NoError(t, v.VerifyCiphertext(handle, "proof"))

	err := v.VerifyCiphertext("not-a-handle", "proof")
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrMalformedCiphertext))
}

func TestFixtureVerifier_VerifyReveal(t *testing.T) {
	t.Parallel()

	v := NewFixtureVerifier()
	handle := v.RegisterCiphertext(42)

	tests := []struct {
		name    string
		handle  string
		claimed uint64
		want    bool
	}{
		{name: "matching_value_accepted", handle: handle, claimed: 42, want: true},
		{name: "wrong_value_rejected", handle: handle, claimed: 43, want: false},
		{name: "unknown_handle_rejected", handle: "garbage", claimed: 42, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ok, err := v.VerifyReveal(tc.handle, tc.claimed, "proof")
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}

func TestFixtureVerifier_HandlesAreUnique(t *testing.T) {
	t.Parallel()

	v := NewFixtureVerifier()
	h1 := v.RegisterCiphertext(10)
	h2 := v.RegisterCiphertext(10)
	require.NotEqual(t, h1, h2)
}
