package verifier

import (
	"fmt"
	"housebid/internal/auctionerrors"
	"housebid/utils"
	"sync"
)

// Verifier is the external confidential-computation capability. The
// core never implements cryptography itself: ciphertext handles are
// opaque and a clear value enters the ledger only after VerifyReveal
// accepts the decryption proof. Implementations must tolerate malformed
// input and signal rejection instead of crashing.
type Verifier interface {
	// VerifyCiphertext checks that an encrypted amount is well-formed
	// before it is stored.
	VerifyCiphertext(ciphertextHandle, proof string) error

	// VerifyReveal checks that claimedValue is the correct decryption of
	// the ciphertext. A false return means the proof was rejected; an
	// error is reserved for proofs too malformed to evaluate.
	VerifyReveal(ciphertextHandle string, claimedValue uint64, proof string) (bool, error)
}

// FixtureVerifier is a test double backed by precomputed fixtures: a
// registered ciphertext handle maps to the clear value it "encrypts",
// and a reveal is accepted iff the claimed value matches the fixture.
// It stands in for the real confidential-computation service in tests
// and local runs.
type FixtureVerifier struct {
	mu       sync.RWMutex
	fixtures map[string]uint64
}

// NewFixtureVerifier creates an empty fixture verifier
func NewFixtureVerifier() *FixtureVerifier {
	return &FixtureVerifier{
		fixtures: make(map[string]uint64),
	}
}

// RegisterCiphertext records a clear value and returns the opaque
// handle that stands for its ciphertext.
func (v *FixtureVerifier) RegisterCiphertext(clearValue uint64) string {
	v.mu.Lock()
	defer v.mu.Unlock()

	handle := utils.GenerateID()
	v.fixtures[handle] = clearValue
	return handle
}

// VerifyCiphertext accepts any handle produced by RegisterCiphertext
// and rejects everything else as malformed.
func (v *FixtureVerifier) VerifyCiphertext(ciphertextHandle, proof string) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if _, ok := v.fixtures[ciphertextHandle]; !ok {
		return fmt.Errorf("ciphertext %s: %w", ciphertextHandle, auctionerrors.ErrMalformedCiphertext)
	}
	return nil
}

// VerifyReveal accepts a claimed value iff it matches the registered
// fixture for the handle. Unknown handles and wrong values are plain
// rejections, never errors.
func (v *FixtureVerifier) VerifyReveal(ciphertextHandle string, claimedValue uint64, proof string) (bool, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	clearValue, ok := v.fixtures[ciphertextHandle]
	if !ok {
		return false, nil
	}
	return clearValue == claimedValue, nil
}
