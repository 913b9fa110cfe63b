package naming

import (
	"crypto/rand"
	"fmt"
	"strconv"
)

// SuffixLength is the length of generated random name suffixes.
const SuffixLength = 8

// DeterministicSuffix returns the default name suffix for a stack: a short
// stable hash of the service/stack identifiers. Re-deploys of the same stack
// resolve the same resource names without any persisted state.
func DeterministicSuffix(service, stack string) string {
	return NewHashes(service, stack).Stack
}

// RandomSuffix returns a random lowercase base36 suffix of SuffixLength
// characters. Callers are expected to persist the value so later deploys
// of the same stack keep addressing the same resources.
func RandomSuffix() (string, error) {
	// 6 bytes gives enough entropy for 8 base36 chars (36^8 < 2^48).
	randomBytes := make([]byte, 6)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	var randomInt uint64
	for _, b := range randomBytes {
		randomInt = randomInt*256 + uint64(b)
	}
	const space = 36 * 36 * 36 * 36 * 36 * 36 * 36 * 36 // 36^8
	randomInt = randomInt % space

	s := strconv.FormatUint(randomInt, 36)
	return fmt.Sprintf("%08s", s), nil
}
