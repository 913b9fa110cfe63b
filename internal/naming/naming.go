package naming

// Package naming centralizes generation of short deterministic hashes and
// Azure resource names for a stack. Keeping the logic here allows future
// changes (length/algorithm/limits) without touching call sites.

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

// defaultLength defines the hex length of hashes (bits ~ length * 4).
const defaultLength = 6

// Azure name length limits for the resource kinds managed here.
const (
	maxResourceGroupName  = 90
	maxStorageAccountName = 24
	maxVaultName          = 24
	maxSiteName           = 60
)

// ShortHash returns the hex SHA1 prefix of length n (clamped to digest size).
func ShortHash(s string, n int) string {
	sum := sha1.Sum([]byte(s))
	h := fmt.Sprintf("%x", sum)
	if n > len(h) {
		n = len(h)
	}
	return h[:n]
}

// Hashes groups hierarchical short hashes derived from service and stack
// identifiers.
//
// Mapping (semantic scope -> field):
//
//	service        -> Service
//	service/stack  -> Stack
type Hashes struct {
	Service string
	Stack   string
}

// NewHashes computes hierarchical hashes for the given identifiers.
func NewHashes(service, stack string) Hashes {
	return Hashes{
		Service: ShortHash(service, defaultLength),
		Stack:   ShortHash(fmt.Sprintf("%s:%s", service, stack), defaultLength),
	}
}

// safeTruncate ensures the resulting name does not exceed limit, preserving
// the suffix. Returns an error if the suffix is too long to accommodate any
// base characters.
func safeTruncate(base, suffix, sep string, limit int) (string, error) {
	maxBaseLen := limit - (len(suffix) + len(sep))
	if maxBaseLen < 1 {
		return "", fmt.Errorf("suffix too long: %d chars exceeds limit %d", len(suffix), limit)
	}
	if len(base) > maxBaseLen {
		base = base[:maxBaseLen]
	}
	return base + sep + suffix, nil
}

// alnum strips every character outside [a-z0-9] after lowercasing.
func alnum(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResourceGroupName returns the resource group name for a stack:
// "<stack>-rg-<suffix>" truncated to the Azure limit.
func ResourceGroupName(stack, suffix string) (string, error) {
	return safeTruncate(stack+"-rg", suffix, "-", maxResourceGroupName)
}

// StorageAccountName returns the storage account name for a stack.
// Storage accounts allow only 3-24 lowercase alphanumerics, so the stack
// name is squashed before the suffix is appended.
func StorageAccountName(stack, suffix string) (string, error) {
	base := alnum(stack) + "st"
	name, err := safeTruncate(base, alnum(suffix), "", maxStorageAccountName)
	if err != nil {
		return "", err
	}
	if len(name) < 3 {
		return "", fmt.Errorf("storage account name too short: %q", name)
	}
	return name, nil
}

// VaultName returns the key vault name for a stack. Vaults allow 3-24
// alphanumerics and hyphens and must start with a letter.
func VaultName(stack, suffix string) (string, error) {
	base := "kv-" + alnum(stack)
	name, err := safeTruncate(base, alnum(suffix), "-", maxVaultName)
	if err != nil {
		return "", err
	}
	return name, nil
}

// PlanName returns the consumption plan name for a stack.
func PlanName(stack, suffix string) (string, error) {
	return safeTruncate(stack+"-plan", suffix, "-", maxSiteName)
}

// FunctionAppName returns the function app name for a stack. The name
// becomes a DNS label of the default hostname, so it shares site limits.
func FunctionAppName(stack, suffix string) (string, error) {
	return safeTruncate(stack+"-func", suffix, "-", maxSiteName)
}
