package naming

import (
	"fmt"
	"regexp"
)

const (
	serviceNameMaxLength = 24
	stackNameMaxLength   = 32
)

// dns1123Label matches lowercase RFC 1123 labels (letters, digits, hyphens,
// alphanumeric at both ends).
var dns1123Label = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)

func validateDNS1123Label(name string, maximum int, labelKind string) error {
	if name == "" {
		return fmt.Errorf("%s name must not be empty", labelKind)
	}
	if len(name) > maximum {
		return fmt.Errorf("%s name exceeds %d characters", labelKind, maximum)
	}
	if !dns1123Label.MatchString(name) {
		return fmt.Errorf("invalid %s name: must be a lowercase RFC 1123 label", labelKind)
	}
	return nil
}

// ValidateServiceName checks a service identifier used in naming hashes.
func ValidateServiceName(name string) error {
	return validateDNS1123Label(name, serviceNameMaxLength, "service")
}

// ValidateStackName checks a stack name. Stack names feed DNS-visible
// resource names (function app hostname), hence the label restriction.
func ValidateStackName(name string) error {
	return validateDNS1123Label(name, stackNameMaxLength, "stack")
}
