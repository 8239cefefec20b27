package validators

import (
	"fmt"
	"regexp"
	"strings"
)

var appIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// ValidateAppID checks appID against ^[a-zA-Z0-9][a-zA-Z0-9_-]*$ and rejects
// path separators and ".." before the pattern, so traversal attempts get a
// distinct error.
func ValidateAppID(appID string) error {
	if appID == "" {
		return ErrEmptyAppID
	}
	if strings.ContainsAny(appID, `/\`) || strings.Contains(appID, "..") {
		return fmt.Errorf("%w: %q", ErrAppIDTraversal, appID)
	}
	if !appIDPattern.MatchString(appID) {
		return fmt.Errorf("%w: %q", ErrInvalidAppID, appID)
	}
	return nil
}

// IsValidAppID reports whether ValidateAppID accepts appID.
func IsValidAppID(appID string) bool {
	return ValidateAppID(appID) == nil
}
