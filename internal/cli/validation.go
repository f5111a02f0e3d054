package cli

import (
	"fmt"
	"regexp"
	"strings"
)

// labelIDPattern matches full label IDs like LBL-001.
var labelIDPattern = regexp.MustCompile(`^LBL-\d+$`)

// isLabelID reports whether the argument looks like a label ID rather
// than a serial number.
func isLabelID(arg string) bool {
	return strings.HasPrefix(strings.ToUpper(arg), "LBL-")
}

// validateLabelID checks that an ID has the full LBL-nnn format.
// Returns an error with a helpful message for near-misses.
func validateLabelID(id string) error {
	if labelIDPattern.MatchString(id) {
		return nil
	}

	// Bare digits look like a short ID
	if matched, _ := regexp.MatchString(`^\d+$`, id); matched {
		return fmt.Errorf("invalid label ID '%s'. Use full ID format: LBL-%s", id, id)
	}

	// Wrong case
	if labelIDPattern.MatchString(strings.ToUpper(id)) {
		return fmt.Errorf("invalid label ID '%s'. IDs are case-sensitive, use: %s", id, strings.ToUpper(id))
	}

	return fmt.Errorf("invalid label ID '%s'. Expected format: LBL-nnn", id)
}
