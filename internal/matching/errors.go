package matching

import "fmt"

// MalformedProfileError indicates a profile that cannot participate in
// matching because it lacks its required identifier. Silently skipping such
// a profile would corrupt top-N counts, so the engine fails the computation
// that touched it instead.
type MalformedProfileError struct {
	Name string // profile name if present, for diagnostics
}

func (e *MalformedProfileError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("malformed profile: missing id (name: %s)", e.Name)
	}
	return "malformed profile: missing id"
}
