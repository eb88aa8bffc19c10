package profile

import "fmt"

// MissingProfileError reports a profile file that does not exist on disk.
type MissingProfileError struct {
	Path string
}

func (e *MissingProfileError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.Path)
}

// MissingActiveError reports that no active configuration is installed.
type MissingActiveError struct {
	Path string
}

func (e *MissingActiveError) Error() string {
	return fmt.Sprintf("no active configuration at %s", e.Path)
}
