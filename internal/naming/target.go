package naming

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidName is matched by every [InvalidNameError].
var ErrInvalidName = errors.New("invalid target name")

// InvalidNameError reports a name that cannot be used as a file name.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid target name %q: %s", e.Name, e.Reason)
}

// Is lets errors.Is match ErrInvalidName.
func (e *InvalidNameError) Is(target error) bool { return target == ErrInvalidName }

// ValidateName rejects names that would not land directly inside the output
// folder: empty names, "." and "..", and names containing a path separator.
func ValidateName(name string) error {
	switch {
	case name == "":
		return &InvalidNameError{Name: name, Reason: "empty"}
	case name == "." || name == "..":
		return &InvalidNameError{Name: name, Reason: "reserved"}
	case strings.ContainsAny(name, `/\`):
		return &InvalidNameError{Name: name, Reason: "contains a path separator"}
	case strings.ContainsRune(name, 0):
		return &InvalidNameError{Name: name, Reason: "contains a NUL byte"}
	}
	return nil
}

// TargetPath builds <outputDir>/<name><ext> with ext lowercased.
//
//	TargetPath("output", "Alice_Smith", ".JPG") == "output/Alice_Smith.jpg"
func TargetPath(outputDir, name, ext string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(outputDir, name+strings.ToLower(ext)), nil
}
