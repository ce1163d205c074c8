package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below.
var (
	ErrCountMismatch   = errors.New("names and photos differ in count")
	ErrNothingToRename = errors.New("no photos and no names to rename")
)

// CountMismatchError reports that the flattened names list and the filtered
// photo list have different lengths. Nothing has been renamed when it is
// returned.
type CountMismatchError struct {
	Names       int
	Photos      int
	NamesFile   string
	PhotoFolder string
}

func (e *CountMismatchError) Error() string {
	more := "More names than photos"
	if e.Photos > e.Names {
		more = "More photos than names"
	}
	return fmt.Sprintf("%s (%d names, %d photos). Please check the %s file and the photos in the %s directory.",
		more, e.Names, e.Photos, e.NamesFile, e.PhotoFolder)
}

// Is lets errors.Is match ErrCountMismatch.
func (e *CountMismatchError) Is(target error) bool { return target == ErrCountMismatch }

// RenameError reports the rename that stopped a run. Renames before it have
// already happened and are not undone.
type RenameError struct {
	From string
	To   string
	Done int // Renames completed before this one.
	Err  error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s -> %s (after %d completed): %v", e.From, e.To, e.Done, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }
