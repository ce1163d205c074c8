// Package config holds runtime configuration: defaults, YAML config file,
// environment overrides, CLI flag parsing, and validation. With no flags the
// tool reads names.csv and photos/ and writes to output/.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultExtensions is the photo allow-list used when none is configured.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".cr2"}

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then layered with [Config.ApplyFile], [Config.ApplyEnv] and [ParseFlags]
// before being passed (by pointer) to the packages that need it.
type Config struct {
	// Paths.
	PhotoFolder  string // Default: "photos". Source of the photos to rename.
	OutputFolder string // Default: "output". Created if missing.
	NamesFile    string // Default: "names.csv". Also named in error messages.
	GroupsFile   string // Default: "output.json". JSON sidecar of the grouping.

	// AllowedExtensions are lowercase with a leading dot.
	AllowedExtensions []string

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() Config {
	exts := make([]string, len(DefaultExtensions))
	copy(exts, DefaultExtensions)
	return Config{
		PhotoFolder:       "photos",
		OutputFolder:      "output",
		NamesFile:         "names.csv",
		GroupsFile:        "output.json",
		AllowedExtensions: exts,
		ColorMode:         ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// NormalizeExtensions lowercases each extension, adds a missing leading dot,
// drops blanks and removes duplicates while keeping first-seen order.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || e == "." {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}

// ParseExtensionList splits a comma-separated extension list ("jpg, .PNG")
// and normalizes it.
func ParseExtensionList(s string) []string {
	return NormalizeExtensions(strings.Split(s, ","))
}

// Allows reports whether ext (any case, with leading dot) is in the allow-list.
func (c *Config) Allows(ext string) bool {
	ext = strings.ToLower(ext)
	for _, a := range c.AllowedExtensions {
		if a == ext {
			return true
		}
	}
	return false
}

// Validate normalizes the extension list and checks that every path is set
// and the color mode is known.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	c.AllowedExtensions = NormalizeExtensions(c.AllowedExtensions)
	if len(c.AllowedExtensions) == 0 {
		return errors.New("allowed extensions must not be empty")
	}

	if c.NamesFile == "" {
		return errors.New("names file must not be empty")
	}
	if c.PhotoFolder == "" || c.OutputFolder == "" {
		return errors.New("need both photo folder and output folder")
	}
	if c.GroupsFile == "" {
		return errors.New("groups file must not be empty")
	}
	return nil
}

// ValidatePaths ensures the resolved output folder is not the photo folder
// itself. Renaming in place could overwrite a photo that has not been
// processed yet. Both arguments must be absolute, symlink-resolved paths.
// Discovery is not recursive, so an output folder nested inside the photo
// folder is fine.
func (c *Config) ValidatePaths(photoAbs, outputAbs string) error {
	if photoAbs == outputAbs {
		return errors.New("output folder must not be the photo folder")
	}
	return nil
}
