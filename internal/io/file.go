package ioutils

import (
	"context"
	"os"
	"regexp"
	"strings"
)

var (
	invalidChars  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots  = regexp.MustCompile(`\.+$`)
	repeatedSpace = regexp.MustCompile(`\s+`)
)

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Checked before writing; a cancelled context writes nothing
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	line := []byte("<book>...</book>\n")
//	err := WriteFile(ctx, "/exports/01 Design Patterns.xml", line)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName makes name safe to use as a file name on every platform.
//
// Characters Windows rejects (<>:"/\|?* and 0x00-0x1f) become underscores,
// trailing dots are dropped, whitespace runs collapse to one space and
// trailing spaces are trimmed.
//
// Example:
//
//	SanitizeFileName("Design Patterns: Elements") // "Design Patterns_ Elements"
//	SanitizeFileName("AC/DC...")                  // "AC_DC"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpace.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/exports/inventory")
//	// Creates /exports and /exports/inventory if needed
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
