package errors

import (
	"strings"
	"unicode"
)

// maxFilenameLength keeps generated names under common filesystem limits
// once an extension is appended.
const maxFilenameLength = 200

// ValidateFilename checks that name can be used as a single path element.
// Artwork titles become file names on export, so this is applied to every
// name derived from generated text.
//
// Validation rules:
//   - Name cannot be empty or consist only of spaces and dots
//   - Maximum length of 200 bytes
//   - No control characters or null bytes
//   - No path separators
func ValidateFilename(name string) error {
	if strings.Trim(name, " .") == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}

	if len(name) > maxFilenameLength {
		return New(ErrCodeInvalidPath, "file name too long (max %d characters)", maxFilenameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators")
	}

	return nil
}

// ValidateOutputDir validates a directory path supplied by the user.
// Relative and absolute paths are both fine; only malformed input is rejected.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 4096
	if len(dir) > maxPathLength {
		return New(ErrCodeInvalidPath, "output directory too long (max %d characters)", maxPathLength)
	}

	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}

	return nil
}

// ValidateAddr performs a light sanity check on a listen address.
// Full parsing is left to net.Listen.
func ValidateAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidConfig, "listen address cannot be empty")
	}
	if !strings.Contains(addr, ":") {
		return New(ErrCodeInvalidConfig, "listen address must include a port: %q", addr)
	}
	return nil
}
