package errors

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// maxPackageNameLen bounds names read from manifests.
const maxPackageNameLen = 256

// forbiddenNameParts may never appear in a name that ends up in a registry URL.
var forbiddenNameParts = []string{"..", "//", "\\", "\x00"}

var (
	// PEP 508 distribution names.
	pythonNameRe = regexp.MustCompile(`^([A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9._-]*[A-Za-z0-9])$`)

	// npm names, optionally scoped. Legacy packages may use uppercase.
	npmNameRe = regexp.MustCompile(`^(@[A-Za-z0-9-~][A-Za-z0-9-._~]*/)?[A-Za-z0-9-~][A-Za-z0-9-._~]*$`)
)

// ValidatePackageName applies the checks shared by every ecosystem before a
// manifest entry is turned into a registry request: the name must be
// non-empty, at most 256 bytes, free of control characters and free of path
// traversal sequences.
func ValidatePackageName(name string) error {
	switch {
	case name == "":
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	case len(name) > maxPackageNameLen:
		return New(ErrCodeInvalidPackage, "package name too long (max %d characters)", maxPackageNameLen)
	case strings.IndexFunc(name, unicode.IsControl) >= 0:
		return New(ErrCodeInvalidPackage, "package name contains control characters")
	}
	for _, part := range forbiddenNameParts {
		if strings.Contains(name, part) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", part)
		}
	}
	return nil
}

// ValidatePythonPackageName validates a PyPI distribution name.
// Extras ("requests[socks]") and version markers are rejected.
func ValidatePythonPackageName(name string) error {
	return validateName(name, pythonNameRe, "Python")
}

// ValidateNpmPackageName validates an npm package name such as "@babel/core".
func ValidateNpmPackageName(name string) error {
	return validateName(name, npmNameRe, "npm")
}

func validateName(name string, re *regexp.Regexp, ecosystem string) error {
	if err := ValidatePackageName(name); err != nil {
		return err
	}
	if !re.MatchString(name) {
		return New(ErrCodeInvalidPackage, "invalid %s package name: %q", ecosystem, name)
	}
	return nil
}

// ValidateURL checks a registry base URL: it must parse, use http or https
// and name a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme: %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL has no host: %q", rawURL)
	}
	return nil
}
