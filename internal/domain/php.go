package domain

import (
	"regexp"
	"strings"
)

// PhpIdentity is the (prefix, base, version) tuple extracted from a PHP
// executable path. Version may be empty, in which case the identity collapses
// to the generic base name. A path that does not look like a PHP executable
// yields the zero identity.
type PhpIdentity struct {
	Prefix  string
	Base    string
	Version string
}

// phpPathPattern matches the first path segment shaped like php, php8.2 or
// php@8.2, whether it terminates the path (/usr/bin/php8.2) or is an
// intermediate directory (.../Cellar/php@8.2/8.2.10/bin/php).
var phpPathPattern = regexp.MustCompile(`^(.*?)/(php)@?([\d.]*)(?:/.*)?$`)

// ParsePhpPath extracts a PhpIdentity from an executable path. A non-match
// is a valid "no version" identity, not an error.
func ParsePhpPath(path string) PhpIdentity {
	m := phpPathPattern.FindStringSubmatch(path)
	if m == nil {
		return PhpIdentity{}
	}
	return PhpIdentity{Prefix: m[1], Base: m[2], Version: m[3]}
}

// IsZero reports whether no PHP executable was recognized.
func (i PhpIdentity) IsZero() bool {
	return i.Base == ""
}

// Formula is the concatenated base name and version suffix ("php8.2", or
// just "php" when no version suffix was present).
func (i PhpIdentity) Formula() string {
	return i.Base + i.Version
}

// VersionDigits projects a version label onto its digit characters only:
// "php@8.2", "php8.2" and "82" all project to "82".
func VersionDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhpVersionsEqual compares two version labels by their digit projections.
// The full digit run is compared, not a numeric parse: "php8.2" equals "82"
// but not "820".
func PhpVersionsEqual(a, b string) bool {
	return VersionDigits(a) == VersionDigits(b)
}
