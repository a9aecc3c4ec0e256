package langsupport

import "github.com/LegacyCodeHQ/dialect/standards"

// Module describes pluggable language-standard detection.
type Module interface {
	Name() string
	BuildFiles() []string
	Maturity() MaturityLevel

	// Detect infers the standard version a project rooted at dir should be
	// diagnosed against. It is total: evidence that is missing, unreadable,
	// or unparseable degrades to the next source and finally to the
	// language's fixed default, never to an error.
	Detect(dir string) standards.Standard

	// Flag renders the compiler flag for a version token, or "" when the
	// language's tooling takes the version some other way.
	Flag(version string) string
}
