package cpp

import (
	"os"
	"regexp"

	"github.com/LegacyCodeHQ/dialect/standards/findup"
)

const cmakeListsFile = "CMakeLists.txt"

// Tried in order; the variable assignment outranks the compile-feature form.
var cmakeStandardPatterns = []*regexp.Regexp{
	regexp.MustCompile(`CMAKE_CXX_STANDARD\s+(\d+)`),
	regexp.MustCompile(`cxx_std_(\d+)`),
}

// cmakeStandard scrapes the nearest CMakeLists.txt for a C++ standard
// declaration. The file is pattern-matched as text, not parsed as CMake.
// The second return value is the scraped file's path.
func cmakeStandard(dir string) (string, string, bool) {
	path, ok := findup.Nearest(dir, cmakeListsFile)
	if !ok {
		return "", "", false
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return "", "", false
	}

	for _, pattern := range cmakeStandardPatterns {
		if match := pattern.FindSubmatch(text); match != nil {
			return string(match[1]), path, true
		}
	}

	return "", "", false
}
