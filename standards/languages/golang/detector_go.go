// Package golang detects the Go language version declared by a module.
package golang

import (
	"os"
	"regexp"

	"github.com/LegacyCodeHQ/dialect/standards"
	"github.com/LegacyCodeHQ/dialect/standards/findup"
	"github.com/LegacyCodeHQ/dialect/standards/langsupport"
)

// DefaultVersion is the fallback when no go.mod declares a version.
const DefaultVersion = "1.21"

const languageName = "go"

var goDirectivePattern = regexp.MustCompile(`(?m)^go\s+(\d+(?:\.\d+){0,2})\s*$`)

type Module struct{}

func (Module) Name() string { return languageName }

func (Module) BuildFiles() []string {
	return []string{"go.mod"}
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityBuildFilesOnly
}

// Flag returns "": Go tooling reads the version from go.mod, not a flag.
func (Module) Flag(version string) string {
	return ""
}

func (Module) Detect(dir string) standards.Standard {
	path, ok := findup.Nearest(dir, "go.mod")
	if !ok {
		return defaultStandard()
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return defaultStandard()
	}

	match := goDirectivePattern.FindSubmatch(text)
	if match == nil {
		return defaultStandard()
	}

	return standards.Standard{Language: languageName, Version: string(match[1]), Evidence: standards.EvidenceBuildDescription, Detail: path}
}

func defaultStandard() standards.Standard {
	return standards.Standard{Language: languageName, Version: DefaultVersion, Evidence: standards.EvidenceDefault}
}
