// Package cpp detects the C++ standard version a project targets.
//
// Evidence is consulted in a fixed priority order: the nearest
// compile_commands.json, then the nearest CMakeLists.txt, then a bounded
// probe of the project's own sources. Each source fails soft; when nothing
// matches the detector falls back to DefaultStandard.
package cpp

import (
	"github.com/LegacyCodeHQ/dialect/standards"
	"github.com/LegacyCodeHQ/dialect/standards/langsupport"
)

// DefaultStandard is returned when no build artifact or source file yields a
// version. C++17 keeps diagnostics quiet on the code most maintained projects
// actually write without opting into post-17 semantics nobody asked for.
const DefaultStandard = "17"

const languageName = "cpp"

type Module struct{}

func (Module) Name() string { return languageName }

func (Module) BuildFiles() []string {
	return []string{"compile_commands.json", "CMakeLists.txt"}
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityAllEvidence
}

func (Module) Flag(version string) string {
	return "-std=c++" + version
}

// Detect walks the evidence sources in priority order and returns the first
// version found. It never fails: unreadable or malformed evidence is treated
// as absent.
func (Module) Detect(dir string) standards.Standard {
	if version, path, ok := compileCommandsStandard(dir); ok {
		return standards.Standard{Language: languageName, Version: version, Evidence: standards.EvidenceCompileCommands, Detail: path}
	}

	if version, path, ok := cmakeStandard(dir); ok {
		return standards.Standard{Language: languageName, Version: version, Evidence: standards.EvidenceBuildDescription, Detail: path}
	}

	if version, pinnedBy, ok := probeSourcesStandard(dir); ok {
		return standards.Standard{Language: languageName, Version: version, Evidence: standards.EvidenceSourceProbe, Detail: pinnedBy}
	}

	return standards.Standard{Language: languageName, Version: DefaultStandard, Evidence: standards.EvidenceDefault}
}
