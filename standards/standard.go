package standards

// EvidenceSource identifies which artifact a standard version was read from.
type EvidenceSource int

const (
	EvidenceDefault EvidenceSource = iota
	EvidenceCompileCommands
	EvidenceBuildDescription
	EvidenceSourceProbe
)

func (s EvidenceSource) String() string {
	switch s {
	case EvidenceCompileCommands:
		return "compile-commands"
	case EvidenceBuildDescription:
		return "build-description"
	case EvidenceSourceProbe:
		return "source-probe"
	case EvidenceDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Standard is the result of a detection run: the language-standard version a
// project should be diagnosed against, and where that conclusion came from.
// Detail names the concrete artifact behind the evidence (the build file that
// was scraped, or the translation unit whose include closure pinned the
// version); it is empty for defaults.
type Standard struct {
	Language string
	Version  string
	Evidence EvidenceSource
	Detail   string
}
