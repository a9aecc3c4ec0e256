package langsupport

// MaturityLevel describes how much of a language's evidence chain the
// detector covers.
type MaturityLevel int

const (
	// MaturityExperimental: detection exists but no evidence source is
	// exercised against real project fixtures yet.
	MaturityExperimental MaturityLevel = iota
	// MaturityBuildFilesOnly: build-description scraping is implemented and
	// tested; deeper evidence (compilation databases, source probing) is
	// partial or absent.
	MaturityBuildFilesOnly
	// MaturityAllEvidence: every evidence source the language defines is
	// implemented and covered by tests.
	MaturityAllEvidence
	MaturityStable
)

func (level MaturityLevel) DisplayName() string {
	switch level {
	case MaturityExperimental:
		return "Experimental"
	case MaturityBuildFilesOnly:
		return "Build Files Only"
	case MaturityAllEvidence:
		return "All Evidence"
	case MaturityStable:
		return "Stable"
	default:
		return "Unknown"
	}
}

func (level MaturityLevel) Symbol() string {
	switch level {
	case MaturityExperimental:
		return "○"
	case MaturityBuildFilesOnly:
		return "◐"
	case MaturityAllEvidence:
		return "●"
	case MaturityStable:
		return "✓"
	default:
		return "?"
	}
}

// MaturityLevels returns the ordered set of known maturity levels.
func MaturityLevels() []MaturityLevel {
	return []MaturityLevel{
		MaturityExperimental,
		MaturityBuildFilesOnly,
		MaturityAllEvidence,
		MaturityStable,
	}
}
