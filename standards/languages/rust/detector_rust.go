// Package rust detects the Rust edition declared by a crate manifest.
package rust

import (
	"github.com/BurntSushi/toml"

	"github.com/LegacyCodeHQ/dialect/standards"
	"github.com/LegacyCodeHQ/dialect/standards/findup"
	"github.com/LegacyCodeHQ/dialect/standards/langsupport"
)

// DefaultEdition matches cargo's behavior for manifests with no edition key.
const DefaultEdition = "2015"

const languageName = "rust"

type Module struct{}

type cargoManifest struct {
	Package struct {
		Edition string `toml:"edition"`
	} `toml:"package"`
}

func (Module) Name() string { return languageName }

func (Module) BuildFiles() []string {
	return []string{"Cargo.toml"}
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityBuildFilesOnly
}

// Flag returns "": rustc reads `--edition`, but diagnostics tooling takes it
// from the manifest, so no materialized flag is produced.
func (Module) Flag(version string) string {
	return ""
}

func (Module) Detect(dir string) standards.Standard {
	path, ok := findup.Nearest(dir, "Cargo.toml")
	if !ok {
		return defaultStandard()
	}

	var manifest cargoManifest
	if _, err := toml.DecodeFile(path, &manifest); err != nil {
		// Workspace-inherited editions decode as tables, not strings.
		return defaultStandard()
	}

	if manifest.Package.Edition == "" {
		return defaultStandard()
	}

	return standards.Standard{Language: languageName, Version: manifest.Package.Edition, Evidence: standards.EvidenceBuildDescription, Detail: path}
}

func defaultStandard() standards.Standard {
	return standards.Standard{Language: languageName, Version: DefaultEdition, Evidence: standards.EvidenceDefault}
}
