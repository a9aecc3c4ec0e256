package rust

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/dialect/standards"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(content), 0644))
}

func TestDetect_EditionDeclared(t *testing.T) {
	tmpDir := t.TempDir()
	writeManifest(t, tmpDir, `[package]
name = "demo"
version = "0.1.0"
edition = "2021"
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "2021", result.Version)
	assert.Equal(t, standards.EvidenceBuildDescription, result.Evidence)
	assert.Equal(t, filepath.Join(tmpDir, "Cargo.toml"), result.Detail)
}

func TestDetect_MissingEditionUsesCargoDefault(t *testing.T) {
	tmpDir := t.TempDir()
	writeManifest(t, tmpDir, `[package]
name = "demo"
version = "0.1.0"
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, DefaultEdition, result.Version)
	assert.Equal(t, standards.EvidenceDefault, result.Evidence)
}

func TestDetect_WorkspaceInheritedEditionFallsBack(t *testing.T) {
	tmpDir := t.TempDir()
	writeManifest(t, tmpDir, `[package]
name = "demo"
edition.workspace = true
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, DefaultEdition, result.Version)
	assert.Equal(t, standards.EvidenceDefault, result.Evidence)
}

func TestDetect_MalformedManifestFallsBack(t *testing.T) {
	tmpDir := t.TempDir()
	writeManifest(t, tmpDir, "[package\nedition = ")

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, DefaultEdition, result.Version)
}

func TestDetect_NoManifestReturnsDefault(t *testing.T) {
	result := Module{}.Detect(t.TempDir())

	assert.Equal(t, DefaultEdition, result.Version)
}
