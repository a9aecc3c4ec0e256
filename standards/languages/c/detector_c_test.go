package c

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/dialect/standards"
)

func writeProjectFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDetect_NoEvidenceReturnsDefault(t *testing.T) {
	result := Module{}.Detect(t.TempDir())

	assert.Equal(t, DefaultStandard, result.Version)
	assert.Equal(t, standards.EvidenceDefault, result.Evidence)
}

func TestDetect_CompileCommands(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "compile_commands.json", `[
  {"directory": "/project", "command": "cc -std=gnu17 -c main.c", "file": "main.c"}
]`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "17", result.Version)
	assert.Equal(t, standards.EvidenceCompileCommands, result.Evidence)
	assert.Equal(t, filepath.Join(tmpDir, "compile_commands.json"), result.Detail)
}

func TestDetect_DoesNotMatchCppStdFlag(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "compile_commands.json", `[
  {"directory": "/project", "command": "c++ -std=c++20 -c main.cpp", "file": "main.cpp"}
]`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, DefaultStandard, result.Version)
	assert.Equal(t, standards.EvidenceDefault, result.Evidence)
}

func TestDetect_CMakeVariableAssignment(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "CMakeLists.txt", `project(demo C)
set(CMAKE_C_STANDARD 99)
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "99", result.Version)
	assert.Equal(t, standards.EvidenceBuildDescription, result.Evidence)
}

func TestDetect_CMakeCompileFeature(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "CMakeLists.txt", `add_library(demo demo.c)
target_compile_features(demo PUBLIC c_std_17)
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "17", result.Version)
}

func TestDetect_CxxCompileFeatureIsNotCEvidence(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "CMakeLists.txt", `target_compile_features(demo PUBLIC cxx_std_20)
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, DefaultStandard, result.Version)
}

func TestFlag(t *testing.T) {
	assert.Equal(t, "-std=c11", Module{}.Flag("11"))
}
