package cpp

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
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDetect_NoEvidenceReturnsDefault(t *testing.T) {
	result := Module{}.Detect(t.TempDir())

	assert.Equal(t, DefaultStandard, result.Version)
	assert.Equal(t, standards.EvidenceDefault, result.Evidence)
	assert.Equal(t, "cpp", result.Language)
}

func TestDetect_CompileCommandsOutranksCMake(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "compile_commands.json", `[
  {
    "directory": "/project",
    "command": "/usr/bin/c++ -std=c++20 -Iinclude -o main.o -c main.cpp",
    "file": "main.cpp"
  }
]`)
	writeProjectFile(t, tmpDir, "CMakeLists.txt", "set(CMAKE_CXX_STANDARD 17)\n")

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "20", result.Version)
	assert.Equal(t, standards.EvidenceCompileCommands, result.Evidence)
	assert.Equal(t, filepath.Join(tmpDir, "compile_commands.json"), result.Detail)
}

func TestDetect_CompileCommandsArgumentsForm(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "compile_commands.json", `[
  {
    "directory": "/project",
    "arguments": ["/usr/bin/clang++", "-std=gnu++23", "-c", "main.cpp"],
    "file": "main.cpp"
  }
]`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "23", result.Version)
	assert.Equal(t, standards.EvidenceCompileCommands, result.Evidence)
}

func TestDetect_CMakeVariableAssignment(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "CMakeLists.txt", `cmake_minimum_required(VERSION 3.20)
project(demo CXX)
set(CMAKE_CXX_STANDARD 17)
set(CMAKE_CXX_STANDARD_REQUIRED ON)
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "17", result.Version)
	assert.Equal(t, standards.EvidenceBuildDescription, result.Evidence)
	assert.Equal(t, filepath.Join(tmpDir, "CMakeLists.txt"), result.Detail)
}

func TestDetect_CMakeCompileFeature(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "CMakeLists.txt", `project(demo CXX)
add_library(demo demo.cpp)
target_compile_features(demo PUBLIC cxx_std_14)
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "14", result.Version)
	assert.Equal(t, standards.EvidenceBuildDescription, result.Evidence)
}

func TestDetect_VariableAssignmentOutranksCompileFeature(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "CMakeLists.txt", `target_compile_features(demo PUBLIC cxx_std_14)
set(CMAKE_CXX_STANDARD 20)
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "20", result.Version)
}

func TestDetect_MalformedCompileCommandsFallsThrough(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "compile_commands.json", `{not json at all`)
	writeProjectFile(t, tmpDir, "CMakeLists.txt", "set(CMAKE_CXX_STANDARD 17)\n")

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "17", result.Version)
	assert.Equal(t, standards.EvidenceBuildDescription, result.Evidence)
}

func TestDetect_CompileCommandsWithoutStdFlagFallsThrough(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "compile_commands.json", `[
  {"directory": "/project", "command": "/usr/bin/c++ -c main.cpp", "file": "main.cpp"}
]`)
	writeProjectFile(t, tmpDir, "CMakeLists.txt", "target_compile_features(demo PRIVATE cxx_std_23)\n")

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "23", result.Version)
}

func TestDetect_BuildFilesInAncestorDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "CMakeLists.txt", "set(CMAKE_CXX_STANDARD 20)\n")

	nested := filepath.Join(tmpDir, "src", "core")
	require.NoError(t, os.MkdirAll(nested, 0755))

	result := Module{}.Detect(nested)

	assert.Equal(t, "20", result.Version)
}

func TestDetect_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "CMakeLists.txt", "set(CMAKE_CXX_STANDARD 17)\n")

	first := Module{}.Detect(tmpDir)
	second := Module{}.Detect(tmpDir)

	assert.Equal(t, first, second)
}

func TestDetect_SourceProbeDirectInclude(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "main.cpp", `#include <concepts>
#include <vector>

int main() { return 0; }
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "20", result.Version)
	assert.Equal(t, standards.EvidenceSourceProbe, result.Evidence)
}

func TestDetect_SourceProbeThroughIncludeGraph(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, filepath.Join("src", "main.cpp"), `#include "util.hpp"

int main() { return 0; }
`)
	writeProjectFile(t, tmpDir, filepath.Join("src", "util.hpp"), `#pragma once
#include <optional>
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "17", result.Version)
	assert.Equal(t, standards.EvidenceSourceProbe, result.Evidence)
	assert.Equal(t, filepath.Join(tmpDir, "src", "main.cpp"), result.Detail)
}

func TestDetect_SourceProbeNamesPinningTranslationUnit(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "alpha.cpp", `#include <optional>

int alpha() { return 0; }
`)
	writeProjectFile(t, tmpDir, "beta.cpp", `#include "beta.hpp"

int beta() { return 0; }
`)
	writeProjectFile(t, tmpDir, "beta.hpp", `#pragma once
#include <concepts>
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "20", result.Version)
	assert.Equal(t, standards.EvidenceSourceProbe, result.Evidence)
	assert.Equal(t, filepath.Join(tmpDir, "beta.cpp"), result.Detail)
}

func TestDetect_SourceProbeHighestHeaderWins(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "main.cpp", `#include <optional>
#include <print>
#include <shared_mutex>

int main() { return 0; }
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, "23", result.Version)
}

func TestDetect_SourceProbeIgnoresUninformativeHeaders(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFile(t, tmpDir, "main.cpp", `#include <vector>
#include <string>

int main() { return 0; }
`)

	result := Module{}.Detect(tmpDir)

	assert.Equal(t, DefaultStandard, result.Version)
	assert.Equal(t, standards.EvidenceDefault, result.Evidence)
}

func TestFlag(t *testing.T) {
	assert.Equal(t, "-std=c++17", Module{}.Flag("17"))
}
