// Package c detects the C standard version a project targets, using the same
// evidence order as the C++ detector minus the source probe.
package c

import (
	"os"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/LegacyCodeHQ/dialect/standards"
	"github.com/LegacyCodeHQ/dialect/standards/findup"
	"github.com/LegacyCodeHQ/dialect/standards/langsupport"
)

// DefaultStandard is the fallback when no build artifact names a version.
const DefaultStandard = "11"

const languageName = "c"

// The (\d{2}) group cannot match -std=c++NN or -std=gnu++NN because the
// digits there follow a '+'.
var cStdFlagPattern = regexp.MustCompile(`-std=(?:gnu|c)(\d{2})`)

var cmakeStandardPatterns = []*regexp.Regexp{
	regexp.MustCompile(`CMAKE_C_STANDARD\s+(\d+)`),
	regexp.MustCompile(`\bc_std_(\d+)`),
}

type Module struct{}

func (Module) Name() string { return languageName }

func (Module) BuildFiles() []string {
	return []string{"compile_commands.json", "CMakeLists.txt"}
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityAllEvidence
}

func (Module) Flag(version string) string {
	return "-std=c" + version
}

func (Module) Detect(dir string) standards.Standard {
	if version, path, ok := compileCommandsStandard(dir); ok {
		return standards.Standard{Language: languageName, Version: version, Evidence: standards.EvidenceCompileCommands, Detail: path}
	}

	if version, path, ok := cmakeStandard(dir); ok {
		return standards.Standard{Language: languageName, Version: version, Evidence: standards.EvidenceBuildDescription, Detail: path}
	}

	return standards.Standard{Language: languageName, Version: DefaultStandard, Evidence: standards.EvidenceDefault}
}

func compileCommandsStandard(dir string) (string, string, bool) {
	path, ok := findup.Nearest(dir, "compile_commands.json")
	if !ok {
		return "", "", false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", false
	}

	command := firstRecordCommand(data)
	match := cStdFlagPattern.FindStringSubmatch(command)
	if match == nil {
		return "", "", false
	}

	return match[1], path, true
}

func firstRecordCommand(data []byte) string {
	if command := gjson.GetBytes(data, "0.command"); command.Type == gjson.String {
		return command.String()
	}

	arguments := gjson.GetBytes(data, "0.arguments")
	if !arguments.IsArray() {
		return ""
	}

	var parts []string
	for _, argument := range arguments.Array() {
		parts = append(parts, argument.String())
	}
	return strings.Join(parts, " ")
}

func cmakeStandard(dir string) (string, string, bool) {
	path, ok := findup.Nearest(dir, "CMakeLists.txt")
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
