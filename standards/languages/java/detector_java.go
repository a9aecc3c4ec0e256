// Package java detects the Java release a project compiles against, scraping
// Gradle build scripts and Maven POMs as text.
package java

import (
	"os"
	"regexp"

	"github.com/LegacyCodeHQ/dialect/standards"
	"github.com/LegacyCodeHQ/dialect/standards/findup"
	"github.com/LegacyCodeHQ/dialect/standards/langsupport"
)

// DefaultRelease is the fallback when no build script names a release.
const DefaultRelease = "17"

const languageName = "java"

var gradlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`JavaVersion\.VERSION_(\d+)`),
	regexp.MustCompile(`jvmToolchain\((\d+)\)`),
	regexp.MustCompile(`sourceCompatibility\s*=?\s*['"]?(?:1\.)?(\d+)`),
}

var mavenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`<maven\.compiler\.release>\s*(\d+)`),
	regexp.MustCompile(`<maven\.compiler\.source>\s*(?:1\.)?(\d+)`),
	regexp.MustCompile(`<release>\s*(\d+)\s*</release>`),
}

type Module struct{}

func (Module) Name() string { return languageName }

func (Module) BuildFiles() []string {
	return []string{"build.gradle", "build.gradle.kts", "pom.xml"}
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityBuildFilesOnly
}

// Flag returns the javac release flag form.
func (Module) Flag(version string) string {
	return "--release " + version
}

func (Module) Detect(dir string) standards.Standard {
	for _, evidence := range []struct {
		file     string
		patterns []*regexp.Regexp
	}{
		{"build.gradle", gradlePatterns},
		{"build.gradle.kts", gradlePatterns},
		{"pom.xml", mavenPatterns},
	} {
		if version, path, ok := scrapeNearest(dir, evidence.file, evidence.patterns); ok {
			return standards.Standard{Language: languageName, Version: version, Evidence: standards.EvidenceBuildDescription, Detail: path}
		}
	}

	return standards.Standard{Language: languageName, Version: DefaultRelease, Evidence: standards.EvidenceDefault}
}

func scrapeNearest(dir, name string, patterns []*regexp.Regexp) (string, string, bool) {
	path, ok := findup.Nearest(dir, name)
	if !ok {
		return "", "", false
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return "", "", false
	}

	for _, pattern := range patterns {
		if match := pattern.FindSubmatch(text); match != nil {
			return string(match[1]), path, true
		}
	}

	return "", "", false
}
