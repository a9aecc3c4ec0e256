//go:build !dev

package devlog

func Detection(language, version, evidence string) {
	_ = language
	_ = version
	_ = evidence
}

func Debug(message string, metadata map[string]any) {
	_ = message
	_ = metadata
}
