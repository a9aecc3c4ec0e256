//go:build dev

// Package devlog ships detection events to a local log daemon during
// development builds. Production builds compile the no-op variant.
package devlog

import (
	"encoding/json"
	"fmt"
	"net"
	"time"
)

const defaultSocket = "/tmp/mcplogd.sock"
const appName = "dialect"

const (
	levelInfo  = "info"
	levelDebug = "debug"
)

type entry struct {
	App       string         `json:"app"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Detection records the outcome of a detection run.
func Detection(language, version, evidence string) {
	log(levelInfo, "standard detected", map[string]any{
		"language": language,
		"version":  version,
		"evidence": evidence,
	})
}

// Debug records an arbitrary development-time event.
func Debug(message string, metadata map[string]any) {
	log(levelDebug, message, metadata)
}

func log(level, message string, metadata map[string]any) {
	conn, err := net.Dial("unix", defaultSocket)
	if err != nil {
		return
	}
	defer conn.Close()

	e := entry{
		App:       appName,
		Level:     level,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Metadata:  metadata,
	}
	data, _ := json.Marshal(e)
	fmt.Fprintf(conn, "%s\n", data)
}
