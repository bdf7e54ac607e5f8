// Package bridge supplies the Telegram WebApp init payload to the API client.
//
// Every Source is sampled on each call and never caches: the backend
// re-validates the payload on every request, so a rotated payload takes
// effect on the next call.
package bridge

import (
	"os"
	"strings"
)

// Source returns the current raw init payload. An empty string means the
// payload is unavailable, e.g. when running outside the Telegram shell.
type Source interface {
	InitData() string
}

// Func adapts a plain function to Source.
type Func func() string

func (f Func) InitData() string { return f() }

// Static is a fixed payload.
type Static string

func (s Static) InitData() string { return string(s) }

// EnvSource reads the payload from an environment variable on every call.
type EnvSource struct {
	Name string
}

func (e EnvSource) InitData() string {
	return os.Getenv(e.Name)
}

// FileSource reads the payload from a file on every call. Surrounding
// whitespace is trimmed; a missing or unreadable file yields "".
type FileSource struct {
	Path string
}

func (f FileSource) InitData() string {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// First returns the first non-empty payload among sources, in order.
type First []Source

func (fs First) InitData() string {
	for _, s := range fs {
		if s == nil {
			continue
		}
		if v := s.InitData(); v != "" {
			return v
		}
	}
	return ""
}
