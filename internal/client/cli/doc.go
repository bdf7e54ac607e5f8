// Package cli implements the interactive ExamHub terminal client.
//
// The App wires the API client, the auth gate, the upload pipeline and the
// session holder built from a config.Config, then runs a small REPL (see
// runREPL). Commands print user-facing results to the App's writer and log
// failures through the configured logging.Logger.
package cli
