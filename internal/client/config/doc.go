// Package config loads runtime configuration for the ExamHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the ExamHub API
//	-i int      health check interval (seconds)
//	-e string   environment variable holding the Telegram init payload
//	-f string   file holding the Telegram init payload
//	-m string   page storage: "api" (presigned URLs) or "s3" (direct)
//	-r string   exam recorder: "api" or "sql"
//	-d string   PostgreSQL DSN for the "sql" recorder
//	-l string   log file; empty logs to stderr
//
// # JSON schema
//
// Intervals use timex.Duration, so they can be strings like "15s" or
// integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "health_check_interval": "15s",
//	  "init_data_env": "TELEGRAM_INIT_DATA",
//	  "storage_mode": "s3",
//	  "s3": {"endpoint": "http://127.0.0.1:9000", "bucket": "exam-files", ...}
//	}
//
// The init payload itself is never stored in the config; it is sampled from
// the environment or file on every request.
package config
