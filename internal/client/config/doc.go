// Package config loads runtime configuration for the libris CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the LIBRIS_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-a string   base URL of the book-catalog API
//	-d string   path to the local SQLite database
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://localhost:8000/api",
//	  "database_path": "libris.db",
//	  "request_timeout": "15s"
//	}
//
// Environment variables
//
//	LIBRIS_SERVER_ADDR       base URL of the API
//	LIBRIS_DB_PATH           path to the local SQLite database
//	LIBRIS_REQUEST_TIMEOUT   request timeout (Go duration syntax)
package config
