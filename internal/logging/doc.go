// Package logging provides structured logging for imagexplorer.
//
// This package wraps a zap logger with package-level helpers so that any
// package can log without threading a logger through every constructor.
//
// # Silent By Default
//
// The explorer owns the terminal, so logging is disabled unless a level is
// requested, either with --log-level or the IMAGEXPLORER_LOG_LEVEL
// environment variable. Output goes to stderr, or to a file when one is
// configured, never to stdout.
//
//	if err := logging.Initialize(logging.Options{Level: "debug", File: "/tmp/ix.log"}); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Domain Helpers
//
//	logging.LogCatalogLoaded("builtin", 5)
//	logging.LogAdvance(4, 0, 5)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
