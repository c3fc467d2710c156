// Package app is the composition root of reposearch.
//
// Run loads the configuration, opens the log file, builds the search client
// and hands everything to the TUI. SearchOnce and ShowOnce serve the
// non-interactive commands: they run the same controller against an
// in-memory surface and print what it rendered.
//
//	config.Load ─► logger.New ─► github.NewClient ─┬─► ui.Run
//	                                               └─► controller + Recorder ─► stdout
//
// Interactive sessions log to the configured file. One-shot commands log
// warnings and errors to stderr so stdout stays clean for piping.
package app
