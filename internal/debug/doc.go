// Package debug provides optional file-based debug logging.
//
// When the TUI_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
// Terminal UIs own stdout and stderr while running, so a file is the only
// place log output can go without corrupting the screen.
package debug
