// Package log provides structured logging for the ewgpal binary.
//
// The global zerolog logger is initialised exactly once via [Configure];
// commands call it after flag parsing so --debug takes effect before any
// output. The default writer is a console writer on stderr, keeping stdout
// free for command output. Packages obtain child loggers through
// [WithComponent].
package log
