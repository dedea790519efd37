// Package errs defines the error types the tool reports.
//
// Every failure that reaches the command line is classified
// into a Kind, which decides the process exit status and
// whether usage text accompanies the message.
package errs
