// Package validation contains the logic for validating
// command input.
//
// It uses the `validator` library to enforce rules defined
// in struct tags and converts validation failures into
// argument errors the command line can print.
package validation
