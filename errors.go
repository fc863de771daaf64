// Package dspfedit holds the shared configuration and errors of the
// dspf-edit tool, which parses fixed-column DDS display source into a
// queryable element tree.
package dspfedit

import "errors"

// Common errors used throughout the dspf-edit package
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrInputFileNotExist indicates the source file given on the command
	// line does not exist.
	ErrInputFileNotExist = errors.New("input file does not exist")
	// ErrFindings is returned by the check command when structural
	// findings were reported for a document.
	ErrFindings = errors.New("structural findings reported")
)
