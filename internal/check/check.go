// Package check provides preflight validation of the source and destination
// paths so a pass fails before any processing or output happens.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sentinel errors returned by the preflight checks. Callers match them with
// errors.Is; the wrapped message names the offending path.
var (
	ErrSourceUnavailable      = errors.New("source unavailable")
	ErrDestinationUnavailable = errors.New("destination unavailable")
)

// Logger is the minimal logging interface needed by Paths.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Debug(bool, string, ...interface{})
}

// Source verifies that path names a readable regular file.
func Source(path string) error {
	if path == "" {
		return fmt.Errorf("%w: no input path given", ErrSourceUnavailable)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if fi.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrSourceUnavailable, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return f.Close()
}

// Destination verifies that path can be created or replaced: its parent
// must be an existing directory and path itself must not be a directory.
func Destination(path string) error {
	if path == "" {
		return fmt.Errorf("%w: no output path given", ErrDestinationUnavailable)
	}
	dir := filepath.Dir(path)
	di, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDestinationUnavailable, err)
	}
	if !di.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDestinationUnavailable, dir)
	}
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrDestinationUnavailable, path)
	}
	return nil
}

// Paths runs every preflight check relevant to a pass and logs the outcome
// of each at debug level. output may be empty for read-only passes.
func Paths(input, output string, verbose bool, log Logger) error {
	if err := Source(input); err != nil {
		return err
	}
	log.Debug(verbose, "Source OK: %s", input)

	if output == "" {
		return nil
	}
	if err := Destination(output); err != nil {
		return err
	}
	log.Debug(verbose, "Destination OK: %s", output)
	return nil
}
