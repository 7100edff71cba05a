package utils

import (
	"runtime"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Usage is printed when the command line cannot be parsed.
const Usage = "usage: boardlife <size> <generations>"

// ErrUsage marks argument parsing failures so callers can print Usage.
var ErrUsage = errors.New("invalid arguments")

// Config holds the parameters for one simulation run
type Config struct {
	Size        int
	Generations int
	BoardPath   string
	Delay       time.Duration
	Workers     int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		BoardPath: "board",
		Delay:     time.Second,
		Workers:   runtime.NumCPU(),
	}
}

// ParseArgs fills a Config from the two positional arguments: board size
// and generation count.
func ParseArgs(args []string) (Config, error) {
	config := DefaultConfig()

	if len(args) != 2 {
		return config, errors.Wrapf(ErrUsage, "[ParseArgs] expected 2 arguments, got %d", len(args))
	}

	size, err := strconv.Atoi(args[0])
	if err != nil || size < 1 {
		return config, errors.Wrapf(ErrUsage, "[ParseArgs] size must be a positive integer: %q", args[0])
	}

	generations, err := strconv.Atoi(args[1])
	if err != nil || generations < 0 {
		return config, errors.Wrapf(ErrUsage, "[ParseArgs] generations must be a non-negative integer: %q", args[1])
	}

	config.Size = size
	config.Generations = generations
	return config, nil
}

// IsUsage reports whether err came from argument parsing.
func IsUsage(err error) bool {
	return errors.Cause(err) == ErrUsage
}
