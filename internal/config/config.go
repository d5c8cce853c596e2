// Package config parses the command-line flags and environment-variable
// overrides shared by cmd/basex and cmd/basex-server, following the
// priority chain: CLI flags > environment variables > defaults.
package config

import (
	"flag"
	"time"
)

// EnvPrefix is prepended to every environment variable this package reads.
const EnvPrefix = "BASEX_"

// AppConfig holds every flag and environment override recognized by the CLI
// and HTTP service entry points. Fields not relevant to a given entry point
// are simply left at their zero value.
type AppConfig struct {
	// Operation selects what cmd/basex does: "encode", "decode", or one of
	// the arithmetic operations "add", "sub", "mul", "div", "mod", "cmp".
	Operation string
	// Input is the raw operand: a string to encode/decode, or for the
	// arithmetic operations a comma-separated decimal pair "A,B".
	Input string
	// Alphabet names one of the bundled basex.Codec constructors (e.g.
	// "base58-bitcoin", "base64-rfc4648").
	Alphabet string
	// Checksum enables the trailing XOR checksum character.
	Checksum bool
	// OutputFile, when non-empty, also writes the result to this file; the
	// result is printed to stdout either way.
	OutputFile string

	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses all but error-level logging.
	Quiet bool
	// NoColor disables ANSI color output regardless of terminal detection.
	NoColor bool

	// KaratsubaThreshold overrides biguint.ParallelKaratsubaThreshold; 0
	// means "use the hardware-adaptive estimate".
	KaratsubaThreshold int

	// Addr is the listen address for cmd/basex-server.
	Addr string
	// ReadTimeout bounds how long the server waits to read a request body.
	ReadTimeout time.Duration
	// MaxInputBytes bounds the size of any single request body/operand.
	MaxInputBytes int64
	// MaxNValue bounds the bit length of any arith operand, guarding
	// against pathologically large BigUint construction.
	MaxNValue uint64
}

// DefaultConfig returns an AppConfig populated with the package's static
// defaults, before flag parsing or environment overrides are applied.
func DefaultConfig() AppConfig {
	return AppConfig{
		Operation:     "encode",
		Alphabet:      "base58-bitcoin",
		Addr:          ":8080",
		ReadTimeout:   10 * time.Second,
		MaxInputBytes: 1 << 20, // 1 MiB
		MaxNValue:     1 << 24, // 16 Mbit operands
	}
}

// ParseCLIFlags registers the CLI-facing flags on fs, parses args, and
// applies BASEX_-prefixed environment overrides for any flag left at its
// default (not explicitly set on the command line).
func ParseCLIFlags(fs *flag.FlagSet, args []string) (AppConfig, error) {
	cfg := DefaultConfig()

	fs.StringVar(&cfg.Operation, "op", cfg.Operation, "operation: encode, decode, add, sub, mul, div, mod, or cmp")
	fs.StringVar(&cfg.Input, "input", cfg.Input, "input operand")
	fs.StringVar(&cfg.Alphabet, "alphabet", cfg.Alphabet, "bundled alphabet name")
	fs.BoolVar(&cfg.Checksum, "checksum", cfg.Checksum, "append/verify an XOR checksum character")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "also write result to this file")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress info logging")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable ANSI color output")
	fs.IntVar(&cfg.KaratsubaThreshold, "karatsuba-threshold", cfg.KaratsubaThreshold, "digit count above which Karatsuba runs its two halves concurrently (0 = auto)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)
	return cfg, nil
}

// ParseServerFlags registers the cmd/basex-server-facing flags on fs,
// parses args, and applies BASEX_-prefixed environment overrides.
func ParseServerFlags(fs *flag.FlagSet, args []string) (AppConfig, error) {
	cfg := DefaultConfig()

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "request body read timeout")
	fs.Int64Var(&cfg.MaxInputBytes, "max-input-bytes", cfg.MaxInputBytes, "maximum request body size")
	fs.Uint64Var(&cfg.MaxNValue, "max-n-value", cfg.MaxNValue, "maximum arith operand bit length")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.IntVar(&cfg.KaratsubaThreshold, "karatsuba-threshold", cfg.KaratsubaThreshold, "digit count above which Karatsuba runs its two halves concurrently (0 = auto)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)
	return cfg, nil
}
