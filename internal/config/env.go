// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the BASEX_ prefix) to the CLI flag
// name it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"OP", "op", func(c *AppConfig, v string) { c.Operation = v }},
	{"INPUT", "input", func(c *AppConfig, v string) { c.Input = v }},
	{"ALPHABET", "alphabet", func(c *AppConfig, v string) { c.Alphabet = v }},
	{"OUTPUT", "output", func(c *AppConfig, v string) { c.OutputFile = v }},
	{"CHECKSUM", "checksum", func(c *AppConfig, v string) {
		c.Checksum = parseBoolEnv(v, c.Checksum)
	}},
	{"VERBOSE", "verbose", func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"QUIET", "quiet", func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"NO_COLOR", "no-color", func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"KARATSUBA_THRESHOLD", "karatsuba-threshold", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.KaratsubaThreshold = parsed
		}
	}},
	{"ADDR", "addr", func(c *AppConfig, v string) { c.Addr = v }},
	{"READ_TIMEOUT", "read-timeout", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.ReadTimeout = parsed
		}
	}},
	{"MAX_INPUT_BYTES", "max-input-bytes", func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxInputBytes = parsed
		}
	}},
	{"MAX_N_VALUE", "max-n-value", func(c *AppConfig, v string) {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.MaxNValue = parsed
		}
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with BASEX_):
//
//	OP, INPUT, ALPHABET, OUTPUT, CHECKSUM, VERBOSE, QUIET, NO_COLOR,
//	KARATSUBA_THRESHOLD, ADDR, READ_TIMEOUT, MAX_INPUT_BYTES, MAX_N_VALUE
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
