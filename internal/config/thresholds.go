package config

import "runtime"

// Threshold resolution chain (highest priority first):
//  1. CLI flags (--karatsuba-threshold)
//  2. Environment variables (BASEX_KARATSUBA_THRESHOLD)
//  3. Adaptive hardware estimation (this file)
//  4. Static default in biguint.ParallelKaratsubaThreshold

// ApplyAdaptiveThresholds fills in KaratsubaThreshold from a hardware
// heuristic when it's still at its zero default, preserving any
// user-specified override from flags or environment.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = EstimateOptimalKaratsubaThreshold()
	}
	return cfg
}

// EstimateOptimalKaratsubaThreshold provides a heuristic estimate, in
// digits, of the Karatsuba split size (half the larger operand) at or above
// which splitting Karatsuba's two
// recursive products across goroutines pays for its scheduling overhead.
// More cores can absorb a lower threshold before overhead dominates.
func EstimateOptimalKaratsubaThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 1:
		return 1 << 30 // effectively disables the parallel path
	case numCPU <= 2:
		return 1024
	case numCPU <= 4:
		return 512
	case numCPU <= 8:
		return 256
	case numCPU <= 16:
		return 128
	default:
		return 64
	}
}
