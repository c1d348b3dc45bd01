package builder

import (
	"fmt"
	"math"
)

// validateMin rejects got < min with ErrTooFewVertices.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d (must be ≥ %d): %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability rejects p outside [0,1] with ErrInvalidProbability.
func validateProbability(method string, p float64) error {
	if p < minProbability || p > maxProbability || math.IsNaN(p) {
		return fmt.Errorf("%s: p=%g (must be in [%.0f,%.0f]): %w", method, p, minProbability, maxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateRNG rejects a nil RNG with ErrNeedRandSource.
func validateRNG(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
