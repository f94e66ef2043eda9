package readout

import "os"

// firstEnv returns the first non-empty environment variable among keys.
func firstEnv(keys ...string) (string, error) {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", ErrMetricNotAvailable
}
