package model

import (
	"math/rand"
	"strings"
)

// NormalizeBreed returns the canonical lowercase form of a breed name used
// for comparison and filtering. Display always uses the original casing.
func NormalizeBreed(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FilterBreeds returns the breeds whose name contains term as a
// case-insensitive substring. An empty term returns all breeds. The input
// slice is never mutated; order is preserved.
func FilterBreeds(breeds []string, term string) []string {
	term = NormalizeBreed(term)
	if term == "" {
		result := make([]string, len(breeds))
		copy(result, breeds)
		return result
	}

	result := make([]string, 0, len(breeds))
	for _, breed := range breeds {
		if strings.Contains(NormalizeBreed(breed), term) {
			result = append(result, breed)
		}
	}
	return result
}

// SampleBreeds draws n distinct breeds uniformly at random without
// replacement. If the catalog has fewer than n entries, all of them are
// returned. The input slice is never mutated.
func SampleBreeds(breeds []string, n int, rng *rand.Rand) []string {
	if n <= 0 || len(breeds) == 0 {
		return nil
	}
	if n >= len(breeds) {
		result := make([]string, len(breeds))
		copy(result, breeds)
		return result
	}

	shuffled := make([]string, len(breeds))
	copy(shuffled, breeds)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
