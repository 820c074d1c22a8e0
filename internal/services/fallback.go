package services

import (
	"strconv"
	"time"

	"gymdesk_backend/pkg/utils"
)

// Resolve applies the demo/fallback policy that every endpoint shares.
//
//  1. Backend unavailable: serve the synthesized result, no write.
//  2. Store operation failed: log it, serve the synthesized result.
//  3. Otherwise: serve the real result.
//
// The second return value reports whether the result was synthesized,
// so handlers can mark the response as degraded. Authentication
// failures never reach this helper; the tenant middleware rejects them
// before any store work starts.
func Resolve[T any](available bool, synth func() T, op func() (T, error)) (T, bool) {
	if !available {
		return synth(), true
	}
	result, err := op()
	if err != nil {
		utils.LogError(err, "Store operation failed, serving synthesized result")
		return synth(), true
	}
	return result, false
}

// SyntheticID generates the locally-assigned id used for synthesized
// write results: a millisecond timestamp, matching what a durable
// backend would never produce.
func SyntheticID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
