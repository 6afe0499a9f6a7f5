package api

// Package api implements the HTTP client for the remote dog breed service:
// the breed catalog endpoint, the per-breed random image endpoint, and raw
// image downloads. Failures are reported as typed FetchError values that the
// UI surfaces in its single error slot.
