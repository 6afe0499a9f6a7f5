package platform

// Package platform contains OS integration helpers: filesystem utilities,
// saved-image filename derivation, and opening files in the system file
// manager or default viewer.
