package model

// Package model defines domain data structures used across the app: breed
// catalog helpers, the ordered selection set, gallery image entries, save
// tasks, and status enums. Structures are designed for direct binding in the
// UI and explicit state transitions.
