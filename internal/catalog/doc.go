package catalog

// Package catalog implements the breed catalog loader: a single fetch of the
// full breed list per session, exposed as a sorted immutable snapshot with a
// case-insensitive view filter for the picker UI.
