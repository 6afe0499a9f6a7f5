package saver

// Package saver implements background saving of gallery images to the local
// filesystem. Each save is a tracked task with explicit status transitions
// reported to the UI through a callback.
