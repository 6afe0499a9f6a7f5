package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the catalog, gallery, and saver
// services and renders the breed picker, the image grid, notifications, and
// settings. All UI strings are localized via Localization.
