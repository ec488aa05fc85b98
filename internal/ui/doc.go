// Package ui contains the Fyne-based desktop user interface for the application.
// It shows the album catalog, the image browser and the caption editor, driven
// by a session.Session, and hands exports to the export service. All UI strings
// are localized via Localization.
package ui
