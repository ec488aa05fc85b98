// Package export renders memes off-screen and writes them as PNG files. It
// tracks one task per export for progress reporting and runs batch exports
// strictly in order with a pause between files.
package export
