// Package cli implements the memecli command line tool: catalog listing and
// headless rendering of single memes or YAML batches.
package cli
