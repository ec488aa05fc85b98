// Package project holds the ordered list of memes being captioned and the
// cursor of the one shown in the editor. The list lives only as long as the
// process; nothing is persisted.
package project
