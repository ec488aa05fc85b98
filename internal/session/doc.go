// Package session models navigation between the album catalog, the image
// browser and the caption editor as an explicit state container.
package session
