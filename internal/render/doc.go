// Package render draws captioned memes. Rendering is two-phase: a Loader fetches
// the base image, then the caption layout is drawn onto a Surface. The same
// engine feeds the editor preview and the exported PNG files.
package render
