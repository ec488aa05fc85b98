// Package thumbnail produces small previews for the album and image grids.
package thumbnail
