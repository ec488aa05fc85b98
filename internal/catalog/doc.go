// Package catalog holds the fixed set of albums shipped with the app and expands
// an album into the ordered list of image descriptors served by the asset host.
package catalog
