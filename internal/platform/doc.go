// Package platform contains OS specific helpers: the default export location,
// directory creation, and revealing or opening exported images.
package platform
