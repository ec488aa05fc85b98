// Package model defines domain data structures used across the app: caption
// memes, export tasks, and status enums. Structures are plain values so the UI
// can copy them freely and mutate only through the project list.
package model
