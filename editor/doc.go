// Package editor provides a Bubble Tea editing component backed by the buffer
// package.
//
// The component owns key, composition and mouse handling, the input-method
// mode, command hooks run on Enter, and rendering of each line through the
// classify package. Hosts observe edits through Config.OnChange.
package editor
