// Package ui implements the interactive chat terminal interface using
// bubbletea's Elm architecture.
//
// The TUI is a single chat view: a scrolling transcript of role-tagged
// messages, a text input for the taste description, and a spinner with live
// progress while a turn is running. Progress updates flow through a channel
// from the PlaylistEngine, providing non-blocking status reporting during a
// run. Input is disabled while a turn is in flight; the pipeline itself is
// strictly sequential.
//
// ctrl+o opens the most recently generated playlist link in the system
// browser; esc or ctrl+c quits.
package ui
