// Package models defines the data model for the playlist chat application:
// conversation sessions and their messages, song candidates extracted from
// generation output, and per-candidate video resolutions.
package models
