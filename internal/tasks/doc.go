// Package tasks implements the playlist generation pipeline and the
// per-turn conversation handling built on top of it.
//
// The core abstraction is [PlaylistEngine], which runs one turn of the
// pipeline: render prompt, generate recommendations, parse "Title | Artist"
// lines into candidates, resolve each candidate to a video id sequentially,
// and assemble the combined playlist link. Operations emit progress updates
// via channels for non-blocking status reporting to the UI layer.
//
// Per-candidate search failures never abort a run; they are recorded as
// [models.Resolution] values so the engine can log them while the user only
// sees the aggregate outcome. A generation failure aborts the run but not
// the session: [PlaylistEngine.Turn] converts it into an assistant-visible
// notice and keeps the transcript consistent.
package tasks
