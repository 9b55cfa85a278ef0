// Package audit implements the command transcript for the script runner.
//
// The transcript is an append-only JSONL file with one entry per emitted
// command, tagged with a run ID so several runs can share one file. Files are
// rotated by size and age.
package audit
