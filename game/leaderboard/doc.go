// Package leaderboard is the process-wide, single-writer/multi-reader
// completion board : a sorted collection kept in memory for
// the life of the process, guarded by a mutex per the concurrency model's
// "gate the leaderboard behind a small handle holding a mutex"
package leaderboard
