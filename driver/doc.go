// Package driver runs a ga.Engine to completion.
//
// Two drivers share the engine's stopping contract (stop on ShouldStop or
// when a generation budget is spent):
//
//   - RunBatch runs synchronously and returns a Result; used by the
//     benchmark harness and the CLI.
//   - Loop runs generations on a background goroutine with run, stop and
//     single-step control, publishing progress on a channel that always holds
//     the most recent Update.
//
// The engine is not safe for concurrent use; a Loop serializes every call it
// makes, and callers must not touch the engine directly while a Loop owns it.
package driver
