// Package core implements the instance lifecycle: starting every configured
// rqlited instance that is not already running, and stopping every instance
// that has a pid marker.
//
// Both operations process instances one at a time and isolate per-instance
// failures: a failure is logged and the run moves on to the next instance.
// Only setup failures (configuration, instances root, run lock) abort a run.
package core
