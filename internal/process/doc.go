// Package process launches detached server processes and waits out their
// startup grace window.
//
// Start redirects a child's combined output into an append-only log file and
// reaps it from a single goroutine. WaitStartup returns as soon as the child
// exits or once the grace window has passed with the child still running.
// Signal delivers a signal to an arbitrary pid recorded in a marker.
package process
