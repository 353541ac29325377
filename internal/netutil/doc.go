// Package netutil normalizes the listen addresses handed to rqlited and
// tracks which instance claimed which port during a start run.
//
// PortRegistry does not bind anything. Two configured instances sharing a port
// is not an error for the launcher (the second rqlited fails to bind and is
// reported as a failed start), but it is worth a warning before the launch.
package netutil
