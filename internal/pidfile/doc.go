// Package pidfile reads, writes and removes per-instance pid markers.
//
// A marker holds the decimal pid of the last process confirmed started for an
// instance. Its absence means "not running"; its presence only means "was
// running" and must be checked with a liveness probe before being trusted.
package pidfile
