// Package rqlaunch starts and stops a fleet of local rqlited instances
// described by a plain-text configuration file.
//
// Each line of the configuration names an instance and its client and Raft
// ports:
//
//	# name   service-port  raft-port
//	node1    4001          4002
//	node2    4011          4012
//
// Every instance gets a data directory under the instances root holding its
// database, an append-only log of the server's output, and a pid marker that
// records the process started for it.
//
// # Basic Usage
//
//	l, err := rqlaunch.New(
//	    rqlaunch.WithConfigPath("/etc/rqlaunch/rqlited.conf"),
//	    rqlaunch.WithInstancesDir("/var/lib/rqlaunch/instances"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	started, err := l.Start(ctx)
//	// ...
//	signaled, err := l.Stop(ctx)
//
// # Semantics
//
// Start is idempotent: an instance whose marker names a live process is
// skipped. A launched process must survive a short startup grace window
// before its marker is written; one that exits earlier is reported and left
// unrecorded. Stop sends a hang-up signal to every recorded process and
// removes every marker without waiting for the processes to exit.
//
// Per-instance problems are logged and never abort a run. Only setup failures
// (invalid configuration, an instances root that cannot be created, a run lock
// held by another invocation) are returned as errors.
package rqlaunch
