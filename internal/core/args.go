package core

import (
	"github.com/giantswarm/rqlaunch/internal/instance"
	"github.com/giantswarm/rqlaunch/internal/netutil"
)

// serverArgs builds the rqlited command line: the client API address, the
// Raft address, and the data directory as the final positional argument.
func serverArgs(inst instance.Config, dataDir string) []string {
	return []string{
		"-http-addr", netutil.BindAddr(inst.ServicePort()),
		"-raft-addr", netutil.BindAddr(inst.RaftPort()),
		dataDir,
	}
}
