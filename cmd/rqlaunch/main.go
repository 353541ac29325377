// Command rqlaunch starts and stops the local rqlited instances listed in an
// instance configuration file.
//
//	rqlaunch start
//	rqlaunch stop
//
// Paths and timings default to the snap layout and can be changed with flags
// or RQLAUNCH_* environment variables.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv)
	stop()
	os.Exit(code)
}
