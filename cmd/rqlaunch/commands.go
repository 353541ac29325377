package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/giantswarm/rqlaunch"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// runIDKey tags every diagnostic of one invocation.
const runIDKey = "run_id"

// envPrefix prefixes the environment variable that backs each flag:
// --instances-dir reads RQLAUNCH_INSTANCES_DIR.
const envPrefix = "RQLAUNCH_"

// usageError marks command-line mistakes, which print usage and exit 2.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// lookupEnvFunc matches os.LookupEnv.
type lookupEnvFunc func(key string) (string, bool)

// options holds the parsed persistent flags.
type options struct {
	configPath   string
	templatePath string
	instancesDir string
	binary       string
	startupGrace time.Duration
	lockTimeout  time.Duration
	stopSignal   string
	logLevel     string
	logFormat    string
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, lookupEnv lookupEnvFunc) int {
	root := newRootCommand(lookupEnv)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return exitOK
	}
	if cmd == nil {
		cmd = root
	}

	fmt.Fprintf(stderr, "rqlaunch: %v\n", err)
	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}
	return exitError
}

func newRootCommand(lookupEnv lookupEnvFunc) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "rqlaunch <start|stop>",
		Short: "Start and stop local rqlited instances",
		Long: `rqlaunch starts and stops the rqlited instances listed in an instance
configuration file, one "<name> <service-port> <raft-port>" per line.

Each instance runs from its own data directory under the instances root,
where its output log and pid marker are kept. Every flag can also be set
through an environment variable: --instances-dir reads
RQLAUNCH_INSTANCES_DIR, and so on.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unknown command %q", args[0])}
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return usageError{errors.New("a command is required: start or stop")}
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return applyEnv(cmd.Flags(), lookupEnv)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	fs := cmd.PersistentFlags()
	fs.StringVar(&opts.configPath, "config", rqlaunch.DefaultConfigPath, "instance configuration file")
	fs.StringVar(&opts.templatePath, "template", rqlaunch.DefaultTemplatePath,
		"file installed as the configuration when it is missing (empty disables)")
	fs.StringVar(&opts.instancesDir, "instances-dir", rqlaunch.DefaultInstancesDir, "instances root directory")
	fs.StringVar(&opts.binary, "binary", rqlaunch.DefaultBinary, "rqlited executable")
	fs.DurationVar(&opts.startupGrace, "startup-grace", rqlaunch.DefaultStartupGrace,
		"how long a launched instance must stay up to count as started")
	fs.DurationVar(&opts.lockTimeout, "lock-timeout", rqlaunch.DefaultLockTimeout,
		"how long to wait for another run holding the instances root")
	fs.StringVar(&opts.stopSignal, "stop-signal", unix.SignalName(rqlaunch.DefaultStopSignal),
		"signal sent to each instance by stop")
	fs.StringVar(&opts.logLevel, "log-level", "info", "diagnostic level: debug, info, warn or error")
	fs.StringVar(&opts.logFormat, "log-format", formatText, "diagnostic format: text or json")

	cmd.AddCommand(newStartCommand(opts), newStopCommand(opts))
	return cmd
}

func newStartCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start every configured instance that is not already running",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := opts.launcher(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			started, err := l.Start(cmd.Context())
			if err != nil && started == 0 {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "started %d instance(s)\n", started)
			return err
		},
	}
}

func newStopCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Signal every recorded instance and remove its pid marker",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := opts.launcher(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			signaled, err := l.Stop(cmd.Context())
			if err != nil && signaled == 0 {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signaled %d instance(s)\n", signaled)
			return err
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError{fmt.Errorf("%s takes no arguments, got %q", cmd.Name(), args)}
	}
	return nil
}

// launcher builds a Launcher and its diagnostic logger from the flags.
//
//nolint:ireturn // rqlaunch.New returns the Launcher interface.
func (o *options) launcher(logOut io.Writer) (rqlaunch.Launcher, error) {
	logger, err := newLogger(logOut, o.logLevel, o.logFormat)
	if err != nil {
		return nil, usageError{err}
	}
	// Correlates the lines of one invocation when several share a log sink.
	logger = logger.With(runIDKey, uuid.NewString())
	sig, err := parseSignal(o.stopSignal)
	if err != nil {
		return nil, usageError{err}
	}

	l, err := rqlaunch.New(
		rqlaunch.WithLogger(logger),
		rqlaunch.WithConfigPath(o.configPath),
		rqlaunch.WithTemplatePath(o.templatePath),
		rqlaunch.WithInstancesDir(o.instancesDir),
		rqlaunch.WithBinary(o.binary),
		rqlaunch.WithStartupGrace(o.startupGrace),
		rqlaunch.WithLockTimeout(o.lockTimeout),
		rqlaunch.WithStopSignal(sig),
	)
	if err != nil {
		return nil, usageError{err}
	}
	return l, nil
}

// parseSignal accepts a signal name with or without the SIG prefix, in any
// case: "HUP", "sighup" and "SIGHUP" are equivalent.
func parseSignal(name string) (syscall.Signal, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if !strings.HasPrefix(upper, "SIG") {
		upper = "SIG" + upper
	}
	if sig := unix.SignalNum(upper); sig != 0 {
		return sig, nil
	}
	return 0, fmt.Errorf("unknown signal %q", name)
}

// applyEnv sets every flag not given on the command line from its
// RQLAUNCH_* environment variable, if present.
func applyEnv(fs *pflag.FlagSet, lookupEnv lookupEnvFunc) error {
	if lookupEnv == nil {
		return nil
	}
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		key := envKey(f.Name)
		val, ok := lookupEnv(key)
		if !ok {
			return
		}
		if err := fs.Set(f.Name, val); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	})
	if err := errors.Join(errs...); err != nil {
		return usageError{err}
	}
	return nil
}

func envKey(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}
