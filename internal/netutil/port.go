package netutil

import "log/slog"

// PortRegistry records which owner claimed each port during one start run.
// Ports are compared by number only, so "4001", "localhost:4001" and
// "0.0.0.0:4001" all collide. It is not safe for concurrent use.
type PortRegistry struct {
	owners map[string]string
	log    *slog.Logger
}

// NewPortRegistry creates an empty PortRegistry.
// If logger is nil, slog.Default() is used as a fallback.
func NewPortRegistry(logger *slog.Logger) *PortRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &PortRegistry{
		owners: make(map[string]string),
		log:    logger,
	}
}

// reserve claims the port of token for owner. If another owner already holds
// it, reserve returns that owner and false, and the registry is unchanged.
// Reserving a port again for its current owner succeeds.
func (r *PortRegistry) reserve(token, owner string) (holder string, ok bool) {
	port := Port(token)
	if held, taken := r.owners[port]; taken && held != owner {
		return held, false
	}
	r.owners[port] = owner
	return owner, true
}

// ReserveAll claims every token for owner and logs a warning for each port
// already held by someone else. It reports whether all claims succeeded.
func (r *PortRegistry) ReserveAll(owner string, tokens ...string) bool {
	clean := true
	for _, token := range tokens {
		if holder, ok := r.reserve(token, owner); !ok {
			r.log.Warn("port already claimed by another instance",
				"instance", owner, "port", Port(token), "claimed_by", holder)
			clean = false
		}
	}
	return clean
}
