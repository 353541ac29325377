package netutil

import (
	"net"
	"strings"
)

// DefaultHost is the host used for port tokens that carry no host part.
const DefaultHost = "localhost"

// BindAddr turns a bare port token into host:port. Tokens that already name a
// host are returned unchanged.
func BindAddr(token string) string {
	if strings.Contains(token, ":") {
		return token
	}
	return net.JoinHostPort(DefaultHost, token)
}

// Port returns the port part of a port token or host:port address. A token
// that does not split is returned unchanged.
func Port(token string) string {
	if !strings.Contains(token, ":") {
		return token
	}
	_, port, err := net.SplitHostPort(token)
	if err != nil {
		return token
	}
	return port
}
