package config

import (
	"fmt"
	"net"
	"strconv"
)

// Server holds the listening address. An empty Host binds every network
// interface on the machine.
type Server struct {
	Host string
	Port int
}

func newServer(lookup func(string) (string, bool)) (*Server, error) {
	raw := getEnv(lookup, "PORT", "8000")

	port, err := strconv.Atoi(raw)
	if err != nil || port < 0 {
		return nil, fmt.Errorf("invalid PORT value %q: expected a non-negative integer", raw)
	}

	return &Server{
		Host: "",
		Port: port,
	}, nil
}

func (s *Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
