package utils

import (
	"fmt"
	"net"
	"time"
)

// PingService checks that something accepts TCP connections at host:port
func PingService(host, port string, timeout time.Duration) error {
	if host == "" {
		return fmt.Errorf("no host given")
	}

	address := net.JoinHostPort(host, port)

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}

// PingDatabase checks if the database server is reachable
func PingDatabase(host, port string) error {
	return PingService(host, port, 1500*time.Millisecond)
}
