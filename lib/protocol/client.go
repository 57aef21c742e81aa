// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"encoding/json"
	"fmt"
	"net"
	"time"
)

// DefaultSocketPath is where the daemon listens unless overridden by
// configuration or the HEARTH_LED_SOCKET environment variable.
const DefaultSocketPath = "/tmp/hearth-led.sock"

// DefaultTimeout bounds one full submit cycle (dial, write, read).
const DefaultTimeout = 2 * time.Second

// Client submits commands to the panel daemon. One connection per
// command: dial, write the payload, read the acceptance response,
// close. The zero value is not usable; call NewClient.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient returns a client for the daemon socket at socketPath.
// Empty socketPath selects DefaultSocketPath; zero timeout selects
// DefaultTimeout.
func NewClient(socketPath string, timeout time.Duration) *Client {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{socketPath: socketPath, timeout: timeout}
}

// Submit sends one command and returns the daemon's acceptance
// response. A Response with Success=false is not an error from
// Submit's point of view — the wire round-trip worked; the daemon
// rejected the payload.
func (c *Client) Submit(command Command) (Response, error) {
	payload, err := EncodeCommand(command)
	if err != nil {
		return Response{}, err
	}

	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return Response{}, fmt.Errorf("dialing %s: %w", c.socketPath, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return Response{}, fmt.Errorf("setting deadline: %w", err)
	}

	if _, err := conn.Write(payload); err != nil {
		return Response{}, fmt.Errorf("writing command: %w", err)
	}
	// Half-close so the daemon's decoder sees EOF even if it reads
	// past the first JSON object.
	if unixConn, ok := conn.(*net.UnixConn); ok {
		if err := unixConn.CloseWrite(); err != nil {
			return Response{}, fmt.Errorf("closing write side: %w", err)
		}
	}

	var response Response
	if err := json.NewDecoder(conn).Decode(&response); err != nil {
		return Response{}, fmt.Errorf("reading response: %w", err)
	}
	return response, nil
}
