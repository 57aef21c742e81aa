// Copyright 2026 The Hearth Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"encoding/json"
	"fmt"
	"io"
)

// UnknownKindError reports a command whose kind is outside the
// vocabulary. Decoding never silently maps an unknown kind to a no-op.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown command kind %q", e.Kind)
}

// InvalidPriorityError reports a priority outside the LOW..HIGH range.
type InvalidPriorityError struct {
	Value int
}

func (e *InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority %d (want 0..2)", e.Value)
}

// EncodeCommand serializes a command to its wire form: one UTF-8 JSON
// object, no framing. The connection-per-message transport delimits
// messages by connection close.
func EncodeCommand(command Command) ([]byte, error) {
	if !command.Kind.Valid() {
		return nil, &UnknownKindError{Kind: string(command.Kind)}
	}
	if !command.Priority.Valid() {
		return nil, &InvalidPriorityError{Value: int(command.Priority)}
	}
	data, err := json.Marshal(command)
	if err != nil {
		return nil, fmt.Errorf("encoding command: %w", err)
	}
	return data, nil
}

// DecodeCommand parses and validates one wire payload. Malformed JSON,
// an unknown kind, and an out-of-range priority are all errors — the
// daemon reports them in the Response and drops the connection.
func DecodeCommand(data []byte) (Command, error) {
	var command Command
	if err := json.Unmarshal(data, &command); err != nil {
		return Command{}, fmt.Errorf("parsing command payload: %w", err)
	}
	if !command.Kind.Valid() {
		return Command{}, &UnknownKindError{Kind: string(command.Kind)}
	}
	if !command.Priority.Valid() {
		return Command{}, &InvalidPriorityError{Value: int(command.Priority)}
	}
	return command, nil
}

// ReadCommand reads one command from r. The sender half-closes its end
// after writing, so everything up to EOF is the payload.
func ReadCommand(r io.Reader) (Command, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Command{}, fmt.Errorf("reading command payload: %w", err)
	}
	if len(data) == 0 {
		return Command{}, fmt.Errorf("empty command payload")
	}
	return DecodeCommand(data)
}

// EncodeResponse serializes a response to its wire form.
func EncodeResponse(response Response) ([]byte, error) {
	data, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return data, nil
}

// DecodeResponse parses one response payload.
func DecodeResponse(data []byte) (Response, error) {
	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, fmt.Errorf("parsing response payload: %w", err)
	}
	return response, nil
}
