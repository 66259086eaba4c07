// Package line serves the client protocol: one JSON request per line over a
// persistent TCP connection, answered by exactly one JSON response line.
package line

import (
	"bytes"
	"encoding/json"
	"fmt"

	dErrors "zoo/pkg/domain-errors"
)

// MaxLineBytes bounds a single request line.
const MaxLineBytes = 1 << 20

// Request is one request line.
type Request struct {
	Action string          `json:"action"`
	Token  string          `json:"token,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Response is one response line.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func okResponse(msg string, data any) Response {
	return Response{Success: true, Message: msg, Data: data}
}

func errorResponse(err error) Response {
	return Response{Success: false, Message: dErrors.UserMessage(err)}
}

// Decimal accepts a quantity sent either as a JSON number or a string and
// keeps its exact text. Services do the parsing.
type Decimal string

func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("quantity must be a number: %w", err)
	}
	*d = Decimal(n.String())
	return nil
}

func (d Decimal) String() string { return string(d) }
