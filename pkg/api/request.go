package api

import (
	"encoding/json"
	"fmt"
)

// Request is a GraphQL operation
type Request struct {
	OperationName string         `json:"operationName,omitempty"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Response is the GraphQL envelope. Errors, when present, is non-empty.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors GraphQLErrors   `json:"errors,omitempty"`
}

// Err returns the errors list as an error, or nil when the call succeeded.
func (r *Response) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors
}

// Decode unmarshals the data payload into v
func (r *Response) Decode(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("api: response has no data")
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("api: failed to decode response data: %w", err)
	}
	return nil
}
