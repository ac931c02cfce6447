package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// GraphQLError is one entry of a GraphQL errors list
type GraphQLError struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

// GraphQLErrors is a non-empty errors list returned by the server.
// Its message is the first entry's message.
type GraphQLErrors []GraphQLError

func (e GraphQLErrors) Error() string {
	if len(e) == 0 {
		return "unknown GraphQL error"
	}
	return e[0].Message
}

// NotFoundError reports a query that succeeded with a null payload
type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found"
}

// StatusError is a non-2xx HTTP response that carried no GraphQL errors
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("api: unexpected HTTP status %d", e.StatusCode)
	}
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("api: unexpected HTTP status %d: %s", e.StatusCode, body)
}

// Message returns the single human-readable message reported for err:
// "<Kind> not found" for null payloads, the first server message for an
// errors list, and the error text for anything else.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error()
	}
	var gqlErrs GraphQLErrors
	if errors.As(err, &gqlErrs) {
		return gqlErrs.Error()
	}
	return err.Error()
}

// IsCanceled reports whether err comes from a canceled context. Such errors
// belong to a torn-down view and are never shown to the user.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsNotFound reports whether err is a null-payload result
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
