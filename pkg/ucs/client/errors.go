// Copyright (c) 2026, CCL Networks and its contributors.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package client

import "fmt"

// AuthenticationError indicates that UCS Manager rejected the supplied
// credentials or that the endpoint could not be reached.
type AuthenticationError struct {
	Endpoint string
	Reason   string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("could not log in to UCS Manager %s: %s", e.Endpoint, e.Reason)
}

// QueryError indicates that a read query failed at the transport or protocol
// layer.  Queries are never retried.
type QueryError struct {
	Op     string
	Reason string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s query failed: %s", e.Op, e.Reason)
}

// WriteError indicates that UCS Manager rejected a configuration commit.  The
// remote system is authoritative; no rollback is attempted.
type WriteError struct {
	DN     string
	Reason string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not commit %s: %s", e.DN, e.Reason)
}

// SessionError indicates that UCS Manager rejected a logout.  A change that
// was already committed is not reversed by a teardown failure.
type SessionError struct {
	Endpoint string
	Reason   string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("could not log out of UCS Manager %s: %s", e.Endpoint, e.Reason)
}

// PreconditionError indicates that a mutation was refused by policy before
// anything was sent to UCS Manager.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}
