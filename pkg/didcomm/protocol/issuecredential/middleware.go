/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import "github.com/hyperledger/credential-exchange-go/pkg/store/exchange"

// Handler describes middleware interface
type Handler interface {
	Handle(metadata Metadata) error
}

// Middleware function receives next handler and returns handler that needs to be executed
type Middleware func(next Handler) Handler

// HandlerFunc is a helper type which implements the middleware Handler interface
type HandlerFunc func(metadata Metadata) error

// Handle implements function to satisfy the Handler interface
func (hf HandlerFunc) Handle(metadata Metadata) error {
	return hf(metadata)
}

// Metadata provides helpful information for the processing
type Metadata interface {
	// Record is the exchange record as it will be persisted if the
	// transition completes. A middleware error aborts the transition
	// before persistence.
	Record() *exchange.Record
	// Message contains the inbound or outbound message that triggered the
	// transition, nil for purely local transitions.
	Message() Message
	// StateName provides the name of the state being entered.
	StateName() string
}

type metadata struct {
	record *exchange.Record
	msg    Message
}

func (m *metadata) Record() *exchange.Record { return m.record }

func (m *metadata) Message() Message { return m.msg }

func (m *metadata) StateName() string { return stateName(m.record.State) }
