/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"errors"
	"fmt"
	"time"

	"github.com/hyperledger/credential-exchange-go/pkg/store/exchange"
)

// ErrInvalidTransition is returned when a message or action is not a legal
// trigger for the record's current state.
var ErrInvalidTransition = errors.New("invalid state transition")

// The transition graph, per role. Terminal states have no entry: nothing
// leaves them. Declined and abandoned are reachable from every non-terminal
// state and are handled in canTransitionTo directly.
var (
	issuerTransitions = map[exchange.State][]exchange.State{
		exchange.StateNone:             {exchange.StateOfferSent},
		exchange.StateOfferSent:        {exchange.StateRequestReceived},
		exchange.StateRequestReceived:  {exchange.StateCredentialIssued},
		exchange.StateCredentialIssued: {exchange.StateDone},
	}

	holderTransitions = map[exchange.State][]exchange.State{
		exchange.StateNone:               {exchange.StateOfferReceived},
		exchange.StateOfferReceived:      {exchange.StateRequestSent},
		exchange.StateRequestSent:        {exchange.StateCredentialReceived},
		exchange.StateCredentialReceived: {exchange.StateDone},
	}
)

func canTransitionTo(role exchange.Role, from, to exchange.State) bool {
	if from.Terminal() {
		return false
	}

	if to == exchange.StateDeclined || to == exchange.StateAbandoned {
		return true
	}

	transitions := issuerTransitions
	if role == exchange.RoleHolder {
		transitions = holderTransitions
	}

	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// transition returns a copy of the record advanced to the next state. It is
// the only place a record's state changes; callers persist the returned copy
// and must never assign State directly. State sequences are monotonic: the
// graph has no cycles and terminal states accept no further transitions.
func transition(r *exchange.Record, next exchange.State) (*exchange.Record, error) {
	if !canTransitionTo(r.Role, r.State, next) {
		return nil, fmt.Errorf("%w: %s %s -> %s", ErrInvalidTransition, r.Role, stateName(r.State), next)
	}

	updated := *r
	updated.State = next
	updated.UpdatedAt = time.Now()

	return &updated, nil
}

func stateName(s exchange.State) string {
	if s == exchange.StateNone {
		return "start"
	}

	return string(s)
}
