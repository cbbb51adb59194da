/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/credential-exchange-go/pkg/store/exchange"
)

func TestTransitionIssuerPath(t *testing.T) {
	record := &exchange.Record{Role: exchange.RoleIssuer}

	path := []exchange.State{
		exchange.StateOfferSent,
		exchange.StateRequestReceived,
		exchange.StateCredentialIssued,
		exchange.StateDone,
	}

	for _, next := range path {
		updated, err := transition(record, next)
		require.NoError(t, err)
		require.Equal(t, next, updated.State)

		record = updated
	}

	_, err := transition(record, exchange.StateOfferSent)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionHolderPath(t *testing.T) {
	record := &exchange.Record{Role: exchange.RoleHolder}

	path := []exchange.State{
		exchange.StateOfferReceived,
		exchange.StateRequestSent,
		exchange.StateCredentialReceived,
		exchange.StateDone,
	}

	for _, next := range path {
		updated, err := transition(record, next)
		require.NoError(t, err)
		require.Equal(t, next, updated.State)

		record = updated
	}
}

func TestTransitionRejectsSkips(t *testing.T) {
	record := &exchange.Record{Role: exchange.RoleIssuer, State: exchange.StateOfferSent}

	_, err := transition(record, exchange.StateCredentialIssued)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = transition(record, exchange.StateDone)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionRejectsOtherRoleStates(t *testing.T) {
	issuer := &exchange.Record{Role: exchange.RoleIssuer}

	_, err := transition(issuer, exchange.StateOfferReceived)
	require.ErrorIs(t, err, ErrInvalidTransition)

	holder := &exchange.Record{Role: exchange.RoleHolder}

	_, err = transition(holder, exchange.StateOfferSent)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDeclineFromAnyNonTerminalState(t *testing.T) {
	states := map[exchange.Role][]exchange.State{
		exchange.RoleIssuer: {
			exchange.StateNone,
			exchange.StateOfferSent,
			exchange.StateRequestReceived,
			exchange.StateCredentialIssued,
		},
		exchange.RoleHolder: {
			exchange.StateNone,
			exchange.StateOfferReceived,
			exchange.StateRequestSent,
			exchange.StateCredentialReceived,
		},
	}

	for role, list := range states {
		for _, state := range list {
			record := &exchange.Record{Role: role, State: state}

			updated, err := transition(record, exchange.StateDeclined)
			require.NoError(t, err)
			require.Equal(t, exchange.StateDeclined, updated.State)

			updated, err = transition(record, exchange.StateAbandoned)
			require.NoError(t, err)
			require.Equal(t, exchange.StateAbandoned, updated.State)
		}
	}
}

func TestTerminalStatesAcceptNothing(t *testing.T) {
	all := []exchange.State{
		exchange.StateOfferSent,
		exchange.StateOfferReceived,
		exchange.StateRequestSent,
		exchange.StateRequestReceived,
		exchange.StateCredentialIssued,
		exchange.StateCredentialReceived,
		exchange.StateDone,
		exchange.StateDeclined,
		exchange.StateAbandoned,
	}

	for _, terminal := range []exchange.State{exchange.StateDone, exchange.StateDeclined, exchange.StateAbandoned} {
		for _, next := range all {
			record := &exchange.Record{Role: exchange.RoleIssuer, State: terminal}

			_, err := transition(record, next)
			require.ErrorIs(t, err, ErrInvalidTransition)
		}
	}
}

func TestTransitionReturnsCopy(t *testing.T) {
	record := &exchange.Record{Role: exchange.RoleIssuer, State: exchange.StateOfferSent}

	updated, err := transition(record, exchange.StateRequestReceived)
	require.NoError(t, err)
	require.Equal(t, exchange.StateRequestReceived, updated.State)
	require.Equal(t, exchange.StateOfferSent, record.State)
	require.False(t, updated.UpdatedAt.IsZero())
}

func TestStateName(t *testing.T) {
	require.Equal(t, "start", stateName(exchange.StateNone))
	require.Equal(t, "offer-sent", stateName(exchange.StateOfferSent))
}
