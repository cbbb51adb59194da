/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package exchange

import (
	"errors"
	"testing"

	"github.com/hyperledger/aries-framework-go/component/storageutil/mem"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/credential-exchange-go/pkg/credential/encoding"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(mem.NewProvider())
	require.NoError(t, err)

	return s
}

func TestStoreSaveAndGet(t *testing.T) {
	s := newStore(t)

	record := &Record{
		ID:       "record-1",
		ThreadID: "thread-1",
		Role:     RoleIssuer,
		State:    StateOfferSent,
		CredentialAttributes: []encoding.PreviewAttribute{
			{Name: "name", Value: "John"},
		},
	}

	require.NoError(t, s.Save(record))

	got, err := s.Get("record-1")
	require.NoError(t, err)
	require.Equal(t, record.ThreadID, got.ThreadID)
	require.Equal(t, RoleIssuer, got.Role)
	require.Equal(t, StateOfferSent, got.State)
	require.Len(t, got.CredentialAttributes, 1)

	got, err = s.GetByThreadID("thread-1")
	require.NoError(t, err)
	require.Equal(t, "record-1", got.ID)
}

func TestStoreNotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.Get("missing")
	require.True(t, errors.Is(err, ErrRecordNotFound))

	_, err = s.GetByThreadID("missing")
	require.True(t, errors.Is(err, ErrRecordNotFound))
}

func TestStoreThreadIDUniqueness(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Save(&Record{ID: "record-1", ThreadID: "thread-1", Role: RoleIssuer}))

	err := s.Save(&Record{ID: "record-2", ThreadID: "thread-1", Role: RoleIssuer})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already bound")
}

func TestStoreUpdate(t *testing.T) {
	s := newStore(t)

	record := &Record{ID: "record-1", ThreadID: "thread-1", Role: RoleHolder, State: StateOfferReceived}
	require.NoError(t, s.Save(record))

	record.State = StateRequestSent
	require.NoError(t, s.Update(record))

	got, err := s.Get("record-1")
	require.NoError(t, err)
	require.Equal(t, StateRequestSent, got.State)

	err = s.Update(&Record{ID: "missing", ThreadID: "thread-2"})
	require.True(t, errors.Is(err, ErrRecordNotFound))
}

func TestStoreList(t *testing.T) {
	s := newStore(t)

	records, err := s.List()
	require.NoError(t, err)
	require.Empty(t, records)

	require.NoError(t, s.Save(&Record{ID: "record-1", ThreadID: "thread-1", Role: RoleIssuer}))
	require.NoError(t, s.Save(&Record{ID: "record-2", ThreadID: "thread-2", Role: RoleHolder}))

	records, err = s.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestStoreMessages(t *testing.T) {
	s := newStore(t)

	raw, err := s.GetMessage("record-1", "offer-credential")
	require.NoError(t, err)
	require.Nil(t, raw)

	require.NoError(t, s.SaveMessage("record-1", "offer-credential", []byte(`{"@type":"offer"}`)))

	raw, err = s.GetMessage("record-1", "offer-credential")
	require.NoError(t, err)
	require.JSONEq(t, `{"@type":"offer"}`, string(raw))
}

func TestStateTerminal(t *testing.T) {
	for _, s := range []State{StateDone, StateDeclined, StateAbandoned} {
		require.True(t, s.Terminal())
	}

	for _, s := range []State{StateNone, StateOfferSent, StateOfferReceived, StateRequestSent,
		StateRequestReceived, StateCredentialIssued, StateCredentialReceived} {
		require.False(t, s.Terminal())
	}
}
