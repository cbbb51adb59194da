/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/credential-exchange-go/pkg/didcomm/protocol/issuecredential"
	mocks "github.com/hyperledger/credential-exchange-go/pkg/internal/gomocks/client/issuecredential"
	"github.com/hyperledger/credential-exchange-go/pkg/store/exchange"
)

var _ ProtocolService = (*issuecredential.Service)(nil)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		provider := mocks.NewMockProvider(ctrl)
		provider.EXPECT().Service(gomock.Any()).Return(mocks.NewMockProtocolService(ctrl), nil)

		client, err := New(provider)
		require.NoError(t, err)
		require.NotNil(t, client)
	})

	t.Run("service lookup error", func(t *testing.T) {
		provider := mocks.NewMockProvider(ctrl)
		provider.EXPECT().Service(gomock.Any()).Return(nil, errors.New("test error"))

		_, err := New(provider)
		require.EqualError(t, err, "test error")
	})

	t.Run("cast service error", func(t *testing.T) {
		provider := mocks.NewMockProvider(ctrl)
		provider.EXPECT().Service(gomock.Any()).Return(nil, nil)

		_, err := New(provider)
		require.EqualError(t, err, "cast service to issuecredential service failed")
	})
}

func TestClientDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockProtocolService(ctrl)
	client := &Client{service: service}

	record := &exchange.Record{ID: "exchange-1", ThreadID: "thread-1"}

	service.EXPECT().OfferCredential(gomock.Any()).Return(record, nil)
	got, err := client.OfferCredential(issuecredential.OfferCredentialOptions{})
	require.NoError(t, err)
	require.Equal(t, record, got)

	service.EXPECT().AcceptOffer("exchange-1", gomock.Any()).Return(record, nil)
	_, err = client.AcceptOffer("exchange-1", issuecredential.AcceptOfferOptions{})
	require.NoError(t, err)

	service.EXPECT().AcceptRequest("exchange-1", gomock.Any()).Return(record, nil)
	_, err = client.AcceptRequest("exchange-1", issuecredential.AcceptRequestOptions{})
	require.NoError(t, err)

	service.EXPECT().AcceptCredential("exchange-1", gomock.Any()).Return(record, nil)
	_, err = client.AcceptCredential("exchange-1", issuecredential.AcceptCredentialOptions{})
	require.NoError(t, err)

	service.EXPECT().Decline("exchange-1", "no").Return(record, nil).Times(3)

	_, err = client.DeclineOffer("exchange-1", "no")
	require.NoError(t, err)

	_, err = client.DeclineRequest("exchange-1", "no")
	require.NoError(t, err)

	_, err = client.DeclineCredential("exchange-1", "no")
	require.NoError(t, err)

	service.EXPECT().GetExchange("exchange-1").Return(record, nil)
	_, err = client.GetExchange("exchange-1")
	require.NoError(t, err)

	service.EXPECT().GetExchangeByThreadID("thread-1").Return(record, nil)
	_, err = client.GetExchangeByThreadID("thread-1")
	require.NoError(t, err)

	service.EXPECT().FindCredentialMessage("exchange-1").Return(&issuecredential.IssueCredential{}, nil)
	msg, err := client.FindCredentialMessage("exchange-1")
	require.NoError(t, err)
	require.NotNil(t, msg)
}
