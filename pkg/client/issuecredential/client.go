/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package issuecredential provides the application-facing client for the
// issue-credential protocol service.
package issuecredential

import (
	"errors"

	"github.com/hyperledger/credential-exchange-go/pkg/didcomm/protocol/issuecredential"
	"github.com/hyperledger/credential-exchange-go/pkg/store/exchange"
)

// Provider contains dependencies for the issuecredential client.
type Provider interface {
	Service(id string) (interface{}, error)
}

// ProtocolService defines the issue-credential service surface the client drives.
type ProtocolService interface {
	OfferCredential(opts issuecredential.OfferCredentialOptions) (*exchange.Record, error)
	AcceptOffer(exchangeID string, opts issuecredential.AcceptOfferOptions) (*exchange.Record, error)
	AcceptRequest(exchangeID string, opts issuecredential.AcceptRequestOptions) (*exchange.Record, error)
	AcceptCredential(exchangeID string, opts issuecredential.AcceptCredentialOptions) (*exchange.Record, error)
	Decline(exchangeID, reason string) (*exchange.Record, error)
	GetExchange(exchangeID string) (*exchange.Record, error)
	GetExchangeByThreadID(threadID string) (*exchange.Record, error)
	FindCredentialMessage(exchangeID string) (*issuecredential.IssueCredential, error)
}

// Client enables access to the issue-credential API.
type Client struct {
	service ProtocolService
}

// New returns a new client for the issue-credential protocol.
func New(ctx Provider) (*Client, error) {
	svc, err := ctx.Service(issuecredential.Name)
	if err != nil {
		return nil, err
	}

	ic, ok := svc.(ProtocolService)
	if !ok {
		return nil, errors.New("cast service to issuecredential service failed")
	}

	return &Client{service: ic}, nil
}

// OfferCredential sends a credential offer to the holder, starting a new
// exchange as issuer.
func (c *Client) OfferCredential(opts issuecredential.OfferCredentialOptions) (*exchange.Record, error) {
	return c.service.OfferCredential(opts)
}

// AcceptOffer responds to a received offer by requesting the credential.
func (c *Client) AcceptOffer(exchangeID string, opts issuecredential.AcceptOfferOptions) (*exchange.Record, error) {
	return c.service.AcceptOffer(exchangeID, opts)
}

// AcceptRequest issues the credential for a received request.
func (c *Client) AcceptRequest(exchangeID string, opts issuecredential.AcceptRequestOptions) (*exchange.Record, error) {
	return c.service.AcceptRequest(exchangeID, opts)
}

// AcceptCredential stores a received credential and acknowledges it.
func (c *Client) AcceptCredential(exchangeID string, opts issuecredential.AcceptCredentialOptions) (*exchange.Record, error) {
	return c.service.AcceptCredential(exchangeID, opts)
}

// DeclineOffer rejects a received offer and notifies the issuer.
func (c *Client) DeclineOffer(exchangeID, reason string) (*exchange.Record, error) {
	return c.service.Decline(exchangeID, reason)
}

// DeclineRequest rejects a received request and notifies the holder.
func (c *Client) DeclineRequest(exchangeID, reason string) (*exchange.Record, error) {
	return c.service.Decline(exchangeID, reason)
}

// DeclineCredential rejects a received credential and notifies the issuer.
func (c *Client) DeclineCredential(exchangeID, reason string) (*exchange.Record, error) {
	return c.service.Decline(exchangeID, reason)
}

// GetExchange returns the exchange record with the given id.
func (c *Client) GetExchange(exchangeID string) (*exchange.Record, error) {
	return c.service.GetExchange(exchangeID)
}

// GetExchangeByThreadID returns the exchange record correlated with the given
// thread id.
func (c *Client) GetExchangeByThreadID(threadID string) (*exchange.Record, error) {
	return c.service.GetExchangeByThreadID(threadID)
}

// FindCredentialMessage returns the stored issue-credential message of an
// exchange, or nil if no credential was exchanged yet.
func (c *Client) FindCredentialMessage(exchangeID string) (*issuecredential.IssueCredential, error) {
	return c.service.FindCredentialMessage(exchangeID)
}
