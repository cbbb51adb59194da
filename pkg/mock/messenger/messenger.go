/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package messenger provides a queueing messenger double. Outbound messages
// are recorded instead of delivered, letting tests pump them to the peer one
// at a time outside the sender's critical section.
package messenger

import (
	"sync"

	"github.com/hyperledger/credential-exchange-go/pkg/didcomm/protocol/issuecredential"
)

// Delivery is one recorded outbound message.
type Delivery struct {
	Msg          issuecredential.Message
	ConnectionID string
}

// Queue implements issuecredential.Messenger by recording messages.
type Queue struct {
	// SendErr forces Send to fail.
	SendErr error

	mu         sync.Mutex
	deliveries []Delivery
}

// Send records the outbound message.
func (q *Queue) Send(msg issuecredential.Message, connectionID string) error {
	if q.SendErr != nil {
		return q.SendErr
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.deliveries = append(q.deliveries, Delivery{Msg: msg, ConnectionID: connectionID})

	return nil
}

// Pop removes and returns the oldest recorded message.
func (q *Queue) Pop() (Delivery, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.deliveries) == 0 {
		return Delivery{}, false
	}

	d := q.deliveries[0]
	q.deliveries = q.deliveries[1:]

	return d, true
}

// Len returns the number of undelivered messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.deliveries)
}
