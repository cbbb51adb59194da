/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package exchange persists credential exchange records and the protocol
// messages belonging to them. Records are never deleted here; retention is an
// external concern.
package exchange

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/hyperledger/aries-framework-go/spi/storage"
)

// Name is the name of the underlying store.
const Name = "credentialexchange"

const (
	threadIDTagName  = "threadID"
	recordKeyPrefix  = "record_"
	messageKeyFormat = "msg_%s_%s"
)

// ErrRecordNotFound is returned when no exchange record matches a lookup.
var ErrRecordNotFound = errors.New("exchange record not found")

var logger = log.New("credential-exchange/store")

// Store provides exchange record persistence over an spi storage provider.
// Every operation is atomic for a single record.
type Store struct {
	store storage.Store
}

// NewStore opens the exchange store using the given provider.
func NewStore(p storage.Provider) (*Store, error) {
	store, err := p.OpenStore(Name)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	err = p.SetStoreConfig(Name, storage.StoreConfiguration{TagNames: []string{threadIDTagName}})
	if err != nil {
		return nil, fmt.Errorf("set store config: %w", err)
	}

	return &Store{store: store}, nil
}

// Save persists a new exchange record. The record's thread id must not be in
// use by another record.
func (s *Store) Save(r *Record) error {
	existing, err := s.GetByThreadID(r.ThreadID)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return err
	}

	if existing != nil && existing.ID != r.ID {
		return fmt.Errorf("thread id %q is already bound to record %q", r.ThreadID, existing.ID)
	}

	return s.put(r)
}

// Update persists changes to an existing exchange record.
func (s *Store) Update(r *Record) error {
	if _, err := s.Get(r.ID); err != nil {
		return err
	}

	return s.put(r)
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (*Record, error) {
	src, err := s.store.Get(recordKeyPrefix + id)
	if errors.Is(err, storage.ErrDataNotFound) {
		return nil, fmt.Errorf("%w: id %q", ErrRecordNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}

	r := &Record{}
	if err := json.Unmarshal(src, r); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}

	return r, nil
}

// GetByThreadID returns the record correlated with the given thread id.
func (s *Store) GetByThreadID(threadID string) (*Record, error) {
	iter, err := s.store.Query(threadIDTagName + ":" + threadID)
	if err != nil {
		return nil, fmt.Errorf("query by thread id: %w", err)
	}

	defer storage.Close(iter, logger)

	more, err := iter.Next()
	if err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	if !more {
		return nil, fmt.Errorf("%w: thread id %q", ErrRecordNotFound, threadID)
	}

	src, err := iter.Value()
	if err != nil {
		return nil, fmt.Errorf("get record value: %w", err)
	}

	r := &Record{}
	if err := json.Unmarshal(src, r); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}

	return r, nil
}

// List returns all exchange records.
func (s *Store) List() ([]*Record, error) {
	iter, err := s.store.Query(threadIDTagName)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	defer storage.Close(iter, logger)

	var records []*Record

	for {
		more, err := iter.Next()
		if err != nil {
			return nil, fmt.Errorf("iterate records: %w", err)
		}

		if !more {
			return records, nil
		}

		src, err := iter.Value()
		if err != nil {
			return nil, fmt.Errorf("get record value: %w", err)
		}

		r := &Record{}
		if err := json.Unmarshal(src, r); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}

		records = append(records, r)
	}
}

// SaveMessage persists a raw protocol message of an exchange, keyed by the
// record id and the message kind. A later message of the same kind overwrites
// the earlier one.
func (s *Store) SaveMessage(recordID, kind string, raw []byte) error {
	return s.store.Put(fmt.Sprintf(messageKeyFormat, recordID, kind), raw)
}

// GetMessage returns the stored protocol message of the given kind, or nil if
// none was stored.
func (s *Store) GetMessage(recordID, kind string) ([]byte, error) {
	src, err := s.store.Get(fmt.Sprintf(messageKeyFormat, recordID, kind))
	if errors.Is(err, storage.ErrDataNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}

	return src, nil
}

func (s *Store) put(r *Record) error {
	src, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	return s.store.Put(recordKeyPrefix+r.ID, src, storage.Tag{Name: threadIDTagName, Value: r.ThreadID})
}
