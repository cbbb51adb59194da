/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package decorator

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// Thread thread data
type Thread struct {
	ID  string `json:"thid,omitempty"`
	PID string `json:"pthid,omitempty"`
}

// Attachment is an embedded content-addressed payload block. Attachments are
// identified inside a message by their @id, which for credential formats is a
// format-defined constant rather than a positional index.
type Attachment struct {
	// ID uniquely identifies attached content within the scope of a given message.
	ID string `json:"@id,omitempty"`
	// Description is an optional human-readable description of the content.
	Description string `json:"description,omitempty"`
	// MimeType describes the MIME type of the attached content. Optional but recommended.
	MimeType string `json:"mime-type,omitempty"`
	// Data is a JSON object that gives access to the actual content of the attachment.
	Data AttachmentData `json:"data,omitempty"`
}

// AttachmentData contains attachment payload. One of Base64 or JSON must be set.
type AttachmentData struct {
	// Sha256 is a hash of the content. Optional. Used as an integrity check if content is inlined.
	Sha256 string `json:"sha256,omitempty"`
	// Base64 contains the base64-encoded bytes of the attachment payload.
	Base64 string `json:"base64,omitempty"`
	// JSON contains the attachment payload directly, without encoding.
	JSON interface{} `json:"json,omitempty"`
}

// Fetch this attachment's contents as raw bytes.
func (d *AttachmentData) Fetch() ([]byte, error) {
	if d.JSON != nil {
		bits, err := json.Marshal(d.JSON)
		if err != nil {
			return nil, fmt.Errorf("json marshal: %w", err)
		}

		return bits, nil
	}

	if d.Base64 != "" {
		bits, err := base64.StdEncoding.DecodeString(d.Base64)
		if err != nil {
			return nil, fmt.Errorf("base64 decode: %w", err)
		}

		return bits, nil
	}

	return nil, errors.New("no contents in this attachment")
}

// NewBase64Attachment returns an attachment carrying the given payload base64-encoded.
func NewBase64Attachment(id, mimeType string, payload []byte) Attachment {
	return Attachment{
		ID:       id,
		MimeType: mimeType,
		Data:     AttachmentData{Base64: base64.StdEncoding.EncodeToString(payload)},
	}
}

// NewJSONAttachment returns an attachment carrying the given payload inline.
func NewJSONAttachment(id string, payload interface{}) Attachment {
	return Attachment{
		ID:       id,
		MimeType: "application/json",
		Data:     AttachmentData{JSON: payload},
	}
}

// FindAttachment returns the attachment with the given @id, or nil.
func FindAttachment(attachments []Attachment, id string) *Attachment {
	for i := range attachments {
		if attachments[i].ID == id {
			return &attachments[i]
		}
	}

	return nil
}
