/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package decorator

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttachmentDataFetch(t *testing.T) {
	t.Run("json payload", func(t *testing.T) {
		att := NewJSONAttachment("attach-1", map[string]interface{}{"cred_def_id": "cd:1"})

		bits, err := att.Data.Fetch()
		require.NoError(t, err)
		require.JSONEq(t, `{"cred_def_id":"cd:1"}`, string(bits))
	})

	t.Run("base64 payload", func(t *testing.T) {
		att := NewBase64Attachment("attach-1", "application/json", []byte(`{"a":1}`))

		bits, err := att.Data.Fetch()
		require.NoError(t, err)
		require.Equal(t, `{"a":1}`, string(bits))
	})

	t.Run("invalid base64", func(t *testing.T) {
		d := AttachmentData{Base64: "not base64!"}

		_, err := d.Fetch()
		require.Error(t, err)
	})

	t.Run("empty attachment", func(t *testing.T) {
		d := AttachmentData{}

		_, err := d.Fetch()
		require.EqualError(t, err, "no contents in this attachment")
	})
}

func TestFindAttachment(t *testing.T) {
	attachments := []Attachment{
		NewBase64Attachment("libindy-cred-offer-0", "application/json", []byte("{}")),
		NewBase64Attachment("libindy-cred-0", "application/json", []byte("{}")),
	}

	require.NotNil(t, FindAttachment(attachments, "libindy-cred-0"))
	require.Equal(t, "libindy-cred-offer-0", FindAttachment(attachments, "libindy-cred-offer-0").ID)
	require.Nil(t, FindAttachment(attachments, "unknown"))

	encoded := base64.StdEncoding.EncodeToString([]byte("{}"))
	require.Equal(t, encoded, attachments[0].Data.Base64)
}
