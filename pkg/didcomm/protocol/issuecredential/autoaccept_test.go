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

func TestShouldAutoRespond(t *testing.T) {
	tests := []struct {
		name           string
		override       exchange.AutoAccept
		processDefault exchange.AutoAccept
		contentChanged bool
		want           bool
	}{
		{name: "unset everywhere", want: false},
		{name: "default always", processDefault: exchange.AutoAcceptAlways, want: true},
		{name: "default never", processDefault: exchange.AutoAcceptNever, want: false},
		{
			name:           "default content approved, content unchanged",
			processDefault: exchange.AutoAcceptContentApproved,
			want:           true,
		},
		{
			name:           "default content approved, content changed",
			processDefault: exchange.AutoAcceptContentApproved,
			contentChanged: true,
			want:           false,
		},
		{
			name:           "never override beats always default",
			override:       exchange.AutoAcceptNever,
			processDefault: exchange.AutoAcceptAlways,
			want:           false,
		},
		{
			name:           "always override beats never default",
			override:       exchange.AutoAcceptAlways,
			processDefault: exchange.AutoAcceptNever,
			want:           true,
		},
		{
			name:           "content approved override beats always default",
			override:       exchange.AutoAcceptContentApproved,
			processDefault: exchange.AutoAcceptAlways,
			contentChanged: true,
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldAutoRespond(tt.override, tt.processDefault, tt.contentChanged)
			require.Equal(t, tt.want, got)
		})
	}
}
