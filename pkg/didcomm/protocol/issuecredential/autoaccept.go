/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import "github.com/hyperledger/credential-exchange-go/pkg/store/exchange"

// shouldAutoRespond decides whether an exchange advances without an explicit
// caller action. The per-exchange override wins over the process-wide
// default; an unset policy behaves as never. The function is pure: the
// process default is passed in, never read from ambient state.
func shouldAutoRespond(override, processDefault exchange.AutoAccept, contentChanged bool) bool {
	policy := processDefault
	if override != "" {
		policy = override
	}

	switch policy {
	case exchange.AutoAcceptAlways:
		return true
	case exchange.AutoAcceptContentApproved:
		return !contentChanged
	default:
		return false
	}
}
