// Copyright © 2022 Provenant Labs, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledgeranchor

import (
	"context"

	"github.com/provenant-io/provenant/internal/config"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

// Plugin is the interface implemented by each ledger anchor plugin.
//
// The external ledger is treated as an immutable, independently verifiable
// record of (entity, sequence, checkpoint hash, timestamp) tuples. The
// plugin does not implement consensus - it submits to an existing ledger.
type Plugin interface {
	// InitPrefix initializes the set of configuration options that are valid,
	// with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration, and a callback
	// interface for asynchronous submission updates
	Init(ctx context.Context, prefix config.Prefix, callbacks Callbacks) error

	// Start is called once Init of all plugins is complete, to start
	// any event listening
	Start() error

	// Capabilities returns the capabilities of the plugin
	Capabilities() *Capabilities

	// Name returns the name of the plugin
	Name() string

	// SubmitAnchor writes the fixed-shape anchor record to the ledger.
	// The returned transaction reference correlates the asynchronous
	// confirmation delivered via Callbacks.AnchorOpUpdate
	SubmitAnchor(ctx context.Context, entityID *pvtypes.UUID, sequence int64, contentHash *pvtypes.Bytes32, timestamp *pvtypes.PVTime) (txRef string, err error)

	// IsValid queries whether the ledger currently recognizes the given
	// checkpoint hash as anchored and not revoked
	IsValid(ctx context.Context, contentHash *pvtypes.Bytes32) (bool, error)
}

// TransactionStatus is the only architecturally significant part of a
// submission update. The rest of the receipt is passed through as opaque
// information for diagnostics.
type TransactionStatus = pvtypes.PVEnum

var (
	TXStatusSucceeded TransactionStatus = "succeeded"
	TXStatusFailed    TransactionStatus = "failed"
)

// Callbacks is the interface provided to the ledger anchor plugin, for
// delivery of asynchronous submission confirmations
type Callbacks interface {
	// AnchorOpUpdate notifies of an update to a previously submitted anchor
	// transaction. txRef is the reference returned from SubmitAnchor
	AnchorOpUpdate(txRef string, txState TransactionStatus, errorMessage string, opOutput pvtypes.JSONObject)
}

// Capabilities is the supported features of the ledger anchor plugin
type Capabilities struct {
}
