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

package contentstore

import (
	"context"
	"io"

	"github.com/provenant-io/provenant/internal/config"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

// Plugin is the interface implemented by each content store plugin.
//
// A content store is content-addressed: the payload reference returned by
// PublishData is derived from the content itself, so retrieval by that
// reference returns exactly the bytes that were stored, or fails.
type Plugin interface {
	// InitPrefix initializes the set of configuration options that are valid,
	// with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix) error

	// Capabilities returns the capabilities of the plugin
	Capabilities() *Capabilities

	// Name returns the name of the plugin
	Name() string

	// PublishData publishes data to the store, and returns the
	// content-derived payload reference, plus its 32 byte hash form for
	// submission to the ledger
	PublishData(ctx context.Context, data io.Reader) (payloadRef string, contentHash *pvtypes.Bytes32, err error)

	// RetrieveData reads data back from the store by payload reference
	RetrieveData(ctx context.Context, payloadRef string) (data io.ReadCloser, err error)
}

// Capabilities defines the capabilities a backing content store has
type Capabilities struct {
}
