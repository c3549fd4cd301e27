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

package pvtypes

// AnchorStatus is the lifecycle of an anchor record
type AnchorStatus = PVEnum

var (
	// AnchorStatusPending - submitted (or submission in progress), not yet confirmed by the ledger
	AnchorStatusPending = pvEnum("anchorstatus", "pending")
	// AnchorStatusConfirmed - the ledger acknowledged the anchor transaction
	AnchorStatusConfirmed = pvEnum("anchorstatus", "confirmed")
	// AnchorStatusFailed - retries exhausted; eligible for manual re-anchor
	AnchorStatusFailed = pvEnum("anchorstatus", "failed")
)

// AnchorRecord tracks the anchoring of one checkpoint event to the external
// ledger. There is at most one per (entity, sequence) pair, owned by the
// pipeline instance that initiated it.
type AnchorRecord struct {
	ID          *UUID        `json:"id"`
	Entity      *UUID        `json:"entity"`
	Sequence    int64        `json:"sequence"`
	ContentRef  string       `json:"contentRef,omitempty"`
	ContentHash *Bytes32     `json:"contentHash,omitempty"`
	TXRef       string       `json:"txRef,omitempty"`
	Status      AnchorStatus `json:"status"`
	Error       string       `json:"error,omitempty"`
	Created     *PVTime      `json:"created,omitempty"`
	Updated     *PVTime      `json:"updated,omitempty"`
}
