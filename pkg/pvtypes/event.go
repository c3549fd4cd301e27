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

import (
	"context"
	"crypto/sha256"
	"encoding/json"
)

// EventKind is the closed set of checkpoint event types
type EventKind = PVEnum

var (
	// EventKindStatusChange declares a new status for the entity. The first
	// event of any entity must be a status-change declaring "pending"
	EventKindStatusChange = pvEnum("eventkind", "status-change")
	// EventKindLocationUpdate is a routine location ping from a carrier
	EventKindLocationUpdate = pvEnum("eventkind", "location-update")
	// EventKindTemperatureReading is a cold-chain sensor reading
	EventKindTemperatureReading = pvEnum("eventkind", "temperature-reading")
	// EventKindDeliveredLegComplete records completion of one planned journey leg
	EventKindDeliveredLegComplete = pvEnum("eventkind", "delivered-leg-complete")
	// EventKindReviewAssigned assigns (or re-assigns) a reviewer to a certification application
	EventKindReviewAssigned = pvEnum("eventkind", "review-assigned")
	// EventKindDocumentAttached references an uploaded document by external URL
	EventKindDocumentAttached = pvEnum("eventkind", "document-attached")
	// EventKindCorrection is a compensating event - history is never edited,
	// corrections are appended. Accepted even in terminal status
	EventKindCorrection = pvEnum("eventkind", "correction")
)

// Common payload keys, shared between the state machines and their producers
const (
	PayloadStatus        = "status"
	PayloadLocation      = "location"
	PayloadTemperature   = "temperature"
	PayloadReviewer      = "reviewer"
	PayloadComments      = "comments"
	PayloadCertNumber    = "certificationNumber"
	PayloadValidUntil    = "validUntil"
	PayloadDocumentURL   = "documentUrl"
	PayloadCorrects      = "corrects"
	PayloadEntityConfig  = "config"
	PayloadLeg           = "leg"
)

// CheckpointEvent is one immutable, timestamped fact appended to an entity's
// history. The sequence is assigned by the event log at append time and is
// never reused. Once committed an event is never edited or removed.
type CheckpointEvent struct {
	ID        *UUID      `json:"id"`
	Entity    *UUID      `json:"entity"`
	Sequence  int64      `json:"sequence"`
	Kind      EventKind  `json:"kind"`
	Producer  string     `json:"producer,omitempty"`
	Timestamp *PVTime    `json:"timestamp"`
	Payload   JSONObject `json:"payload,omitempty"`
	Created   *PVTime    `json:"created,omitempty"`

	// RequiresAnchor is set by the state machine during recomputation, never
	// by the producer - producers cannot self-certify importance
	RequiresAnchor bool `json:"requiresAnchor,omitempty"`

	// ExpectSeq is an optional optimistic concurrency precondition: the
	// append fails with a stale write error if the entity's latest sequence
	// does not match. Not persisted
	ExpectSeq *int64 `json:"expectSeq,omitempty"`
}

// anchorableEvent is the fixed-shape content that gets anchored for a
// checkpoint. The field set is deliberately closed - anything that can be
// mutated after commit (like the anchor flag itself) is excluded.
type anchorableEvent struct {
	Entity    *UUID      `json:"entity"`
	Sequence  int64      `json:"sequence"`
	Kind      EventKind  `json:"kind"`
	Producer  string     `json:"producer,omitempty"`
	Timestamp *PVTime    `json:"timestamp"`
	Payload   JSONObject `json:"payload,omitempty"`
}

// CanonicalBytes returns the deterministic serialization of the event content
// that is anchored and verified. Struct field order is fixed, and the payload
// map serializes with sorted keys.
func (e *CheckpointEvent) CanonicalBytes() ([]byte, error) {
	return json.Marshal(&anchorableEvent{
		Entity:    e.Entity,
		Sequence:  e.Sequence,
		Kind:      e.Kind,
		Producer:  e.Producer,
		Timestamp: e.Timestamp,
		Payload:   e.Payload,
	})
}

// Hash is the sha256 of the canonical serialization - the checkpoint hash
// that gets anchored to the ledger
func (e *CheckpointEvent) Hash(ctx context.Context) (*Bytes32, error) {
	b, err := e.CanonicalBytes()
	if err != nil {
		return nil, err
	}
	var b32 Bytes32 = sha256.Sum256(b)
	return &b32, nil
}

// DeclaredStatus returns the status field of a status-change payload
func (e *CheckpointEvent) DeclaredStatus() EntityStatus {
	return PVEnum(e.Payload.GetString(PayloadStatus)).Lower()
}
