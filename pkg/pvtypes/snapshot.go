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

// DerivedState is always a pure function of the entity's event sequence,
// never stored as a source of truth. Recomputing it from the same events
// yields identical results.
type DerivedState struct {
	Status   EntityStatus `json:"status"`
	Progress int64        `json:"progress"`

	// NeedsReview is the cold-chain excursion side flag for shipments
	NeedsReview bool `json:"needsReview,omitempty"`

	LastLocation        string  `json:"lastLocation,omitempty"`
	Assignee            string  `json:"assignee,omitempty"`
	CertificationNumber string  `json:"certificationNumber,omitempty"`
	ValidUntil          *PVTime `json:"validUntil,omitempty"`

	LatestSeq       int64   `json:"latestSeq"`
	LatestTimestamp *PVTime `json:"latestTimestamp,omitempty"`

	// AnchorRequired lists the sequences of events the state machine flagged
	// for anchoring, in sequence order
	AnchorRequired []int64 `json:"anchorRequired,omitempty"`
}

// EntitySnapshot is the read model returned to callers: the entity, its
// derived state, and the anchor records for its flagged checkpoints
type EntitySnapshot struct {
	Entity  *Entity         `json:"entity"`
	State   *DerivedState   `json:"state"`
	Anchors []*AnchorRecord `json:"anchors,omitempty"`
}

// OutstandingAnchors returns the anchors that have not reached confirmed
func (s *EntitySnapshot) OutstandingAnchors() []*AnchorRecord {
	var outstanding []*AnchorRecord
	for _, a := range s.Anchors {
		if a.Status != AnchorStatusConfirmed {
			outstanding = append(outstanding, a)
		}
	}
	return outstanding
}

// VerifyReason is the closed set of verification failure reasons
type VerifyReason = PVEnum

var (
	// VerifyReasonNotAnchored - no anchor record exists for the checkpoint
	VerifyReasonNotAnchored = pvEnum("verifyreason", "not-anchored")
	// VerifyReasonAnchorPending - the anchor has not yet been confirmed
	VerifyReasonAnchorPending = pvEnum("verifyreason", "anchor-pending")
	// VerifyReasonHashMismatch - stored event bytes no longer produce the anchored hash
	VerifyReasonHashMismatch = pvEnum("verifyreason", "hash-mismatch")
	// VerifyReasonContentMismatch - content store bytes do not match the anchored hash
	VerifyReasonContentMismatch = pvEnum("verifyreason", "content-mismatch")
	// VerifyReasonLedgerInvalid - the ledger no longer recognizes the content identifier
	VerifyReasonLedgerInvalid = pvEnum("verifyreason", "ledger-invalid")
)

// VerificationResult is the outcome of independently re-verifying an
// anchored checkpoint. A failed verification is never auto-corrected.
type VerificationResult struct {
	Valid      bool         `json:"valid"`
	Reason     VerifyReason `json:"reason,omitempty"`
	ContentRef string       `json:"contentRef,omitempty"`
	TXRef      string       `json:"txRef,omitempty"`
}
