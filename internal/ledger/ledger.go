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

package ledger

import (
	"bytes"
	"context"
	"io/ioutil"
	"time"

	"github.com/karlseguin/ccache"
	"github.com/provenant-io/provenant/internal/anchoring"
	"github.com/provenant-io/provenant/internal/config"
	"github.com/provenant-io/provenant/internal/eventlog"
	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/internal/log"
	"github.com/provenant-io/provenant/internal/statemachine"
	"github.com/provenant-io/provenant/pkg/contentstore"
	"github.com/provenant-io/provenant/pkg/database"
	"github.com/provenant-io/provenant/pkg/ledgeranchor"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

// Ledger is the facade over the event log, the state machines, and the
// anchoring pipeline. All writes flow through AppendEvent, which is the
// single place authorization, payload validation, transition validation,
// and anchoring decisions happen.
type Ledger struct {
	ctx           context.Context
	database      database.Plugin
	contentstore  contentstore.Plugin
	ledgeranchor  ledgeranchor.Plugin
	eventlog      *eventlog.EventLog
	anchoring     *anchoring.Pipeline
	snapshotCache *ccache.Cache
	snapshotTTL   time.Duration
}

func NewLedger(ctx context.Context, di database.Plugin, cs contentstore.Plugin, la ledgeranchor.Plugin, el *eventlog.EventLog, ap *anchoring.Pipeline) *Ledger {
	return &Ledger{
		ctx:          ctx,
		database:     di,
		contentstore: cs,
		ledgeranchor: la,
		eventlog:     el,
		anchoring:    ap,
		snapshotCache: ccache.New(
			ccache.Configure().MaxSize(config.GetByteSize(config.SnapshotCacheSize)),
		),
		snapshotTTL: config.GetDuration(config.SnapshotCacheTTL),
	}
}

// rolePermissions is the fixed authorization table: which event kinds each
// role may append. Status changes are additionally constrained to the entity
// kind the role works with.
var rolePermissions = map[pvtypes.CallerRole]map[pvtypes.EventKind]bool{
	pvtypes.RoleProducer: {
		pvtypes.EventKindLocationUpdate:       true,
		pvtypes.EventKindTemperatureReading:   true,
		pvtypes.EventKindDeliveredLegComplete: true,
	},
	pvtypes.RoleCarrier: {
		pvtypes.EventKindStatusChange: true,
	},
	pvtypes.RoleInspector: {
		pvtypes.EventKindDocumentAttached: true,
	},
	pvtypes.RoleCertifier: {
		pvtypes.EventKindReviewAssigned: true,
		pvtypes.EventKindStatusChange:   true,
	},
	pvtypes.RoleOperator: {
		pvtypes.EventKindCorrection: true,
	},
}

func authorize(ctx context.Context, caller *pvtypes.Caller, entityKind pvtypes.EntityKind, eventKind pvtypes.EventKind) error {
	allowed := rolePermissions[caller.Role][eventKind]
	if allowed && eventKind == pvtypes.EventKindStatusChange {
		switch caller.Role {
		case pvtypes.RoleCarrier:
			allowed = entityKind == pvtypes.EntityKindShipment
		case pvtypes.RoleCertifier:
			allowed = entityKind == pvtypes.EntityKindCertification
		}
	}
	if allowed && eventKind == pvtypes.EventKindReviewAssigned {
		allowed = entityKind == pvtypes.EntityKindCertification
	}
	if !allowed {
		return i18n.NewError(ctx, i18n.MsgUnauthorizedEventKind, caller.Identity, caller.Role, eventKind)
	}
	return nil
}

// AppendEvent validates and appends one checkpoint event, returning the
// snapshot of the entity after the append. A rejected event (unauthorized,
// invalid transition, stale precondition) returns the current unchanged
// snapshot alongside the error. The entity parameter is only
// consulted when the event creates the entity; for existing entities the
// stored record is authoritative.
//
// Validation runs under the per-entity exclusive lock, so the state the
// event was validated against is the state it is appended onto.
func (lg *Ledger) AppendEvent(ctx context.Context, caller *pvtypes.Caller, entity *pvtypes.Entity, event *pvtypes.CheckpointEvent) (*pvtypes.EntitySnapshot, error) {

	if err := statemachine.ValidatePayload(ctx, event); err != nil {
		return nil, err
	}

	var snapshot *pvtypes.EntitySnapshot
	err := lg.eventlog.RunExclusive(ctx, event.Entity, func(ctx context.Context) error {
		stored, err := lg.database.GetEntityByID(ctx, event.Entity)
		if err != nil {
			return err
		}
		if stored != nil {
			entity = stored
		}
		if entity == nil {
			return i18n.NewError(ctx, i18n.MsgEntityNotFound, event.Entity)
		}

		sm, err := statemachine.ForKind(ctx, entity.Kind)
		if err != nil {
			return err
		}

		events, err := lg.eventlog.Read(ctx, event.Entity, 0)
		if err != nil {
			return err
		}
		state, err := sm.Recompute(ctx, entity, events)
		if err != nil {
			return err
		}

		// Rejections return the current unchanged snapshot alongside the
		// error, so callers can see the state the event was refused against
		reject := func(rejectErr error) error {
			if snap, snapErr := lg.assembleSnapshot(ctx, entity, state); snapErr == nil {
				snapshot = snap
			}
			return rejectErr
		}

		if err = authorize(ctx, caller, entity.Kind, event.Kind); err != nil {
			return reject(err)
		}
		event.Producer = caller.Identity

		noop, err := sm.ValidateEvent(ctx, entity, state, event)
		if err != nil {
			return reject(err)
		}
		if noop {
			log.L(ctx).Debugf("Event %s on entity %s is a no-op against seq %d", event.Kind, event.Entity, state.LatestSeq)
			snapshot, err = lg.assembleSnapshot(ctx, entity, state)
			return err
		}

		if event.ExpectSeq != nil && *event.ExpectSeq != state.LatestSeq {
			return reject(i18n.NewError(ctx, i18n.MsgStaleWrite, *event.ExpectSeq, state.LatestSeq))
		}

		// Recompute with the candidate appended, to derive the anchoring
		// flag and the post-append state in one pass
		event.Sequence = state.LatestSeq + 1
		newState, err := sm.Recompute(ctx, entity, append(events, event))
		if err != nil {
			return err
		}

		if _, err = lg.eventlog.Append(ctx, entity, event); err != nil {
			return err
		}
		snapshot, err = lg.assembleSnapshot(ctx, entity, newState)
		return err
	})
	if err != nil {
		return snapshot, err
	}

	lg.snapshotCache.Delete(event.Entity.String())
	if event.RequiresAnchor {
		lg.anchoring.Enqueue(event.Entity, event.Sequence)
	}
	return snapshot, nil
}

func (lg *Ledger) assembleSnapshot(ctx context.Context, entity *pvtypes.Entity, state *pvtypes.DerivedState) (*pvtypes.EntitySnapshot, error) {
	anchors, err := lg.database.GetAnchorsForEntity(ctx, entity.ID)
	if err != nil {
		return nil, err
	}
	return &pvtypes.EntitySnapshot{
		Entity:  entity,
		State:   state,
		Anchors: anchors,
	}, nil
}

// GetSnapshot returns the entity's read model, recomputed from its events.
// Snapshots are cached until the next append to the entity, or TTL expiry.
func (lg *Ledger) GetSnapshot(ctx context.Context, entityID *pvtypes.UUID) (*pvtypes.EntitySnapshot, error) {
	if cached := lg.snapshotCache.Get(entityID.String()); cached != nil && !cached.Expired() {
		return cached.Value().(*pvtypes.EntitySnapshot), nil
	}

	entity, err := lg.database.GetEntityByID(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, i18n.NewError(ctx, i18n.MsgEntityNotFound, entityID)
	}
	sm, err := statemachine.ForKind(ctx, entity.Kind)
	if err != nil {
		return nil, err
	}
	events, err := lg.eventlog.Read(ctx, entityID, 0)
	if err != nil {
		return nil, err
	}
	state, err := sm.Recompute(ctx, entity, events)
	if err != nil {
		return nil, err
	}
	snapshot, err := lg.assembleSnapshot(ctx, entity, state)
	if err != nil {
		return nil, err
	}

	lg.snapshotCache.Set(entityID.String(), snapshot, lg.snapshotTTL)
	return snapshot, nil
}

// GetEntities lists tracked entities, optionally filtered by kind
func (lg *Ledger) GetEntities(ctx context.Context, kind pvtypes.EntityKind, limit int) ([]*pvtypes.Entity, error) {
	return lg.database.GetEntities(ctx, kind, limit)
}

// GetEvents returns the entity's event sequence from the given sequence number
func (lg *Ledger) GetEvents(ctx context.Context, entityID *pvtypes.UUID, fromSeq int64) ([]*pvtypes.CheckpointEvent, error) {
	return lg.eventlog.Read(ctx, entityID, fromSeq)
}

// ListOutstandingAnchors returns every anchor record that has not reached
// confirmed, across all entities
func (lg *Ledger) ListOutstandingAnchors(ctx context.Context) ([]*pvtypes.AnchorRecord, error) {
	return lg.database.GetOutstandingAnchors(ctx)
}

// RetryAnchor re-runs the anchoring pipeline for a failed anchor. Operators
// only - a retry submits a new ledger transaction.
func (lg *Ledger) RetryAnchor(ctx context.Context, caller *pvtypes.Caller, entityID *pvtypes.UUID, sequence int64) (*pvtypes.AnchorRecord, error) {
	if caller.Role != pvtypes.RoleOperator {
		return nil, i18n.NewError(ctx, i18n.MsgUnauthorizedEventKind, caller.Identity, caller.Role, "re-anchor")
	}
	return lg.anchoring.RetryAnchor(ctx, entityID, sequence)
}

// VerifyCheckpoint independently re-verifies an anchored checkpoint:
// the stored event must still serialize to the bytes held by the content
// store, and the ledger must still recognize the anchored hash. A failed
// verification is reported, never auto-corrected.
func (lg *Ledger) VerifyCheckpoint(ctx context.Context, entityID *pvtypes.UUID, sequence int64) (*pvtypes.VerificationResult, error) {

	anchor, err := lg.database.GetAnchor(ctx, entityID, sequence)
	if err != nil {
		return nil, err
	}
	if anchor == nil || anchor.Status == pvtypes.AnchorStatusFailed {
		return &pvtypes.VerificationResult{Valid: false, Reason: pvtypes.VerifyReasonNotAnchored}, nil
	}
	result := &pvtypes.VerificationResult{
		ContentRef: anchor.ContentRef,
		TXRef:      anchor.TXRef,
	}
	if anchor.Status == pvtypes.AnchorStatusPending {
		result.Reason = pvtypes.VerifyReasonAnchorPending
		return result, nil
	}

	event, err := lg.database.GetEventBySequence(ctx, entityID, sequence)
	if err != nil {
		return nil, err
	}
	var canonical []byte
	if event != nil {
		if canonical, err = event.CanonicalBytes(); err != nil {
			return nil, err
		}
	}

	data, err := lg.contentstore.RetrieveData(ctx, anchor.ContentRef)
	if err != nil {
		log.L(ctx).Errorf("Content store cannot serve anchored ref %s for entity %s seq %d: %s", anchor.ContentRef, entityID, sequence, err)
		result.Reason = pvtypes.VerifyReasonContentMismatch
		return result, nil
	}
	stored, err := ioutil.ReadAll(data)
	_ = data.Close()
	if err != nil {
		result.Reason = pvtypes.VerifyReasonContentMismatch
		return result, nil
	}
	if event == nil || !bytes.Equal(canonical, stored) {
		log.L(ctx).Warnf("Stored event for entity %s seq %d no longer matches anchored content %s", entityID, sequence, anchor.ContentRef)
		result.Reason = pvtypes.VerifyReasonHashMismatch
		return result, nil
	}

	valid, err := lg.ledgeranchor.IsValid(ctx, anchor.ContentHash)
	if err != nil {
		return nil, err
	}
	if !valid {
		result.Reason = pvtypes.VerifyReasonLedgerInvalid
		return result, nil
	}

	result.Valid = true
	return result, nil
}
