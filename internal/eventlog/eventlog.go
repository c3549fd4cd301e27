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

package eventlog

import (
	"context"
	"sync"

	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/internal/log"
	"github.com/provenant-io/provenant/pkg/database"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

// EventLog is the append-only, per-entity ordered sequence of checkpoint
// events - the single source of truth from which all derived state is
// computed.
//
// Appends for the same entity are serialized through a per-entity lock, so
// sequence assignment is the single serialization point. Appends for
// different entities proceed fully in parallel.
type EventLog struct {
	database database.Plugin

	lockMux     sync.Mutex
	entityLocks map[pvtypes.UUID]*entityLock
}

type entityLock struct {
	mux  sync.Mutex
	refs int
}

func New(ctx context.Context, di database.Plugin) *EventLog {
	return &EventLog{
		database:    di,
		entityLocks: make(map[pvtypes.UUID]*entityLock),
	}
}

func (el *EventLog) acquire(entityID *pvtypes.UUID) *entityLock {
	el.lockMux.Lock()
	l := el.entityLocks[*entityID]
	if l == nil {
		l = &entityLock{}
		el.entityLocks[*entityID] = l
	}
	l.refs++
	el.lockMux.Unlock()

	l.mux.Lock()
	return l
}

func (el *EventLog) release(entityID *pvtypes.UUID, l *entityLock) {
	l.mux.Unlock()

	el.lockMux.Lock()
	l.refs--
	if l.refs == 0 {
		delete(el.entityLocks, *entityID)
	}
	el.lockMux.Unlock()
}

// RunExclusive runs fn while holding the entity's lock. All writes for an
// entity, and the recomputation that validates them, happen inside this
// section. Network bound work must never be called from fn.
func (el *EventLog) RunExclusive(ctx context.Context, entityID *pvtypes.UUID, fn func(ctx context.Context) error) error {
	l := el.acquire(entityID)
	defer el.release(entityID, l)
	return fn(ctx)
}

// IsCreation identifies the implicit entity creation event: the first
// status-change declaring the entity pending
func IsCreation(event *pvtypes.CheckpointEvent) bool {
	return event.Kind == pvtypes.EventKindStatusChange &&
		event.DeclaredStatus() == pvtypes.EntityStatusPending
}

// Append commits one event, assigning the next sequence number for the
// entity. The caller must hold the entity's exclusive section (RunExclusive).
//
// The first event for an entity must be its creation event, and commits the
// entity record in the same transaction. An optional ExpectSeq precondition
// supports optimistic concurrency for corrective producers.
func (el *EventLog) Append(ctx context.Context, entity *pvtypes.Entity, event *pvtypes.CheckpointEvent) (int64, error) {

	latest, err := el.database.GetLatestSequence(ctx, event.Entity)
	if err != nil {
		return -1, err
	}

	if event.ExpectSeq != nil && *event.ExpectSeq != latest {
		return -1, i18n.NewError(ctx, i18n.MsgStaleWrite, *event.ExpectSeq, latest)
	}

	if latest == 0 {
		if entity == nil {
			return -1, i18n.NewError(ctx, i18n.MsgEntityNotFound, event.Entity)
		}
		if !IsCreation(event) {
			return -1, i18n.NewError(ctx, i18n.MsgFirstEventNotCreation)
		}
		// Entity row and first event commit atomically
		err = el.database.RunAsGroup(ctx, func(ctx context.Context) error {
			if err := el.database.UpsertEntity(ctx, entity); err != nil {
				return err
			}
			return el.database.InsertEvent(ctx, event)
		})
	} else {
		err = el.database.InsertEvent(ctx, event)
	}
	if err != nil {
		return -1, err
	}

	log.L(ctx).Debugf("Appended %s event seq %d to entity %s", event.Kind, event.Sequence, event.Entity)
	return event.Sequence, nil
}

// Read returns the entity's committed events from fromSeq (inclusive), in
// ascending sequence order. Restartable from any sequence number.
func (el *EventLog) Read(ctx context.Context, entityID *pvtypes.UUID, fromSeq int64) ([]*pvtypes.CheckpointEvent, error) {
	return el.database.GetEvents(ctx, entityID, fromSeq)
}

// LatestSeq returns the highest committed sequence for the entity, or zero
func (el *EventLog) LatestSeq(ctx context.Context, entityID *pvtypes.UUID) (int64, error) {
	return el.database.GetLatestSequence(ctx, entityID)
}
