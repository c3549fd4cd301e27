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

package database

import (
	"context"

	"github.com/provenant-io/provenant/internal/config"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

// Plugin is the interface implemented by each database plugin.
//
// Checkpoint events are strictly append-only: there is deliberately no
// update or delete operation for the events table. Sequence numbers are
// assigned at insert time, per entity, and never reused.
type Plugin interface {
	// InitPrefix initializes the set of configuration options that are valid,
	// with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix, callbacks Callbacks) error

	// Capabilities returns the capabilities of the plugin
	Capabilities() *Capabilities

	// Name returns the name of the plugin
	Name() string

	// Close frees the connection pool
	Close()

	// RunAsGroup executes a group of database operations as a single unit,
	// within the same transaction where the database supports it. Post
	// commit callbacks are deferred until the whole group commits
	RunAsGroup(ctx context.Context, fn func(ctx context.Context) error) error

	// UpsertEntity inserts an entity record, or does nothing if an entity
	// with the same ID already exists (entities are immutable once created)
	UpsertEntity(ctx context.Context, entity *pvtypes.Entity) error

	// GetEntityByID returns the entity, or nil if not found
	GetEntityByID(ctx context.Context, id *pvtypes.UUID) (*pvtypes.Entity, error)

	// GetEntities returns entities of the given kind, newest first.
	// A zero kind returns all
	GetEntities(ctx context.Context, kind pvtypes.EntityKind, limit int) ([]*pvtypes.Entity, error)

	// InsertEvent assigns the next sequence number for the entity and
	// commits the event atomically, setting event.Sequence and event.Created.
	// The caller is responsible for per-entity serialization of calls
	InsertEvent(ctx context.Context, event *pvtypes.CheckpointEvent) error

	// GetEvents returns the entity's events with sequence >= fromSeq, in
	// ascending sequence order
	GetEvents(ctx context.Context, entityID *pvtypes.UUID, fromSeq int64) ([]*pvtypes.CheckpointEvent, error)

	// GetEventBySequence returns one event, or nil if not found
	GetEventBySequence(ctx context.Context, entityID *pvtypes.UUID, seq int64) (*pvtypes.CheckpointEvent, error)

	// GetLatestSequence returns the highest committed sequence for the
	// entity, or zero if it has no events
	GetLatestSequence(ctx context.Context, entityID *pvtypes.UUID) (int64, error)

	// UpsertAnchor writes an anchor record, replacing any existing record
	// for the same (entity, sequence) pair
	UpsertAnchor(ctx context.Context, anchor *pvtypes.AnchorRecord) error

	// GetAnchor returns the anchor record for a checkpoint, or nil
	GetAnchor(ctx context.Context, entityID *pvtypes.UUID, seq int64) (*pvtypes.AnchorRecord, error)

	// GetAnchorByTXRef returns the anchor record matching a ledger
	// transaction reference, or nil
	GetAnchorByTXRef(ctx context.Context, txRef string) (*pvtypes.AnchorRecord, error)

	// GetAnchorsForEntity returns all anchor records for the entity, in
	// ascending sequence order
	GetAnchorsForEntity(ctx context.Context, entityID *pvtypes.UUID) ([]*pvtypes.AnchorRecord, error)

	// GetOutstandingAnchors returns all anchor records not yet confirmed,
	// oldest first
	GetOutstandingAnchors(ctx context.Context) ([]*pvtypes.AnchorRecord, error)
}

// Callbacks is the interface provided to the database plugin, to allow the
// core to be notified of ordered commits. Events are delivered only after
// the transaction commits.
type Callbacks interface {
	// CheckpointCommitted notifies of a new committed checkpoint event
	CheckpointCommitted(entityID *pvtypes.UUID, sequence int64)
}

// Capabilities defines the capabilities a backing database has, and
// informs the core processing on what features to enable
type Capabilities struct {
	ConcurrencySafe bool
}
