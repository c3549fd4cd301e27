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

package statemachine

import (
	"context"

	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

// StateMachine maps an entity's ordered event sequence to its derived state.
// Implementations are pure: no I/O, no clocks other than the expiry check,
// and identical inputs always produce identical outputs.
type StateMachine interface {
	// Kind returns the entity kind this state machine applies to
	Kind() pvtypes.EntityKind

	// ValidateEvent checks a candidate event against the current derived
	// state, before anything is written to the log. A true noop return means
	// the event is a harmless duplicate that should not be appended.
	ValidateEvent(ctx context.Context, entity *pvtypes.Entity, state *pvtypes.DerivedState, event *pvtypes.CheckpointEvent) (noop bool, err error)

	// Recompute derives the state from the full committed event sequence,
	// in ascending sequence order. It also determines which events carry
	// the anchor flag - producers cannot self-certify importance.
	Recompute(ctx context.Context, entity *pvtypes.Entity, events []*pvtypes.CheckpointEvent) (*pvtypes.DerivedState, error)
}

var stateMachines = []StateMachine{
	&shipmentSM{},
	&certificationSM{},
}

// ForKind returns the state machine for an entity kind
func ForKind(ctx context.Context, kind pvtypes.EntityKind) (StateMachine, error) {
	for _, sm := range stateMachines {
		if sm.Kind() == kind {
			return sm, nil
		}
	}
	return nil, i18n.NewError(ctx, i18n.MsgInvalidEntityKind, kind)
}

// initialState is the derived state of an entity with no events
func initialState() *pvtypes.DerivedState {
	return &pvtypes.DerivedState{
		Status:   pvtypes.EntityStatusPending,
		Progress: 0,
	}
}

// inOrder determines whether an event participates in status/progress
// recomputation. Events with a timestamp earlier than the latest observed
// are kept in the log for audit completeness, but excluded here.
func inOrder(latest *pvtypes.PVTime, event *pvtypes.CheckpointEvent) bool {
	return latest == nil || !event.Timestamp.Before(latest)
}

func checkTerminal(ctx context.Context, entity *pvtypes.Entity, state *pvtypes.DerivedState, event *pvtypes.CheckpointEvent) error {
	if pvtypes.IsTerminal(state.Status) && event.Kind != pvtypes.EventKindCorrection {
		return i18n.NewError(ctx, i18n.MsgTerminalStatus, entity.ID, state.Status, event.Kind)
	}
	return nil
}
