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
	"github.com/provenant-io/provenant/internal/log"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

// shipmentSM derives shipment state:
//
//	pending -> in_transit -> { delayed <-> in_transit } -> delivered
//
// delivered is terminal. delayed returns to in_transit on the next
// location-update or an explicit status-change.
type shipmentSM struct{}

func (sm *shipmentSM) Kind() pvtypes.EntityKind {
	return pvtypes.EntityKindShipment
}

var shipmentTransitions = map[pvtypes.EntityStatus][]pvtypes.EntityStatus{
	pvtypes.EntityStatusPending:   {pvtypes.EntityStatusInTransit},
	pvtypes.EntityStatusInTransit: {pvtypes.EntityStatusDelayed, pvtypes.EntityStatusDelivered},
	pvtypes.EntityStatusDelayed:   {pvtypes.EntityStatusInTransit, pvtypes.EntityStatusDelivered},
}

func validShipmentTransition(from, to pvtypes.EntityStatus) bool {
	for _, allowed := range shipmentTransitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}

func (sm *shipmentSM) ValidateEvent(ctx context.Context, entity *pvtypes.Entity, state *pvtypes.DerivedState, event *pvtypes.CheckpointEvent) (bool, error) {
	if err := checkTerminal(ctx, entity, state, event); err != nil {
		return false, err
	}

	switch event.Kind {
	case pvtypes.EventKindStatusChange:
		declared := event.DeclaredStatus()
		if declared == pvtypes.EntityStatusPending {
			// Only valid as the creation event
			if state.LatestSeq != 0 {
				return false, i18n.NewError(ctx, i18n.MsgInvalidTransition,
					string(state.Status)+" -> "+string(declared))
			}
			return false, nil
		}
		if !validShipmentTransition(state.Status, declared) {
			return false, i18n.NewError(ctx, i18n.MsgInvalidTransition,
				string(state.Status)+" -> "+string(declared))
		}
		return false, nil

	case pvtypes.EventKindLocationUpdate,
		pvtypes.EventKindTemperatureReading,
		pvtypes.EventKindDeliveredLegComplete,
		pvtypes.EventKindCorrection:
		return false, nil

	default:
		return false, i18n.NewError(ctx, i18n.MsgInvalidEventKind, event.Kind, entity.Kind)
	}
}

func (sm *shipmentSM) Recompute(ctx context.Context, entity *pvtypes.Entity, events []*pvtypes.CheckpointEvent) (*pvtypes.DerivedState, error) {
	state := initialState()
	tempMin := entity.Config.GetFloat64(pvtypes.ConfigTempMin)
	tempMax := entity.Config.GetFloat64(pvtypes.ConfigTempMax)
	plannedLegs := entity.Config.GetInt64(pvtypes.ConfigPlannedLegs)
	var completedLegs int64

	for _, event := range events {
		ordered := inOrder(state.LatestTimestamp, event)
		event.RequiresAnchor = false

		switch event.Kind {
		case pvtypes.EventKindStatusChange:
			declared := event.DeclaredStatus()
			// The terminal delivered event always finalizes status, even
			// when it arrives out of order
			if ordered || declared == pvtypes.EntityStatusDelivered {
				state.Status = declared
			}
			if state.Status == pvtypes.EntityStatusDelivered && state.Progress < 100 {
				state.Progress = 100
			}
			event.RequiresAnchor = true

		case pvtypes.EventKindLocationUpdate:
			if ordered {
				state.LastLocation = event.Payload.GetString(pvtypes.PayloadLocation)
				if state.Status == pvtypes.EntityStatusDelayed {
					state.Status = pvtypes.EntityStatusInTransit
				}
			}

		case pvtypes.EventKindTemperatureReading:
			temp := event.Payload.GetFloat64(pvtypes.PayloadTemperature)
			if temp < tempMin || temp > tempMax {
				// Cold-chain excursion. Status is unchanged, but the
				// reading must be independently verifiable
				log.L(ctx).Warnf("Temperature excursion %f outside [%f,%f] on shipment %s seq %d", temp, tempMin, tempMax, entity.ID, event.Sequence)
				state.NeedsReview = true
				event.RequiresAnchor = true
			}

		case pvtypes.EventKindDeliveredLegComplete:
			if ordered && plannedLegs > 0 {
				completedLegs++
				progress := 100 * completedLegs / plannedLegs
				if progress > 100 {
					progress = 100
				}
				// Floored at the last observed value, so a late event can
				// never regress progress shown to a viewer
				if progress > state.Progress {
					state.Progress = progress
				}
			}

		case pvtypes.EventKindCorrection:
			// Compensating record only. No effect on derived state

		default:
			// Kinds that should have been rejected pre-append are ignored
			// on recompute, so one bad historical row cannot poison reads
			log.L(ctx).Errorf("Ignoring event kind '%s' on shipment %s seq %d", event.Kind, entity.ID, event.Sequence)
		}

		if ordered {
			state.LatestTimestamp = event.Timestamp
		}
		state.LatestSeq = event.Sequence
		if event.RequiresAnchor {
			state.AnchorRequired = append(state.AnchorRequired, event.Sequence)
		}
	}

	return state, nil
}
