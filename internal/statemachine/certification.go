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

// certificationSM derives certification application state:
//
//	pending -> under_review -> { approved | rejected }
//
// approved moves to expired when the validity end date elapses. rejected
// and expired are terminal. under_review is only reachable via a
// review-assigned event, never a bare status declaration.
type certificationSM struct{}

func (sm *certificationSM) Kind() pvtypes.EntityKind {
	return pvtypes.EntityKindCertification
}

func (sm *certificationSM) ValidateEvent(ctx context.Context, entity *pvtypes.Entity, state *pvtypes.DerivedState, event *pvtypes.CheckpointEvent) (bool, error) {
	if err := checkTerminal(ctx, entity, state, event); err != nil {
		return false, err
	}

	switch event.Kind {
	case pvtypes.EventKindReviewAssigned:
		reviewer := event.Payload.GetString(pvtypes.PayloadReviewer)
		if reviewer == "" {
			return false, i18n.NewError(ctx, i18n.MsgMissingReviewer)
		}
		if state.Status == pvtypes.EntityStatusApproved {
			return false, i18n.NewError(ctx, i18n.MsgInvalidTransition,
				string(state.Status)+" -> "+string(pvtypes.EntityStatusUnderReview))
		}
		// Re-assigning the same reviewer is an idempotent no-op. A
		// different reviewer appends a corrective record, never a mutation
		if state.Status == pvtypes.EntityStatusUnderReview && state.Assignee == reviewer {
			return true, nil
		}
		return false, nil

	case pvtypes.EventKindStatusChange:
		return false, sm.validateStatusChange(ctx, state, event)

	case pvtypes.EventKindDocumentAttached,
		pvtypes.EventKindCorrection:
		return false, nil

	default:
		return false, i18n.NewError(ctx, i18n.MsgInvalidEventKind, event.Kind, entity.Kind)
	}
}

func (sm *certificationSM) validateStatusChange(ctx context.Context, state *pvtypes.DerivedState, event *pvtypes.CheckpointEvent) error {
	declared := event.DeclaredStatus()
	switch declared {
	case pvtypes.EntityStatusPending:
		// Only valid as the creation event
		if state.LatestSeq != 0 {
			return i18n.NewError(ctx, i18n.MsgInvalidTransition,
				string(state.Status)+" -> "+string(declared))
		}
		return nil

	case pvtypes.EntityStatusApproved:
		if state.Status != pvtypes.EntityStatusUnderReview {
			return i18n.NewError(ctx, i18n.MsgInvalidTransition,
				string(state.Status)+" -> "+string(declared))
		}
		if event.Payload.GetString(pvtypes.PayloadCertNumber) == "" {
			return i18n.NewError(ctx, i18n.MsgMissingCertificationNumber)
		}
		validUntil, err := pvtypes.ParseTimeString(event.Payload.GetString(pvtypes.PayloadValidUntil))
		if err != nil || !event.Timestamp.Before(validUntil) {
			return i18n.NewError(ctx, i18n.MsgInvalidValidityEnd)
		}
		return nil

	case pvtypes.EntityStatusRejected:
		if state.Status != pvtypes.EntityStatusUnderReview {
			return i18n.NewError(ctx, i18n.MsgInvalidTransition,
				string(state.Status)+" -> "+string(declared))
		}
		if event.Payload.GetString(pvtypes.PayloadComments) == "" {
			return i18n.NewError(ctx, i18n.MsgMissingReviewComments)
		}
		return nil

	default:
		// under_review is reached via review-assigned, and expiry is
		// time-driven - neither can be declared directly
		return i18n.NewError(ctx, i18n.MsgInvalidTransition,
			string(state.Status)+" -> "+string(declared))
	}
}

func (sm *certificationSM) Recompute(ctx context.Context, entity *pvtypes.Entity, events []*pvtypes.CheckpointEvent) (*pvtypes.DerivedState, error) {
	state := initialState()

	for _, event := range events {
		ordered := inOrder(state.LatestTimestamp, event)
		event.RequiresAnchor = false

		switch event.Kind {
		case pvtypes.EventKindReviewAssigned:
			if ordered {
				state.Assignee = event.Payload.GetString(pvtypes.PayloadReviewer)
				if state.Status == pvtypes.EntityStatusPending {
					state.Status = pvtypes.EntityStatusUnderReview
					if state.Progress < 50 {
						state.Progress = 50
					}
				}
			}

		case pvtypes.EventKindStatusChange:
			declared := event.DeclaredStatus()
			switch declared {
			case pvtypes.EntityStatusApproved:
				if ordered {
					state.Status = pvtypes.EntityStatusApproved
					state.Progress = 100
					state.CertificationNumber = event.Payload.GetString(pvtypes.PayloadCertNumber)
					if validUntil, err := pvtypes.ParseTimeString(event.Payload.GetString(pvtypes.PayloadValidUntil)); err == nil {
						state.ValidUntil = validUntil
					}
					// Certificates must be externally verifiable
					event.RequiresAnchor = true
				}
			case pvtypes.EntityStatusRejected:
				if ordered {
					// The one path that pins progress at completion of a
					// failed application
					state.Status = pvtypes.EntityStatusRejected
					state.Progress = 100
					event.RequiresAnchor = true
				}
			case pvtypes.EntityStatusPending:
				// Creation event

			default:
				log.L(ctx).Errorf("Ignoring status declaration '%s' on certification %s seq %d", declared, entity.ID, event.Sequence)
			}

		case pvtypes.EventKindDocumentAttached:
			// Attachments under an approved certificate are part of the
			// verifiable record
			if state.Status == pvtypes.EntityStatusApproved {
				event.RequiresAnchor = true
			}

		case pvtypes.EventKindCorrection:
			// Compensating record only. No effect on derived state

		default:
			log.L(ctx).Errorf("Ignoring event kind '%s' on certification %s seq %d", event.Kind, entity.ID, event.Sequence)
		}

		if ordered {
			state.LatestTimestamp = event.Timestamp
		}
		state.LatestSeq = event.Sequence
		if event.RequiresAnchor {
			state.AnchorRequired = append(state.AnchorRequired, event.Sequence)
		}
	}

	// Expiry is time-driven, not event-driven, so it is evaluated at
	// recomputation time against the approved validity end date
	if state.Status == pvtypes.EntityStatusApproved && state.ValidUntil != nil && state.ValidUntil.Before(pvtypes.Now()) {
		state.Status = pvtypes.EntityStatusExpired
	}

	return state, nil
}
