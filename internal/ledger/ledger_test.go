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
	"fmt"
	"io/ioutil"
	"testing"

	"github.com/provenant-io/provenant/internal/anchoring"
	"github.com/provenant-io/provenant/internal/config"
	"github.com/provenant-io/provenant/internal/eventlog"
	"github.com/provenant-io/provenant/mocks/contentstoremocks"
	"github.com/provenant-io/provenant/mocks/databasemocks"
	"github.com/provenant-io/provenant/mocks/ledgeranchormocks"
	"github.com/provenant-io/provenant/pkg/pvtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestLedger(t *testing.T) (*Ledger, *databasemocks.Plugin, *contentstoremocks.Plugin, *ledgeranchormocks.Plugin) {
	config.Reset()
	ctx := context.Background()
	mdi := &databasemocks.Plugin{}
	mcs := &contentstoremocks.Plugin{}
	mla := &ledgeranchormocks.Plugin{}
	el := eventlog.New(ctx, mdi)
	ap := anchoring.New(ctx, mdi, mcs, mla)
	return NewLedger(ctx, mdi, mcs, mla, el, ap), mdi, mcs, mla
}

func testShipmentEntity() *pvtypes.Entity {
	return &pvtypes.Entity{
		ID:    pvtypes.NewUUID(),
		Kind:  pvtypes.EntityKindShipment,
		Owner: "did:provenant:org/acme",
		Config: pvtypes.JSONObject{
			pvtypes.ConfigTempMin:     float64(0),
			pvtypes.ConfigTempMax:     float64(4),
			pvtypes.ConfigPlannedLegs: float64(4),
		},
	}
}

func testCertificationEntity() *pvtypes.Entity {
	return &pvtypes.Entity{
		ID:    pvtypes.NewUUID(),
		Kind:  pvtypes.EntityKindCertification,
		Owner: "did:provenant:org/acme",
	}
}

func statusEvent(entityID *pvtypes.UUID, status string) *pvtypes.CheckpointEvent {
	return &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    entityID,
		Kind:      pvtypes.EventKindStatusChange,
		Timestamp: pvtypes.Now(),
		Payload:   pvtypes.JSONObject{"status": status},
	}
}

func carrier() *pvtypes.Caller {
	return &pvtypes.Caller{Identity: "did:provenant:org/fastfreight", Role: pvtypes.RoleCarrier}
}

func certifier() *pvtypes.Caller {
	return &pvtypes.Caller{Identity: "did:provenant:org/certco", Role: pvtypes.RoleCertifier}
}

func TestAppendEventCreatesShipment(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entity := testShipmentEntity()
	event := statusEvent(entity.ID, "pending")

	mdi.On("GetEntityByID", mock.Anything, entity.ID).Return(nil, nil)
	mdi.On("GetEvents", mock.Anything, entity.ID, int64(0)).Return([]*pvtypes.CheckpointEvent{}, nil)
	mdi.On("GetLatestSequence", mock.Anything, entity.ID).Return(int64(0), nil)
	mdi.On("RunAsGroup", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		_ = args[1].(func(context.Context) error)(context.Background())
	})
	mdi.On("UpsertEntity", mock.Anything, entity).Return(nil)
	mdi.On("InsertEvent", mock.Anything, event).Return(nil)
	mdi.On("GetAnchorsForEntity", mock.Anything, entity.ID).Return([]*pvtypes.AnchorRecord{}, nil)

	snapshot, err := lg.AppendEvent(context.Background(), carrier(), entity, event)
	assert.NoError(t, err)
	assert.Equal(t, pvtypes.EntityStatusPending, snapshot.State.Status)
	assert.Equal(t, int64(1), snapshot.State.LatestSeq)
	assert.Equal(t, "did:provenant:org/fastfreight", event.Producer)
	// The creation status change is a checkpoint
	assert.True(t, event.RequiresAnchor)
	mdi.AssertExpectations(t)
}

func TestAppendEventExistingEntity(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entity := testShipmentEntity()
	creation := statusEvent(entity.ID, "pending")
	creation.Sequence = 1
	event := statusEvent(entity.ID, "in_transit")

	mdi.On("GetEntityByID", mock.Anything, entity.ID).Return(entity, nil)
	mdi.On("GetEvents", mock.Anything, entity.ID, int64(0)).Return([]*pvtypes.CheckpointEvent{creation}, nil)
	mdi.On("GetLatestSequence", mock.Anything, entity.ID).Return(int64(1), nil)
	mdi.On("InsertEvent", mock.Anything, event).Return(nil)
	mdi.On("GetAnchorsForEntity", mock.Anything, entity.ID).Return([]*pvtypes.AnchorRecord{}, nil)

	snapshot, err := lg.AppendEvent(context.Background(), carrier(), nil, event)
	assert.NoError(t, err)
	assert.Equal(t, pvtypes.EntityStatusInTransit, snapshot.State.Status)
	assert.Equal(t, int64(2), snapshot.State.LatestSeq)
	mdi.AssertExpectations(t)
}

func TestAppendEventUnauthorizedRole(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entity := testShipmentEntity()
	event := statusEvent(entity.ID, "in_transit")

	mdi.On("GetEntityByID", mock.Anything, entity.ID).Return(entity, nil)
	mdi.On("GetEvents", mock.Anything, entity.ID, int64(0)).Return([]*pvtypes.CheckpointEvent{}, nil)
	mdi.On("GetAnchorsForEntity", mock.Anything, entity.ID).Return([]*pvtypes.AnchorRecord{}, nil)

	producer := &pvtypes.Caller{Identity: "did:provenant:org/field1", Role: pvtypes.RoleProducer}
	snapshot, err := lg.AppendEvent(context.Background(), producer, nil, event)
	assert.Regexp(t, "PV10162", err)
	// The refusal carries the current unchanged snapshot
	assert.NotNil(t, snapshot)
	assert.Equal(t, int64(0), snapshot.State.LatestSeq)
	mdi.AssertNotCalled(t, "InsertEvent", mock.Anything, mock.Anything)
}

func TestAppendEventRoleEntityKindMismatch(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entity := testCertificationEntity()
	event := statusEvent(entity.ID, "approved")

	mdi.On("GetEntityByID", mock.Anything, entity.ID).Return(entity, nil)
	mdi.On("GetEvents", mock.Anything, entity.ID, int64(0)).Return([]*pvtypes.CheckpointEvent{}, nil)
	mdi.On("GetAnchorsForEntity", mock.Anything, entity.ID).Return([]*pvtypes.AnchorRecord{}, nil)

	// Carriers change shipment statuses, not certification statuses
	snapshot, err := lg.AppendEvent(context.Background(), carrier(), nil, event)
	assert.Regexp(t, "PV10162", err)
	assert.NotNil(t, snapshot)
}

func TestAppendEventReviewAssignedNeedsCertification(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entity := testShipmentEntity()
	event := &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    entity.ID,
		Kind:      pvtypes.EventKindReviewAssigned,
		Timestamp: pvtypes.Now(),
		Payload:   pvtypes.JSONObject{"reviewer": "did:provenant:user/alice"},
	}

	mdi.On("GetEntityByID", mock.Anything, entity.ID).Return(entity, nil)
	mdi.On("GetEvents", mock.Anything, entity.ID, int64(0)).Return([]*pvtypes.CheckpointEvent{}, nil)
	mdi.On("GetAnchorsForEntity", mock.Anything, entity.ID).Return([]*pvtypes.AnchorRecord{}, nil)

	snapshot, err := lg.AppendEvent(context.Background(), certifier(), nil, event)
	assert.Regexp(t, "PV10162", err)
	assert.NotNil(t, snapshot)
}

func TestAppendEventUnknownEntity(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	event := statusEvent(entityID, "pending")

	mdi.On("GetEntityByID", mock.Anything, entityID).Return(nil, nil)

	_, err := lg.AppendEvent(context.Background(), carrier(), nil, event)
	assert.Regexp(t, "PV10150", err)
}

func TestAppendEventEntityReadFail(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	event := statusEvent(entityID, "pending")

	mdi.On("GetEntityByID", mock.Anything, entityID).Return(nil, fmt.Errorf("pop"))

	_, err := lg.AppendEvent(context.Background(), carrier(), nil, event)
	assert.EqualError(t, err, "pop")
}

func TestAppendEventPayloadInvalid(t *testing.T) {
	lg, _, _, _ := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	event := &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    entityID,
		Kind:      pvtypes.EventKindStatusChange,
		Timestamp: pvtypes.Now(),
		Payload:   pvtypes.JSONObject{"nope": true},
	}

	_, err := lg.AppendEvent(context.Background(), carrier(), nil, event)
	assert.Regexp(t, "PV10156", err)
}

func TestAppendEventInvalidTransition(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entity := testShipmentEntity()
	creation := statusEvent(entity.ID, "pending")
	creation.Sequence = 1
	event := statusEvent(entity.ID, "delivered")

	mdi.On("GetEntityByID", mock.Anything, entity.ID).Return(entity, nil)
	mdi.On("GetEvents", mock.Anything, entity.ID, int64(0)).Return([]*pvtypes.CheckpointEvent{creation}, nil)
	mdi.On("GetAnchorsForEntity", mock.Anything, entity.ID).Return([]*pvtypes.AnchorRecord{}, nil)

	snapshot, err := lg.AppendEvent(context.Background(), carrier(), nil, event)
	assert.Regexp(t, "PV10153", err)
	// The rejected append still reports the state it was refused against
	assert.NotNil(t, snapshot)
	assert.Equal(t, pvtypes.EntityStatusPending, snapshot.State.Status)
	assert.Equal(t, int64(1), snapshot.State.LatestSeq)
	mdi.AssertNotCalled(t, "InsertEvent", mock.Anything, mock.Anything)
}

func TestAppendEventStaleWriteReturnsSnapshot(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entity := testShipmentEntity()
	creation := statusEvent(entity.ID, "pending")
	creation.Sequence = 1
	event := statusEvent(entity.ID, "in_transit")
	expect := int64(0)
	event.ExpectSeq = &expect

	mdi.On("GetEntityByID", mock.Anything, entity.ID).Return(entity, nil)
	mdi.On("GetEvents", mock.Anything, entity.ID, int64(0)).Return([]*pvtypes.CheckpointEvent{creation}, nil)
	mdi.On("GetAnchorsForEntity", mock.Anything, entity.ID).Return([]*pvtypes.AnchorRecord{}, nil)

	snapshot, err := lg.AppendEvent(context.Background(), carrier(), nil, event)
	assert.Regexp(t, "PV10155", err)
	assert.NotNil(t, snapshot)
	assert.Equal(t, pvtypes.EntityStatusPending, snapshot.State.Status)
	assert.Equal(t, int64(1), snapshot.State.LatestSeq)
	mdi.AssertNotCalled(t, "InsertEvent", mock.Anything, mock.Anything)
}

func TestAppendEventNoopReturnsSnapshot(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entity := testCertificationEntity()
	creation := statusEvent(entity.ID, "pending")
	creation.Sequence = 1
	assigned := &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    entity.ID,
		Kind:      pvtypes.EventKindReviewAssigned,
		Sequence:  2,
		Timestamp: pvtypes.Now(),
		Payload:   pvtypes.JSONObject{"reviewer": "did:provenant:user/alice"},
	}
	// Same reviewer again is idempotent
	again := &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    entity.ID,
		Kind:      pvtypes.EventKindReviewAssigned,
		Timestamp: pvtypes.Now(),
		Payload:   pvtypes.JSONObject{"reviewer": "did:provenant:user/alice"},
	}

	mdi.On("GetEntityByID", mock.Anything, entity.ID).Return(entity, nil)
	mdi.On("GetEvents", mock.Anything, entity.ID, int64(0)).Return([]*pvtypes.CheckpointEvent{creation, assigned}, nil)
	mdi.On("GetAnchorsForEntity", mock.Anything, entity.ID).Return([]*pvtypes.AnchorRecord{}, nil)

	snapshot, err := lg.AppendEvent(context.Background(), certifier(), nil, again)
	assert.NoError(t, err)
	assert.Equal(t, pvtypes.EntityStatusUnderReview, snapshot.State.Status)
	assert.Equal(t, int64(2), snapshot.State.LatestSeq)
	mdi.AssertNotCalled(t, "InsertEvent", mock.Anything, mock.Anything)
}

func TestGetSnapshotCacheMissThenHit(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entity := testShipmentEntity()
	creation := statusEvent(entity.ID, "pending")
	creation.Sequence = 1

	mdi.On("GetEntityByID", mock.Anything, entity.ID).Return(entity, nil).Once()
	mdi.On("GetEvents", mock.Anything, entity.ID, int64(0)).Return([]*pvtypes.CheckpointEvent{creation}, nil).Once()
	mdi.On("GetAnchorsForEntity", mock.Anything, entity.ID).Return([]*pvtypes.AnchorRecord{}, nil).Once()

	first, err := lg.GetSnapshot(context.Background(), entity.ID)
	assert.NoError(t, err)
	second, err := lg.GetSnapshot(context.Background(), entity.ID)
	assert.NoError(t, err)
	assert.Same(t, first, second)
	mdi.AssertExpectations(t)
}

func TestGetSnapshotNotFound(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	mdi.On("GetEntityByID", mock.Anything, entityID).Return(nil, nil)
	_, err := lg.GetSnapshot(context.Background(), entityID)
	assert.Regexp(t, "PV10150", err)
}

func TestGetSnapshotEventsReadFail(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entity := testShipmentEntity()
	mdi.On("GetEntityByID", mock.Anything, entity.ID).Return(entity, nil)
	mdi.On("GetEvents", mock.Anything, entity.ID, int64(0)).Return(nil, fmt.Errorf("pop"))
	_, err := lg.GetSnapshot(context.Background(), entity.ID)
	assert.EqualError(t, err, "pop")
}

func TestVerifyCheckpointNotAnchored(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	mdi.On("GetAnchor", mock.Anything, entityID, int64(3)).Return(nil, nil)
	result, err := lg.VerifyCheckpoint(context.Background(), entityID, 3)
	assert.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, pvtypes.VerifyReasonNotAnchored, result.Reason)
}

func TestVerifyCheckpointFailedAnchor(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	mdi.On("GetAnchor", mock.Anything, entityID, int64(3)).Return(&pvtypes.AnchorRecord{
		Entity: entityID, Sequence: 3, Status: pvtypes.AnchorStatusFailed,
	}, nil)
	result, err := lg.VerifyCheckpoint(context.Background(), entityID, 3)
	assert.NoError(t, err)
	assert.Equal(t, pvtypes.VerifyReasonNotAnchored, result.Reason)
}

func TestVerifyCheckpointPending(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	mdi.On("GetAnchor", mock.Anything, entityID, int64(3)).Return(&pvtypes.AnchorRecord{
		Entity: entityID, Sequence: 3, Status: pvtypes.AnchorStatusPending, TXRef: "0xabcd",
	}, nil)
	result, err := lg.VerifyCheckpoint(context.Background(), entityID, 3)
	assert.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, pvtypes.VerifyReasonAnchorPending, result.Reason)
	assert.Equal(t, "0xabcd", result.TXRef)
}

func confirmedAnchor(entityID *pvtypes.UUID, seq int64) *pvtypes.AnchorRecord {
	return &pvtypes.AnchorRecord{
		Entity:      entityID,
		Sequence:    seq,
		ContentRef:  "Qmf412jQZiuVUtdgnB36FXFX7xg5V6KEbSJ4dpQuhkLyfD",
		ContentHash: pvtypes.NewRandB32(),
		TXRef:       "0xabcd1234",
		Status:      pvtypes.AnchorStatusConfirmed,
	}
}

func TestVerifyCheckpointValid(t *testing.T) {
	lg, mdi, mcs, mla := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	event := statusEvent(entityID, "delivered")
	event.Sequence = 3
	canonical, err := event.CanonicalBytes()
	assert.NoError(t, err)
	anchor := confirmedAnchor(entityID, 3)

	mdi.On("GetAnchor", mock.Anything, entityID, int64(3)).Return(anchor, nil)
	mdi.On("GetEventBySequence", mock.Anything, entityID, int64(3)).Return(event, nil)
	mcs.On("RetrieveData", mock.Anything, anchor.ContentRef).Return(ioutil.NopCloser(bytes.NewReader(canonical)), nil)
	mla.On("IsValid", mock.Anything, anchor.ContentHash).Return(true, nil)

	result, err := lg.VerifyCheckpoint(context.Background(), entityID, 3)
	assert.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Reason)
	assert.Equal(t, anchor.ContentRef, result.ContentRef)
}

func TestVerifyCheckpointHashMismatch(t *testing.T) {
	lg, mdi, mcs, _ := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	event := statusEvent(entityID, "delivered")
	event.Sequence = 3
	anchor := confirmedAnchor(entityID, 3)

	mdi.On("GetAnchor", mock.Anything, entityID, int64(3)).Return(anchor, nil)
	mdi.On("GetEventBySequence", mock.Anything, entityID, int64(3)).Return(event, nil)
	mcs.On("RetrieveData", mock.Anything, anchor.ContentRef).Return(ioutil.NopCloser(bytes.NewReader([]byte("tampered"))), nil)

	result, err := lg.VerifyCheckpoint(context.Background(), entityID, 3)
	assert.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, pvtypes.VerifyReasonHashMismatch, result.Reason)
}

func TestVerifyCheckpointEventGone(t *testing.T) {
	lg, mdi, mcs, _ := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	anchor := confirmedAnchor(entityID, 3)

	mdi.On("GetAnchor", mock.Anything, entityID, int64(3)).Return(anchor, nil)
	mdi.On("GetEventBySequence", mock.Anything, entityID, int64(3)).Return(nil, nil)
	mcs.On("RetrieveData", mock.Anything, anchor.ContentRef).Return(ioutil.NopCloser(bytes.NewReader([]byte("content"))), nil)

	result, err := lg.VerifyCheckpoint(context.Background(), entityID, 3)
	assert.NoError(t, err)
	assert.Equal(t, pvtypes.VerifyReasonHashMismatch, result.Reason)
}

func TestVerifyCheckpointContentUnavailable(t *testing.T) {
	lg, mdi, mcs, _ := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	event := statusEvent(entityID, "delivered")
	event.Sequence = 3
	anchor := confirmedAnchor(entityID, 3)

	mdi.On("GetAnchor", mock.Anything, entityID, int64(3)).Return(anchor, nil)
	mdi.On("GetEventBySequence", mock.Anything, entityID, int64(3)).Return(event, nil)
	mcs.On("RetrieveData", mock.Anything, anchor.ContentRef).Return(nil, fmt.Errorf("pop"))

	result, err := lg.VerifyCheckpoint(context.Background(), entityID, 3)
	assert.NoError(t, err)
	assert.Equal(t, pvtypes.VerifyReasonContentMismatch, result.Reason)
}

func TestVerifyCheckpointLedgerInvalid(t *testing.T) {
	lg, mdi, mcs, mla := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	event := statusEvent(entityID, "delivered")
	event.Sequence = 3
	canonical, _ := event.CanonicalBytes()
	anchor := confirmedAnchor(entityID, 3)

	mdi.On("GetAnchor", mock.Anything, entityID, int64(3)).Return(anchor, nil)
	mdi.On("GetEventBySequence", mock.Anything, entityID, int64(3)).Return(event, nil)
	mcs.On("RetrieveData", mock.Anything, anchor.ContentRef).Return(ioutil.NopCloser(bytes.NewReader(canonical)), nil)
	mla.On("IsValid", mock.Anything, anchor.ContentHash).Return(false, nil)

	result, err := lg.VerifyCheckpoint(context.Background(), entityID, 3)
	assert.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, pvtypes.VerifyReasonLedgerInvalid, result.Reason)
}

func TestVerifyCheckpointLedgerQueryFail(t *testing.T) {
	lg, mdi, mcs, mla := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	event := statusEvent(entityID, "delivered")
	event.Sequence = 3
	canonical, _ := event.CanonicalBytes()
	anchor := confirmedAnchor(entityID, 3)

	mdi.On("GetAnchor", mock.Anything, entityID, int64(3)).Return(anchor, nil)
	mdi.On("GetEventBySequence", mock.Anything, entityID, int64(3)).Return(event, nil)
	mcs.On("RetrieveData", mock.Anything, anchor.ContentRef).Return(ioutil.NopCloser(bytes.NewReader(canonical)), nil)
	mla.On("IsValid", mock.Anything, anchor.ContentHash).Return(false, fmt.Errorf("pop"))

	_, err := lg.VerifyCheckpoint(context.Background(), entityID, 3)
	assert.EqualError(t, err, "pop")
}

func TestRetryAnchorRequiresOperator(t *testing.T) {
	lg, _, _, _ := newTestLedger(t)
	_, err := lg.RetryAnchor(context.Background(), carrier(), pvtypes.NewUUID(), 3)
	assert.Regexp(t, "PV10162", err)
}

func TestRetryAnchorDelegates(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	operator := &pvtypes.Caller{Identity: "did:provenant:user/ops1", Role: pvtypes.RoleOperator}

	mdi.On("GetAnchor", mock.Anything, entityID, int64(3)).Return(nil, nil)

	_, err := lg.RetryAnchor(context.Background(), operator, entityID, 3)
	assert.Regexp(t, "PV10170", err)
}

func TestListOutstandingAnchorsDelegates(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	outstanding := []*pvtypes.AnchorRecord{{Entity: pvtypes.NewUUID(), Sequence: 1}}
	mdi.On("GetOutstandingAnchors", mock.Anything).Return(outstanding, nil)
	result, err := lg.ListOutstandingAnchors(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, outstanding, result)
}

func TestGetEntitiesDelegates(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	mdi.On("GetEntities", mock.Anything, pvtypes.EntityKindShipment, 10).Return([]*pvtypes.Entity{}, nil)
	_, err := lg.GetEntities(context.Background(), pvtypes.EntityKindShipment, 10)
	assert.NoError(t, err)
	mdi.AssertExpectations(t)
}

func TestGetEventsDelegates(t *testing.T) {
	lg, mdi, _, _ := newTestLedger(t)
	entityID := pvtypes.NewUUID()
	mdi.On("GetEvents", mock.Anything, entityID, int64(2)).Return([]*pvtypes.CheckpointEvent{}, nil)
	_, err := lg.GetEvents(context.Background(), entityID, 2)
	assert.NoError(t, err)
	mdi.AssertExpectations(t)
}
