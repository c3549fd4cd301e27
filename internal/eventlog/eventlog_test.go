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
	"fmt"
	"sync"
	"testing"

	"github.com/provenant-io/provenant/mocks/databasemocks"
	"github.com/provenant-io/provenant/pkg/pvtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestEventLog() (*EventLog, *databasemocks.Plugin) {
	mdi := &databasemocks.Plugin{}
	return New(context.Background(), mdi), mdi
}

func creationEvent(entityID *pvtypes.UUID) *pvtypes.CheckpointEvent {
	return &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    entityID,
		Kind:      pvtypes.EventKindStatusChange,
		Producer:  "org1",
		Timestamp: pvtypes.Now(),
		Payload:   pvtypes.JSONObject{pvtypes.PayloadStatus: "pending"},
	}
}

func TestAppendFirstEventCreatesEntity(t *testing.T) {
	el, mdi := newTestEventLog()
	entity := &pvtypes.Entity{ID: pvtypes.NewUUID(), Kind: pvtypes.EntityKindShipment}
	event := creationEvent(entity.ID)

	mdi.On("GetLatestSequence", mock.Anything, entity.ID).Return(int64(0), nil)
	mdi.On("RunAsGroup", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		err := args.Get(1).(func(context.Context) error)(context.Background())
		assert.NoError(t, err)
	}).Return(nil)
	mdi.On("UpsertEntity", mock.Anything, entity).Return(nil)
	mdi.On("InsertEvent", mock.Anything, event).Run(func(args mock.Arguments) {
		args.Get(1).(*pvtypes.CheckpointEvent).Sequence = 1
	}).Return(nil)

	seq, err := el.Append(context.Background(), entity, event)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), seq)
	mdi.AssertExpectations(t)
}

func TestAppendFirstEventMustBeCreation(t *testing.T) {
	el, mdi := newTestEventLog()
	entity := &pvtypes.Entity{ID: pvtypes.NewUUID(), Kind: pvtypes.EntityKindShipment}
	event := creationEvent(entity.ID)
	event.Kind = pvtypes.EventKindLocationUpdate

	mdi.On("GetLatestSequence", mock.Anything, entity.ID).Return(int64(0), nil)

	_, err := el.Append(context.Background(), entity, event)
	assert.Regexp(t, "PV10163", err)
	mdi.AssertExpectations(t)
}

func TestAppendUnknownEntity(t *testing.T) {
	el, mdi := newTestEventLog()
	event := creationEvent(pvtypes.NewUUID())

	mdi.On("GetLatestSequence", mock.Anything, event.Entity).Return(int64(0), nil)

	_, err := el.Append(context.Background(), nil, event)
	assert.Regexp(t, "PV10150", err)
	mdi.AssertExpectations(t)
}

func TestAppendSubsequentEvent(t *testing.T) {
	el, mdi := newTestEventLog()
	entity := &pvtypes.Entity{ID: pvtypes.NewUUID(), Kind: pvtypes.EntityKindShipment}
	event := &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    entity.ID,
		Kind:      pvtypes.EventKindLocationUpdate,
		Timestamp: pvtypes.Now(),
		Payload:   pvtypes.JSONObject{pvtypes.PayloadLocation: "hamburg"},
	}

	mdi.On("GetLatestSequence", mock.Anything, entity.ID).Return(int64(4), nil)
	mdi.On("InsertEvent", mock.Anything, event).Run(func(args mock.Arguments) {
		args.Get(1).(*pvtypes.CheckpointEvent).Sequence = 5
	}).Return(nil)

	seq, err := el.Append(context.Background(), entity, event)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), seq)
	mdi.AssertExpectations(t)
}

func TestAppendStaleWrite(t *testing.T) {
	el, mdi := newTestEventLog()
	entity := &pvtypes.Entity{ID: pvtypes.NewUUID(), Kind: pvtypes.EntityKindShipment}
	expect := int64(3)
	event := &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    entity.ID,
		Kind:      pvtypes.EventKindCorrection,
		Timestamp: pvtypes.Now(),
		Payload:   pvtypes.JSONObject{pvtypes.PayloadCorrects: 2},
		ExpectSeq: &expect,
	}

	mdi.On("GetLatestSequence", mock.Anything, entity.ID).Return(int64(5), nil)

	_, err := el.Append(context.Background(), entity, event)
	assert.Regexp(t, "PV10155", err)
	mdi.AssertExpectations(t)
}

func TestAppendLatestSequenceFail(t *testing.T) {
	el, mdi := newTestEventLog()
	event := creationEvent(pvtypes.NewUUID())

	mdi.On("GetLatestSequence", mock.Anything, event.Entity).Return(int64(0), fmt.Errorf("pop"))

	_, err := el.Append(context.Background(), nil, event)
	assert.EqualError(t, err, "pop")
}

func TestAppendInsertFail(t *testing.T) {
	el, mdi := newTestEventLog()
	entity := &pvtypes.Entity{ID: pvtypes.NewUUID(), Kind: pvtypes.EntityKindShipment}
	event := &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    entity.ID,
		Kind:      pvtypes.EventKindLocationUpdate,
		Timestamp: pvtypes.Now(),
	}

	mdi.On("GetLatestSequence", mock.Anything, entity.ID).Return(int64(1), nil)
	mdi.On("InsertEvent", mock.Anything, event).Return(fmt.Errorf("pop"))

	_, err := el.Append(context.Background(), entity, event)
	assert.EqualError(t, err, "pop")
}

func TestRunExclusiveSerializesPerEntity(t *testing.T) {
	el, _ := newTestEventLog()
	entityID := pvtypes.NewUUID()

	var inside int
	var maxInside int
	var observedMux sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = el.RunExclusive(context.Background(), entityID, func(ctx context.Context) error {
				observedMux.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				observedMux.Unlock()

				observedMux.Lock()
				inside--
				observedMux.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInside)

	// All lock entries are released once no appenders remain
	el.lockMux.Lock()
	assert.Empty(t, el.entityLocks)
	el.lockMux.Unlock()
}

func TestReadAndLatestSeqDelegate(t *testing.T) {
	el, mdi := newTestEventLog()
	entityID := pvtypes.NewUUID()

	mdi.On("GetEvents", mock.Anything, entityID, int64(1)).Return([]*pvtypes.CheckpointEvent{}, nil)
	mdi.On("GetLatestSequence", mock.Anything, entityID).Return(int64(7), nil)

	events, err := el.Read(context.Background(), entityID, 1)
	assert.NoError(t, err)
	assert.Empty(t, events)

	latest, err := el.LatestSeq(context.Background(), entityID)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), latest)
	mdi.AssertExpectations(t)
}
