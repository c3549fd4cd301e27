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

package sqlcommon

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/provenant-io/provenant/pkg/pvtypes"
	"github.com/stretchr/testify/assert"
)

func TestInsertEventAssignsSequence(t *testing.T) {
	s, mock := newMockProvider().init()
	event := &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    pvtypes.NewUUID(),
		Kind:      pvtypes.EventKindStatusChange,
		Producer:  "org1",
		Timestamp: pvtypes.Now(),
		Payload:   pvtypes.JSONObject{"status": "pending"},
	}
	s.callbacks.On("CheckpointCommitted", event.Entity, int64(3)).Return()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"seq"}).
		AddRow(int64(2)))
	mock.ExpectExec("INSERT .*").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := s.InsertEvent(context.Background(), event)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), event.Sequence)
	assert.NotNil(t, event.Created)
	assert.NoError(t, mock.ExpectationsWereMet())
	s.callbacks.AssertExpectations(t)
}

func TestInsertEventFirstEventSequenceOne(t *testing.T) {
	s, mock := newMockProvider().init()
	event := &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    pvtypes.NewUUID(),
		Kind:      pvtypes.EventKindStatusChange,
		Timestamp: pvtypes.Now(),
	}
	s.callbacks.On("CheckpointCommitted", event.Entity, int64(1)).Return()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"seq"}).
		AddRow(int64(0)))
	mock.ExpectExec("INSERT .*").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := s.InsertEvent(context.Background(), event)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), event.Sequence)
	assert.NoError(t, mock.ExpectationsWereMet())
	s.callbacks.AssertExpectations(t)
}

func TestInsertEventWithTableLock(t *testing.T) {
	mp := newMockProvider()
	mp.useLockSQL = true
	s, mock := mp.init()
	event := &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    pvtypes.NewUUID(),
		Kind:      pvtypes.EventKindLocationUpdate,
		Timestamp: pvtypes.Now(),
	}
	s.callbacks.On("CheckpointCommitted", event.Entity, int64(1)).Return()

	mock.ExpectBegin()
	mock.ExpectExec("LOCK TABLE events").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"seq"}).
		AddRow(int64(0)))
	mock.ExpectExec("INSERT .*").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := s.InsertEvent(context.Background(), event)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertEventLockFail(t *testing.T) {
	mp := newMockProvider()
	mp.useLockSQL = true
	s, mock := mp.init()
	mock.ExpectBegin()
	mock.ExpectExec("LOCK TABLE events").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	err := s.InsertEvent(context.Background(), &pvtypes.CheckpointEvent{Entity: pvtypes.NewUUID()})
	assert.Regexp(t, "PV10131", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertEventFailBegin(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin().WillReturnError(fmt.Errorf("pop"))
	err := s.InsertEvent(context.Background(), &pvtypes.CheckpointEvent{})
	assert.Regexp(t, "PV10131", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertEventFailSequenceQuery(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .*").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	err := s.InsertEvent(context.Background(), &pvtypes.CheckpointEvent{Entity: pvtypes.NewUUID()})
	assert.Regexp(t, "PV10134", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertEventFailInsert(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"seq"}).
		AddRow(int64(0)))
	mock.ExpectExec("INSERT .*").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	err := s.InsertEvent(context.Background(), &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    pvtypes.NewUUID(),
		Timestamp: pvtypes.Now(),
	})
	assert.Regexp(t, "PV10133", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertEventFailCommit(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"seq"}).
		AddRow(int64(0)))
	mock.ExpectExec("INSERT .*").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(fmt.Errorf("pop"))
	err := s.InsertEvent(context.Background(), &pvtypes.CheckpointEvent{
		ID:        pvtypes.NewUUID(),
		Entity:    pvtypes.NewUUID(),
		Timestamp: pvtypes.Now(),
	})
	assert.Regexp(t, "PV10136", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventsQueryFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnError(fmt.Errorf("pop"))
	_, err := s.GetEvents(context.Background(), pvtypes.NewUUID(), 1)
	assert.Regexp(t, "PV10134", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventsScanFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"id"}).
		AddRow("only one"))
	_, err := s.GetEvents(context.Background(), pvtypes.NewUUID(), 1)
	assert.Regexp(t, "PV10137", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventsOk(t *testing.T) {
	s, mock := newMockProvider().init()
	entityID := pvtypes.NewUUID()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows(eventColumns).
		AddRow(pvtypes.NewUUID().String(), entityID.String(), int64(1), "status-change", "org1",
			pvtypes.Now().UnixNano(), `{"status":"pending"}`, false, pvtypes.Now().UnixNano()).
		AddRow(pvtypes.NewUUID().String(), entityID.String(), int64(2), "location-update", "org2",
			pvtypes.Now().UnixNano(), `{"location":"port"}`, true, pvtypes.Now().UnixNano()))
	events, err := s.GetEvents(context.Background(), entityID, 1)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].Sequence)
	assert.Equal(t, pvtypes.EventKindLocationUpdate, events[1].Kind)
	assert.True(t, events[1].RequiresAnchor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventBySequenceNotFound(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows(eventColumns))
	event, err := s.GetEventBySequence(context.Background(), pvtypes.NewUUID(), 12)
	assert.NoError(t, err)
	assert.Nil(t, event)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventBySequenceQueryFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnError(fmt.Errorf("pop"))
	_, err := s.GetEventBySequence(context.Background(), pvtypes.NewUUID(), 12)
	assert.Regexp(t, "PV10134", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestSequenceOk(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"seq"}).
		AddRow(int64(42)))
	latest, err := s.GetLatestSequence(context.Background(), pvtypes.NewUUID())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), latest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestSequenceScanFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"seq"}).
		AddRow("not a number"))
	_, err := s.GetLatestSequence(context.Background(), pvtypes.NewUUID())
	assert.Regexp(t, "PV10137", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
