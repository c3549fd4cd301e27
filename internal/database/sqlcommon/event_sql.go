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
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

var (
	eventColumns = []string{
		"id",
		"entity",
		"seq",
		"kind",
		"producer",
		"ts",
		"payload",
		"requires_anchor",
		"created",
	}
)

// InsertEvent assigns the next per-entity sequence number, and inserts the
// event, in a single transaction. Where the database cannot guarantee
// serializable isolation for the max+1 read, the provider supplies an
// exclusive table lock statement that is taken first.
func (s *SQLCommon) InsertEvent(ctx context.Context, event *pvtypes.CheckpointEvent) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	if err = s.lockTableExclusiveTx(ctx, tx, "events"); err != nil {
		return err
	}

	latest, err := s.getLatestSequenceTx(ctx, tx, event.Entity)
	if err != nil {
		return err
	}
	event.Sequence = latest + 1
	event.Created = pvtypes.Now()

	if err = s.insertTx(ctx, tx,
		sq.Insert("events").
			Columns(eventColumns...).
			Values(
				event.ID,
				event.Entity,
				event.Sequence,
				string(event.Kind),
				event.Producer,
				event.Timestamp,
				event.Payload,
				event.RequiresAnchor,
				event.Created,
			),
		func() {
			s.callbacks.CheckpointCommitted(event.Entity, event.Sequence)
		},
	); err != nil {
		return err
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) eventResult(ctx context.Context, row *sql.Rows) (*pvtypes.CheckpointEvent, error) {
	var event pvtypes.CheckpointEvent
	err := row.Scan(
		&event.ID,
		&event.Entity,
		&event.Sequence,
		&event.Kind,
		&event.Producer,
		&event.Timestamp,
		&event.Payload,
		&event.RequiresAnchor,
		&event.Created,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "events")
	}
	return &event, nil
}

func (s *SQLCommon) GetEvents(ctx context.Context, entityID *pvtypes.UUID, fromSeq int64) ([]*pvtypes.CheckpointEvent, error) {

	rows, err := s.query(ctx,
		sq.Select(eventColumns...).
			From("events").
			Where(sq.And{
				sq.Eq{"entity": entityID},
				sq.GtOrEq{"seq": fromSeq},
			}).
			OrderBy("seq"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*pvtypes.CheckpointEvent{}
	for rows.Next() {
		event, err := s.eventResult(ctx, rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

func (s *SQLCommon) GetEventBySequence(ctx context.Context, entityID *pvtypes.UUID, seq int64) (*pvtypes.CheckpointEvent, error) {

	rows, err := s.query(ctx,
		sq.Select(eventColumns...).
			From("events").
			Where(sq.And{
				sq.Eq{"entity": entityID},
				sq.Eq{"seq": seq},
			}),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}

	return s.eventResult(ctx, rows)
}

func (s *SQLCommon) getLatestSequenceTx(ctx context.Context, tx *txWrapper, entityID *pvtypes.UUID) (int64, error) {
	rows, err := s.queryTx(ctx, tx,
		sq.Select("COALESCE(MAX(seq), 0)").
			From("events").
			Where(sq.Eq{"entity": entityID}),
	)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var latest int64
	if rows.Next() {
		if err = rows.Scan(&latest); err != nil {
			return 0, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "events")
		}
	}
	return latest, nil
}

func (s *SQLCommon) GetLatestSequence(ctx context.Context, entityID *pvtypes.UUID) (int64, error) {
	return s.getLatestSequenceTx(ctx, nil, entityID)
}
