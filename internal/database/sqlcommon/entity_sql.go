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
	"github.com/provenant-io/provenant/internal/log"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

var (
	entityColumns = []string{
		"id",
		"kind",
		"owner",
		"created",
		"config",
	}
)

func (s *SQLCommon) UpsertEntity(ctx context.Context, entity *pvtypes.Entity) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	// Entities are immutable once created, so an existing row wins
	rows, err := s.queryTx(ctx, tx,
		sq.Select("id").
			From("entities").
			Where(sq.Eq{"id": entity.ID}),
	)
	if err != nil {
		return err
	}
	existing := rows.Next()
	rows.Close()

	if !existing {
		if err = s.insertTx(ctx, tx,
			sq.Insert("entities").
				Columns(entityColumns...).
				Values(
					entity.ID,
					string(entity.Kind),
					entity.Owner,
					entity.Created,
					entity.Config,
				),
			nil,
		); err != nil {
			return err
		}
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) entityResult(ctx context.Context, row *sql.Rows) (*pvtypes.Entity, error) {
	var entity pvtypes.Entity
	err := row.Scan(
		&entity.ID,
		&entity.Kind,
		&entity.Owner,
		&entity.Created,
		&entity.Config,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "entities")
	}
	return &entity, nil
}

func (s *SQLCommon) GetEntityByID(ctx context.Context, id *pvtypes.UUID) (*pvtypes.Entity, error) {

	rows, err := s.query(ctx,
		sq.Select(entityColumns...).
			From("entities").
			Where(sq.Eq{"id": id}),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		log.L(ctx).Debugf("Entity '%s' not found", id)
		return nil, nil
	}

	return s.entityResult(ctx, rows)
}

func (s *SQLCommon) GetEntities(ctx context.Context, kind pvtypes.EntityKind, limit int) ([]*pvtypes.Entity, error) {

	query := sq.Select(entityColumns...).
		From("entities").
		OrderBy("created DESC")
	if kind != "" {
		query = query.Where(sq.Eq{"kind": string(kind)})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entities := []*pvtypes.Entity{}
	for rows.Next() {
		entity, err := s.entityResult(ctx, rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}
