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
	anchorColumns = []string{
		"id",
		"entity",
		"seq",
		"content_ref",
		"content_hash",
		"tx_ref",
		"status",
		"error_msg",
		"created",
		"updated",
	}
)

// UpsertAnchor writes the anchor record for a checkpoint, replacing any
// existing record for the same (entity, sequence) pair. The record ID is
// stable across updates.
func (s *SQLCommon) UpsertAnchor(ctx context.Context, anchor *pvtypes.AnchorRecord) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	rows, err := s.queryTx(ctx, tx,
		sq.Select("id").
			From("anchors").
			Where(sq.And{
				sq.Eq{"entity": anchor.Entity},
				sq.Eq{"seq": anchor.Sequence},
			}),
	)
	if err != nil {
		return err
	}
	existing := rows.Next()
	if existing {
		if err = rows.Scan(&anchor.ID); err != nil {
			rows.Close()
			return i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "anchors")
		}
	}
	rows.Close()

	anchor.Updated = pvtypes.Now()
	if existing {
		if err = s.updateTx(ctx, tx,
			sq.Update("anchors").
				Set("content_ref", anchor.ContentRef).
				Set("content_hash", anchor.ContentHash).
				Set("tx_ref", anchor.TXRef).
				Set("status", string(anchor.Status)).
				Set("error_msg", anchor.Error).
				Set("updated", anchor.Updated).
				Where(sq.And{
					sq.Eq{"entity": anchor.Entity},
					sq.Eq{"seq": anchor.Sequence},
				}),
			nil,
		); err != nil {
			return err
		}
	} else {
		anchor.Created = anchor.Updated
		if err = s.insertTx(ctx, tx,
			sq.Insert("anchors").
				Columns(anchorColumns...).
				Values(
					anchor.ID,
					anchor.Entity,
					anchor.Sequence,
					anchor.ContentRef,
					anchor.ContentHash,
					anchor.TXRef,
					string(anchor.Status),
					anchor.Error,
					anchor.Created,
					anchor.Updated,
				),
			nil,
		); err != nil {
			return err
		}
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) anchorResult(ctx context.Context, row *sql.Rows) (*pvtypes.AnchorRecord, error) {
	var anchor pvtypes.AnchorRecord
	err := row.Scan(
		&anchor.ID,
		&anchor.Entity,
		&anchor.Sequence,
		&anchor.ContentRef,
		&anchor.ContentHash,
		&anchor.TXRef,
		&anchor.Status,
		&anchor.Error,
		&anchor.Created,
		&anchor.Updated,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "anchors")
	}
	return &anchor, nil
}

func (s *SQLCommon) getAnchorPred(ctx context.Context, desc string, pred interface{}) (*pvtypes.AnchorRecord, error) {
	rows, err := s.query(ctx,
		sq.Select(anchorColumns...).
			From("anchors").
			Where(pred),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		log.L(ctx).Debugf("Anchor not found by %s", desc)
		return nil, nil
	}

	return s.anchorResult(ctx, rows)
}

func (s *SQLCommon) GetAnchor(ctx context.Context, entityID *pvtypes.UUID, seq int64) (*pvtypes.AnchorRecord, error) {
	return s.getAnchorPred(ctx, "checkpoint", sq.And{
		sq.Eq{"entity": entityID},
		sq.Eq{"seq": seq},
	})
}

func (s *SQLCommon) GetAnchorByTXRef(ctx context.Context, txRef string) (*pvtypes.AnchorRecord, error) {
	return s.getAnchorPred(ctx, "txref", sq.Eq{"tx_ref": txRef})
}

func (s *SQLCommon) getAnchorsQuery(ctx context.Context, query sq.SelectBuilder) ([]*pvtypes.AnchorRecord, error) {
	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	anchors := []*pvtypes.AnchorRecord{}
	for rows.Next() {
		anchor, err := s.anchorResult(ctx, rows)
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, anchor)
	}

	return anchors, nil
}

func (s *SQLCommon) GetAnchorsForEntity(ctx context.Context, entityID *pvtypes.UUID) ([]*pvtypes.AnchorRecord, error) {
	return s.getAnchorsQuery(ctx,
		sq.Select(anchorColumns...).
			From("anchors").
			Where(sq.Eq{"entity": entityID}).
			OrderBy("seq"),
	)
}

func (s *SQLCommon) GetOutstandingAnchors(ctx context.Context) ([]*pvtypes.AnchorRecord, error) {
	return s.getAnchorsQuery(ctx,
		sq.Select(anchorColumns...).
			From("anchors").
			Where(sq.NotEq{"status": string(pvtypes.AnchorStatusConfirmed)}).
			OrderBy("created"),
	)
}
