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

package anchoring

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/provenant-io/provenant/internal/config"
	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/internal/log"
	"github.com/provenant-io/provenant/internal/retry"
	"github.com/provenant-io/provenant/pkg/contentstore"
	"github.com/provenant-io/provenant/pkg/database"
	"github.com/provenant-io/provenant/pkg/ledgeranchor"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

// Pipeline orchestrates the content store and the ledger anchor for events
// the state machine flagged. It owns retry and idempotency: there is at most
// one anchor record, and one ledger submission, per (entity, sequence).
//
// Anchoring is fire and forget relative to ingestion. Work arrives on a
// channel from AppendEvent and is processed by background workers, so a slow
// ledger never blocks the next checkpoint.
type Pipeline struct {
	ctx            context.Context
	cancelCtx      func()
	database       database.Plugin
	contentstore   contentstore.Plugin
	ledgeranchor   ledgeranchor.Plugin
	retry          retry.Retry
	attemptTimeout time.Duration
	workerCount    int
	work           chan *anchorTask
	done           chan struct{}

	lockMux  sync.Mutex
	inflight map[anchorKey]*anchorLock
}

type anchorTask struct {
	entityID *pvtypes.UUID
	sequence int64
}

type anchorKey struct {
	entity   pvtypes.UUID
	sequence int64
}

type anchorLock struct {
	mux  sync.Mutex
	refs int
}

func New(ctx context.Context, di database.Plugin, cs contentstore.Plugin, la ledgeranchor.Plugin) *Pipeline {
	ctx, cancelCtx := context.WithCancel(ctx)
	ap := &Pipeline{
		ctx:          ctx,
		cancelCtx:    cancelCtx,
		database:     di,
		contentstore: cs,
		ledgeranchor: la,
		retry: retry.Retry{
			InitialDelay:    config.GetDuration(config.AnchoringRetryInitialDelay),
			MaximumDelay:    config.GetDuration(config.AnchoringRetryMaxDelay),
			Factor:          float32(config.GetFloat64(config.AnchoringRetryFactor)),
			MaximumAttempts: config.GetInt(config.AnchoringMaxAttempts),
		},
		attemptTimeout: config.GetDuration(config.AnchoringAttemptTimeout),
		workerCount:    config.GetInt(config.AnchoringWorkerCount),
		work:           make(chan *anchorTask, config.GetInt(config.AnchoringQueueSize)),
		done:           make(chan struct{}),
		inflight:       make(map[anchorKey]*anchorLock),
	}
	return ap
}

func (ap *Pipeline) acquire(entityID *pvtypes.UUID, sequence int64) *anchorLock {
	key := anchorKey{entity: *entityID, sequence: sequence}
	ap.lockMux.Lock()
	l := ap.inflight[key]
	if l == nil {
		l = &anchorLock{}
		ap.inflight[key] = l
	}
	l.refs++
	ap.lockMux.Unlock()

	l.mux.Lock()
	return l
}

func (ap *Pipeline) release(entityID *pvtypes.UUID, sequence int64, l *anchorLock) {
	l.mux.Unlock()

	ap.lockMux.Lock()
	l.refs--
	if l.refs == 0 {
		delete(ap.inflight, anchorKey{entity: *entityID, sequence: sequence})
	}
	ap.lockMux.Unlock()
}

// Start spins up the worker pool, and re-queues any anchors left outstanding
// by a previous run
func (ap *Pipeline) Start() error {
	for i := 0; i < ap.workerCount; i++ {
		go ap.workerLoop(i)
	}
	go ap.recoverOutstanding()
	return nil
}

// WaitStop cancels the pipeline and waits for the workers to drain
func (ap *Pipeline) WaitStop() {
	ap.cancelCtx()
	for i := 0; i < ap.workerCount; i++ {
		<-ap.done
	}
}

// Enqueue schedules anchoring of a committed checkpoint. It never blocks the
// caller: when the queue is saturated the task is dropped here, and picked
// back up by outstanding-anchor recovery.
func (ap *Pipeline) Enqueue(entityID *pvtypes.UUID, sequence int64) {
	select {
	case ap.work <- &anchorTask{entityID: entityID, sequence: sequence}:
	default:
		log.L(ap.ctx).Warnf("Anchoring queue saturated. Deferring anchor of entity %s seq %d to recovery", entityID, sequence)
	}
}

func (ap *Pipeline) workerLoop(index int) {
	l := log.L(ap.ctx).WithField("anchorworker", index)
	ctx := log.WithLogger(ap.ctx, l)
	defer func() { ap.done <- struct{}{} }()

	for {
		select {
		case task := <-ap.work:
			event, err := ap.database.GetEventBySequence(ctx, task.entityID, task.sequence)
			if err == nil && event == nil {
				l.Errorf("Anchor requested for unknown checkpoint entity %s seq %d", task.entityID, task.sequence)
				continue
			}
			if err == nil {
				_, err = ap.Anchor(ctx, task.entityID, event)
			}
			if err != nil {
				l.Errorf("Anchoring of entity %s seq %d failed: %s", task.entityID, task.sequence, err)
			}
		case <-ctx.Done():
			l.Debugf("Anchor worker exiting")
			return
		}
	}
}

// recoverOutstanding re-queues anchors that are pending without a ledger
// submission, from this or a previous run of the pipeline
func (ap *Pipeline) recoverOutstanding() {
	outstanding, err := ap.database.GetOutstandingAnchors(ap.ctx)
	if err != nil {
		log.L(ap.ctx).Errorf("Failed to scan outstanding anchors: %s", err)
		return
	}
	for _, anchor := range outstanding {
		if anchor.Status == pvtypes.AnchorStatusPending && anchor.TXRef == "" {
			ap.Enqueue(anchor.Entity, anchor.Sequence)
		}
	}
}

// Anchor executes the anchoring steps for one checkpoint:
//
//	(1) deterministic serialization, published to the content store
//	(2) ledger submission of (entity, sequence, content hash, timestamp)
//	(3) anchor record persisted pending, confirmed via callback
//
// Each step is independently retryable. A crash after publish leaves the
// content reference on the pending record, so the retry resumes at the
// ledger submission without re-publishing. An already-submitted or confirmed
// record is returned as-is - no duplicate ledger transaction.
//
// Anchoring of the same (entity, sequence) is serialized through an in-flight
// lock. Recovery can re-queue a checkpoint a worker is still processing, and
// the read-then-submit idempotency check only holds when one caller at a time
// runs it.
func (ap *Pipeline) Anchor(ctx context.Context, entityID *pvtypes.UUID, event *pvtypes.CheckpointEvent) (*pvtypes.AnchorRecord, error) {
	l := ap.acquire(entityID, event.Sequence)
	defer ap.release(entityID, event.Sequence, l)

	anchor, err := ap.database.GetAnchor(ctx, entityID, event.Sequence)
	if err != nil {
		return nil, err
	}
	if anchor != nil && (anchor.TXRef != "" || anchor.Status == pvtypes.AnchorStatusFailed) {
		// Submitted, confirmed, or awaiting a manual retry
		log.L(ctx).Debugf("Anchor for entity %s seq %d already %s (tx=%s)", entityID, event.Sequence, anchor.Status, anchor.TXRef)
		return anchor, nil
	}
	if anchor == nil {
		anchor = &pvtypes.AnchorRecord{
			ID:       pvtypes.NewUUID(),
			Entity:   entityID,
			Sequence: event.Sequence,
			Status:   pvtypes.AnchorStatusPending,
		}
	}

	if anchor.ContentRef == "" {
		if err = ap.publishContent(ctx, anchor, event); err != nil {
			return ap.markFailed(ctx, anchor, err)
		}
		// Persist progress, so a crash before submission resumes here
		if err = ap.database.UpsertAnchor(ctx, anchor); err != nil {
			return nil, err
		}
	}

	if err = ap.submitAnchor(ctx, anchor, event); err != nil {
		return ap.markFailed(ctx, anchor, err)
	}

	if err = ap.database.UpsertAnchor(ctx, anchor); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Anchored entity %s seq %d content %s tx %s", entityID, event.Sequence, anchor.ContentRef, anchor.TXRef)
	return anchor, nil
}

func (ap *Pipeline) publishContent(ctx context.Context, anchor *pvtypes.AnchorRecord, event *pvtypes.CheckpointEvent) error {
	canonical, err := event.CanonicalBytes()
	if err != nil {
		return err
	}
	return ap.retry.Do(ctx, func(attempt int) (bool, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, ap.attemptTimeout)
		defer cancel()
		payloadRef, contentHash, err := ap.contentstore.PublishData(attemptCtx, bytes.NewReader(canonical))
		if err != nil {
			log.L(ctx).Errorf("Content publish attempt %d failed for entity %s seq %d: %s", attempt, anchor.Entity, anchor.Sequence, err)
			return true, i18n.WrapError(ctx, err, i18n.MsgAnchorContentFailed)
		}
		anchor.ContentRef = payloadRef
		anchor.ContentHash = contentHash
		return false, nil
	})
}

func (ap *Pipeline) submitAnchor(ctx context.Context, anchor *pvtypes.AnchorRecord, event *pvtypes.CheckpointEvent) error {
	return ap.retry.Do(ctx, func(attempt int) (bool, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, ap.attemptTimeout)
		defer cancel()
		txRef, err := ap.ledgeranchor.SubmitAnchor(attemptCtx, anchor.Entity, anchor.Sequence, anchor.ContentHash, event.Timestamp)
		if err != nil {
			log.L(ctx).Errorf("Anchor submission attempt %d failed for entity %s seq %d: %s", attempt, anchor.Entity, anchor.Sequence, err)
			return true, i18n.WrapError(ctx, err, i18n.MsgAnchorSubmitFailed)
		}
		anchor.TXRef = txRef
		return false, nil
	})
}

// markFailed records retry exhaustion on the anchor. The owning entity
// remains fully usable - the checkpoint is simply unanchored, surfaced to
// operators, and eligible for manual re-anchor.
func (ap *Pipeline) markFailed(ctx context.Context, anchor *pvtypes.AnchorRecord, failure error) (*pvtypes.AnchorRecord, error) {
	anchor.Status = pvtypes.AnchorStatusFailed
	anchor.Error = failure.Error()
	if err := ap.database.UpsertAnchor(ctx, anchor); err != nil {
		log.L(ctx).Errorf("Failed to persist failed anchor for entity %s seq %d: %s", anchor.Entity, anchor.Sequence, err)
	}
	return anchor, failure
}

// RetryAnchor is the manual operator action for a failed anchor. The content
// reference is preserved, so the retry resumes at the ledger submission when
// the content was already published.
func (ap *Pipeline) RetryAnchor(ctx context.Context, entityID *pvtypes.UUID, sequence int64) (*pvtypes.AnchorRecord, error) {
	anchor, err := ap.database.GetAnchor(ctx, entityID, sequence)
	if err != nil {
		return nil, err
	}
	if anchor == nil {
		return nil, i18n.NewError(ctx, i18n.MsgAnchorNotFound, entityID, sequence)
	}
	if anchor.Status != pvtypes.AnchorStatusFailed {
		return nil, i18n.NewError(ctx, i18n.MsgAnchorNotRetryable, entityID, sequence, anchor.Status)
	}

	anchor.Status = pvtypes.AnchorStatusPending
	anchor.Error = ""
	if err = ap.database.UpsertAnchor(ctx, anchor); err != nil {
		return nil, err
	}

	event, err := ap.database.GetEventBySequence(ctx, entityID, sequence)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, i18n.NewError(ctx, i18n.MsgAnchorNotFound, entityID, sequence)
	}
	return ap.Anchor(ctx, entityID, event)
}

// AnchorOpUpdate implements ledgeranchor.Callbacks, delivering asynchronous
// confirmations from the ledger transaction stream
func (ap *Pipeline) AnchorOpUpdate(txRef string, txState ledgeranchor.TransactionStatus, errorMessage string, opOutput pvtypes.JSONObject) {
	ctx := ap.ctx
	anchor, err := ap.database.GetAnchorByTXRef(ctx, txRef)
	if err != nil {
		log.L(ctx).Errorf("Failed to correlate anchor receipt tx=%s: %s", txRef, err)
		return
	}
	if anchor == nil {
		log.L(ctx).Warnf("Ignoring anchor receipt for unknown tx=%s", txRef)
		return
	}
	if anchor.Status != pvtypes.AnchorStatusPending {
		log.L(ctx).Debugf("Ignoring anchor receipt for %s anchor entity %s seq %d tx=%s", anchor.Status, anchor.Entity, anchor.Sequence, txRef)
		return
	}

	switch txState {
	case ledgeranchor.TXStatusSucceeded:
		anchor.Status = pvtypes.AnchorStatusConfirmed
		log.L(ctx).Infof("Anchor confirmed for entity %s seq %d tx=%s", anchor.Entity, anchor.Sequence, txRef)
	default:
		anchor.Status = pvtypes.AnchorStatusFailed
		anchor.Error = errorMessage
		log.L(ctx).Errorf("Anchor transaction failed for entity %s seq %d tx=%s: %s", anchor.Entity, anchor.Sequence, txRef, errorMessage)
	}
	if err := ap.database.UpsertAnchor(ctx, anchor); err != nil {
		log.L(ctx).Errorf("Failed to persist anchor receipt tx=%s: %s", txRef, err)
	}
}
