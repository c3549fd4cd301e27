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

package engine

import (
	"context"

	"github.com/provenant-io/provenant/internal/anchoring"
	"github.com/provenant-io/provenant/internal/config"
	"github.com/provenant-io/provenant/internal/contentstore/csfactory"
	"github.com/provenant-io/provenant/internal/database/difactory"
	"github.com/provenant-io/provenant/internal/eventlog"
	"github.com/provenant-io/provenant/internal/ledger"
	"github.com/provenant-io/provenant/internal/ledgeranchor/lafactory"
	"github.com/provenant-io/provenant/internal/log"
	"github.com/provenant-io/provenant/pkg/contentstore"
	"github.com/provenant-io/provenant/pkg/database"
	"github.com/provenant-io/provenant/pkg/ledgeranchor"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

var (
	databaseConfig     = config.NewPluginConfig("database")
	contentstoreConfig = config.NewPluginConfig("contentstore")
	ledgeranchorConfig = config.NewPluginConfig("ledgeranchor")
)

// Engine is the composition root: it selects and initializes the configured
// plugins, wires the event log, anchoring pipeline and ledger facade
// together, and manages their lifecycle.
type Engine interface {
	Init(ctx context.Context) error
	Start() error
	WaitStop()

	Ledger() *ledger.Ledger
}

type engine struct {
	ctx          context.Context
	cancelCtx    func()
	started      bool
	database     database.Plugin
	contentstore contentstore.Plugin
	ledgeranchor ledgeranchor.Plugin
	eventlog     *eventlog.EventLog
	anchoring    *anchoring.Pipeline
	ledger       *ledger.Ledger
}

func NewEngine() Engine {
	e := &engine{}

	// Initialize the config on all the factories, so every valid key is
	// registered before any config file is parsed
	difactory.InitPrefix(databaseConfig)
	csfactory.InitPrefix(contentstoreConfig)
	lafactory.InitPrefix(ledgeranchorConfig)

	return e
}

func (e *engine) Init(ctx context.Context) (err error) {
	e.ctx, e.cancelCtx = context.WithCancel(ctx)
	err = e.initPlugins(e.ctx)
	if err == nil {
		err = e.initComponents(e.ctx)
	}
	return err
}

func (e *engine) initPlugins(ctx context.Context) (err error) {

	if e.database == nil {
		pluginType := config.GetString(config.DatabaseType)
		if e.database, err = difactory.GetPlugin(ctx, pluginType); err != nil {
			return err
		}
	}
	if err = e.database.Init(ctx, databaseConfig.SubPrefix(e.database.Name()), e); err != nil {
		return err
	}

	if e.contentstore == nil {
		pluginType := config.GetString(config.ContentStoreType)
		if e.contentstore, err = csfactory.GetPlugin(ctx, pluginType); err != nil {
			return err
		}
	}
	if err = e.contentstore.Init(ctx, contentstoreConfig.SubPrefix(e.contentstore.Name())); err != nil {
		return err
	}

	if e.ledgeranchor == nil {
		pluginType := config.GetString(config.LedgerAnchorType)
		if e.ledgeranchor, err = lafactory.GetPlugin(ctx, pluginType); err != nil {
			return err
		}
	}
	// Init of the ledger anchor is deferred to initComponents, as the
	// anchoring pipeline is its receipt callback handler
	return nil
}

func (e *engine) initComponents(ctx context.Context) (err error) {
	if e.eventlog == nil {
		e.eventlog = eventlog.New(ctx, e.database)
	}
	if e.anchoring == nil {
		e.anchoring = anchoring.New(ctx, e.database, e.contentstore, e.ledgeranchor)
	}
	if err = e.ledgeranchor.Init(ctx, ledgeranchorConfig.SubPrefix(e.ledgeranchor.Name()), e.anchoring); err != nil {
		return err
	}
	if e.ledger == nil {
		e.ledger = ledger.NewLedger(ctx, e.database, e.contentstore, e.ledgeranchor, e.eventlog, e.anchoring)
	}
	return nil
}

func (e *engine) Start() error {
	if err := e.ledgeranchor.Start(); err != nil {
		return err
	}
	if err := e.anchoring.Start(); err != nil {
		return err
	}
	e.started = true
	return nil
}

func (e *engine) WaitStop() {
	if !e.started {
		return
	}
	e.cancelCtx()
	e.anchoring.WaitStop()
	e.database.Close()
	e.started = false
}

func (e *engine) Ledger() *ledger.Ledger {
	return e.ledger
}

// CheckpointCommitted implements database.Callbacks. Anchoring is driven
// from the append path, so this is commit-order visibility only.
func (e *engine) CheckpointCommitted(entityID *pvtypes.UUID, sequence int64) {
	log.L(e.ctx).Debugf("Checkpoint committed entity=%s seq=%d", entityID, sequence)
}
