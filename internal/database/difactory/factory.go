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

package difactory

import (
	"context"

	"github.com/provenant-io/provenant/internal/config"
	"github.com/provenant-io/provenant/internal/database/postgres"
	"github.com/provenant-io/provenant/internal/database/sqlite3"
	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/pkg/database"
)

var plugins = []database.Plugin{
	&sqlite3.SQLite3{},
	&postgres.Postgres{},
}

func InitPrefix(prefix config.Prefix) {
	for _, plugin := range plugins {
		plugin.InitPrefix(prefix.SubPrefix(plugin.Name()))
	}
}

func GetPlugin(ctx context.Context, pluginType string) (database.Plugin, error) {
	for _, p := range plugins {
		if p.Name() == pluginType {
			return p, nil
		}
	}
	return nil, i18n.NewError(ctx, i18n.MsgUnknownDatabasePlugin, pluginType)
}
