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
	"testing"

	"github.com/provenant-io/provenant/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGetPlugin(t *testing.T) {
	plugin, err := GetPlugin(context.Background(), "sqlite3")
	assert.NoError(t, err)
	assert.NotNil(t, plugin)

	plugin, err = GetPlugin(context.Background(), "postgres")
	assert.NoError(t, err)
	assert.NotNil(t, plugin)
}

func TestGetPluginUnknown(t *testing.T) {
	_, err := GetPlugin(context.Background(), "wrong")
	assert.Regexp(t, "PV10104", err)
}

func TestInitPrefix(t *testing.T) {
	config.Reset()
	prefix := config.NewPluginConfig("database")
	InitPrefix(prefix)
}
