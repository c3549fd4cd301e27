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

package pvtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(EntityStatusDelivered))
	assert.True(t, IsTerminal(EntityStatusRejected))
	assert.True(t, IsTerminal(EntityStatusExpired))
	assert.False(t, IsTerminal(EntityStatusPending))
	assert.False(t, IsTerminal(EntityStatusInTransit))
	assert.False(t, IsTerminal(EntityStatusDelayed))
	assert.False(t, IsTerminal(EntityStatusUnderReview))
	assert.False(t, IsTerminal(EntityStatusApproved))
}
