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

// CallerRole is the closed set of roles that may append checkpoint events.
// Authorization is by role and event kind, never per entity.
type CallerRole = PVEnum

var (
	// RoleProducer appends telemetry from the field
	RoleProducer = pvEnum("callerrole", "producer")
	// RoleCarrier moves shipments between statuses
	RoleCarrier = pvEnum("callerrole", "carrier")
	// RoleInspector reviews in-flight entities and attaches findings
	RoleInspector = pvEnum("callerrole", "inspector")
	// RoleCertifier assigns reviewers and decides certification outcomes
	RoleCertifier = pvEnum("callerrole", "certifier")
	// RoleOperator performs administrative corrections and re-anchoring
	RoleOperator = pvEnum("callerrole", "operator")
)

// Caller identifies the authenticated party appending an event. The identity
// string is recorded as the event producer.
type Caller struct {
	Identity string     `json:"identity"`
	Role     CallerRole `json:"role"`
}
