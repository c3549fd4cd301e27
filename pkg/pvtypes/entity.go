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

// EntityKind is the closed set of tracked entity types
type EntityKind = PVEnum

var (
	// EntityKindShipment is a physical consignment moving through the supply chain
	EntityKindShipment = pvEnum("entitykind", "shipment")
	// EntityKindCertification is a certification application moving through review
	EntityKindCertification = pvEnum("entitykind", "certification")
)

// EntityStatus is the derived status of an entity. Which values are reachable
// depends on the entity kind
type EntityStatus = PVEnum

var (
	EntityStatusPending     = pvEnum("entitystatus", "pending")
	EntityStatusInTransit   = pvEnum("entitystatus", "in_transit")
	EntityStatusDelayed     = pvEnum("entitystatus", "delayed")
	EntityStatusDelivered   = pvEnum("entitystatus", "delivered")
	EntityStatusUnderReview = pvEnum("entitystatus", "under_review")
	EntityStatusApproved    = pvEnum("entitystatus", "approved")
	EntityStatusRejected    = pvEnum("entitystatus", "rejected")
	EntityStatusExpired     = pvEnum("entitystatus", "expired")
)

// Entity is the base record for anything tracked through the ledger. It is
// created implicitly by the first checkpoint event, and never deleted - it can
// only be superseded by new events.
type Entity struct {
	ID      *UUID      `json:"id"`
	Kind    EntityKind `json:"kind"`
	Owner   string     `json:"owner,omitempty"`
	Created *PVTime    `json:"created,omitempty"`

	// Config captures per-entity fixed parameters declared at creation,
	// such as the cold-chain temperature band and planned legs for a
	// shipment. It does not change over the entity's life.
	Config JSONObject `json:"config,omitempty"`
}

// Shipment config keys
const (
	ConfigTempMin     = "tempMin"
	ConfigTempMax     = "tempMax"
	ConfigPlannedLegs = "plannedLegs"
)

// IsTerminal returns true for statuses from which no further ordinary
// transition is permitted
func IsTerminal(status EntityStatus) bool {
	switch status {
	case EntityStatusDelivered, EntityStatusRejected, EntityStatusExpired:
		return true
	default:
		return false
	}
}
