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

package i18n

var (
	MsgConfigFailed              = pvm("PV10101", "Failed to read config: %s")
	MsgContextCanceled           = pvm("PV10102", "Context cancelled")
	MsgMissingPluginConfig       = pvm("PV10103", "Missing configuration '%s' for %s")
	MsgUnknownDatabasePlugin     = pvm("PV10104", "Unknown database plugin '%s'")
	MsgUnknownContentStorePlugin = pvm("PV10105", "Unknown content store plugin '%s'")
	MsgUnknownLedgerAnchorPlugin = pvm("PV10106", "Unknown ledger anchor plugin '%s'")
	MsgTimeParseFail             = pvm("PV10107", "Cannot parse time as RFC3339, Unix, or UnixNano: '%s'")
	MsgDurationParseFail         = pvm("PV10108", "Unable to parse '%s' as duration string, or millisecond number")
	MsgSizeParseFail             = pvm("PV10109", "Invalid size string '%s'")
	MsgScanFailed                = pvm("PV10110", "Failed to restore type '%T' into '%T'")
	MsgInvalidUUID               = pvm("PV10111", "Invalid UUID supplied")
	MsgInvalidHex                = pvm("PV10112", "Invalid hex supplied")
	MsgInvalidWrongLenB32        = pvm("PV10113", "Byte length must be 32 (64 hex characters)")
	MsgJSONObjectParseFailed     = pvm("PV10114", "Failed to parse '%s' as JSON")
	MsgInvalidOutputOption       = pvm("PV10115", "Invalid output option '%s'")

	MsgIPFSRESTErr           = pvm("PV10120", "Error from IPFS: %s")
	MsgIPFSHashDecodeFailed  = pvm("PV10121", "Failed to decode IPFS hash into 32byte hash '%s'")
	MsgEthconnectRESTErr     = pvm("PV10122", "Error from ethconnect: %s")
	MsgWSClientConnectFailed = pvm("PV10123", "Websocket connection failed after retries to '%s'")
	MsgWSClientClosed        = pvm("PV10124", "Websocket client closed")
	MsgInvalidURL            = pvm("PV10125", "Invalid URL: '%s'")

	MsgDBInitFailed       = pvm("PV10130", "Database initialization failed")
	MsgDBBeginFailed      = pvm("PV10131", "Database begin transaction failed")
	MsgDBQueryBuildFailed = pvm("PV10132", "Database query builder failed")
	MsgDBInsertFailed     = pvm("PV10133", "Database insert failed")
	MsgDBQueryFailed      = pvm("PV10134", "Database query failed")
	MsgDBUpdateFailed     = pvm("PV10135", "Database update failed")
	MsgDBCommitFailed     = pvm("PV10136", "Database commit failed")
	MsgDBReadErr          = pvm("PV10137", "Database read failed on table '%s'")
	MsgDBMigrationFailed  = pvm("PV10138", "Database migration failed")

	MsgEntityNotFound             = pvm("PV10150", "Entity '%s' not found")
	MsgInvalidEntityKind          = pvm("PV10151", "Invalid entity kind '%s'")
	MsgInvalidEventKind           = pvm("PV10152", "Event kind '%s' is not valid for entity kind '%s'")
	MsgInvalidTransition          = pvm("PV10153", "Invalid transition: %s")
	MsgTerminalStatus             = pvm("PV10154", "Entity '%s' is in terminal status '%s' and cannot accept '%s' events")
	MsgStaleWrite                 = pvm("PV10155", "Stale write: expected latest sequence %d but found %d")
	MsgPayloadSchemaFail          = pvm("PV10156", "Payload does not conform to the '%s' schema: %s")
	MsgPayloadValidatorFail       = pvm("PV10157", "Payload schema validation could not be performed")
	MsgMissingReviewer            = pvm("PV10158", "A review-assigned event must carry a reviewer identity")
	MsgMissingCertificationNumber = pvm("PV10159", "An approval must carry a non-empty certification number")
	MsgInvalidValidityEnd         = pvm("PV10160", "An approval must carry a validity end date strictly after the event timestamp")
	MsgMissingReviewComments      = pvm("PV10161", "A rejection must carry non-empty review comments")
	MsgUnauthorizedEventKind      = pvm("PV10162", "Caller '%s' with role '%s' is not authorized to append '%s' events")
	MsgFirstEventNotCreation      = pvm("PV10163", "The first event for an entity must be a status-change declaring its creation")

	MsgAnchorNotFound      = pvm("PV10170", "No anchor record exists for entity '%s' sequence %d")
	MsgAnchorNotRetryable  = pvm("PV10171", "Anchor record for entity '%s' sequence %d is '%s', not 'failed'")
	MsgAnchorSubmitFailed  = pvm("PV10172", "Ledger anchor submission failed")
	MsgAnchorContentFailed = pvm("PV10173", "Content store publish failed")
)
