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

package statemachine

import (
	"context"
	"strings"

	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/pkg/pvtypes"
	"github.com/xeipuuv/gojsonschema"
)

// Each event kind has a closed, validated payload schema. An open JSON blob
// would push malformed data into the state machines, so payloads are checked
// here before any transition logic runs.
var payloadSchemaSources = map[pvtypes.EventKind]string{
	pvtypes.EventKindStatusChange: `{
		"type": "object",
		"required": ["status"],
		"properties": {
			"status": {"type": "string", "minLength": 1}
		}
	}`,
	pvtypes.EventKindLocationUpdate: `{
		"type": "object",
		"required": ["location"],
		"properties": {
			"location": {"type": "string", "minLength": 1}
		}
	}`,
	pvtypes.EventKindTemperatureReading: `{
		"type": "object",
		"required": ["temperature"],
		"properties": {
			"temperature": {"type": "number"}
		}
	}`,
	pvtypes.EventKindDeliveredLegComplete: `{
		"type": "object",
		"properties": {
			"leg": {"type": "integer", "minimum": 1}
		}
	}`,
	pvtypes.EventKindReviewAssigned: `{
		"type": "object",
		"required": ["reviewer"],
		"properties": {
			"reviewer": {"type": "string", "minLength": 1}
		}
	}`,
	pvtypes.EventKindDocumentAttached: `{
		"type": "object",
		"required": ["documentUrl"],
		"properties": {
			"documentUrl": {"type": "string", "minLength": 1, "pattern": "^[a-z][a-z0-9+.-]*://"}
		}
	}`,
	pvtypes.EventKindCorrection: `{
		"type": "object",
		"required": ["corrects"],
		"properties": {
			"corrects": {"type": "integer", "minimum": 1}
		}
	}`,
}

var payloadSchemas = map[pvtypes.EventKind]*gojsonschema.Schema{}

func init() {
	for kind, src := range payloadSchemaSources {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
		if err != nil {
			panic(err)
		}
		payloadSchemas[kind] = schema
	}
}

// ValidatePayload checks an event payload against the schema for its kind
func ValidatePayload(ctx context.Context, event *pvtypes.CheckpointEvent) error {
	schema, ok := payloadSchemas[event.Kind]
	if !ok {
		return i18n.NewError(ctx, i18n.MsgPayloadValidatorFail)
	}
	payload := event.Payload
	if payload == nil {
		payload = pvtypes.JSONObject{}
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(payload))
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgPayloadValidatorFail)
	}
	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			details[i] = e.String()
		}
		return i18n.NewError(ctx, i18n.MsgPayloadSchemaFail, event.Kind, strings.Join(details, "; "))
	}
	return nil
}
