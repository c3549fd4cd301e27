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
	"context"
	"crypto/sha256"
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/internal/log"
)

// JSONObject is a holder of structured data, with type-safe accessors and
// a deterministic serialization for hashing
type JSONObject map[string]interface{}

// Scan implements sql.Scanner
func (jd *JSONObject) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil

	case string:
		if src == "" {
			return nil
		}
		return json.Unmarshal([]byte(src), &jd)

	case []byte:
		if len(src) == 0 {
			return nil
		}
		return json.Unmarshal(src, &jd)

	default:
		return i18n.NewError(context.Background(), i18n.MsgScanFailed, src, jd)
	}
}

// Value implements sql.Valuer
func (jd JSONObject) Value() (driver.Value, error) {
	if jd == nil {
		return nil, nil
	}
	b, err := json.Marshal(&jd)
	return string(b), err
}

func (jd JSONObject) GetString(key string) string {
	s, _ := jd.GetStringOk(key)
	return s
}

func (jd JSONObject) GetStringOk(key string) (string, bool) {
	vInterface := jd[key]
	switch vt := vInterface.(type) {
	case string:
		return vt, true
	case bool:
		return strconv.FormatBool(vt), true
	case float64:
		return strconv.FormatFloat(vt, 'f', -1, 64), true
	case nil:
		return "", false // no need to log for nil
	default:
		log.L(context.Background()).Errorf("Invalid string value '%+v' for key '%s'", vInterface, key)
		return "", false
	}
}

func (jd JSONObject) GetBool(key string) bool {
	vInterface := jd[key]
	switch vt := vInterface.(type) {
	case string:
		return strings.EqualFold(vt, "true")
	case bool:
		return vt
	default:
		return false
	}
}

func (jd JSONObject) GetInt64(key string) int64 {
	i, _ := jd.GetInt64Ok(key)
	return i
}

func (jd JSONObject) GetInt64Ok(key string) (int64, bool) {
	vInterface := jd[key]
	switch vt := vInterface.(type) {
	case float64:
		return int64(vt), true
	case int64:
		return vt, true
	case int:
		return int64(vt), true
	case string:
		i, err := strconv.ParseInt(vt, 10, 64)
		if err != nil {
			log.L(context.Background()).Errorf("Invalid int64 value '%+v' for key '%s'", vInterface, key)
			return 0, false
		}
		return i, true
	case nil:
		return 0, false
	default:
		log.L(context.Background()).Errorf("Invalid int64 value '%+v' for key '%s'", vInterface, key)
		return 0, false
	}
}

func (jd JSONObject) GetFloat64(key string) float64 {
	vInterface := jd[key]
	switch vt := vInterface.(type) {
	case float64:
		return vt
	case int64:
		return float64(vt)
	case int:
		return float64(vt)
	case string:
		f, err := strconv.ParseFloat(vt, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func (jd JSONObject) GetObject(key string) JSONObject {
	ob, _ := jd.GetObjectOk(key)
	return ob
}

func (jd JSONObject) GetObjectOk(key string) (JSONObject, bool) {
	vInterface, ok := jd[key]
	if ok && vInterface != nil {
		switch vMap := vInterface.(type) {
		case map[string]interface{}:
			return JSONObject(vMap), true
		case JSONObject:
			return vMap, true
		default:
			log.L(context.Background()).Errorf("Invalid object value '%+v' for key '%s'", vInterface, key)
			return JSONObject{}, false // Ensures a non-nil return
		}
	}
	return JSONObject{}, false // Ensures a non-nil return
}

func (jd JSONObject) String() string {
	b, _ := json.Marshal(&jd)
	return string(b)
}

// CanonicalBytes serializes with deterministic (lexically sorted) field
// ordering, so the same object always produces the same bytes. This is the
// serialization used for content anchoring.
func (jd JSONObject) CanonicalBytes() ([]byte, error) {
	// encoding/json sorts map keys at every level of nesting
	return json.Marshal(&jd)
}

// Hash is the sha256 of the canonical serialization
func (jd JSONObject) Hash(ctx context.Context, jsonDesc string) (*Bytes32, error) {
	b, err := jd.CanonicalBytes()
	if err != nil {
		return nil, i18n.NewError(ctx, i18n.MsgJSONObjectParseFailed, jsonDesc)
	}
	var b32 Bytes32 = sha256.Sum256(b)
	return &b32, nil
}
