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
	"database/sql/driver"
	"strings"
)

// PVEnum is a string stored in lower case in the database, with a closed set
// of values registered at package init time for each enum type
type PVEnum string

var enumValues = map[string][]interface{}{}

func pvEnum(t string, val string) PVEnum {
	enumValues[t] = append(enumValues[t], val)
	return PVEnum(val)
}

func PVEnumValues(t string) []interface{} {
	return enumValues[t]
}

func (ts PVEnum) String() string {
	return strings.ToLower(string(ts))
}

func (ts PVEnum) Lower() PVEnum {
	return PVEnum(strings.ToLower(string(ts)))
}

func (ts PVEnum) Equals(ts2 PVEnum) bool {
	return strings.EqualFold(string(ts), string(ts2))
}

func (ts PVEnum) Value() (driver.Value, error) {
	return ts.String(), nil
}

func (ts *PVEnum) UnmarshalText(b []byte) error {
	*ts = PVEnum(strings.ToLower(string(b)))
	return nil
}
