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
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"time"

	"github.com/provenant-io/provenant/internal/i18n"
)

// PVTime is serialized to JSON on the API in RFC3339 nanosecond UTC time
// (noting that JavaScript can parse this format happily into millisecond time with Date.parse()).
// It is persisted as a nanosecond resolution timestamp in the database.
// It can be parsed from RFC3339, or unix timestamps (second, millisecond or nanosecond resolution)
type PVTime time.Time

func Now() *PVTime {
	t := PVTime(time.Now().UTC())
	return &t
}

func ZeroTime() PVTime {
	return PVTime(time.Time{}.UTC())
}

func UnixTime(unixTime int64) *PVTime {
	if unixTime < 1e10 {
		unixTime *= 1e3 // secs to millis
	}
	if unixTime < 1e15 {
		unixTime *= 1e6 // millis to nanos
	}
	t := PVTime(time.Unix(0, unixTime))
	return &t
}

func (pt *PVTime) MarshalJSON() ([]byte, error) {
	if pt == nil || time.Time(*pt).IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(pt.String())
}

func ParseTimeString(str string) (*PVTime, error) {
	t, err := time.Parse(time.RFC3339Nano, str)
	if err != nil {
		var unixTime int64
		unixTime, err = strconv.ParseInt(str, 10, 64)
		if err == nil {
			return UnixTime(unixTime), nil
		}
	}
	if err != nil {
		zero := ZeroTime()
		return &zero, i18n.NewError(context.Background(), i18n.MsgTimeParseFail, str)
	}
	pt := PVTime(t)
	return &pt, nil
}

func (pt *PVTime) UnixNano() int64 {
	if pt == nil {
		return 0
	}
	return time.Time(*pt).UnixNano()
}

func (pt *PVTime) Time() *time.Time {
	return (*time.Time)(pt)
}

func (pt *PVTime) UnmarshalText(b []byte) error {
	t, err := ParseTimeString(string(b))
	if err != nil {
		return err
	}
	*pt = *t
	return nil
}

// Scan implements sql.Scanner
func (pt *PVTime) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		*pt = ZeroTime()
		return nil

	case string:
		t, err := ParseTimeString(src)
		if err != nil {
			return err
		}
		*pt = *t
		return nil

	case int64:
		if src == 0 {
			return nil
		}
		t := UnixTime(src)
		*pt = *t
		return nil

	default:
		return i18n.NewError(context.Background(), i18n.MsgScanFailed, src, pt)
	}
}

// Value implements sql.Valuer
func (pt *PVTime) Value() (driver.Value, error) {
	if pt == nil || time.Time(*pt).IsZero() {
		return nil, nil
	}
	return pt.UnixNano(), nil
}

func (pt *PVTime) String() string {
	if pt == nil || time.Time(*pt).IsZero() {
		return ""
	}
	return time.Time(*pt).UTC().Format(time.RFC3339Nano)
}

// Before is a nil-safe comparison, where nil sorts earlier than any timestamp
func (pt *PVTime) Before(pt2 *PVTime) bool {
	switch {
	case pt == nil:
		return pt2 != nil
	case pt2 == nil:
		return false
	default:
		return time.Time(*pt).Before(time.Time(*pt2))
	}
}
