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
	"strconv"
	"time"

	"github.com/docker/go-units"
	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/internal/log"
)

// ParseToByteSize is a standard handling of a number of bytes, in config or API options
func ParseToByteSize(byteString string) int64 {
	if byteString == "" {
		return 0
	}
	bytes, err := units.RAMInBytes(byteString)
	if err != nil {
		log.L(context.Background()).Warn(i18n.NewError(context.Background(), i18n.MsgSizeParseFail, byteString))
		return 0
	}
	return bytes
}

// ParseToDuration is a standard handling of any duration string, in config or API options
func ParseToDuration(durationString string) time.Duration {
	if durationString == "" {
		return time.Duration(0)
	}
	ffd, err := ParseDurationString(durationString)
	if err != nil {
		log.L(context.Background()).Warn(err)
		return time.Duration(0)
	}
	return ffd
}

// ParseDurationString parses a duration string, also accepting a plain
// number of milliseconds for convenience in config files
func ParseDurationString(durationString string) (time.Duration, error) {
	millis, err := strconv.ParseInt(durationString, 10, 64)
	if err == nil {
		return time.Duration(millis) * time.Millisecond, nil
	}
	duration, err := time.ParseDuration(durationString)
	if err != nil {
		return 0, i18n.NewError(context.Background(), i18n.MsgDurationParseFail, durationString)
	}
	return duration, nil
}
