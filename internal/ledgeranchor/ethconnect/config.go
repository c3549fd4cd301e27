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

package ethconnect

import (
	"github.com/provenant-io/provenant/internal/config"
	"github.com/provenant-io/provenant/internal/wsclient"
)

const (
	defaultTopic = "provenant"
)

const (
	// EthconnectConfigInstancePath is the ethconnect URI path of the anchor contract instance
	EthconnectConfigInstancePath = "instance"
	// EthconnectConfigTopic is the websocket listen topic for receipt replies
	EthconnectConfigTopic = "topic"
	// EthconnectConfigFromAddress is the ethereum address transactions are signed with
	EthconnectConfigFromAddress = "fromAddress"
)

func (e *Ethconnect) InitPrefix(prefix config.Prefix) {
	wsclient.InitPrefix(prefix)
	prefix.AddKnownKey(EthconnectConfigInstancePath)
	prefix.AddKnownKey(EthconnectConfigTopic, defaultTopic)
	prefix.AddKnownKey(EthconnectConfigFromAddress)
}
