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
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/provenant-io/provenant/internal/config"
	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/internal/log"
	"github.com/provenant-io/provenant/internal/restclient"
	"github.com/provenant-io/provenant/internal/wsclient"
	"github.com/provenant-io/provenant/pkg/ledgeranchor"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

// Ethconnect anchors checkpoints on an Ethereum chain via a Kaleido
// ethconnect instance fronting the anchor contract. Submissions are
// asynchronous: the REST call returns a request id, and the receipt
// arrives later over the websocket reply stream.
type Ethconnect struct {
	ctx          context.Context
	topic        string
	instancePath string
	fromAddress  string
	capabilities *ledgeranchor.Capabilities
	callbacks    ledgeranchor.Callbacks
	client       *resty.Client
	wsconn       *wsclient.WSClient
	closed       chan struct{}
}

type ethWSCommandPayload struct {
	Type  string `json:"type"`
	Topic string `json:"topic,omitempty"`
}

type asyncTXSubmission struct {
	ID string `json:"id"`
}

type isAnchoredOutput struct {
	Valid bool `json:"valid,string"`
}

func (e *Ethconnect) Name() string {
	return "ethconnect"
}

func (e *Ethconnect) Init(ctx context.Context, prefix config.Prefix, callbacks ledgeranchor.Callbacks) (err error) {

	e.ctx = log.WithLogField(ctx, "ledgeranchor", "ethconnect")
	e.callbacks = callbacks

	if prefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, prefix.Resolve(restclient.HTTPConfigURL), "ethconnect")
	}
	e.instancePath = prefix.GetString(EthconnectConfigInstancePath)
	if e.instancePath == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, prefix.Resolve(EthconnectConfigInstancePath), "ethconnect")
	}
	e.topic = prefix.GetString(EthconnectConfigTopic)
	e.fromAddress = prefix.GetString(EthconnectConfigFromAddress)

	e.client = restclient.New(e.ctx, prefix)
	e.capabilities = &ledgeranchor.Capabilities{}

	// Subscriptions are re-established on every reconnect
	listenTopic, _ := json.Marshal(&ethWSCommandPayload{Type: "listen", Topic: e.topic})
	listenReplies, _ := json.Marshal(&ethWSCommandPayload{Type: "listenreplies"})
	if e.wsconn, err = wsclient.New(e.ctx, prefix, listenTopic, listenReplies); err != nil {
		return err
	}
	e.closed = make(chan struct{})

	return nil
}

func (e *Ethconnect) Start() error {
	go e.eventLoop()
	return nil
}

func (e *Ethconnect) Capabilities() *ledgeranchor.Capabilities {
	return e.capabilities
}

func (e *Ethconnect) eventLoop() {
	defer close(e.closed)
	l := log.L(e.ctx).WithField("role", "event-loop")
	ctx := log.WithLogger(e.ctx, l)
	for {
		select {
		case <-ctx.Done():
			l.Debugf("Event loop exiting (context cancelled)")
			return
		case msgBytes, ok := <-e.wsconn.Receive():
			if !ok {
				l.Debugf("Event loop exiting (websocket closed)")
				return
			}
			var msgParsed pvtypes.JSONObject
			if err := json.Unmarshal(msgBytes, &msgParsed); err != nil {
				l.Errorf("Message cannot be parsed as JSON: %s\n%s", err, string(msgBytes))
				continue
			}
			e.handleReceipt(ctx, msgParsed)
		}
	}
}

func (e *Ethconnect) handleReceipt(ctx context.Context, reply pvtypes.JSONObject) {
	l := log.L(ctx)

	headers := reply.GetObject("headers")
	requestID := headers.GetString("requestId")
	replyType := headers.GetString("type")
	txHash := reply.GetString("transactionHash")
	message := reply.GetString("errorMessage")
	if requestID == "" || replyType == "" {
		l.Errorf("Reply cannot be processed: %s", reply.String())
		return
	}

	updateType := ledgeranchor.TXStatusSucceeded
	if replyType != "TransactionSuccess" {
		updateType = ledgeranchor.TXStatusFailed
	}
	l.Infof("Ethconnect '%s' reply: request=%s tx=%s message=%s", replyType, requestID, txHash, message)
	e.callbacks.AnchorOpUpdate(requestID, updateType, message, reply)
}

// SubmitAnchor invokes the anchor contract asynchronously. The returned
// request id correlates the receipt delivered on the reply stream.
func (e *Ethconnect) SubmitAnchor(ctx context.Context, entityID *pvtypes.UUID, sequence int64, contentHash *pvtypes.Bytes32, timestamp *pvtypes.PVTime) (string, error) {
	var tx asyncTXSubmission
	input := pvtypes.JSONObject{
		"entityId":    entityID.String(),
		"sequence":    strconv.FormatInt(sequence, 10),
		"contentHash": "0x" + contentHash.String(),
		"timestamp":   strconv.FormatInt(timestamp.UnixNano(), 10),
	}
	res, err := e.client.R().
		SetContext(ctx).
		SetQueryParam("fly-sync", "false").
		SetQueryParam("fly-from", e.fromAddress).
		SetBody(input).
		SetResult(&tx).
		Post(fmt.Sprintf("%s/anchorCheckpoint", e.instancePath))
	if err != nil || !res.IsSuccess() {
		return "", restclient.WrapRestErr(ctx, res, err, i18n.MsgEthconnectRESTErr)
	}
	log.L(ctx).Infof("Anchor submitted for entity %s seq %d request=%s", entityID, sequence, tx.ID)
	return tx.ID, nil
}

// IsValid queries the anchor contract for whether the checkpoint hash is
// currently recognized
func (e *Ethconnect) IsValid(ctx context.Context, contentHash *pvtypes.Bytes32) (bool, error) {
	var output isAnchoredOutput
	res, err := e.client.R().
		SetContext(ctx).
		SetQueryParam("contentHash", "0x"+contentHash.String()).
		SetResult(&output).
		Get(fmt.Sprintf("%s/isAnchored", e.instancePath))
	if err != nil || !res.IsSuccess() {
		return false, restclient.WrapRestErr(ctx, res, err, i18n.MsgEthconnectRESTErr)
	}
	return output.Valid, nil
}

// Close shuts down the websocket reply stream
func (e *Ethconnect) Close() {
	if e.wsconn != nil {
		e.wsconn.Close()
	}
}
