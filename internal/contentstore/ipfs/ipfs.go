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

package ipfs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/akamensky/base58"
	"github.com/go-resty/resty/v2"
	"github.com/provenant-io/provenant/internal/config"
	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/internal/log"
	"github.com/provenant-io/provenant/internal/restclient"
	"github.com/provenant-io/provenant/pkg/contentstore"
	"github.com/provenant-io/provenant/pkg/pvtypes"
)

type IPFS struct {
	ctx          context.Context
	capabilities *contentstore.Capabilities
	apiClient    *resty.Client
	gwClient     *resty.Client
}

type ipfsUploadResponse struct {
	Name string      `json:"Name"`
	Hash string      `json:"Hash"`
	Size json.Number `json:"Size"`
}

func (i *IPFS) Name() string {
	return "ipfs"
}

func (i *IPFS) Init(ctx context.Context, prefix config.Prefix) error {

	i.ctx = log.WithLogField(ctx, "contentstore", "ipfs")

	apiPrefix := prefix.SubPrefix(IPFSConfAPISubconf)
	if apiPrefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, apiPrefix.Resolve(restclient.HTTPConfigURL), "ipfs")
	}
	i.apiClient = restclient.New(i.ctx, apiPrefix)
	gwPrefix := prefix.SubPrefix(IPFSConfGatewaySubconf)
	if gwPrefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, gwPrefix.Resolve(restclient.HTTPConfigURL), "ipfs")
	}
	i.gwClient = restclient.New(i.ctx, gwPrefix)
	i.capabilities = &contentstore.Capabilities{}
	return nil
}

func (i *IPFS) Capabilities() *contentstore.Capabilities {
	return i.capabilities
}

// ipfsHashToBytes32 decodes a Qm base58 v0 CID into the raw 32 byte digest,
// which is the fixed-shape hash form submitted to the ledger
func (i *IPFS) ipfsHashToBytes32(ctx context.Context, ipfshash string) (*pvtypes.Bytes32, error) {
	b, err := base58.Decode(ipfshash)
	if err != nil || len(b) != 34 {
		return nil, i18n.NewError(ctx, i18n.MsgIPFSHashDecodeFailed, ipfshash)
	}
	var b32 pvtypes.Bytes32
	copy(b32[:], b[2:34])
	return &b32, nil
}

func (i *IPFS) PublishData(ctx context.Context, data io.Reader) (payloadRef string, contentHash *pvtypes.Bytes32, err error) {
	var ipfsResponse ipfsUploadResponse
	res, err := i.apiClient.R().
		SetContext(ctx).
		SetFileReader("document", "file.bin", data).
		SetResult(&ipfsResponse).
		Post("/api/v0/add")
	if err != nil || !res.IsSuccess() {
		return "", nil, restclient.WrapRestErr(i.ctx, res, err, i18n.MsgIPFSRESTErr)
	}
	if contentHash, err = i.ipfsHashToBytes32(ctx, ipfsResponse.Hash); err != nil {
		return "", nil, err
	}
	log.L(ctx).Infof("IPFS published %s Size=%s", ipfsResponse.Hash, ipfsResponse.Size)
	return ipfsResponse.Hash, contentHash, nil
}

func (i *IPFS) RetrieveData(ctx context.Context, payloadRef string) (data io.ReadCloser, err error) {
	res, err := i.gwClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(fmt.Sprintf("/ipfs/%s", payloadRef))
	restclient.OnAfterResponse(i.gwClient, res) // required using SetDoNotParseResponse
	if err != nil || !res.IsSuccess() {
		if res != nil && res.RawBody() != nil {
			_ = res.RawBody().Close()
		}
		return nil, restclient.WrapRestErr(i.ctx, res, err, i18n.MsgIPFSRESTErr)
	}
	log.L(ctx).Infof("IPFS retrieved %s", payloadRef)
	return res.RawBody(), nil
}
