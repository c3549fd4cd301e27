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

package config

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/provenant-io/provenant/internal/i18n"
	"github.com/provenant-io/provenant/internal/log"
	"github.com/provenant-io/provenant/pkg/pvtypes"
	"github.com/spf13/viper"
)

var ark = AddRootKey

// The following keys can be accessed from the root configuration.
// Plugins are responsible for defining their own keys using the Prefix interface
var (
	Lang                       = ark("lang")
	LogLevel                   = ark("log.level")
	LogColor                   = ark("log.color")
	LogUTC                     = ark("log.utc")
	DatabaseType               = ark("database.type")
	ContentStoreType           = ark("contentstore.type")
	LedgerAnchorType           = ark("ledgeranchor.type")
	AnchoringWorkerCount       = ark("anchoring.workerCount")
	AnchoringQueueSize         = ark("anchoring.queueSize")
	AnchoringAttemptTimeout    = ark("anchoring.attemptTimeout")
	AnchoringMaxAttempts       = ark("anchoring.maxAttempts")
	AnchoringRetryInitialDelay = ark("anchoring.retry.initialDelay")
	AnchoringRetryMaxDelay     = ark("anchoring.retry.maxDelay")
	AnchoringRetryFactor       = ark("anchoring.retry.factor")
	SnapshotCacheSize          = ark("cache.snapshot.size")
	SnapshotCacheTTL           = ark("cache.snapshot.ttl")
)

// Prefix represents the global configuration, at a nested point in the config
// hierarchy. Note that all values are GLOBAL so this cannot be used for
// per-instance customization. Rather for global initialization of plugins.
type Prefix interface {
	AddKnownKey(key string, defValue ...interface{})
	SubPrefix(suffix string) Prefix
	Set(key string, value interface{})
	Resolve(key string) string

	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	GetInt64(key string) int64
	GetUint(key string) uint
	GetFloat64(key string) float64
	GetByteSize(key string) int64
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	GetObject(key string) pvtypes.JSONObject
	Get(key string) interface{}
}

// RootKey are the known configuration keys
type RootKey string

// Reset restores the config to the initial state with all defaults re-applied
func Reset() {
	viper.Reset()

	viper.SetDefault(string(Lang), "en")
	viper.SetDefault(string(LogLevel), "info")
	viper.SetDefault(string(LogColor), true)
	viper.SetDefault(string(LogUTC), false)
	viper.SetDefault(string(DatabaseType), "sqlite3")
	viper.SetDefault(string(ContentStoreType), "ipfs")
	viper.SetDefault(string(LedgerAnchorType), "ethconnect")
	viper.SetDefault(string(AnchoringWorkerCount), 5)
	viper.SetDefault(string(AnchoringQueueSize), 50)
	viper.SetDefault(string(AnchoringAttemptTimeout), "30s")
	viper.SetDefault(string(AnchoringMaxAttempts), 5)
	viper.SetDefault(string(AnchoringRetryInitialDelay), "250ms")
	viper.SetDefault(string(AnchoringRetryMaxDelay), "30s")
	viper.SetDefault(string(AnchoringRetryFactor), 2.0)
	viper.SetDefault(string(SnapshotCacheSize), "1Mb")
	viper.SetDefault(string(SnapshotCacheTTL), "5m")

	i18n.SetLang(GetString(Lang))
}

// ReadConfig initializes the config
func ReadConfig(cfgFile string) error {
	Reset()

	// Set precedence order for reading config location
	viper.SetEnvPrefix("provenant")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetConfigType("yaml")
	if cfgFile != "" {
		f, err := os.Open(cfgFile)
		if err == nil {
			defer f.Close()
			err = viper.ReadConfig(f)
		}
		return err
	}
	viper.SetConfigName("provenant.core")
	viper.AddConfigPath("/etc/provenant/")
	viper.AddConfigPath("$HOME/.provenant")
	viper.AddConfigPath(".")
	return viper.ReadInConfig()
}

var knownKeys = map[string]bool{} // All keys go here, including those defined in sub prefixes
var keysMutex sync.Mutex
var root = &configPrefix{}

// AddRootKey adds a root key, used to define the keys that are used within the core
func AddRootKey(k string) RootKey {
	root.AddKnownKey(k)
	return RootKey(k)
}

// GetKnownKeys gets the known keys
func GetKnownKeys() []string {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// configPrefix is the main config structure passed to plugins, and used for root to wrap viper
type configPrefix struct {
	prefix string
}

// NewPluginConfig creates a new plugin configuration object, at the specified prefix
func NewPluginConfig(prefix string) Prefix {
	if !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}
	return &configPrefix{
		prefix: prefix,
	}
}

func (c *configPrefix) prefixKey(k string) string {
	// Caller responsible for holding lock when calling
	key := c.prefix + k
	if !knownKeys[key] {
		panic(fmt.Sprintf("Undefined configuration key '%s'", key))
	}
	return key
}

func (c *configPrefix) SubPrefix(suffix string) Prefix {
	return &configPrefix{
		prefix: c.prefix + suffix + ".",
	}
}

func (c *configPrefix) AddKnownKey(k string, defValue ...interface{}) {
	key := c.prefix + k
	if len(defValue) == 1 {
		viper.SetDefault(key, defValue[0])
	} else if len(defValue) > 0 {
		viper.SetDefault(key, defValue)
	}
	keysMutex.Lock()
	defer keysMutex.Unlock()
	knownKeys[key] = true
}

// GetString gets a configuration string
func GetString(key RootKey) string {
	return root.GetString(string(key))
}
func (c *configPrefix) GetString(key string) string {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	return viper.GetString(c.prefixKey(key))
}

// GetStringSlice gets a configuration string array
func GetStringSlice(key RootKey) []string {
	return root.GetStringSlice(string(key))
}
func (c *configPrefix) GetStringSlice(key string) []string {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	return viper.GetStringSlice(c.prefixKey(key))
}

// GetBool gets a configuration bool
func GetBool(key RootKey) bool {
	return root.GetBool(string(key))
}
func (c *configPrefix) GetBool(key string) bool {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	return viper.GetBool(c.prefixKey(key))
}

// GetDuration gets a configuration time duration with consistent semantics
func GetDuration(key RootKey) time.Duration {
	return root.GetDuration(string(key))
}
func (c *configPrefix) GetDuration(key string) time.Duration {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	return pvtypes.ParseToDuration(viper.GetString(c.prefixKey(key)))
}

// GetByteSize gets a size in bytes
func GetByteSize(key RootKey) int64 {
	return root.GetByteSize(string(key))
}
func (c *configPrefix) GetByteSize(key string) int64 {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	return pvtypes.ParseToByteSize(viper.GetString(c.prefixKey(key)))
}

// GetUint gets a configuration uint
func GetUint(key RootKey) uint {
	return root.GetUint(string(key))
}
func (c *configPrefix) GetUint(key string) uint {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	return viper.GetUint(c.prefixKey(key))
}

// GetInt gets a configuration int
func GetInt(key RootKey) int {
	return root.GetInt(string(key))
}
func (c *configPrefix) GetInt(key string) int {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	return viper.GetInt(c.prefixKey(key))
}

// GetInt64 gets a configuration int64
func GetInt64(key RootKey) int64 {
	return root.GetInt64(string(key))
}
func (c *configPrefix) GetInt64(key string) int64 {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	return viper.GetInt64(c.prefixKey(key))
}

// GetFloat64 gets a configuration float64
func GetFloat64(key RootKey) float64 {
	return root.GetFloat64(string(key))
}
func (c *configPrefix) GetFloat64(key string) float64 {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	return viper.GetFloat64(c.prefixKey(key))
}

// GetObject gets a configuration map
func GetObject(key RootKey) pvtypes.JSONObject {
	return root.GetObject(string(key))
}
func (c *configPrefix) GetObject(key string) pvtypes.JSONObject {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	return pvtypes.JSONObject(viper.GetStringMap(c.prefixKey(key)))
}

// Get gets a configuration in raw form
func Get(key RootKey) interface{} {
	return root.Get(string(key))
}
func (c *configPrefix) Get(key string) interface{} {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	return viper.Get(c.prefixKey(key))
}

// Set allows runtime setting of config (used in unit tests)
func Set(key RootKey, value interface{}) {
	root.Set(string(key), value)
}
func (c *configPrefix) Set(key string, value interface{}) {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	viper.Set(c.prefixKey(key), value)
}

// Resolve gives the fully qualified path of a key
func (c *configPrefix) Resolve(key string) string {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	return c.prefixKey(key)
}

// UintWithDefault resolves an optional uint pointer against a default
func UintWithDefault(val *uint, def uint) uint {
	if val == nil {
		return def
	}
	return *val
}

// SetupLogging initializes logging from the loaded configuration
func SetupLogging(ctx context.Context) {
	log.SetFormatting(log.Formatting{
		DisableColor: !GetBool(LogColor),
		UTC:          GetBool(LogUTC),
	})
	log.SetLevel(GetString(LogLevel))
	log.L(ctx).Debugf("Log level: %s", GetString(LogLevel))
}
