// Copyright 2024-2025 NetCracker Technology Corporation
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

package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	for _, key := range []string{LISTEN_ADDRESS, ORIGIN_ALLOWED, LOG_LEVEL, VALIDATOR_URL, VALIDATOR_TIMEOUT_SEC, SESSION_TTL_MIN, SESSION_CACHE_SIZE, CONFIG_PATH} {
		t.Setenv(key, "")
	}
}

func TestSystemInfoService_Defaults(t *testing.T) {
	clearConfigEnv(t)

	info, err := NewSystemInfoService()

	require.NoError(t, err)
	assert.Equal(t, ":8080", info.GetListenAddress())
	assert.Equal(t, "", info.GetOriginAllowed())
	assert.Equal(t, "http://localhost:8000", info.GetValidatorUrl())
	assert.Equal(t, time.Duration(0), info.GetValidatorTimeout())
	assert.Equal(t, time.Hour, info.GetSessionTTL())
	assert.Equal(t, 1000, info.GetSessionCacheSize())
}

func TestSystemInfoService_YamlFileAndEnvOverride(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listenAddress: ":9090"
validatorUrl: http://validator:8000
validatorTimeoutSec: 30
sessionTtlMin: 15
sessionCacheSize: 50
logLevel: debug
`), 0o600))
	t.Setenv(CONFIG_PATH, path)
	t.Setenv(VALIDATOR_URL, "http://override:8000")

	info, err := NewSystemInfoService()

	require.NoError(t, err)
	assert.Equal(t, ":9090", info.GetListenAddress())
	assert.Equal(t, "http://override:8000", info.GetValidatorUrl())
	assert.Equal(t, 30*time.Second, info.GetValidatorTimeout())
	assert.Equal(t, 15*time.Minute, info.GetSessionTTL())
	assert.Equal(t, 50, info.GetSessionCacheSize())
	assert.Equal(t, "debug", info.GetLogLevel())
}

func TestSystemInfoService_InvalidValues(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(SESSION_CACHE_SIZE, "many")
	_, err := NewSystemInfoService()
	assert.Error(t, err)

	clearConfigEnv(t)
	t.Setenv(SESSION_TTL_MIN, "0")
	_, err = NewSystemInfoService()
	assert.Error(t, err)

	clearConfigEnv(t)
	t.Setenv(CONFIG_PATH, filepath.Join(t.TempDir(), "absent.yaml"))
	_, err = NewSystemInfoService()
	assert.Error(t, err)
}
