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
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	LISTEN_ADDRESS        = "LISTEN_ADDRESS"
	ORIGIN_ALLOWED        = "ORIGIN_ALLOWED"
	LOG_LEVEL             = "LOG_LEVEL"
	VALIDATOR_URL         = "VALIDATOR_URL"
	VALIDATOR_TIMEOUT_SEC = "VALIDATOR_TIMEOUT_SEC"
	SESSION_TTL_MIN       = "SESSION_TTL_MIN"
	SESSION_CACHE_SIZE    = "SESSION_CACHE_SIZE"
	CONFIG_PATH           = "CONFIG_PATH"
)

type SystemInfoService interface {
	Init() error
	GetListenAddress() string
	GetOriginAllowed() string
	GetLogLevel() string
	GetValidatorUrl() string
	GetValidatorTimeout() time.Duration
	GetSessionTTL() time.Duration
	GetSessionCacheSize() int
}

// fileConfig is the optional YAML file named by CONFIG_PATH. Environment variables take precedence over it.
type fileConfig struct {
	ListenAddress       string `yaml:"listenAddress"`
	OriginAllowed       string `yaml:"originAllowed"`
	LogLevel            string `yaml:"logLevel"`
	ValidatorUrl        string `yaml:"validatorUrl"`
	ValidatorTimeoutSec *int   `yaml:"validatorTimeoutSec"`
	SessionTtlMin       *int   `yaml:"sessionTtlMin"`
	SessionCacheSize    *int   `yaml:"sessionCacheSize"`
}

func NewSystemInfoService() (SystemInfoService, error) {
	s := &systemInfoServiceImpl{
		systemInfoMap: make(map[string]interface{})}
	if err := s.Init(); err != nil {
		log.Error("Failed to read system info: " + err.Error())
		return nil, err
	}
	return s, nil
}

type systemInfoServiceImpl struct {
	systemInfoMap map[string]interface{}
}

func (g systemInfoServiceImpl) Init() error {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %s", err.Error())
	}
	fc, err := loadFileConfig(os.Getenv(CONFIG_PATH))
	if err != nil {
		return err
	}

	g.setListenAddress(fc)
	g.setOriginAllowed(fc)
	g.setLogLevel(fc)
	g.setValidatorUrl(fc)
	if err = g.setValidatorTimeout(fc); err != nil {
		return err
	}
	if err = g.setSessionTTL(fc); err != nil {
		return err
	}
	return g.setSessionCacheSize(fc)
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, nil
}

func stringValue(env string, fromFile string, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	if fromFile != "" {
		return fromFile
	}
	return def
}

func intValue(env string, fromFile *int, def int) (int, error) {
	if v := os.Getenv(env); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("env %s has incorrect value '%s': %w", env, v, err)
		}
		return i, nil
	}
	if fromFile != nil {
		return *fromFile, nil
	}
	return def, nil
}

func (g systemInfoServiceImpl) setListenAddress(fc fileConfig) {
	g.systemInfoMap[LISTEN_ADDRESS] = stringValue(LISTEN_ADDRESS, fc.ListenAddress, ":8080")
}

func (g systemInfoServiceImpl) GetListenAddress() string {
	return g.systemInfoMap[LISTEN_ADDRESS].(string)
}

func (g systemInfoServiceImpl) setOriginAllowed(fc fileConfig) {
	g.systemInfoMap[ORIGIN_ALLOWED] = stringValue(ORIGIN_ALLOWED, fc.OriginAllowed, "")
}

func (g systemInfoServiceImpl) GetOriginAllowed() string {
	return g.systemInfoMap[ORIGIN_ALLOWED].(string)
}

func (g systemInfoServiceImpl) setLogLevel(fc fileConfig) {
	g.systemInfoMap[LOG_LEVEL] = stringValue(LOG_LEVEL, fc.LogLevel, "")
}

func (g systemInfoServiceImpl) GetLogLevel() string {
	return g.systemInfoMap[LOG_LEVEL].(string)
}

func (g systemInfoServiceImpl) setValidatorUrl(fc fileConfig) {
	g.systemInfoMap[VALIDATOR_URL] = stringValue(VALIDATOR_URL, fc.ValidatorUrl, "http://localhost:8000")
}

func (g systemInfoServiceImpl) GetValidatorUrl() string {
	return g.systemInfoMap[VALIDATOR_URL].(string)
}

func (g systemInfoServiceImpl) setValidatorTimeout(fc fileConfig) error {
	sec, err := intValue(VALIDATOR_TIMEOUT_SEC, fc.ValidatorTimeoutSec, 0)
	if err != nil {
		return err
	}
	g.systemInfoMap[VALIDATOR_TIMEOUT_SEC] = time.Duration(sec) * time.Second
	return nil
}

// GetValidatorTimeout returns 0 when no client-side timeout is configured.
func (g systemInfoServiceImpl) GetValidatorTimeout() time.Duration {
	return g.systemInfoMap[VALIDATOR_TIMEOUT_SEC].(time.Duration)
}

func (g systemInfoServiceImpl) setSessionTTL(fc fileConfig) error {
	minutes, err := intValue(SESSION_TTL_MIN, fc.SessionTtlMin, 60)
	if err != nil {
		return err
	}
	if minutes <= 0 {
		return fmt.Errorf("%s must be positive, got %d", SESSION_TTL_MIN, minutes)
	}
	g.systemInfoMap[SESSION_TTL_MIN] = time.Duration(minutes) * time.Minute
	return nil
}

func (g systemInfoServiceImpl) GetSessionTTL() time.Duration {
	return g.systemInfoMap[SESSION_TTL_MIN].(time.Duration)
}

func (g systemInfoServiceImpl) setSessionCacheSize(fc fileConfig) error {
	size, err := intValue(SESSION_CACHE_SIZE, fc.SessionCacheSize, 1000)
	if err != nil {
		return err
	}
	if size <= 0 {
		return fmt.Errorf("%s must be positive, got %d", SESSION_CACHE_SIZE, size)
	}
	g.systemInfoMap[SESSION_CACHE_SIZE] = size
	return nil
}

func (g systemInfoServiceImpl) GetSessionCacheSize() int {
	return g.systemInfoMap[SESSION_CACHE_SIZE].(int)
}
