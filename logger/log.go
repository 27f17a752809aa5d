// Copyright Amazon.com Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may
// not use this file except in compliance with the License. A copy of the
// License is located at
//
//	http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
// express or implied. See the License for the specific language governing
// permissions and limitations under the License.
//
// Derived from amazon-ecs-agent ecs-init/logger/log.go. Modified for
// aws-scenarios: environment variable names, level names and the
// runtime level switch.

package logger

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cihub/seelog"
)

const (
	LOGLEVEL_ENV_VAR = "AWS_SCENARIOS_LOGLEVEL"
	LOGFILE_ENV_VAR  = "AWS_SCENARIOS_LOGFILE"
	defaultLogLevel  = "info"
	outputFmt        = "logfmt"
	rollCount        = 24
)

// logLevels maps the accepted level names to seelog levels
var logLevels = map[string]string{
	"debug": "debug",
	"info":  "info",
	"warn":  "warn",
	"error": "error",
	"crit":  "critical",
	"none":  "off",
}

type logConfig struct {
	level        string
	logfile      string
	outputFormat string
	maxRollCount int
	lock         sync.Mutex
}

var config *logConfig

func init() {
	config = &logConfig{
		level:        defaultLogLevel,
		outputFormat: outputFmt,
		maxRollCount: rollCount,
	}
}

// Setup installs the logfmt formatter and replaces the global seelog logger.
// The level and log file can be overridden through the environment.
func Setup() {
	if logLevel := os.Getenv(LOGLEVEL_ENV_VAR); logLevel != "" {
		config.level = logLevels[strings.ToLower(logLevel)]
		if config.level == "" {
			config.level = defaultLogLevel
		}
	}
	if logfile := os.Getenv(LOGFILE_ENV_VAR); logfile != "" {
		config.logfile = logfile
	}
	if err := seelog.RegisterCustomFormatter("ScenarioLogfmt", logfmtFormatter); err != nil {
		seelog.Error(err)
	}
	reloadConfig()
}

func logfmtFormatter(params string) seelog.FormatterFunc {
	return func(message string, level seelog.LogLevel, context seelog.LogContextInterface) interface{} {
		return fmt.Sprintf(`level=%s time=%s msg=%q
`, level.String(), context.CallTime().UTC().Format(time.RFC3339), message)
	}
}

// SetLogLevel changes the level of the global logger. Unknown levels are
// reported and ignored.
func SetLogLevel(logLevel string) error {
	parsedLevel, ok := logLevels[strings.ToLower(logLevel)]
	if !ok {
		return fmt.Errorf("log level mapping not found for %q", logLevel)
	}
	config.lock.Lock()
	defer config.lock.Unlock()
	config.level = parsedLevel
	reloadConfig()
	return nil
}

// SetLogFile enables a rolling log file in addition to console output
func SetLogFile(path string) {
	config.lock.Lock()
	defer config.lock.Unlock()
	config.logfile = path
	reloadConfig()
}

func reloadConfig() {
	logger, err := seelog.LoggerFromConfigAsString(seelogConfig())
	if err == nil {
		seelog.ReplaceLogger(logger)
	} else {
		seelog.Error(err)
	}
}

func seelogConfig() string {
	c := `
<seelog type="asyncloop" minlevel="` + config.level + `">
	<outputs formatid="` + config.outputFormat + `">
		<console />`
	if config.logfile != "" {
		c += `
		<rollingfile filename="` + config.logfile + `" type="date"
		 datepattern="2006-01-02-15" archivetype="none" maxrolls="` + strconv.Itoa(config.maxRollCount) + `" />`
	}
	c += `
	</outputs>
	<formats>
		<format id="logfmt" format="%ScenarioLogfmt" />
	</formats>
</seelog>`
	return c
}
