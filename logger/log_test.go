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
// Derived from amazon-ecs-agent ecs-agent/logger/log_test.go. Modified for
// aws-scenarios.

package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeelogConfigWithoutLogfile(t *testing.T) {
	config.logfile = ""
	config.level = "info"

	c := seelogConfig()

	assert.Contains(t, c, `minlevel="info"`)
	assert.Contains(t, c, "<console />")
	assert.NotContains(t, c, "rollingfile")
}

func TestSeelogConfigWithLogfile(t *testing.T) {
	config.logfile = "/tmp/scenarios.log"
	defer func() { config.logfile = "" }()

	c := seelogConfig()

	assert.Contains(t, c, `filename="/tmp/scenarios.log"`)
	assert.Contains(t, c, `maxrolls="24"`)
}

func TestSetLogLevelRejectsUnknownLevel(t *testing.T) {
	err := SetLogLevel("chatty")

	assert.NotNil(t, err)
}

func TestSetLogLevelMapsCrit(t *testing.T) {
	defer SetLogLevel("info")

	err := SetLogLevel("CRIT")

	assert.Nil(t, err)
	assert.Equal(t, "critical", config.level)
}

func TestSourceKeepsUpstreamLicenseHeader(t *testing.T) {
	for _, name := range []string{"log.go", "log_test.go"} {
		data, err := os.ReadFile(name)
		assert.Nil(t, err)
		assert.Contains(t, string(data), "Licensed under the Apache License, Version 2.0", name)
		assert.Contains(t, string(data), "Derived from amazon-ecs-agent", name)
	}
}

