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
// Derived from amazon-ecs-agent ecs-agent/utils/retry/exponential_backoff.go
// and backoff.go. Modified for aws-scenarios: the Backoff interface and
// AddJitter moved into this package for the service pollers.

package awsutils

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Backoff produces the wait between two attempts of a polled operation
type Backoff interface {
	Duration() time.Duration
	Reset()
}

type ExponentialBackoff struct {
	current        time.Duration
	start          time.Duration
	max            time.Duration
	jitterMultiple float64
	multiple       float64
	mu             sync.Mutex
}

// NewExponentialBackoff creates a Backoff that starts at min and grows by
// multiple on every call up to max. A random jitter of up to jitterMultiple
// percent of the current value is always added, so the absolute max wait is
// max + max*jitterMultiple.
func NewExponentialBackoff(min, max time.Duration, jitterMultiple, multiple float64) *ExponentialBackoff {
	return &ExponentialBackoff{
		start:          min,
		current:        min,
		max:            max,
		jitterMultiple: jitterMultiple,
		multiple:       multiple,
	}
}

func (b *ExponentialBackoff) Duration() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	ret := b.current
	b.current = time.Duration(math.Min(float64(b.max.Nanoseconds()), float64(b.current.Nanoseconds())*b.multiple))
	return AddJitter(ret, time.Duration(int64(float64(ret)*b.jitterMultiple)))
}

func (b *ExponentialBackoff) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = b.start
}

// AddJitter adds a random duration in [0, jitter) to duration
func AddJitter(duration time.Duration, jitter time.Duration) time.Duration {
	var randJitter int64
	if jitter.Nanoseconds() > 0 {
		randJitter = rand.Int63n(jitter.Nanoseconds())
	}
	return duration + time.Duration(randJitter)
}
