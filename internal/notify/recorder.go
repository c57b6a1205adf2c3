/*
Copyright 2026 The maven-publish authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package notify posts publish events to a webhook address.
package notify

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// EventRecorder posts events to the webhook address.
type EventRecorder struct {
	// Webhook is the URL address of the events endpoint.
	Webhook string

	// ReportingController is the name of the tool that emits events.
	ReportingController string

	// Client is the retryable HTTP client.
	Client *retryablehttp.Client
}

// NewEventRecorder creates an EventRecorder with default settings.
// The recorder performs automatic retries for connection errors and
// 500-range response codes.
func NewEventRecorder(webhook, reportingController string) (*EventRecorder, error) {
	if _, err := url.Parse(webhook); err != nil {
		return nil, err
	}

	httpClient := retryablehttp.NewClient()
	httpClient.HTTPClient.Timeout = 5 * time.Second
	httpClient.Logger = nil

	return &EventRecorder{
		Webhook:             webhook,
		ReportingController: reportingController,
		Client:              httpClient,
	}, nil
}

// EventInfof records an event with information severity.
func (er *EventRecorder) EventInfof(
	version string, artifacts []string,
	metadata map[string]string,
	reason string, messageFmt string, args ...interface{}) error {
	return er.Eventf(EventSeverityInfo, version, artifacts, metadata, reason, messageFmt, args...)
}

// EventErrorf records an event with error severity.
func (er *EventRecorder) EventErrorf(
	version string, artifacts []string,
	metadata map[string]string,
	reason string, messageFmt string, args ...interface{}) error {
	return er.Eventf(EventSeverityError, version, artifacts, metadata, reason, messageFmt, args...)
}

// Eventf constructs an event from the given information and performs an
// HTTP POST to the webhook address.
func (er *EventRecorder) Eventf(
	severity, version string, artifacts []string,
	metadata map[string]string,
	reason string, messageFmt string, args ...interface{}) error {
	if er.Client == nil {
		return fmt.Errorf("retryable HTTP client has not been initialized")
	}

	if version == "" {
		return fmt.Errorf("failed to get event version")
	}

	hostname, err := os.Hostname()
	if err != nil {
		return err
	}

	event := Event{
		Version:             version,
		Artifacts:           artifacts,
		Severity:            severity,
		Timestamp:           time.Now().UTC(),
		Message:             fmt.Sprintf(messageFmt, args...),
		Reason:              reason,
		Metadata:            metadata,
		ReportingController: er.ReportingController,
		ReportingInstance:   hostname,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event into json: %w", err)
	}

	if _, err := er.Client.Post(er.Webhook, "application/json", body); err != nil {
		return err
	}

	return nil
}
