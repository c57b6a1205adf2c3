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

package notify

import "time"

const (
	// EventSeverityInfo is the severity of events recording a
	// successful publish.
	EventSeverityInfo = "info"

	// EventSeverityError is the severity of events recording a failed
	// publish.
	EventSeverityError = "error"
)

// Event is the payload posted to the notification webhook after a
// publish attempt.
type Event struct {
	// Version is the published version the event refers to.
	Version string `json:"version"`

	// Artifacts lists the Maven coordinates covered by the event, in
	// the form of '<groupId>:<artifactId>'.
	Artifacts []string `json:"artifacts,omitempty"`

	// Severity is the event severity, one of 'info' or 'error'.
	Severity string `json:"severity"`

	// Timestamp is the time the event was recorded.
	Timestamp time.Time `json:"timestamp"`

	// Message is the human readable description of the event.
	Message string `json:"message"`

	// Reason is the machine readable cause of the event.
	Reason string `json:"reason"`

	// Metadata carries additional key/value pairs.
	Metadata map[string]string `json:"metadata,omitempty"`

	// ReportingController is the name of the tool that emitted the
	// event.
	ReportingController string `json:"reportingController"`

	// ReportingInstance is the host the event was emitted from.
	ReportingInstance string `json:"reportingInstance,omitempty"`
}
