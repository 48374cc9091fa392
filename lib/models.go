/*
 * Copyright 2025 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lib

import (
	"encoding/json"
	"net/url"
	"time"
)

const (
	DefaultHost       = "https://reportobello.com"
	DefaultAPIVersion = "v1"
)

// Config is captured once by the API client and never changed afterwards.
type Config struct {
	APIKey string `json:"api_key"`
	// Host defaults to DefaultHost.
	Host string `json:"host,omitempty"`
	// Version defaults to DefaultAPIVersion and ends up in every request path as api/{version}/...
	Version string `json:"version,omitempty"`
}

// Template is one immutable version of a named template stored by the service.
type Template struct {
	Name     string `json:"name"`
	Version  int    `json:"version"`
	Template string `json:"template"`
}

// Report is a past execution of a template.
type Report struct {
	// Filename points to the artifact, nil if the run failed before producing one.
	Filename         *url.URL  `json:"-"`
	StartedAt        time.Time `json:"startedAt"`
	FinishedAt       time.Time `json:"finishedAt"`
	ErrorMessage     *string   `json:"errorMessage"`
	TemplateName     string    `json:"templateName"`
	RequestedVersion int       `json:"requestedVersion"`
	ActualVersion    int       `json:"actualVersion"`
	Data             string    `json:"data"`
	DataType         string    `json:"dataType"`
}

// Succeeded reports whether the run produced an artifact without an error message.
func (r Report) Succeeded() bool {
	return r.Filename != nil && r.ErrorMessage == nil
}

// MarshalJSON renders Filename as a URL string or null.
func (r Report) MarshalJSON() ([]byte, error) {
	type plain Report
	var filename *string
	if r.Filename != nil {
		s := r.Filename.String()
		filename = &s
	}
	return json.Marshal(struct {
		Filename *string `json:"filename"`
		plain
	}{
		Filename: filename,
		plain:    plain(r),
	})
}

// RunReportOptions are per call and never persisted.
type RunReportOptions struct {
	// Preview adds the bare preview query flag. It is only sent when true.
	Preview bool
	// RawTemplate replaces the stored template source for this run. Empty means the stored template is used.
	RawTemplate string
}

// EnvVars maps environment variable names to values.
type EnvVars map[string]string

type FromTo = struct {
	Name  string
	Email string
}

// MailAttachment is a file attached to a SendRequest.
type MailAttachment struct {
	// Base64-encoded file content
	Content  string
	Filename string
	// Detected by mailpit when empty
	ContentType string
	// Attaches the file inline when set
	ContentID string
}

// SendRequest is the body of mailpit's POST /api/v1/send. Bcc takes plain addresses.
type SendRequest struct {
	From        FromTo
	To          []FromTo `json:",omitempty"`
	Cc          []FromTo `json:",omitempty"`
	Bcc         []string
	ReplyTo     []FromTo `json:",omitempty"`
	Subject     string
	Text        string
	HTML        string
	Attachments []MailAttachment
	Tags        []string
	Headers     map[string]string `json:",omitempty"`
}
