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

package reportobello

import (
	"fmt"
	"net/url"
	"time"

	"github.com/SENERGY-Platform/reportobello-client/lib"
	"github.com/araddon/dateparse"
)

const ContentTypeTypst = "application/x-typst"

type BuildRequest struct {
	Data        interface{} `json:"data"`
	ContentType string      `json:"content_type"`
	TemplateRaw string      `json:"template_raw,omitempty"`
}

// RecentReport is a report record as served by the recent endpoint.
type RecentReport struct {
	Filename         *string `json:"filename"`
	StartedAt        *string `json:"started_at"`
	FinishedAt       *string `json:"finished_at"`
	ErrorMessage     *string `json:"error_message"`
	TemplateName     string  `json:"template_name"`
	RequestedVersion int     `json:"requested_version"`
	ActualVersion    *int    `json:"actual_version"`
	// older deployments send this key in camel case
	ActualVersionLegacy *int   `json:"actualVersion"`
	Data                string `json:"data"`
	DataType            string `json:"data_type"`
}

// ToReport maps the wire record to lib.Report. filesBase is the URL artifact file names are resolved against.
func (r RecentReport) ToReport(filesBase *url.URL) (report lib.Report, err error) {
	report = lib.Report{
		ErrorMessage:     copyString(r.ErrorMessage),
		TemplateName:     r.TemplateName,
		RequestedVersion: r.RequestedVersion,
		Data:             r.Data,
		DataType:         r.DataType,
	}
	switch {
	case r.ActualVersion != nil:
		report.ActualVersion = *r.ActualVersion
	case r.ActualVersionLegacy != nil:
		report.ActualVersion = *r.ActualVersionLegacy
	}
	report.StartedAt, err = parseTimestamp(r.StartedAt)
	if err != nil {
		return report, fmt.Errorf("started_at: %w", err)
	}
	report.FinishedAt, err = parseTimestamp(r.FinishedAt)
	if err != nil {
		return report, fmt.Errorf("finished_at: %w", err)
	}
	// an empty name has no artifact, same as null
	if r.Filename != nil && *r.Filename != "" {
		report.Filename = filesBase.JoinPath(*r.Filename)
	}
	return report, nil
}

func parseTimestamp(value *string) (time.Time, error) {
	if value == nil || *value == "" {
		return time.Time{}, nil
	}
	return dateparse.ParseIn(*value, time.UTC)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
