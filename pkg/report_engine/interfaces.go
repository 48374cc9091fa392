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

package report_engine

import (
	"context"
	"net/url"

	"github.com/SENERGY-Platform/reportobello-client/lib"
)

// ReportingDriver is the part of the reportobello api the engine depends on.
// *reportobello.Client implements it.
type ReportingDriver interface {
	GetTemplateVersions(ctx context.Context, name string) ([]lib.Template, error)
	// RunReport renders a template and returns a link to the artifact.
	RunReport(ctx context.Context, name string, data interface{}, opts *lib.RunReportOptions) (*url.URL, error)
	// RunReportAsBlob renders a template and returns the artifact content.
	RunReportAsBlob(ctx context.Context, name string, data interface{}, opts *lib.RunReportOptions) ([]byte, error)
	GetRecentReports(ctx context.Context, name string) ([]lib.Report, error)
}
