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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/SENERGY-Platform/reportobello-client/lib"
	"github.com/go-resty/resty/v2"
)

// Client talks to the reportobello api. Every method performs exactly one request and keeps no state
// between calls, so a Client can be shared between goroutines.
type Client struct {
	apiKey     string
	host       *url.URL
	version    string
	httpClient *resty.Client
}

type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient replaces the underlying http client, e.g. to set timeouts or a custom transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

func NewClient(config lib.Config, opts ...Option) (*Client, error) {
	if config.APIKey == "" {
		return nil, errors.New("reportobello: api key is required")
	}
	host, err := normalizeHost(config.Host)
	if err != nil {
		return nil, err
	}
	version := config.Version
	if version == "" {
		version = lib.DefaultAPIVersion
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	var httpClient *resty.Client
	if o.httpClient != nil {
		httpClient = resty.NewWithClient(o.httpClient)
	} else {
		httpClient = resty.New()
	}
	httpClient.SetAuthToken(config.APIKey)
	instrument(httpClient)

	return &Client{apiKey: config.APIKey, host: host, version: version, httpClient: httpClient}, nil
}

func normalizeHost(raw string) (*url.URL, error) {
	if raw == "" {
		raw = lib.DefaultHost
	}
	host, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("reportobello: invalid host %q: %w", raw, err)
	}
	if host.Scheme == "" || host.Host == "" {
		return nil, fmt.Errorf("reportobello: invalid host %q: absolute url required", raw)
	}
	if !strings.HasSuffix(host.Path, "/") {
		host.Path += "/"
		host.RawPath = ""
	}
	host.RawQuery = ""
	host.Fragment = ""
	host.RawFragment = ""
	return host, nil
}

// Host returns a copy of the normalized host, its path always ends with a slash.
func (c *Client) Host() *url.URL {
	host := *c.host
	return &host
}

func (c *Client) Version() string {
	return c.version
}

// UpdateEnvVars sets the given environment variables on the server.
func (c *Client) UpdateEnvVars(ctx context.Context, envVars lib.EnvVars) (err error) {
	if envVars == nil {
		envVars = lib.EnvVars{}
	}
	_, err = c.execute(ctx, "update env vars", http.MethodPost, c.endpoint("env"), jsonBody(envVars))
	return
}

// DeleteEnvVars removes the given environment variables from the server.
func (c *Client) DeleteEnvVars(ctx context.Context, keys []string) (err error) {
	if keys == nil {
		keys = []string{}
	}
	_, err = c.execute(ctx, "delete env vars", http.MethodDelete, c.endpoint("env"), jsonBody(keys))
	return
}

// CreateOrUpdateTemplate uploads a template source. The server stores it as a new version.
func (c *Client) CreateOrUpdateTemplate(ctx context.Context, name string, template string) (result lib.Template, err error) {
	const operation = "create or update template"
	response, err := c.execute(ctx, operation, http.MethodPost, c.templateEndpoint(name), &requestBody{
		contentType: ContentTypeTypst,
		payload:     []byte(template),
	})
	if err != nil {
		return
	}
	err = decode(operation, response.Body(), &result)
	return
}

func (c *Client) DeleteTemplate(ctx context.Context, name string) (err error) {
	_, err = c.execute(ctx, "delete template", http.MethodDelete, c.templateEndpoint(name), nil)
	return
}

// GetTemplateVersions lists all stored versions of the named template in the order the server returns them.
func (c *Client) GetTemplateVersions(ctx context.Context, name string) (templates []lib.Template, err error) {
	const operation = "get template versions"
	response, err := c.execute(ctx, operation, http.MethodGet, c.templateEndpoint(name), nil)
	if err != nil {
		return
	}
	err = decode(operation, response.Body(), &templates)
	return
}

// RunReport renders the named template with data and returns the URL of the artifact without fetching it.
func (c *Client) RunReport(ctx context.Context, name string, data interface{}, opts *lib.RunReportOptions) (artifact *url.URL, err error) {
	const operation = "run report"
	query := "justUrl"
	if opts != nil && opts.Preview {
		query += "&preview"
	}
	body, err := buildBody(data, opts)
	if err != nil {
		return
	}
	response, err := c.execute(ctx, operation, http.MethodPost, c.templateEndpoint(name, "build")+"?"+query, body)
	if err != nil {
		return
	}
	text := strings.TrimSpace(string(response.Body()))
	artifact, err = url.Parse(text)
	if err != nil {
		return nil, &lib.DecodeError{Operation: operation, Err: err}
	}
	if !artifact.IsAbs() || artifact.Host == "" {
		return nil, &lib.DecodeError{Operation: operation, Err: fmt.Errorf("%q is not an absolute url", text)}
	}
	return
}

// RunReportAsBlob renders the named template with data and returns the artifact content.
func (c *Client) RunReportAsBlob(ctx context.Context, name string, data interface{}, opts *lib.RunReportOptions) (content []byte, err error) {
	endpoint := c.templateEndpoint(name, "build")
	if opts != nil && opts.Preview {
		endpoint += "?preview"
	}
	body, err := buildBody(data, opts)
	if err != nil {
		return
	}
	response, err := c.execute(ctx, "run report as blob", http.MethodPost, endpoint, body)
	if err != nil {
		return
	}
	return response.Body(), nil
}

// GetRecentReports lists the latest runs of the named template. Artifact file names are resolved to
// absolute URLs below {host}api/v1/files/.
func (c *Client) GetRecentReports(ctx context.Context, name string) (reports []lib.Report, err error) {
	const operation = "get recent reports"
	response, err := c.execute(ctx, operation, http.MethodGet, c.templateEndpoint(name, "recent"), nil)
	if err != nil {
		return
	}
	var recent []RecentReport
	err = decode(operation, response.Body(), &recent)
	if err != nil {
		return
	}
	filesBase := c.host.JoinPath("api", "v1", "files")
	reports = make([]lib.Report, 0, len(recent))
	for _, r := range recent {
		var report lib.Report
		report, err = r.ToReport(filesBase)
		if err != nil {
			return nil, &lib.DecodeError{Operation: operation, Err: err}
		}
		reports = append(reports, report)
	}
	return
}

func (c *Client) endpoint(path string) string {
	return c.host.String() + "api/" + c.version + "/" + path
}

func (c *Client) templateEndpoint(name string, sub ...string) string {
	path := "template/" + url.PathEscape(name)
	for _, s := range sub {
		path += "/" + s
	}
	return c.endpoint(path)
}

type requestBody struct {
	contentType string
	payload     []byte
	err         error
}

func jsonBody(v interface{}) *requestBody {
	payload, err := json.Marshal(v)
	return &requestBody{contentType: "application/json", payload: payload, err: err}
}

func buildBody(data interface{}, opts *lib.RunReportOptions) (*requestBody, error) {
	request := BuildRequest{Data: data, ContentType: "application/json"}
	if opts != nil {
		request.TemplateRaw = opts.RawTemplate
	}
	body := jsonBody(request)
	if body.err != nil {
		return nil, fmt.Errorf("reportobello: could not encode report data: %w", body.err)
	}
	return body, nil
}

// execute sends a single request. Responses outside the 2xx range become *lib.ReportobelloError
// carrying the unmodified body.
func (c *Client) execute(ctx context.Context, operation string, method string, endpoint string, body *requestBody) (*resty.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	request := c.httpClient.R().SetContext(withOperation(ctx, operation))
	if body != nil {
		if body.err != nil {
			return nil, fmt.Errorf("reportobello: %s: could not encode request: %w", operation, body.err)
		}
		request.SetHeader("Content-Type", body.contentType).SetBody(body.payload)
	}
	response, err := request.Execute(method, endpoint)
	if err != nil {
		return nil, fmt.Errorf("reportobello: %s: %w", operation, err)
	}
	if !response.IsSuccess() {
		return nil, &lib.ReportobelloError{Message: string(response.Body()), Status: response.StatusCode()}
	}
	return response, nil
}

func decode(operation string, body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &lib.DecodeError{Operation: operation, Err: err}
	}
	return nil
}
