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
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SENERGY-Platform/reportobello-client/lib"
	"github.com/SENERGY-Platform/reportobello-client/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blobCall struct {
	name string
	data interface{}
	opts *lib.RunReportOptions
	ctx  context.Context
}

type fakeDriver struct {
	mux   sync.Mutex
	calls []blobCall
	blob  []byte
	err   error
}

func (f *fakeDriver) GetTemplateVersions(_ context.Context, name string) ([]lib.Template, error) {
	return []lib.Template{{Name: name, Version: 1, Template: "= Hi"}}, f.err
}

func (f *fakeDriver) RunReport(_ context.Context, name string, _ interface{}, _ *lib.RunReportOptions) (*url.URL, error) {
	if f.err != nil {
		return nil, f.err
	}
	return url.Parse("https://reportobello.com/api/v1/files/" + name + ".pdf")
}

func (f *fakeDriver) RunReportAsBlob(ctx context.Context, name string, data interface{}, opts *lib.RunReportOptions) ([]byte, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.calls = append(f.calls, blobCall{name: name, data: data, opts: opts, ctx: ctx})
	return f.blob, f.err
}

func (f *fakeDriver) GetRecentReports(_ context.Context, _ string) ([]lib.Report, error) {
	return nil, f.err
}

type fakeMailpit struct {
	mux      sync.Mutex
	requests []map[string]interface{}
	status   int
	server   *httptest.Server
}

func newFakeMailpit(t *testing.T) *fakeMailpit {
	gin.SetMode(gin.TestMode)
	m := &fakeMailpit{status: http.StatusOK}
	router := gin.New()
	router.POST("/api/v1/send", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		var request map[string]interface{}
		_ = json.Unmarshal(body, &request)
		m.mux.Lock()
		m.requests = append(m.requests, request)
		status := m.status
		m.mux.Unlock()
		if status != http.StatusOK {
			c.String(status, "invalid request")
			return
		}
		c.JSON(http.StatusOK, gin.H{"ID": "iAfZVVe2UQfNSG5BAjgYwa"})
	})
	m.server = httptest.NewServer(router)
	t.Cleanup(m.server.Close)
	return m
}

func testConfig(mailpitUrl string) *config.Config {
	return &config.Config{Mail: config.MailConfig{
		MailpitUrl: mailpitUrl,
		From:       "reports@example.com",
		Subject:    "Report",
		Text:       "Report attached to this email",
	}}
}

func writeData(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunJobWithEmail(t *testing.T) {
	mailpit := newFakeMailpit(t)
	driver := &fakeDriver{blob: []byte("%PDF-1.7 monthly")}
	client := NewClient(driver, testConfig(mailpit.server.URL))

	job := config.JobConfig{
		Name:           "monthly",
		Template:       "invoice",
		DataFile:       writeData(t, `{"customer":"ACME","total":12.5}`),
		Preview:        true,
		Timeout:        "1m",
		EmailReceivers: []string{"billing@example.com"},
		EmailSubject:   "Monthly invoice",
	}
	result, err := client.RunJob(context.Background(), job)
	require.NoError(t, err)
	assert.True(t, result.Emailed)
	assert.Equal(t, len(driver.blob), result.Size)
	assert.Equal(t, "monthly", result.Job)
	assert.NotEmpty(t, result.RunId)

	require.Len(t, driver.calls, 1)
	call := driver.calls[0]
	assert.Equal(t, "invoice", call.name)
	assert.Equal(t, map[string]interface{}{"customer": "ACME", "total": 12.5}, call.data)
	assert.Equal(t, &lib.RunReportOptions{Preview: true}, call.opts)
	deadline, ok := call.ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)

	require.Len(t, mailpit.requests, 1)
	mail := mailpit.requests[0]
	assert.Equal(t, "Monthly invoice", mail["Subject"])
	assert.Equal(t, "Report attached to this email", mail["Text"])
	assert.Equal(t, []interface{}{"billing@example.com"}, mail["Bcc"])
	assert.Equal(t, "reports@example.com", mail["From"].(map[string]interface{})["Email"])
	assert.Equal(t, []interface{}{"reportobello", "invoice"}, mail["Tags"])
	assert.NotContains(t, mail, "To")
	assert.NotContains(t, mail, "Headers")
	attachments := mail["Attachments"].([]interface{})
	require.Len(t, attachments, 1)
	attachment := attachments[0].(map[string]interface{})
	assert.Equal(t, "invoice.pdf", attachment["Filename"])
	assert.Equal(t, base64.StdEncoding.EncodeToString(driver.blob), attachment["Content"])
	assert.Equal(t, "application/pdf", attachment["ContentType"])
}

func TestRunJobWithoutReceivers(t *testing.T) {
	mailpit := newFakeMailpit(t)
	driver := &fakeDriver{blob: []byte("pdf")}
	client := NewClient(driver, testConfig(mailpit.server.URL))

	result, err := client.RunJob(context.Background(), config.JobConfig{Name: "adhoc", Template: "invoice"})
	require.NoError(t, err)
	assert.False(t, result.Emailed)
	assert.Nil(t, driver.calls[0].data)
	_, hasDeadline := driver.calls[0].ctx.Deadline()
	assert.False(t, hasDeadline)
	assert.Empty(t, mailpit.requests)
}

func TestRunJobRemoteError(t *testing.T) {
	mailpit := newFakeMailpit(t)
	driver := &fakeDriver{err: &lib.ReportobelloError{Message: "unknown template", Status: http.StatusNotFound}}
	client := NewClient(driver, testConfig(mailpit.server.URL))

	_, err := client.RunJob(context.Background(), config.JobConfig{Name: "broken", Template: "missing", EmailReceivers: []string{"a@example.com"}})
	assert.Equal(t, http.StatusNotFound, lib.StatusOf(err))
	assert.Empty(t, mailpit.requests)
}

func TestRunJobInvalidInput(t *testing.T) {
	client := NewClient(&fakeDriver{}, testConfig("http://localhost:1"))

	_, err := client.RunJob(context.Background(), config.JobConfig{Name: "bad-timeout", Template: "invoice", Timeout: "soon"})
	assert.ErrorContains(t, err, "invalid timeout")

	_, err = client.RunJob(context.Background(), config.JobConfig{Name: "bad-data", Template: "invoice", DataFile: writeData(t, `{"a":`)})
	assert.ErrorContains(t, err, "could not parse report data")

	_, err = client.RunJob(context.Background(), config.JobConfig{Name: "missing-data", Template: "invoice", DataFile: filepath.Join(t.TempDir(), "nope.json")})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestEmailReportMailpitError(t *testing.T) {
	mailpit := newFakeMailpit(t)
	mailpit.status = http.StatusBadRequest
	client := NewClient(&fakeDriver{}, testConfig(mailpit.server.URL))

	sent, err := client.EmailReport(context.Background(), []byte("pdf"), config.JobConfig{Template: "invoice", EmailReceivers: []string{"a@example.com"}, Filename: "custom.pdf"})
	assert.False(t, sent)
	assert.ErrorContains(t, err, "invalid request")
	require.Len(t, mailpit.requests, 1)
	attachment := mailpit.requests[0]["Attachments"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "custom.pdf", attachment["Filename"])
	assert.Equal(t, "Report", mailpit.requests[0]["Subject"])
}

func TestRunSchedulerValidation(t *testing.T) {
	client := NewClient(&fakeDriver{}, &config.Config{})
	assert.EqualError(t, client.RunScheduler(context.Background()), "no jobs configured")

	client.Config.Jobs = []config.JobConfig{{Name: "ok", Template: "a", Cron: "0 6 * * *"}, {Name: "broken", Template: "b", Cron: "61 * * * *"}}
	err := client.RunScheduler(context.Background())
	assert.ErrorContains(t, err, "job broken")

	client.Config.Jobs = []config.JobConfig{{Name: "empty", Template: "a"}}
	assert.ErrorContains(t, client.RunScheduler(context.Background()), "missing cron schedule")
}

func TestRunSchedulerStopsWithContext(t *testing.T) {
	client := NewClient(&fakeDriver{}, &config.Config{Jobs: []config.JobConfig{{Name: "yearly", Template: "a", Cron: "0 0 1 1 *"}}})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- client.RunScheduler(ctx)
	}()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestCalculateNextSchedule(t *testing.T) {
	next, err := calculateNextSchedule("*/5 * * * *")
	require.NoError(t, err)
	assert.True(t, next.After(time.Now()))
	assert.Equal(t, 0, next.Minute()%5)

	_, err = calculateNextSchedule("@hourly")
	assert.Error(t, err)
}

func TestPassthrough(t *testing.T) {
	client := NewClient(&fakeDriver{}, &config.Config{})
	artifact, err := client.RunReport(context.Background(), "invoice", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://reportobello.com/api/v1/files/invoice.pdf", artifact.String())

	templates, err := client.GetTemplateVersions(context.Background(), "invoice")
	require.NoError(t, err)
	assert.Len(t, templates, 1)
}
