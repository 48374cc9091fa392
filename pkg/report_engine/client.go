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
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/SENERGY-Platform/reportobello-client/lib"
	"github.com/SENERGY-Platform/reportobello-client/pkg/config"
	"github.com/SENERGY-Platform/reportobello-client/pkg/util"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

type Client struct {
	Driver     ReportingDriver
	Config     *config.Config
	MailClient *resty.Client
}

// JobResult describes a single execution of a scheduled job.
type JobResult struct {
	RunId   string
	Job     string
	Size    int
	Emailed bool
}

// NewClient creates a new client with the given reporting driver.
func NewClient(driver ReportingDriver, config *config.Config) *Client {
	return &Client{Driver: driver, Config: config, MailClient: resty.New()}
}

func (r *Client) GetTemplateVersions(ctx context.Context, name string) (templates []lib.Template, err error) {
	return r.Driver.GetTemplateVersions(ctx, name)
}

func (r *Client) GetRecentReports(ctx context.Context, name string) (reports []lib.Report, err error) {
	return r.Driver.GetRecentReports(ctx, name)
}

func (r *Client) RunReport(ctx context.Context, name string, data interface{}, opts *lib.RunReportOptions) (artifact *url.URL, err error) {
	return r.Driver.RunReport(ctx, name, data, opts)
}

// RunJob renders the job's template with the data read from its data file and emails the artifact
// to the configured receivers.
//
// Parameters:
// - ctx: cancels the render and mail requests.
// - job: the job to run.
//
// Returns:
// - result: run id, artifact size and whether an email has been sent.
// - err: An error if the operation fails.
func (r *Client) RunJob(ctx context.Context, job config.JobConfig) (result JobResult, err error) {
	result = JobResult{RunId: uuid.NewString(), Job: job.Name}
	data, err := LoadJobData(job.DataFile)
	if err != nil {
		return
	}
	if job.Timeout != "" {
		var timeout time.Duration
		timeout, err = ParseDuration(job.Timeout)
		if err != nil {
			return result, fmt.Errorf("job %s: invalid timeout: %w", job.Name, err)
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	content, err := r.Driver.RunReportAsBlob(ctx, job.Template, data, &lib.RunReportOptions{Preview: job.Preview})
	if err != nil {
		return
	}
	result.Size = len(content)
	result.Emailed, err = r.EmailReport(ctx, content, job)
	return
}

// LoadJobData reads a json document. An empty path yields nil data.
func LoadJobData(path string) (data interface{}, err error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(raw, &data)
	if err != nil {
		return nil, fmt.Errorf("could not parse report data %s: %w", path, err)
	}
	return
}

// RunScheduler registers every configured job with its cron schedule and runs them until ctx is done.
// Invalid schedules are reported before any job runs.
func (r *Client) RunScheduler(ctx context.Context) error {
	if len(r.Config.Jobs) == 0 {
		return errors.New("no jobs configured")
	}
	scheduler := cron.New(cron.WithParser(scheduleParser))
	for _, job := range r.Config.Jobs {
		next, err := calculateNextSchedule(job.Cron)
		if err != nil {
			return fmt.Errorf("job %s: %w", job.Name, err)
		}
		_, err = scheduler.AddFunc(job.Cron, func() {
			r.runScheduled(ctx, job)
		})
		if err != nil {
			return err
		}
		util.GetLogger().Info("scheduled job", "job", job.Name, "template", job.Template, "next", next)
	}
	scheduler.Start()
	<-ctx.Done()
	<-scheduler.Stop().Done()
	return nil
}

func (r *Client) runScheduled(ctx context.Context, job config.JobConfig) {
	result, err := r.RunJob(ctx, job)
	if err != nil {
		util.GetLogger().Error("could not run scheduled job", "job", job.Name, "run_id", result.RunId, "status", lib.StatusOf(err), "error", err)
		return
	}
	util.GetLogger().Info("ran scheduled job", "job", job.Name, "run_id", result.RunId, "bytes", result.Size, "emailed", result.Emailed)
}

func calculateNextSchedule(spec string) (t *time.Time, err error) {
	if len(spec) == 0 {
		return nil, errors.New("missing cron schedule")
	}
	schedule, err := scheduleParser.Parse(spec)
	if err != nil {
		return nil, err
	}
	ts := schedule.Next(time.Now())
	return &ts, err
}
