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

package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/SENERGY-Platform/reportobello-client/lib"
	"github.com/SENERGY-Platform/reportobello-client/pkg/browser_integration"
	"github.com/SENERGY-Platform/reportobello-client/pkg/report_engine"
	"github.com/SENERGY-Platform/reportobello-client/pkg/urls"
	"github.com/mitchellh/cli"
)

type RunCommand struct {
	*Command

	flagData        string
	flagPreview     bool
	flagTemplateRaw string
	flagOut         string
	flagOpen        bool
	flagDownload    bool
	flagDownloadAs  string
	flagTimeout     string
}

func (c *RunCommand) Synopsis() string {
	return "Render a report"
}

func (c *RunCommand) Help() string {
	return `Usage: reportobello run [options] <template>

  Renders the template and prints the artifact url. With -out the
  rendered document is written to a file instead.` +
		flagHelp(c.Flags())
}

func (c *RunCommand) Flags() *flag.FlagSet {
	f := c.NewFlagSet("run")
	f.StringVar(&c.flagData, "data", "", "Path to a json document used as report data.")
	f.BoolVar(&c.flagPreview, "preview", false, "Render a preview.")
	f.StringVar(&c.flagTemplateRaw, "template-raw", "", "Path to a typst file rendered instead of the stored template.")
	f.StringVar(&c.flagOut, "out", "", "Write the rendered document to this path.")
	f.BoolVar(&c.flagOpen, "open", false, "Open the artifact in the browser.")
	f.BoolVar(&c.flagDownload, "download", false, "Ask the browser to download the artifact.")
	f.StringVar(&c.flagDownloadAs, "download-as", "", "Suggested file name of the download.")
	f.StringVar(&c.flagTimeout, "timeout", "", "Give up after this duration, e.g. 30s or 2m.")
	return f
}

func (c *RunCommand) Run(args []string) int {
	f := c.Flags()
	args, ok := c.parse(f, args, 1)
	if !ok {
		return 1
	}
	name := args[0]
	data, err := report_engine.LoadJobData(c.flagData)
	if err != nil {
		return c.fail("could not load data", err)
	}
	opts := &lib.RunReportOptions{Preview: c.flagPreview}
	if c.flagTemplateRaw != "" {
		raw, err := os.ReadFile(c.flagTemplateRaw)
		if err != nil {
			return c.fail("could not read template", err)
		}
		opts.RawTemplate = string(raw)
	}
	_, client, err := c.setup()
	if err != nil {
		return c.fail("setup failed", err)
	}
	ctx := context.Background()
	if c.flagTimeout != "" {
		timeout, err := report_engine.ParseDuration(c.flagTimeout)
		if err != nil {
			return c.fail("invalid timeout", err)
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if c.flagOut != "" {
		content, err := client.RunReportAsBlob(ctx, name, data, opts)
		if err != nil {
			return c.fail("could not run report", err)
		}
		if err = os.WriteFile(c.flagOut, content, 0o644); err != nil {
			return c.fail("could not write report", err)
		}
		c.UI.Output(fmt.Sprintf("wrote %d bytes to %s", len(content), c.flagOut))
		return 0
	}

	artifact, err := client.RunReport(ctx, name, data, opts)
	if err != nil {
		return c.fail("could not run report", err)
	}
	var downloadAs *string
	if c.flagDownloadAs != "" {
		downloadAs = &c.flagDownloadAs
	}
	if c.flagDownload && downloadAs == nil {
		name := browser_integration.DefaultDownloadName
		downloadAs = &name
	}
	switch {
	case c.flagDownload:
		err = browser_integration.Download(c.opener(), artifact.String(), *downloadAs)
	case c.flagOpen:
		err = browser_integration.OpenInNewTab(c.opener(), artifact.String(), downloadAs, false)
	}
	if err != nil {
		return c.fail("could not open browser", err)
	}
	if downloadAs == nil {
		c.UI.Output(artifact.String())
		return 0
	}
	c.UI.Output(urls.AddDownloadOptionsToUrl(artifact, downloadAs, c.flagDownload).String())
	return 0
}

type RecentCommand struct {
	*Command
}

func (c *RecentCommand) Synopsis() string {
	return "List the recent runs of a template"
}

func (c *RecentCommand) Help() string {
	return `Usage: reportobello recent [options] <template>

  Prints the recent runs as json array.` +
		flagHelp(c.NewFlagSet("recent"))
}

func (c *RecentCommand) Run(args []string) int {
	args, ok := c.parse(c.NewFlagSet("recent"), args, 1)
	if !ok {
		return 1
	}
	_, client, err := c.setup()
	if err != nil {
		return c.fail("setup failed", err)
	}
	reports, err := client.GetRecentReports(context.Background(), args[0])
	if err != nil {
		return c.fail("could not get recent reports", err)
	}
	return c.outputJson(reports)
}

type EnvCommand struct {
	*Command
}

func (c *EnvCommand) Synopsis() string {
	return "Manage environment variables available to templates"
}

func (c *EnvCommand) Help() string {
	return `Usage: reportobello env <subcommand> [options] [args]

  This command groups subcommands for template environment variables.`
}

func (c *EnvCommand) Run(_ []string) int {
	return cli.RunResultHelp
}

type EnvSetCommand struct {
	*Command
}

func (c *EnvSetCommand) Synopsis() string {
	return "Set environment variables"
}

func (c *EnvSetCommand) Help() string {
	return `Usage: reportobello env set [options] KEY=VALUE...` +
		flagHelp(c.NewFlagSet("env set"))
}

func (c *EnvSetCommand) Run(args []string) int {
	args, ok := c.parse(c.NewFlagSet("env set"), args, -1)
	if !ok {
		return 1
	}
	if len(args) == 0 {
		c.UI.Error("expected at least one KEY=VALUE argument")
		return 1
	}
	vars := lib.EnvVars{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			c.UI.Error(fmt.Sprintf("invalid argument %q, expected KEY=VALUE", arg))
			return 1
		}
		vars[key] = value
	}
	_, client, err := c.setup()
	if err != nil {
		return c.fail("setup failed", err)
	}
	if err = client.UpdateEnvVars(context.Background(), vars); err != nil {
		return c.fail("could not set environment variables", err)
	}
	c.UI.Output(fmt.Sprintf("set %d variable(s)", len(vars)))
	return 0
}

type EnvUnsetCommand struct {
	*Command
}

func (c *EnvUnsetCommand) Synopsis() string {
	return "Remove environment variables"
}

func (c *EnvUnsetCommand) Help() string {
	return `Usage: reportobello env unset [options] KEY...` +
		flagHelp(c.NewFlagSet("env unset"))
}

func (c *EnvUnsetCommand) Run(args []string) int {
	args, ok := c.parse(c.NewFlagSet("env unset"), args, -1)
	if !ok {
		return 1
	}
	if len(args) == 0 {
		c.UI.Error("expected at least one KEY argument")
		return 1
	}
	_, client, err := c.setup()
	if err != nil {
		return c.fail("setup failed", err)
	}
	if err = client.DeleteEnvVars(context.Background(), args); err != nil {
		return c.fail("could not remove environment variables", err)
	}
	c.UI.Output(fmt.Sprintf("removed %d variable(s)", len(args)))
	return 0
}
