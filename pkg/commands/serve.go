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
	"flag"

	"github.com/SENERGY-Platform/reportobello-client/pkg/report_engine"
	"github.com/SENERGY-Platform/reportobello-client/pkg/server"
	"github.com/SENERGY-Platform/reportobello-client/pkg/util"
)

type ViewCommand struct {
	*Command

	flagPort int
}

func (c *ViewCommand) Synopsis() string {
	return "Serve the report viewer"
}

func (c *ViewCommand) Help() string {
	return `Usage: reportobello view [options]

  Starts a local http server showing reports in an inline viewer.` +
		flagHelp(c.Flags())
}

func (c *ViewCommand) Flags() *flag.FlagSet {
	f := c.NewFlagSet("view")
	f.IntVar(&c.flagPort, "port", -1, "Listen on this port instead of the configured one.")
	return f
}

func (c *ViewCommand) Run(args []string) int {
	if _, ok := c.parse(c.Flags(), args, 0); !ok {
		return 1
	}
	cfg, client, err := c.setup()
	if err != nil {
		return c.fail("setup failed", err)
	}
	if c.flagPort >= 0 {
		cfg.ServerPort = c.flagPort
	}
	c.logConfig(cfg)
	ctx, cancel := c.context()
	defer cancel()
	if err = server.StartAPI(ctx, report_engine.NewClient(client, cfg), *cfg); err != nil {
		util.GetLogger().Error("api server failed", "error", err)
		return c.fail("api server failed", err)
	}
	return 0
}

type ScheduleCommand struct {
	*Command
}

func (c *ScheduleCommand) Synopsis() string {
	return "Run the configured jobs on their cron schedules"
}

func (c *ScheduleCommand) Help() string {
	return `Usage: reportobello schedule [options]

  Runs every job of the config file on its cron schedule and emails the
  rendered documents to the job's receivers.` +
		flagHelp(c.NewFlagSet("schedule"))
}

func (c *ScheduleCommand) Run(args []string) int {
	if _, ok := c.parse(c.NewFlagSet("schedule"), args, 0); !ok {
		return 1
	}
	cfg, client, err := c.setup()
	if err != nil {
		return c.fail("setup failed", err)
	}
	c.logConfig(cfg)
	ctx, cancel := c.context()
	defer cancel()
	if err = report_engine.NewClient(client, cfg).RunScheduler(ctx); err != nil {
		util.GetLogger().Error("could not start scheduler", "error", err)
		return c.fail("could not start scheduler", err)
	}
	return 0
}

type VersionCommand struct {
	*Command

	Version string
}

func (c *VersionCommand) Synopsis() string {
	return "Print the version"
}

func (c *VersionCommand) Help() string {
	return "Usage: reportobello version"
}

func (c *VersionCommand) Run(_ []string) int {
	c.UI.Output(c.Version)
	return 0
}
