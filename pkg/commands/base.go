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
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	sb_util "github.com/SENERGY-Platform/go-service-base/util"
	"github.com/SENERGY-Platform/reportobello-client/pkg/apis/reportobello"
	"github.com/SENERGY-Platform/reportobello-client/pkg/browser_integration"
	"github.com/SENERGY-Platform/reportobello-client/pkg/config"
	"github.com/SENERGY-Platform/reportobello-client/pkg/util"
	"github.com/mitchellh/cli"
)

// ConfigEnv names the environment variable used when -config is not given.
const ConfigEnv = "REPORTOBELLO_CONFIG"

// Command carries what every subcommand shares.
type Command struct {
	UI     cli.Ui
	Opener browser_integration.Opener
	// Context bounds long running commands. Nil means until SIGINT or SIGTERM.
	Context context.Context

	flagConfig string
}

func (c *Command) NewFlagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.StringVar(&c.flagConfig, "config", os.Getenv(ConfigEnv), "Path to a json config file. Environment variables override its values.")
	return f
}

func (c *Command) loadConfig() (*config.Config, error) {
	cfg, err := config.New(c.flagConfig)
	if err != nil {
		return nil, err
	}
	util.InitStructLogger(cfg.Logger.Level)
	return cfg, nil
}

// setup loads the config and builds the api client.
func (c *Command) setup() (*config.Config, *reportobello.Client, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load config: %w", err)
	}
	client, err := reportobello.NewClient(cfg.ClientConfig())
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}

func (c *Command) logConfig(cfg *config.Config) {
	util.GetLogger().Info("config: " + sb_util.ToJsonStr(cfg.Redacted()))
}

func (c *Command) context() (context.Context, context.CancelFunc) {
	if c.Context != nil {
		return context.WithCancel(c.Context)
	}
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func (c *Command) opener() browser_integration.Opener {
	if c.Opener == nil {
		return browser_integration.SystemOpener{}
	}
	return c.Opener
}

// parse parses args and checks the number of positional arguments.
func (c *Command) parse(f *flag.FlagSet, args []string, want int) ([]string, bool) {
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return nil, false
	}
	if want >= 0 && f.NArg() != want {
		c.UI.Error(fmt.Sprintf("expected %d argument(s), got %d", want, f.NArg()))
		return nil, false
	}
	return f.Args(), true
}

func (c *Command) fail(msg string, err error) int {
	c.UI.Error(fmt.Sprintf("%s: %v", msg, err))
	return 1
}

func flagHelp(f *flag.FlagSet) string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		b.WriteString(fmt.Sprintf("\n  -%s\n      %s\n", fl.Name, fl.Usage))
	})
	return b.String()
}
