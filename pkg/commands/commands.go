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
	"bufio"
	"os"

	"github.com/mitchellh/cli"
)

// Commands returns the factories of every subcommand.
func Commands(base *Command, version string) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"template": func() (cli.Command, error) {
			return &TemplateCommand{Command: base}, nil
		},
		"template push": func() (cli.Command, error) {
			return &TemplatePushCommand{Command: base}, nil
		},
		"template delete": func() (cli.Command, error) {
			return &TemplateDeleteCommand{Command: base}, nil
		},
		"template versions": func() (cli.Command, error) {
			return &TemplateVersionsCommand{Command: base}, nil
		},
		"run": func() (cli.Command, error) {
			return &RunCommand{Command: base}, nil
		},
		"recent": func() (cli.Command, error) {
			return &RecentCommand{Command: base}, nil
		},
		"env": func() (cli.Command, error) {
			return &EnvCommand{Command: base}, nil
		},
		"env set": func() (cli.Command, error) {
			return &EnvSetCommand{Command: base}, nil
		},
		"env unset": func() (cli.Command, error) {
			return &EnvUnsetCommand{Command: base}, nil
		},
		"view": func() (cli.Command, error) {
			return &ViewCommand{Command: base}, nil
		},
		"schedule": func() (cli.Command, error) {
			return &ScheduleCommand{Command: base}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{Command: base, Version: version}, nil
		},
	}
}

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string, name string, version string) int {
	if len(args) == 2 && (args[1] == "-version" || args[1] == "-v") {
		args = []string{args[0], "version"}
	}
	base := &Command{
		UI: &cli.BasicUi{
			Reader:      bufio.NewReader(os.Stdin),
			Writer:      os.Stdout,
			ErrorWriter: os.Stderr,
		},
	}
	c := &cli.CLI{
		Name:     name,
		Args:     args[1:],
		Version:  version,
		Commands: Commands(base, name+" "+version),
	}
	exitCode, err := c.Run()
	if err != nil {
		base.UI.Error(err.Error())
		return 1
	}
	return exitCode
}
