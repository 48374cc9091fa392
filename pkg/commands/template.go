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
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

type TemplateCommand struct {
	*Command
}

func (c *TemplateCommand) Synopsis() string {
	return "Manage report templates"
}

func (c *TemplateCommand) Help() string {
	return `Usage: reportobello template <subcommand> [options] [args]

  This command groups subcommands for stored templates.`
}

func (c *TemplateCommand) Run(_ []string) int {
	return cli.RunResultHelp
}

type TemplatePushCommand struct {
	*Command
}

func (c *TemplatePushCommand) Synopsis() string {
	return "Create a template or store a new version of it"
}

func (c *TemplatePushCommand) Help() string {
	return `Usage: reportobello template push [options] <name> <file>

  Uploads the typst source in file as the newest version of template name.` +
		flagHelp(c.NewFlagSet("template push"))
}

func (c *TemplatePushCommand) Run(args []string) int {
	args, ok := c.parse(c.NewFlagSet("template push"), args, 2)
	if !ok {
		return 1
	}
	name, path := args[0], args[1]
	source, err := os.ReadFile(path)
	if err != nil {
		return c.fail("could not read template", err)
	}
	_, client, err := c.setup()
	if err != nil {
		return c.fail("setup failed", err)
	}
	template, err := client.CreateOrUpdateTemplate(context.Background(), name, string(source))
	if err != nil {
		return c.fail("could not push template", err)
	}
	c.UI.Output(fmt.Sprintf("pushed %s version %d", template.Name, template.Version))
	return 0
}

type TemplateDeleteCommand struct {
	*Command
}

func (c *TemplateDeleteCommand) Synopsis() string {
	return "Delete a template with all of its versions"
}

func (c *TemplateDeleteCommand) Help() string {
	return `Usage: reportobello template delete [options] <name>` +
		flagHelp(c.NewFlagSet("template delete"))
}

func (c *TemplateDeleteCommand) Run(args []string) int {
	args, ok := c.parse(c.NewFlagSet("template delete"), args, 1)
	if !ok {
		return 1
	}
	_, client, err := c.setup()
	if err != nil {
		return c.fail("setup failed", err)
	}
	if err = client.DeleteTemplate(context.Background(), args[0]); err != nil {
		return c.fail("could not delete template", err)
	}
	c.UI.Output("deleted " + args[0])
	return 0
}

type TemplateVersionsCommand struct {
	*Command
}

func (c *TemplateVersionsCommand) Synopsis() string {
	return "List the stored versions of a template"
}

func (c *TemplateVersionsCommand) Help() string {
	return `Usage: reportobello template versions [options] <name>

  Prints the versions as json array.` +
		flagHelp(c.NewFlagSet("template versions"))
}

func (c *TemplateVersionsCommand) Run(args []string) int {
	args, ok := c.parse(c.NewFlagSet("template versions"), args, 1)
	if !ok {
		return 1
	}
	_, client, err := c.setup()
	if err != nil {
		return c.fail("setup failed", err)
	}
	templates, err := client.GetTemplateVersions(context.Background(), args[0])
	if err != nil {
		return c.fail("could not get template versions", err)
	}
	return c.outputJson(templates)
}

func (c *Command) outputJson(v interface{}) int {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return c.fail("could not encode output", err)
	}
	c.UI.Output(string(out))
	return 0
}
