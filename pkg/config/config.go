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

package config

import (
	sb_config_hdl "github.com/SENERGY-Platform/go-service-base/config-hdl"
	"github.com/SENERGY-Platform/reportobello-client/lib"
)

type LoggerConfig struct {
	Level string `json:"level" env_var:"LOGGER_LEVEL"`
}

type ReportobelloConfig struct {
	ApiKey  string `json:"api_key" env_var:"REPORTOBELLO_API_KEY"`
	Host    string `json:"host" env_var:"REPORTOBELLO_HOST"`
	Version string `json:"version" env_var:"REPORTOBELLO_API_VERSION"`
}

type MailConfig struct {
	MailpitUrl string `json:"mailpit_url" env_var:"MAILPIT_URL"`
	From       string `json:"from" env_var:"EMAIL_FROM"`
	Subject    string `json:"subject" env_var:"EMAIL_SUBJECT"`
	Text       string `json:"text" env_var:"EMAIL_TEXT"`
}

// JobConfig describes a report rendered on a cron schedule.
type JobConfig struct {
	Name     string `json:"name"`
	Template string `json:"template"`
	Cron     string `json:"cron"`
	// DataFile points to a json document used as report data.
	DataFile       string   `json:"data_file"`
	Preview        bool     `json:"preview"`
	Timeout        string   `json:"timeout"`
	Filename       string   `json:"filename"`
	EmailReceivers []string `json:"email_receivers"`
	EmailSubject   string   `json:"email_subject"`
	EmailText      string   `json:"email_text"`
	EmailHTML      string   `json:"email_html"`
}

type Config struct {
	Logger       LoggerConfig       `json:"logger" env_var:"LOGGER_CONFIG"`
	Reportobello ReportobelloConfig `json:"reportobello"`
	URLPrefix    string             `json:"url_prefix" env_var:"URL_PREFIX"`
	ServerPort   int                `json:"server_port" env_var:"SERVER_PORT"`
	Debug        bool               `json:"debug" env_var:"DEBUG"`
	Mail         MailConfig         `json:"mail"`
	Jobs         []JobConfig        `json:"jobs"`
}

func New(path string) (*Config, error) {
	cfg := Config{
		Logger: LoggerConfig{
			Level: "info",
		},
		Reportobello: ReportobelloConfig{
			Host:    lib.DefaultHost,
			Version: lib.DefaultAPIVersion,
		},
		ServerPort: 8080,
		Debug:      false,
		Mail: MailConfig{
			MailpitUrl: "http://mailpit.notifier:8025",
			From:       "reportobello@localhost",
			Subject:    "Report",
			Text:       "Report attached to this email",
		},
	}
	err := sb_config_hdl.Load(&cfg, nil, nil, nil, path)
	return &cfg, err
}

// ClientConfig returns the settings used to construct the api client.
func (c *Config) ClientConfig() lib.Config {
	return lib.Config{
		APIKey:  c.Reportobello.ApiKey,
		Host:    c.Reportobello.Host,
		Version: c.Reportobello.Version,
	}
}

// Redacted returns a copy safe for logging.
func (c *Config) Redacted() Config {
	cp := *c
	if cp.Reportobello.ApiKey != "" {
		cp.Reportobello.ApiKey = "***"
	}
	return cp
}
