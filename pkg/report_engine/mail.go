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
	"errors"
	"net/http"

	"github.com/SENERGY-Platform/reportobello-client/lib"
	"github.com/SENERGY-Platform/reportobello-client/pkg/config"
)

// EmailReport sends the artifact to the receivers of the job
//
// Returns:
// - sent: true if an email has been sent, false otherwise
// - err: An error if the operation fails.
func (r *Client) EmailReport(ctx context.Context, content []byte, job config.JobConfig) (sent bool, err error) {
	if len(job.EmailReceivers) == 0 {
		return false, nil
	}
	subject := job.EmailSubject
	if len(subject) == 0 {
		subject = r.Config.Mail.Subject
	}
	text := job.EmailText
	if len(text) == 0 {
		text = r.Config.Mail.Text
	}
	filename := job.Filename
	if len(filename) == 0 {
		filename = job.Template + ".pdf"
	}
	email := lib.SendRequest{
		Bcc: job.EmailReceivers,
		From: lib.FromTo{
			Email: r.Config.Mail.From,
		},
		Attachments: []lib.MailAttachment{{
			Content:     base64.StdEncoding.EncodeToString(content),
			Filename:    filename,
			ContentType: http.DetectContentType(content),
		}},
		Subject: subject,
		Text:    text,
		HTML:    job.EmailHTML,
		Tags:    []string{"reportobello", job.Template},
	}

	response, err := r.MailClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(email).
		Post(r.Config.Mail.MailpitUrl + "/api/v1/send")
	if err != nil {
		return false, err
	}
	if response.StatusCode() != http.StatusOK {
		return false, errors.New("mailpit - response code error: " + response.String())
	}
	return true, nil
}
