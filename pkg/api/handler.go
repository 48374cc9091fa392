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

package api

import (
	"errors"
	"net/http"

	_ "github.com/SENERGY-Platform/reportobello-client/docs"
	"github.com/SENERGY-Platform/reportobello-client/lib"
	"github.com/SENERGY-Platform/reportobello-client/pkg/browser_integration"
	"github.com/SENERGY-Platform/reportobello-client/pkg/report_engine"
	"github.com/SENERGY-Platform/reportobello-client/pkg/urls"
	"github.com/SENERGY-Platform/reportobello-client/pkg/util"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	HealthCheckPath       = "/ping"
	MessageSomethingWrong = "something went wrong"
	MessageParseError     = "could not parse request"
	MessageMissingSource  = "either url or template is required"
)

type runRequest struct {
	Data        interface{} `json:"data"`
	Preview     bool        `json:"preview"`
	TemplateRaw string      `json:"template_raw"`
	DownloadAs  *string     `json:"download_as"`
	Download    bool        `json:"download"`
}

type runResponse struct {
	Url      string `json:"url"`
	Viewer   string `json:"viewer"`
	Download string `json:"download"`
}

// getTemplateVersions godoc
// @Summary Get template versions
// @Description	Gets every stored version of a template
// @Tags Template
// @Produce json
// @Param name path string true "Template name"
// @Success	200 {array} lib.Template
// @Failure	502 {string} str
// @Router /templates/{name} [get]
func getTemplateVersions(reportingClient *report_engine.Client) (string, string, gin.HandlerFunc) {
	return http.MethodGet, "/templates/:name", func(c *gin.Context) {
		name := c.Param("name")
		templates, err := reportingClient.GetTemplateVersions(c.Request.Context(), name)
		if err != nil {
			util.GetLogger().Error("could not get template versions "+name, "error", err)
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"data": templates,
		})
	}
}

// getRecentReports godoc
// @Summary Get recent reports
// @Description	Gets the recent runs of a template
// @Tags Report
// @Produce json
// @Param name path string true "Template name"
// @Success	200 {array} lib.Report
// @Failure	502 {string} str
// @Router /templates/{name}/recent [get]
func getRecentReports(reportingClient *report_engine.Client) (string, string, gin.HandlerFunc) {
	return http.MethodGet, "/templates/:name/recent", func(c *gin.Context) {
		name := c.Param("name")
		reports, err := reportingClient.GetRecentReports(c.Request.Context(), name)
		if err != nil {
			util.GetLogger().Error("could not get recent reports "+name, "error", err)
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"data": reports,
		})
	}
}

// postRunReport godoc
// @Summary Run report
// @Description	Renders a template and returns the artifact urls
// @Tags Report
// @Produce json
// @Param name path string true "Template name"
// @Success	200 {object} runResponse
// @Failure	400 {string} str
// @Failure	502 {string} str
// @Router /templates/{name}/run [post]
func postRunReport(reportingClient *report_engine.Client) (string, string, gin.HandlerFunc) {
	return http.MethodPost, "/templates/:name/run", func(c *gin.Context) {
		name := c.Param("name")
		var request runRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			util.GetLogger().Error(MessageParseError, "error", err)
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}
		artifact, err := reportingClient.RunReport(c.Request.Context(), name, request.Data, &lib.RunReportOptions{
			Preview:     request.Preview,
			RawTemplate: request.TemplateRaw,
		})
		if err != nil {
			util.GetLogger().Error("could not run report "+name, "error", err)
			_ = c.Error(err)
			return
		}
		viewer, err := browser_integration.EmbedUrl(artifact.String(), request.DownloadAs)
		if err != nil {
			_ = c.Error(err)
			return
		}
		download := artifact.String()
		if request.DownloadAs != nil || request.Download {
			download = urls.AddDownloadOptionsToUrl(artifact, request.DownloadAs, request.Download).String()
		}
		c.JSON(http.StatusOK, runResponse{
			Url:      artifact.String(),
			Viewer:   viewer,
			Download: download,
		})
	}
}

// getViewer godoc
// @Summary Report viewer
// @Description	Shows an artifact inline. Renders the template first when no url is given.
// @Tags Report
// @Produce html
// @Param url query string false "Artifact url"
// @Param template query string false "Template name"
// @Param download_as query string false "Download name"
// @Success	200 {string} str
// @Failure	400 {string} str
// @Router / [get]
func getViewer(reportingClient *report_engine.Client) (string, string, gin.HandlerFunc) {
	return http.MethodGet, "/", func(c *gin.Context) {
		var downloadAs *string
		if name, ok := c.GetQuery("download_as"); ok {
			downloadAs = &name
		}
		source := c.Query("url")
		title := source
		if source == "" {
			name := c.Query("template")
			if name == "" {
				_ = c.Error(errors.New(MessageMissingSource)).SetType(gin.ErrorTypeBind)
				return
			}
			artifact, err := reportingClient.RunReport(c.Request.Context(), name, nil, &lib.RunReportOptions{
				Preview: c.Query("preview") == "true",
			})
			if err != nil {
				util.GetLogger().Error("could not run report "+name, "error", err)
				_ = c.Error(err)
				return
			}
			source = artifact.String()
			title = name
		}
		if _, err := urls.Parse(source); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}
		doc := newViewerPage(title)
		if err := browser_integration.OpenInIframe(doc, ReportElementSelector, source, downloadAs); err != nil {
			util.GetLogger().Error("could not embed report", "error", err)
			_ = c.Error(err)
			return
		}
		c.HTML(http.StatusOK, ViewerTemplateName, doc.Data())
	}
}

// getSwaggerDocH serves the swagger ui and doc.json below /swagger/.
func getSwaggerDocH(_ *report_engine.Client) (string, string, gin.HandlerFunc) {
	return http.MethodGet, "/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler)
}

func getHealthCheckH(_ *report_engine.Client) (string, string, gin.HandlerFunc) {
	return http.MethodGet, HealthCheckPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	}
}

// ErrorHandler turns errors attached by handlers into responses.
// Remote errors keep their status, bind errors become 400 and everything else 502.
func ErrorHandler(c *gin.Context) {
	c.Next()
	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	last := c.Errors.Last()
	if last.IsType(gin.ErrorTypeBind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": last.Error()})
		return
	}
	var rErr *lib.ReportobelloError
	if errors.As(last.Err, &rErr) {
		c.JSON(rErr.Status, gin.H{"error": rErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": MessageSomethingWrong})
}
