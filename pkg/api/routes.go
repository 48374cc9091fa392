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
	"github.com/SENERGY-Platform/reportobello-client/pkg/report_engine"
	"github.com/gin-gonic/gin"
)

var routes = []func(reportingClient *report_engine.Client) (string, string, gin.HandlerFunc){
	getHealthCheckH,
	getViewer,
	getTemplateVersions,
	getRecentReports,
	postRunReport,
	getSwaggerDocH,
}

// SetRoutes registers every handler on the given group.
func SetRoutes(group gin.IRoutes, reportingClient *report_engine.Client) {
	for _, route := range routes {
		method, path, handler := route(reportingClient)
		group.Handle(method, path, handler)
	}
}
