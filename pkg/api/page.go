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
	"html/template"

	"github.com/SENERGY-Platform/reportobello-client/pkg/browser_integration"
	"github.com/gin-gonic/gin"
)

const (
	ReportElementId       = "report"
	ReportElementSelector = "#" + ReportElementId
	ViewerTemplateName    = "viewer"
)

// ViewerTemplate renders a viewerPage. It has to be set as html template of the gin engine.
var ViewerTemplate = template.Must(template.New(ViewerTemplateName).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>html,body{margin:0;height:100%}iframe{border:0;width:100%;height:100%}</style>
</head>
<body>
<iframe id="{{.Id}}" src="{{.Src}}"></iframe>
</body>
</html>
`))

type viewerElement struct {
	id         string
	attributes map[string]string
}

func (e *viewerElement) SetAttribute(name, value string) {
	e.attributes[name] = value
}

// viewerPage is the document served by the viewer. It holds a single iframe.
type viewerPage struct {
	title  string
	iframe *viewerElement
}

func newViewerPage(title string) *viewerPage {
	return &viewerPage{title: title, iframe: &viewerElement{id: ReportElementId, attributes: map[string]string{}}}
}

// QuerySelector only understands id selectors.
func (p *viewerPage) QuerySelector(selector string) browser_integration.Element {
	if selector != "#"+p.iframe.id {
		return nil
	}
	return p.iframe
}

// Data is the input of ViewerTemplate.
func (p *viewerPage) Data() gin.H {
	return gin.H{
		"Title": p.title,
		"Id":    p.iframe.id,
		"Src":   p.iframe.attributes["src"],
	}
}
