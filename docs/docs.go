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

// Package docs registers the OpenAPI description of the viewer api with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Shows an artifact inline. Renders the template first when no url is given.",
                "produces": ["text/html"],
                "tags": ["Report"],
                "summary": "Report viewer",
                "parameters": [
                    {"type": "string", "description": "Artifact url", "name": "url", "in": "query"},
                    {"type": "string", "description": "Template name", "name": "template", "in": "query"},
                    {"type": "boolean", "description": "Render a preview", "name": "preview", "in": "query"},
                    {"type": "string", "description": "Download name", "name": "download_as", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}}
                }
            }
        },
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/templates/{name}": {
            "get": {
                "description": "Gets every stored version of a template",
                "produces": ["application/json"],
                "tags": ["Template"],
                "summary": "Get template versions",
                "parameters": [
                    {"type": "string", "description": "Template name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/lib.Template"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "string"}}
                }
            }
        },
        "/templates/{name}/recent": {
            "get": {
                "description": "Gets the recent runs of a template",
                "produces": ["application/json"],
                "tags": ["Report"],
                "summary": "Get recent reports",
                "parameters": [
                    {"type": "string", "description": "Template name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/lib.Report"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "string"}}
                }
            }
        },
        "/templates/{name}/run": {
            "post": {
                "description": "Renders a template and returns the artifact urls",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Report"],
                "summary": "Run report",
                "parameters": [
                    {"type": "string", "description": "Template name", "name": "name", "in": "path", "required": true},
                    {"description": "Report data and options", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.runRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.runResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "api.runRequest": {
            "type": "object",
            "properties": {
                "data": {},
                "preview": {"type": "boolean"},
                "template_raw": {"type": "string"},
                "download_as": {"type": "string"},
                "download": {"type": "boolean"}
            }
        },
        "api.runResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "viewer": {"type": "string"},
                "download": {"type": "string"}
            }
        },
        "lib.Report": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"},
                "startedAt": {"type": "string"},
                "finishedAt": {"type": "string"},
                "errorMessage": {"type": "string"},
                "templateName": {"type": "string"},
                "requestedVersion": {"type": "integer"},
                "actualVersion": {"type": "integer"},
                "data": {"type": "string"},
                "dataType": {"type": "string"}
            }
        },
        "lib.Template": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "version": {"type": "integer"},
                "template": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Reportobello viewer",
	Description:      "Local viewer and proxy for reports rendered by Reportobello.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
