// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/api/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy"}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready"},
                    "503": {"description": "Backend not reachable"}
                }
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive"}}
            }
        },
        "/api/v1/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "List items",
                "description": "Filter by category, color and type, sorted by createdAt or date.",
                "parameters": [
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "category", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "color", "in": "query"},
                    {"enum": ["all", "found", "lost"], "type": "string", "name": "type", "in": "query"},
                    {"enum": ["createdAt", "date"], "type": "string", "name": "sort", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "name": "order", "in": "query"},
                    {"type": "boolean", "name": "cached", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid filter"}
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Report an item",
                "parameters": [
                    {"type": "string", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "name": "category", "in": "formData"},
                    {"type": "string", "name": "color", "in": "formData"},
                    {"type": "string", "name": "location", "in": "formData"},
                    {"type": "string", "name": "description", "in": "formData"},
                    {"type": "string", "name": "type", "in": "formData"},
                    {"type": "string", "name": "date", "in": "formData"},
                    {"type": "file", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid input"},
                    "429": {"description": "Too many requests"},
                    "502": {"description": "Backend failure"}
                }
            }
        },
        "/api/v1/items/recent": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Most recent found items",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/items/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Item detail",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Delete an item",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/v1/items/{id}/claim": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Claim an item",
                "description": "Found items move to analyzing; lost items are marked found.",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"},
                    "409": {"description": "Already claimed or in flight"},
                    "502": {"description": "Backend did not confirm"}
                }
            }
        },
        "/api/v1/catalog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Categories and colors",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Campus Lost & Found API",
	Description:      "Backend-for-frontend over the campus lost & found item service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
