package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the blog service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>blogd — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the blog-post endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "blogd", "version": "v0.1.0" },
  "paths": {
    "/posts": {
      "get": {
        "summary": "List all posts",
        "responses": { "200": { "description": "array of posts", "content": { "application/json": { "schema": { "type": "array", "items": { "$ref": "#/components/schemas/Post" } } } } } }
      },
      "post": {
        "summary": "Create a post",
        "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/PostInput" } } } },
        "responses": { "201": { "description": "created post" }, "400": { "description": "malformed body" } }
      }
    },
    "/posts/{id}": {
      "put": {
        "summary": "Update a post",
        "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } } ],
        "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/PostInput" } } } },
        "responses": { "200": { "description": "updated post" }, "400": { "description": "malformed body or id mismatch" }, "404": { "description": "unknown post id" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  },
  "components": {
    "schemas": {
      "Post": { "type": "object", "properties": { "id": { "type": "string" }, "title": { "type": "string" }, "author": { "type": "string" }, "content": { "type": "string" }, "created": { "type": "string", "format": "date-time" } } },
      "PostInput": { "type": "object", "properties": { "title": { "type": "string" }, "content": { "type": "string" }, "author": { "type": "object", "properties": { "firstName": { "type": "string" }, "lastName": { "type": "string" } } } } }
    }
  }
}`
