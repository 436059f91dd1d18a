package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>legalease-backend — Swagger</title>
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

// Minimal OpenAPI document describing the public endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "legalease-backend", "version": "v0.1.0" },
  "paths": {
    "/api/auth/register": {
      "post": {
        "summary": "Create an account",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"email":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "account created, token returned" }, "400": { "description": "email already registered" } }
      }
    },
    "/api/auth/login": {
      "post": {
        "summary": "Login with email and password",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "token returned" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/api/auth/me": {
      "get": { "summary": "Get the authenticated user's profile", "responses": { "200": { "description": "user profile" }, "401": { "description": "missing or invalid token" } } }
    },
    "/api/document/upload": {
      "post": {
        "summary": "Upload a PDF for analysis",
        "requestBody": { "content": { "multipart/form-data": { "schema": {"type":"object","properties":{"file":{"type":"string","format":"binary"}}}}}},
        "responses": { "201": { "description": "analyzed document" }, "400": { "description": "not a PDF or too large" }, "422": { "description": "no readable text" }, "500": { "description": "analysis failed" } }
      }
    },
    "/api/document/history": {
      "get": { "summary": "List the authenticated user's documents", "responses": { "200": { "description": "document list, newest first" } } }
    },
    "/api/document/{id}": {
      "get": { "summary": "Get a single document", "responses": { "200": { "description": "document" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a document", "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
