package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/learning-notifier/learning-notifier/internal/auth"
	"github.com/learning-notifier/learning-notifier/internal/tokens"
	"github.com/learning-notifier/learning-notifier/pkg/logger"
)

const docsCookieName = "swagger-auth"
const docsCookieTTL = 24 * time.Hour

// DocsHandler serves the gated Swagger/OpenAPI documentation.
// Access is granted through any of:
//   - a signed `swagger-auth` cookie (issued by /swagger-auth/verify)
//   - an `Authorization: Bearer <admin code>` header
//   - a `?code=<admin code>` query parameter
type DocsHandler struct {
	admin *auth.Validator
	code  string // cookie signing secret
}

func NewDocsHandler(admin *auth.Validator, adminCode string) *DocsHandler {
	return &DocsHandler{admin: admin, code: adminCode}
}

// Register routes:
// - GET /api                  -> swagger UI (gated)
// - GET /api/doc.json         -> OpenAPI JSON (gated)
// - GET /swagger-auth/verify  -> exchange admin code for a signed cookie
func (h *DocsHandler) Register(r *gin.Engine) {
	g := r.Group("/api")
	g.Use(h.gate())
	g.GET("", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})
	g.GET("/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})

	r.GET("/swagger-auth/verify", h.Verify)
}

// gate authorizes documentation requests. Browsers hitting the docs index
// without credentials get the HTML code-prompt form instead of a bare 401.
func (h *DocsHandler) gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(docsCookieName); err == nil && tokens.ValidateDocsToken(h.code, cookie) {
			c.Next()
			return
		}
		if c.GetHeader("Authorization") == "Bearer "+h.code {
			c.Next()
			return
		}
		if q := c.Query("code"); q != "" && h.admin.Validate(q) == nil {
			c.Next()
			return
		}

		if c.Request.URL.Path == "/api" || c.Request.URL.Path == "/api/" {
			c.Header("Content-Type", "text/html; charset=utf-8")
			c.String(http.StatusUnauthorized, docsPromptHTML)
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied to API documentation"})
	}
}

// Verify exchanges an admin code for a signed 24h documentation cookie and
// redirects to the docs UI.
func (h *DocsHandler) Verify(c *gin.Context) {
	if err := h.admin.Validate(c.Query("code")); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Invalid access code",
			"error":   "Unauthorized",
		})
		return
	}
	token, err := tokens.GenerateDocsToken(h.code, docsCookieTTL)
	if err != nil {
		logger.Errorf("failed to sign docs cookie: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
			"error":   "Internal Server Error",
		})
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(docsCookieName, token, int(docsCookieTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/api")
}

const docsPromptHTML = `<!DOCTYPE html>
<html>
  <head>
    <title>API Documentation Access</title>
    <style>
      body {
        font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
        background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
        margin: 0;
        padding: 0;
        display: flex;
        justify-content: center;
        align-items: center;
        min-height: 100vh;
      }
      .container {
        background: white;
        padding: 40px;
        border-radius: 16px;
        box-shadow: 0 20px 40px rgba(0,0,0,0.1);
        text-align: center;
        max-width: 400px;
        width: 90%;
      }
      h1 { color: #2d3748; margin-bottom: 20px; }
      p { color: #4a5568; margin-bottom: 30px; }
      .form-group { margin-bottom: 20px; }
      input {
        width: 100%;
        padding: 12px;
        border: 2px solid #e2e8f0;
        border-radius: 8px;
        font-size: 16px;
        box-sizing: border-box;
      }
      input:focus {
        outline: none;
        border-color: #667eea;
      }
      button {
        background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
        color: white;
        border: none;
        padding: 12px 30px;
        border-radius: 8px;
        font-size: 16px;
        cursor: pointer;
        width: 100%;
      }
      button:hover { opacity: 0.9; }
      .error { color: #e53e3e; margin-top: 10px; }
    </style>
  </head>
  <body>
    <div class="container">
      <h1>🔐 API Documentation Access</h1>
      <p>Enter the admin code to access the API documentation:</p>
      <form action="/swagger-auth/verify" method="GET">
        <div class="form-group">
          <input type="password" name="code" placeholder="Enter admin code" required>
        </div>
        <button type="submit">Access Documentation</button>
      </form>
      <div class="error" id="error"></div>
    </div>
    <script>
      const urlParams = new URLSearchParams(window.location.search);
      if (urlParams.get('error') === 'unauthorized') {
        document.getElementById('error').textContent = 'Invalid access code. Please try again.';
      }
    </script>
  </body>
</html>`

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Learning Notifier — API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/api/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Learning Notifier API", "version": "1.0.0" },
  "paths": {
    "/register": {
      "post": {
        "summary": "Register a user for daily learning notifications",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"type":{"type":"string"},"isAdmin":{"type":"boolean"},"adminCode":{"type":"string"}}}}}},
        "responses": { "201": { "description": "registration completed" }, "400": { "description": "validation failed" }, "401": { "description": "invalid admin code" } }
      },
      "get": {
        "summary": "List registered users",
        "parameters": [ { "name": "adminCode", "in": "query", "schema": {"type":"string"} } ],
        "responses": { "200": { "description": "users returned" }, "401": { "description": "invalid admin code" } }
      }
    },
    "/register/{id}": {
      "get": { "summary": "Get a user by id", "responses": { "200": { "description": "user returned" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update a user", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"email":{"type":"string"},"type":{"type":"string"},"isAdmin":{"type":"boolean"},"adminCode":{"type":"string"}}}}}}, "responses": { "200": { "description": "user updated" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a user", "parameters": [ { "name": "adminCode", "in": "query", "schema": {"type":"string"} } ], "responses": { "200": { "description": "user deleted" }, "404": { "description": "not found" } } }
    },
    "/notify/test": {
      "post": { "summary": "Send a test notification to one address", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["email"],"properties":{"email":{"type":"string"}}}}}}, "responses": { "200": { "description": "send attempted" } } }
    },
    "/notify/trigger": {
      "post": { "summary": "Trigger the daily notification workflow now", "responses": { "200": { "description": "workflow triggered" } } }
    },
    "/app/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
