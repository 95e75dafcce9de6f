// Package docs holds the generated swagger specification.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Create an account and log in",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Verify credentials and issue tokens",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange a refresh token for a new pair",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/me": {
            "get": {
                "tags": ["users"],
                "security": [{"BearerAuth": []}],
                "summary": "Get own profile",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["users"],
                "security": [{"BearerAuth": []}],
                "summary": "Update own profile",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/interviews": {
            "post": {
                "tags": ["interviews"],
                "summary": "Start an interview",
                "responses": {"201": {"description": "Created"}}
            },
            "get": {
                "tags": ["interviews"],
                "summary": "List own interviews",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/interviews/{id}": {
            "get": {
                "tags": ["interviews"],
                "summary": "Get a single interview",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/interviews/{id}/questions": {
            "get": {
                "tags": ["interviews"],
                "summary": "List questions issued so far",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/interviews/{id}/next_question": {
            "post": {
                "tags": ["interviews"],
                "summary": "Generate the next question",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/interviews/{id}/submit_answer": {
            "post": {
                "tags": ["interviews"],
                "summary": "Submit and evaluate an answer",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/interviews/{id}/complete": {
            "post": {
                "tags": ["interviews"],
                "summary": "Complete the interview and build the feedback report",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ai-debug/generate": {
            "post": {
                "tags": ["ai-debug"],
                "summary": "Generate a question directly from the provider",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ai-debug/evaluate": {
            "post": {
                "tags": ["ai-debug"],
                "summary": "Evaluate an answer directly with the provider",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "MockMate API",
	Description:      "AI-powered mock interview API with question generation, answer evaluation and feedback reports",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
