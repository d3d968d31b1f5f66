// Package docs holds the swagger document served at /swagger outside production.
// Regenerate with: swag init -g cmd/expense_backend/main.go -o cmd/docs
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
        "/auth/login": {"post": {"tags": ["auth"], "summary": "User login"}},
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user"}},
        "/expenses": {"post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Submit an expense"}},
        "/expenses/by-status": {"get": {"tags": ["expenses"], "summary": "List expenses by status"}},
        "/expenses/by-user/{userId}": {"get": {"tags": ["expenses"], "summary": "List a user's expenses"}},
        "/expenses/summary": {"get": {"tags": ["expenses"], "summary": "Summarize expenses"}},
        "/expenses/{id}": {
            "get": {"tags": ["expenses"], "summary": "Get an expense by ID"},
            "delete": {"tags": ["expenses"], "summary": "Delete an expense"}
        },
        "/expenses/{id}/approve": {"put": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Approve an expense"}},
        "/expenses/{id}/reject": {"put": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Reject an expense"}},
        "/expenses/{id}/attachments": {
            "get": {"tags": ["attachments"], "summary": "List attachments of an expense"},
            "post": {"security": [{"BearerAuth": []}], "tags": ["attachments"], "summary": "Attach a file to an expense"}
        },
        "/reimbursements": {"post": {"security": [{"BearerAuth": []}], "tags": ["reimbursements"], "summary": "Reimburse an approved expense"}},
        "/reimbursements/user/{userId}": {"get": {"security": [{"BearerAuth": []}], "tags": ["reimbursements"], "summary": "List a user's reimbursements"}},
        "/reimbursements/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["reimbursements"], "summary": "Get a reimbursement by ID"}},
        "/users": {"post": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Create a new user"}},
        "/users/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get a user by ID"},
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update a user"},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete a user"}
        },
        "/users/{id}/profile": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get a user's profile"}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Expense Tracker API",
	Description:      "Expense submission, approval and reimbursement backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
