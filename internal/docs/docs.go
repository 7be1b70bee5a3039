// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "User registered and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "User authenticated and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Get current user",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/properties": {
            "get": {
                "tags": ["properties"],
                "summary": "List properties",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            },
            "post": {
                "tags": ["properties"],
                "summary": "Create a property",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.PropertyRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            }
        },
        "/properties/types": {
            "get": {"tags": ["properties"], "summary": "List property types", "responses": {"200": {"description": "OK"}}}
        },
        "/properties/{id}": {
            "get": {
                "tags": ["properties"], "summary": "Get a property",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Property not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            },
            "put": {
                "tags": ["properties"], "summary": "Update a property",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.PropertyRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Property not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            },
            "delete": {
                "tags": ["properties"], "summary": "Delete a property",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Property not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            }
        },
        "/tenants": {
            "get": {
                "tags": ["tenants"], "summary": "List tenants",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "property_id", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["tenants"], "summary": "Create a tenant",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.TenantRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input or lease term", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            }
        },
        "/tenants/{id}": {
            "get": {"tags": ["tenants"], "summary": "Get a tenant", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["tenants"], "summary": "Update a tenant", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.TenantRequest"}}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["tenants"], "summary": "Delete a tenant", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/transactions": {
            "get": {
                "tags": ["transactions"], "summary": "List transactions",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "type", "in": "query"},
                    {"type": "string", "name": "property_id", "in": "query"},
                    {"type": "string", "name": "from_date", "in": "query"},
                    {"type": "string", "name": "to_date", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["transactions"], "summary": "Create a transaction",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.TransactionRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            }
        },
        "/transactions/categories": {
            "get": {"tags": ["transactions"], "summary": "List transaction categories", "parameters": [{"type": "string", "name": "type", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/transactions/{id}": {
            "get": {"tags": ["transactions"], "summary": "Get a transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["transactions"], "summary": "Update a transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.TransactionRequest"}}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["transactions"], "summary": "Delete a transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/dashboard": {"get": {"tags": ["dashboard"], "summary": "Dashboard overview", "responses": {"200": {"description": "OK"}}}},
        "/dashboard/summary": {"get": {"tags": ["dashboard"], "summary": "Portfolio summary", "responses": {"200": {"description": "OK"}}}},
        "/dashboard/trends": {"get": {"tags": ["dashboard"], "summary": "Month-over-month trends", "responses": {"200": {"description": "OK"}}}},
        "/dashboard/distributions/{partition}": {
            "get": {
                "tags": ["dashboard"], "summary": "Distribution",
                "parameters": [{"type": "string", "enum": ["property-types", "occupancy", "rent-collection"], "name": "partition", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Unknown partition", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            }
        },
        "/dashboard/income": {
            "get": {
                "tags": ["dashboard"], "summary": "Income series",
                "parameters": [{"type": "string", "name": "from", "in": "query"}, {"type": "string", "name": "to", "in": "query"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid month or range", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}
            }
        },
        "/dashboard/activities": {
            "get": {"tags": ["dashboard"], "summary": "Recent activity", "parameters": [{"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/dashboard/properties": {"get": {"tags": ["dashboard"], "summary": "Property performance", "responses": {"200": {"description": "OK"}}}},
        "/dashboard/snapshots": {
            "get": {
                "tags": ["dashboard"], "summary": "Summary snapshots",
                "parameters": [
                    {"type": "string", "name": "from_date", "in": "query"},
                    {"type": "string", "name": "to_date", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"PipelineAPIKey": []}],
                "tags": ["dashboard"], "summary": "Record a summary snapshot",
                "responses": {
                    "201": {"description": "Created"},
                    "401": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "Pipeline not configured", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/handlers.ErrorDetail"}}
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 8},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "first_name": {"type": "string"}, "last_name": {"type": "string"}}
        },
        "handlers.AuthResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "expires_at": {"type": "string"}, "user": {"$ref": "#/definitions/handlers.UserResponse"}}
        },
        "handlers.PropertyRequest": {
            "type": "object",
            "required": ["name", "address"],
            "properties": {
                "name": {"type": "string"}, "address": {"type": "string"}, "city": {"type": "string"},
                "type": {"type": "string"}, "units": {"type": "integer"}, "value": {"type": "integer"},
                "image": {"type": "string"}, "description": {"type": "string"}, "added_date": {"type": "string"}
            }
        },
        "handlers.TenantRequest": {
            "type": "object",
            "required": ["name", "lease_start", "lease_end", "property_id"],
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"},
                "lease_start": {"type": "string"}, "lease_end": {"type": "string"}, "rent": {"type": "integer"},
                "property_id": {"type": "string"}, "unit": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "late", "pending"]}
            }
        },
        "handlers.TransactionRequest": {
            "type": "object",
            "required": ["amount", "type", "category", "property_id"],
            "properties": {
                "date": {"type": "string"}, "amount": {"type": "integer"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "category": {"type": "string"}, "description": {"type": "string"},
                "property_id": {"type": "string"}, "tenant_id": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and JWT token.", "type": "apiKey", "name": "Authorization", "in": "header"},
        "PipelineAPIKey": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Rentfolio API",
	Description:      "Rentfolio tracks rental properties, tenants and transactions and serves the statistics of the management dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
