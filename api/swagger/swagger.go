package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Udaan Scholarship API",
        "description": "Scholarship discovery: eligibility matching, exports, preferences and a Q&A assistant",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Scholarships", "description": "Loaded scholarship catalog"},
        {"name": "Matching", "description": "Eligibility filtering and exports"},
        {"name": "Assistant", "description": "Single-question Q&A helper"},
        {"name": "Preferences", "description": "Per-client theme and session flags"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "description": "200 once the scholarship catalog is ready, 503 with the catalog status otherwise",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Catalog loading or failed"}
                }
            }
        },
        "/api/v1/scholarships": {
            "get": {
                "tags": ["Scholarships"],
                "summary": "List scholarships",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "FETCH_FAILED", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "CATALOG_LOADING or SCHEMA_MISSING", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/scholarships/status": {
            "get": {
                "tags": ["Scholarships"],
                "summary": "Catalog status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/scholarships/refresh": {
            "post": {
                "tags": ["Scholarships"],
                "summary": "Reload scholarships from the store",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "FETCH_FAILED", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "SCHEMA_MISSING", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/scholarships/{id}": {
            "get": {
                "tags": ["Scholarships"],
                "summary": "Get scholarship",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/scholarships/match": {
            "post": {
                "tags": ["Matching"],
                "summary": "Find matching scholarships",
                "parameters": [
                    {"name": "X-Client-ID", "in": "header", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterCriteria"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "CATALOG_LOADING", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/scholarships/match/latest": {
            "get": {
                "tags": ["Matching"],
                "summary": "Latest completed match for the client",
                "parameters": [
                    {"name": "X-Client-ID", "in": "header", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/scholarships/match/export": {
            "post": {
                "tags": ["Matching"],
                "summary": "Export matching scholarships",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterCriteria"}}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/scholarships/{id}/check": {
            "post": {
                "tags": ["Matching"],
                "summary": "Explain eligibility for one scholarship",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterCriteria"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/criteria/options": {
            "get": {
                "tags": ["Matching"],
                "summary": "Criteria enumerations and defaults",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/assistant/ask": {
            "post": {
                "tags": ["Assistant"],
                "summary": "Ask the assistant",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK, fallback=true when the assistant could not answer", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/assistant/faq": {
            "get": {
                "tags": ["Assistant"],
                "summary": "Frequently asked questions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/preferences": {
            "get": {
                "tags": ["Preferences"],
                "summary": "Get preferences",
                "parameters": [
                    {"name": "X-Client-ID", "in": "header", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Preferences"],
                "summary": "Update preferences",
                "parameters": [
                    {"name": "X-Client-ID", "in": "header", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePreferencesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/preferences/theme/toggle": {
            "post": {
                "tags": ["Preferences"],
                "summary": "Toggle between dark and light",
                "parameters": [
                    {"name": "X-Client-ID", "in": "header", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "FilterCriteria": {
            "type": "object",
            "properties": {
                "class": {"type": "integer", "description": "1-12, 13 undergraduate, 14 postgraduate"},
                "age": {"type": "integer"},
                "percentage": {"type": "integer"},
                "category": {"type": "string", "enum": ["General", "OBC", "SC", "ST", "EWS"]},
                "religion": {"type": "string", "enum": ["Any", "Hindu", "Muslim", "Christian", "Sikh", "Buddhist", "Jain", "Other"]},
                "location": {"type": "string", "enum": ["Urban", "Rural", "Both"]},
                "disability": {"type": "boolean"}
            },
            "required": ["category", "religion", "location"]
        },
        "AskRequest": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "scholarship_id": {"type": "string"},
                "context": {"type": "string"}
            },
            "required": ["question"]
        },
        "UpdatePreferencesRequest": {
            "type": "object",
            "properties": {
                "theme": {"type": "string", "enum": ["dark", "light"]},
                "session_seen": {"type": "boolean"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
