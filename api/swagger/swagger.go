package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Catálogo de Veículos API",
        "description": "Vehicle catalog browsing and lead capture",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Vehicles", "description": "Catalog listing, facets and details"},
        {"name": "ContactForm", "description": "Lead submission and export"}
    ],
    "paths": {
        "/internal/vehicle": {
            "get": {
                "tags": ["Vehicles"],
                "summary": "List vehicles with filtering, sorting and pagination",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer", "default": 1},
                    {"name": "pageSize", "in": "query", "type": "integer", "enum": [12, 24, 36, 48], "default": 12},
                    {"name": "marcas", "in": "query", "type": "string", "description": "Comma-separated brand names"},
                    {"name": "modelos", "in": "query", "type": "string", "description": "Comma-separated model names"},
                    {"name": "anoMin", "in": "query", "type": "integer"},
                    {"name": "anoMax", "in": "query", "type": "integer"},
                    {"name": "precoMin", "in": "query", "type": "number"},
                    {"name": "precoMax", "in": "query", "type": "number"},
                    {"name": "cambios", "in": "query", "type": "string", "description": "Comma-separated transmission types"},
                    {"name": "sortOrder", "in": "query", "type": "string", "enum": ["relevancia", "preco_asc", "preco_desc", "ano_desc", "ano_asc", "modelo_asc", "modelo_desc"]}
                ],
                "responses": {
                    "200": {"description": "Paged vehicle list", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid paging or filter parameters"}
                }
            }
        },
        "/internal/vehicle/filter-options": {
            "get": {
                "tags": ["Vehicles"],
                "summary": "Available filter facets",
                "responses": {
                    "200": {"description": "Facet bundle", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/internal/vehicle/modelos-by-marcas": {
            "get": {
                "tags": ["Vehicles"],
                "summary": "Models available for the selected brands",
                "parameters": [
                    {"name": "marcas", "in": "query", "type": "string", "description": "Comma-separated brand names"}
                ],
                "responses": {
                    "200": {"description": "Model name list", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/internal/vehicle-detail/{id}": {
            "get": {
                "tags": ["Vehicles"],
                "summary": "Complete vehicle details",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Detail aggregate", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid vehicle id"},
                    "404": {"description": "Vehicle not found"}
                }
            }
        },
        "/internal/contact-form/export": {
            "get": {
                "tags": ["ContactForm"],
                "summary": "Export received leads",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Rendered export file"},
                    "400": {"description": "Unknown format"}
                }
            }
        },
        "/external/contact-form": {
            "post": {
                "tags": ["ContactForm"],
                "summary": "Submit a contact form for a vehicle",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Receipt with protocol", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failure"},
                    "404": {"description": "Vehicle not found"},
                    "429": {"description": "Duplicate submission inside the rolling window"}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "Meta": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"$ref": "#/definitions/Meta"}
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
