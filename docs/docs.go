// Package docs registers the OpenAPI document served under /swagger/.
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
        "/api/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Category"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List products",
                "parameters": [
                    {"type": "integer", "description": "Filter by category", "name": "categoryId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/api/products/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Catalog statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/query.CatalogStats"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/api/products/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Search products",
                "parameters": [
                    {"type": "string", "description": "Search term", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/api/products/search/{query}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Search products",
                "parameters": [
                    {"type": "string", "description": "Search term", "name": "query", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/api/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Get product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Product"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/api/favorites": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Favorites"],
                "summary": "List favorite products",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Product"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Favorites"],
                "summary": "Add favorite",
                "parameters": [
                    {"description": "Product to favorite", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.AddFavoriteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Favorite"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/api/favorites/check": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Favorites"],
                "summary": "Check favorite",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "productId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CheckFavoriteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/api/favorites/{productId}": {
            "delete": {
                "tags": ["Favorites"],
                "summary": "Remove favorite",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "productId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "domain.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "description": {"type": "string"},
                "rating": {"type": "number"},
                "categoryId": {"type": "integer"},
                "imageUrl": {"type": "string"},
                "modelUrl": {"type": "string"}
            }
        },
        "domain.Favorite": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "userId": {"type": "integer"},
                "productId": {"type": "integer"}
            }
        },
        "http.AddFavoriteRequest": {
            "type": "object",
            "properties": {
                "productId": {"type": "integer"}
            }
        },
        "http.CheckFavoriteResponse": {
            "type": "object",
            "properties": {
                "isFavorite": {"type": "boolean"}
            }
        },
        "httpx.ErrorBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "query.CatalogStats": {
            "type": "object",
            "properties": {
                "totalProducts": {"type": "integer"},
                "totalCategories": {"type": "integer"},
                "averagePrice": {"type": "number"},
                "averageRating": {"type": "number"},
                "byCategory": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Virtual Try-On API",
	Description:      "Shoe catalog and favorites API for the virtual try-on clients",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
