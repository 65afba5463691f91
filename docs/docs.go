// Package docs registra el documento OpenAPI de la API de mascotas en swag.
// Se regenera con `swag init -g cmd/api/main.go`.
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
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar todas las mascotas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Crear mascota",
                "parameters": [
                    {"description": "Datos de la mascota", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.PetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            }
        },
        "/pets/organization={organizationId}/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar las mascotas de una organización",
                "parameters": [
                    {"type": "string", "description": "ID de la organización", "name": "organizationId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            }
        },
        "/pets/organization={organizationId}/published={isPublished}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas de una organización por estado de publicación",
                "parameters": [
                    {"type": "string", "description": "ID de la organización", "name": "organizationId", "in": "path", "required": true},
                    {"type": "boolean", "description": "true = publicada, false = en edición", "name": "isPublished", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            }
        },
        "/pets/organization={organizationId}/adopted={isAdopted}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas de una organización por estado de adopción",
                "parameters": [
                    {"type": "string", "description": "ID de la organización", "name": "organizationId", "in": "path", "required": true},
                    {"type": "boolean", "description": "Estado de adopción", "name": "isAdopted", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            }
        },
        "/pets/published={isPublished}": {
            "get": {
                "description": "Ordenadas por última actualización, más recientes primero.",
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas por estado de publicación",
                "parameters": [
                    {"type": "boolean", "description": "true = publicada, false = en edición", "name": "isPublished", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            }
        },
        "/pets/adopted={isAdopted}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas por estado de adopción",
                "parameters": [
                    {"type": "boolean", "description": "Estado de adopción", "name": "isAdopted", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            }
        },
        "/pets/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Obtener una mascota por id",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            },
            "put": {
                "description": "Reemplaza todos los campos editables de la mascota.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Actualizar mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "id", "in": "path", "required": true},
                    {"description": "Datos de la mascota", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.PetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Eliminar mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pets.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/pets.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "pets.FieldError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "field": {"type": "string"}
            }
        },
        "pets.Pet": {
            "type": "object",
            "properties": {
                "ageMonths": {"type": "integer"},
                "breed": {"type": "string"},
                "color": {"type": "string"},
                "createdAt": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "imageUrls": {"type": "array", "items": {"type": "string"}},
                "isAdopted": {"type": "boolean"},
                "isPublished": {"type": "boolean"},
                "lastUpdateTime": {"type": "string"},
                "name": {"type": "string"},
                "organizationId": {"type": "string"},
                "sex": {"type": "string", "enum": ["male", "female", "unknown"]},
                "size": {"type": "string", "enum": ["small", "medium", "large"]},
                "species": {"type": "string", "enum": ["dog", "cat", "other"]}
            }
        },
        "pets.PetRequest": {
            "type": "object",
            "required": ["name", "organizationId", "species"],
            "properties": {
                "ageMonths": {"type": "integer", "maximum": 600, "minimum": 0},
                "breed": {"type": "string", "maxLength": 100},
                "color": {"type": "string", "maxLength": 50},
                "description": {"type": "string", "maxLength": 4000},
                "imageUrls": {"type": "array", "maxItems": 20, "items": {"type": "string"}},
                "isAdopted": {"type": "boolean"},
                "isPublished": {"type": "boolean"},
                "name": {"type": "string", "maxLength": 100},
                "organizationId": {"type": "string", "maxLength": 64},
                "sex": {"type": "string", "enum": ["male", "female", "unknown"]},
                "size": {"type": "string", "enum": ["small", "medium", "large"]},
                "species": {"type": "string", "enum": ["dog", "cat", "other"]}
            }
        },
        "pets.errorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/pets.FieldError"}},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Furiends Pets API",
	Description:      "CRUD de mascotas en adopción publicadas por organizaciones.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
