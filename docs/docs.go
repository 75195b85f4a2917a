// Package docs registra la especificación Swagger del Directory Service.
// Se mantiene a mano junto con las anotaciones godoc de internal/domain/pets/handler.go.
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
        "/api/v1/pet/add": {
            "post": {
                "description": "Valida y guarda un registro de ingreso. Si no trae id, el servicio asigna uno.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Registrar mascota",
                "parameters": [
                    {
                        "description": "Registro de la mascota",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/pets.Payload"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.Payload"}},
                    "400": {"description": "invalid json / campos inválidos", "schema": {"$ref": "#/definitions/pets.validationErrorResponse"}},
                    "409": {"description": "pet already exists", "schema": {"type": "string"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/pet/getAll": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Payload"}}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/pet/get/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Obtener mascota por id",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Payload"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/pet/update/{petID}": {
            "put": {
                "description": "Reemplaza el registro completo. Aplica las mismas validaciones que el alta.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Actualizar mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true},
                    {
                        "description": "Registro completo",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/pets.Payload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Payload"}},
                    "400": {"description": "invalid json / campos inválidos", "schema": {"$ref": "#/definitions/pets.validationErrorResponse"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/pet/delete/{petID}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Eliminar mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.messageResponse"}},
                    "404": {"description": "pet not found", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/pet/calculate": {
            "post": {
                "description": "Devuelve el registro con totalCost y netCost según ifTemp y discount. No guarda nada.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Calcular costos",
                "parameters": [
                    {
                        "description": "Registro con ifTemp y discount",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/pets.Payload"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Payload"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "pets.Payload": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "petName": {"type": "string"},
                "specie": {"type": "string"},
                "breed": {"type": "string"},
                "location": {"type": "string"},
                "age": {"type": "string"},
                "gender": {"type": "string"},
                "reason": {"type": "string"},
                "ifTemp": {"type": "string"},
                "justify": {"type": "string"},
                "contactEmail": {"type": "string"},
                "contactPhoneNumber": {"type": "string"},
                "ownerName": {"type": "string"},
                "nic": {"type": "string"},
                "photo": {"type": "string"},
                "regStatus": {"type": "string"},
                "physicalStatus": {"type": "string"},
                "docName": {"type": "string"},
                "docStatus": {"type": "string"},
                "discount": {"type": "number"},
                "totalCost": {"type": "number"},
                "netCost": {"type": "number"}
            }
        },
        "pets.messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "pets.validationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo se exporta para que cmd/api pueda ajustar host o basePath.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Intake Directory API",
	Description:      "Registro de ingresos de mascotas para adopción o cuidado temporal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
