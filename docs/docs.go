// Package docs registra el spec swagger que sirve /swagger/.
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
        "/actions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Ejecutar acción de juego",
                "parameters": [
                    {
                        "description": "userName, action y según la acción item o petId",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/economy.actionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/economy.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/adopt": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Adoptar mascota (variante que registra en el log de adopciones)",
                "parameters": [
                    {
                        "description": "userName y petId",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/economy.adoptRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/economy.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "email y password",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/users.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.SafeUser"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Registrar usuario",
                "parameters": [
                    {
                        "description": "name, email y password",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/users.registerRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "summary": "Listar mascotas",
                "parameters": [
                    {"type": "string", "description": "filtro por tipo (case-insensitive)", "name": "type", "in": "query"},
                    {"type": "string", "description": "filtro por adoptante (exacto)", "name": "adoptedBy", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Ingresar mascota",
                "parameters": [
                    {
                        "description": "name, type, breed, age y description opcional",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/pets.createPetRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "delete": {
                "consumes": ["application/json"],
                "summary": "Eliminar mascota (petId en el body)",
                "parameters": [
                    {
                        "description": "petId",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/pets.deletePetRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/shop": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Comprar ítem",
                "parameters": [
                    {
                        "description": "userName e item (food, toy o treat)",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/economy.shopRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/economy.Result"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "economy.Result": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "newBudget": {"type": "integer"},
                "inventory": {"$ref": "#/definitions/users.Inventory"}
            }
        },
        "economy.actionRequest": {
            "type": "object",
            "properties": {
                "userName": {"type": "string"},
                "petId": {"type": "string"},
                "action": {"type": "string", "enum": ["buy", "feed", "toy", "treat", "adopt", "return"]},
                "item": {"type": "string", "enum": ["food", "toy", "treat"]}
            }
        },
        "economy.adoptRequest": {
            "type": "object",
            "properties": {
                "userName": {"type": "string"},
                "petId": {"type": "string"}
            }
        },
        "economy.shopRequest": {
            "type": "object",
            "properties": {
                "userName": {"type": "string"},
                "item": {"type": "string", "enum": ["food", "toy", "treat"]}
            }
        },
        "pets.Pet": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "number"},
                "description": {"type": "string"},
                "hunger": {"type": "integer"},
                "happiness": {"type": "integer"},
                "adoptedBy": {"type": "string", "x-nullable": true}
            }
        },
        "pets.createPetRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "number"},
                "description": {"type": "string"}
            }
        },
        "pets.deletePetRequest": {
            "type": "object",
            "properties": {
                "petId": {"type": "string"}
            }
        },
        "users.Inventory": {
            "type": "object",
            "properties": {
                "food": {"type": "integer"},
                "toy": {"type": "integer"},
                "treat": {"type": "integer"}
            }
        },
        "users.SafeUser": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "isAdmin": {"type": "boolean"},
                "budget": {"type": "integer"},
                "inventory": {"$ref": "#/definitions/users.Inventory"}
            }
        },
        "users.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "users.registerRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Adoption API",
	Description:      "Backend del juego de adopción de mascotas: usuarios, mascotas, tienda y acciones.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
