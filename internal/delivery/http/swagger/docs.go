package http_swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "paths": {
        "/room": {
            "post": {
                "summary": "Create a room, or join one when room_code is set",
                "tags": ["room"],
                "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/EnterRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EnterResponse"}},
                    "404": {"description": "Room not found", "schema": {"$ref": "#/definitions/Error"}},
                    "503": {"description": "No room codes available", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/room/{room_code}": {
            "get": {
                "summary": "Room status",
                "tags": ["room"],
                "parameters": [{"$ref": "#/parameters/RoomCode"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StatusResponse"}},
                    "404": {"description": "Room not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "summary": "Close a room",
                "tags": ["room"],
                "parameters": [{"$ref": "#/parameters/RoomCode"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Room not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/room/{room_code}/ws": {
            "get": {
                "summary": "Lobby updates over websocket",
                "tags": ["room"],
                "parameters": [{"$ref": "#/parameters/RoomCode"}],
                "responses": {
                    "101": {"description": "Switching protocols"},
                    "404": {"description": "Room not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/sync/{room_code}/{user_id}": {
            "post": {
                "summary": "Store a member submission",
                "tags": ["room"],
                "parameters": [
                    {"$ref": "#/parameters/RoomCode"},
                    {"$ref": "#/parameters/UserID"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/Submission"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid submission", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Room expired or not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/questionnaire/{room_code}/{user_id}": {
            "post": {
                "summary": "Attach a questionnaire to a member",
                "tags": ["room"],
                "parameters": [
                    {"$ref": "#/parameters/RoomCode"},
                    {"$ref": "#/parameters/UserID"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/Questionnaire"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Room not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/generate/{room_code}": {
            "post": {
                "summary": "Merge the room (or a solo submission) into one scene",
                "tags": ["scene"],
                "parameters": [
                    {"$ref": "#/parameters/RoomCode"},
                    {"in": "body", "name": "body", "schema": {"$ref": "#/definitions/GenerateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Room empty or waiting for partner", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Room not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/llm": {
            "post": {
                "summary": "Text completion through the generation service",
                "tags": ["collab"],
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Generation service unreachable", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/tts": {
            "post": {
                "summary": "Speech synthesis, audio returned as base64",
                "tags": ["collab"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Speech service unreachable"}}
            }
        },
        "/stt": {
            "post": {
                "summary": "Transcription of a raw or multipart audio upload",
                "tags": ["collab"],
                "consumes": ["multipart/form-data", "application/octet-stream"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Transcription service unreachable"}}
            }
        },
        "/models/tags": {
            "get": {"summary": "Models loaded in the generation service", "tags": ["models"], "responses": {"200": {"description": "OK"}}}
        },
        "/models/files": {
            "get": {"summary": "Weights files in the models directory", "tags": ["models"], "responses": {"200": {"description": "OK"}}}
        },
        "/models/load": {
            "post": {
                "summary": "Register a weights file as a model",
                "tags": ["models"],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing fields"},
                    "404": {"description": "File not found"}
                }
            }
        },
        "/health": {
            "get": {"summary": "Service and collaborator status", "tags": ["health"], "responses": {"200": {"description": "OK"}}}
        }
    },
    "parameters": {
        "RoomCode": {"in": "path", "name": "room_code", "type": "string", "required": true},
        "UserID": {"in": "path", "name": "user_id", "type": "string", "required": true}
    },
    "definitions": {
        "Error": {"type": "object", "properties": {"detail": {"type": "string"}}},
        "EnterRequest": {"type": "object", "properties": {"room_code": {"type": "string"}}},
        "EnterResponse": {
            "type": "object",
            "properties": {
                "room_code": {"type": "string"},
                "role": {"type": "string", "enum": ["host", "partner"]},
                "status": {"type": "string", "enum": ["created", "joined"]}
            }
        },
        "StatusResponse": {
            "type": "object",
            "properties": {
                "room_code": {"type": "string"},
                "partners_connected": {"type": "integer"},
                "partner_ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "Submission": {
            "type": "object",
            "required": ["role", "intensity", "inventory", "outfit", "kinks"],
            "properties": {
                "role": {"type": "string", "enum": ["dom", "sub", "switch"]},
                "intensity": {"type": "string"},
                "inventory": {"type": "array", "items": {"type": "string"}},
                "outfit": {"type": "array", "items": {"type": "string"}},
                "kinks": {"type": "array", "items": {"type": "string"}}
            }
        },
        "Questionnaire": {
            "type": "object",
            "properties": {
                "theme": {"type": "string"},
                "preferences": {"type": "array", "items": {"type": "string"}},
                "notes": {"type": "string"}
            }
        },
        "GenerateRequest": {
            "type": "object",
            "properties": {
                "solo": {"type": "boolean"},
                "user_data": {"$ref": "#/definitions/Submission"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Scene coordinator API",
	Description:      "Rooms, submissions and scene merging.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
