// Package docs holds the OpenAPI description served at /swagger.
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
        "/": {
            "get": {
                "description": "Current user, visible absences, users, subjects and creators.",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Dashboard"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Checks the credentials and sets the session cookie.",
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"type": "string", "description": "Email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "pass", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to / or /?error=login_failed"}
                }
            }
        },
        "/logout": {
            "get": {
                "description": "Revokes the session and clears the cookie.",
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {
                    "302": {"description": "Redirect to /"}
                }
            }
        },
        "/api/add_user": {
            "post": {
                "description": "Staff only. Students and anonymous visitors are sent home.",
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["users"],
                "summary": "Add user",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData"},
                    {"type": "string", "description": "Full name", "name": "fullname", "in": "formData"},
                    {"type": "string", "description": "Email", "name": "email", "in": "formData"},
                    {"type": "string", "description": "ADMIN, TEACHER or STUDENT", "name": "role", "in": "formData", "required": true},
                    {"type": "string", "description": "Room, teachers only", "name": "room", "in": "formData"}
                ],
                "responses": {
                    "302": {"description": "Redirect to /?tab=admin"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/add_absence": {
            "post": {
                "description": "Staff only. Non-numeric ids are rejected.",
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["absences"],
                "summary": "Record an absence",
                "parameters": [
                    {"type": "integer", "description": "Student id", "name": "student_id", "in": "formData", "required": true},
                    {"type": "integer", "description": "Subject id", "name": "subject_id", "in": "formData", "required": true},
                    {"type": "string", "description": "Deadline, e.g. 2025-01-01T00:00", "name": "deadline", "in": "formData"}
                ],
                "responses": {
                    "302": {"description": "Redirect to /?tab=timers"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/resolve/{id}": {
            "get": {
                "description": "Deletes the absence. Unknown ids still report success.",
                "produces": ["application/json"],
                "tags": ["absences"],
                "summary": "Resolve an absence",
                "parameters": [
                    {"type": "string", "description": "Absence id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ResolveResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ResolveResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/update_avatar": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["users"],
                "summary": "Update own avatar",
                "parameters": [
                    {"type": "string", "description": "Avatar URL", "name": "url", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to /?tab=profile"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/api/sync_sheets": {
            "get": {
                "description": "Staff only. Failures are reported in the message with success=false.",
                "produces": ["application/json"],
                "tags": ["sync"],
                "summary": "Import the attendance sheet",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.SyncResult"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "handler.ResolveResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
            }
        },
        "service.SyncResult": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "model.Session": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "user_id": {"type": "integer"},
                "username": {"type": "string"}
            }
        },
        "model.UserView": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"},
                "email": {"type": "string"},
                "fullname": {"type": "string"},
                "id": {"type": "integer"},
                "role": {"type": "string"},
                "room": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "model.Subject": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "teacher_id": {"type": "integer"}
            }
        },
        "model.AbsenceView": {
            "type": "object",
            "properties": {
                "deadline": {"type": "string"},
                "id": {"type": "integer"},
                "room": {"type": "string"},
                "student_name": {"type": "string"},
                "subject_name": {"type": "string"},
                "teacher_email": {"type": "string"},
                "teacher_name": {"type": "string"}
            }
        },
        "model.Dashboard": {
            "type": "object",
            "properties": {
                "all_subjects": {"type": "array", "items": {"$ref": "#/definitions/model.Subject"}},
                "all_users": {"type": "array", "items": {"$ref": "#/definitions/model.UserView"}},
                "creators": {"type": "array", "items": {"type": "object"}},
                "current_user": {"$ref": "#/definitions/model.UserView"},
                "session": {"$ref": "#/definitions/model.Session"},
                "total_absences": {"type": "integer"},
                "total_subjects": {"type": "integer"},
                "user_absences": {"type": "array", "items": {"$ref": "#/definitions/model.AbsenceView"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "UKD Absence Tracker API",
	Description:      "Attendance and absence (Н-ки) tracking for UKD: dashboard, user and absence management, sheet import.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
