// Package docs holds the OpenAPI description of the scenario status API.
// Regenerate with: swag init -g main.go -o docs
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
        "/api/v1/scenarios": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scenarios"
                ],
                "summary": "List scenarios",
                "description": "Status snapshot of every live scenario.",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/rest.SuccessResponse-rest_ListScenariosResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/scenarios/{name}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scenarios"
                ],
                "summary": "Get scenario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scenario name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/rest.SuccessResponse-rest_ScenarioResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/scenarios/{name}/pause": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scenarios"
                ],
                "summary": "Pause scenario",
                "description": "Stops task generation and sweeping. Simulated time keeps advancing.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scenario name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/rest.SuccessResponse-rest_ScenarioResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/scenarios/{name}/resume": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scenarios"
                ],
                "summary": "Resume scenario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scenario name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/rest.SuccessResponse-rest_ScenarioResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/scenarios/{name}/runs": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scenarios"
                ],
                "summary": "List scenario runs",
                "description": "Recorded status snapshots of a scenario, newest first.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scenario name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Scenario namespace",
                        "name": "namespace",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 100,
                        "description": "Maximum records",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/rest.SuccessResponse-rest_ListRunsResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    },
                    "501": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/rest.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Phase": {
            "type": "string",
            "enum": [
                "Running",
                "Paused",
                "Completed",
                "Failed"
            ],
            "x-enum-varnames": [
                "PhaseRunning",
                "PhasePaused",
                "PhaseCompleted",
                "PhaseFailed"
            ]
        },
        "domain.ScenarioStatus": {
            "type": "object",
            "properties": {
                "currentSimulatedTime": {
                    "type": "string"
                },
                "elapsedRealTime": {
                    "type": "string"
                },
                "elapsedSimulatedTime": {
                    "type": "string"
                },
                "endTime": {
                    "description": "Only set when Completed",
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "phase": {
                    "$ref": "#/definitions/domain.Phase"
                },
                "totalTasksGenerated": {
                    "type": "integer"
                }
            }
        },
        "rest.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "rest.ListRunsResponse": {
            "type": "object",
            "properties": {
                "runs": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/rest.RunRecordResponse"
                    }
                }
            }
        },
        "rest.ListScenariosResponse": {
            "type": "object",
            "properties": {
                "scenarios": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/rest.ScenarioResponse"
                    }
                }
            }
        },
        "rest.RunRecordResponse": {
            "type": "object",
            "properties": {
                "recordedAt": {
                    "type": "integer"
                },
                "startTime": {
                    "type": "integer"
                },
                "status": {
                    "$ref": "#/definitions/domain.ScenarioStatus"
                }
            }
        },
        "rest.ScenarioResponse": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "namespace": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/domain.ScenarioStatus"
                }
            }
        },
        "rest.SuccessResponse-rest_ListRunsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/rest.ListRunsResponse"
                },
                "success": {
                    "type": "boolean"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "rest.SuccessResponse-rest_ListScenariosResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/rest.ListScenariosResponse"
                },
                "success": {
                    "type": "boolean"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "rest.SuccessResponse-rest_ScenarioResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/rest.ScenarioResponse"
                },
                "success": {
                    "type": "boolean"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Scenario Controller API",
	Description:      "Status and control of running simulation scenarios.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
