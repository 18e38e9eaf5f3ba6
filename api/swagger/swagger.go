package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Escola API",
        "description": "Cadastro de turmas, professores e alunos",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Turmas",
            "description": "Classes and roster export"
        },
        {
            "name": "Professores",
            "description": "Teacher records"
        },
        {
            "name": "Alunos",
            "description": "Student records"
        }
    ],
    "paths": {
        "/turmas": {
            "get": {
                "tags": [
                    "Turmas"
                ],
                "summary": "List classes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Class"
                            }
                        }
                    },
                    "500": {
                        "description": "Store failure",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Turmas"
                ],
                "summary": "Create class",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ClassRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "400": {
                        "description": "Validation or conflict",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/turmas/{id}": {
            "get": {
                "tags": [
                    "Turmas"
                ],
                "summary": "Get class",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Class"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Turmas"
                ],
                "summary": "Update class",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ClassRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "400": {
                        "description": "Validation or conflict",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Turmas"
                ],
                "summary": "Delete class",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    },
                    "400": {
                        "description": "Class still has students",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/turmas/{id}/alunos/export": {
            "get": {
                "tags": [
                    "Turmas"
                ],
                "summary": "Export class roster",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Roster file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Unsupported format",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Class not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/professores": {
            "get": {
                "tags": [
                    "Professores"
                ],
                "summary": "List teachers",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Teacher"
                            }
                        }
                    },
                    "500": {
                        "description": "Store failure",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Professores"
                ],
                "summary": "Create teacher",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TeacherRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "400": {
                        "description": "Validation or conflict",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/professores/{id}": {
            "get": {
                "tags": [
                    "Professores"
                ],
                "summary": "Get teacher",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Teacher"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Professores"
                ],
                "summary": "Update teacher",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TeacherRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "400": {
                        "description": "Validation or conflict",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Professores"
                ],
                "summary": "Delete teacher",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/professores/buscar/{termo}": {
            "get": {
                "tags": [
                    "Professores"
                ],
                "summary": "Search teachers by name",
                "parameters": [
                    {
                        "name": "termo",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Teacher"
                            }
                        }
                    }
                }
            }
        },
        "/alunos": {
            "get": {
                "tags": [
                    "Alunos"
                ],
                "summary": "List students",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/StudentDetail"
                            }
                        }
                    },
                    "500": {
                        "description": "Store failure",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Alunos"
                ],
                "summary": "Create student",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/StudentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "400": {
                        "description": "Validation or conflict",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/alunos/{id}": {
            "get": {
                "tags": [
                    "Alunos"
                ],
                "summary": "Get student",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/StudentDetail"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Alunos"
                ],
                "summary": "Update student",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/StudentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "400": {
                        "description": "Validation or conflict",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Alunos"
                ],
                "summary": "Delete student",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorBody"
                        }
                    }
                }
            }
        },
        "/alunos/turma/{turmaId}": {
            "get": {
                "tags": [
                    "Alunos"
                ],
                "summary": "List students of a class",
                "parameters": [
                    {
                        "name": "turmaId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/StudentDetail"
                            }
                        }
                    }
                }
            }
        },
        "/alunos/buscar/{termo}": {
            "get": {
                "tags": [
                    "Alunos"
                ],
                "summary": "Search students by name",
                "parameters": [
                    {
                        "name": "termo",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/StudentDetail"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                }
            }
        },
        "MessageBody": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "ClassRequest": {
            "type": "object",
            "required": [
                "nome",
                "serie",
                "ano"
            ],
            "properties": {
                "nome": {
                    "type": "string"
                },
                "serie": {
                    "type": "string"
                },
                "ano": {
                    "type": "integer"
                }
            }
        },
        "Class": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "nome": {
                    "type": "string"
                },
                "serie": {
                    "type": "string"
                },
                "ano": {
                    "type": "integer"
                },
                "data_cadastro": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "TeacherRequest": {
            "type": "object",
            "required": [
                "nome_completo",
                "data_nascimento",
                "genero",
                "cpf",
                "rg",
                "endereco_rua",
                "endereco_numero",
                "endereco_bairro",
                "endereco_cidade",
                "endereco_estado",
                "endereco_cep",
                "email_institucional",
                "telefone",
                "disciplinas",
                "formacao_academica",
                "data_admissao"
            ],
            "properties": {
                "nome_completo": {
                    "type": "string"
                },
                "data_nascimento": {
                    "type": "string",
                    "format": "date",
                    "example": "2010-03-14"
                },
                "genero": {
                    "type": "string"
                },
                "cpf": {
                    "type": "string"
                },
                "rg": {
                    "type": "string"
                },
                "endereco_rua": {
                    "type": "string"
                },
                "endereco_numero": {
                    "type": "string"
                },
                "endereco_bairro": {
                    "type": "string"
                },
                "endereco_cidade": {
                    "type": "string"
                },
                "endereco_estado": {
                    "type": "string"
                },
                "endereco_cep": {
                    "type": "string"
                },
                "email_institucional": {
                    "type": "string"
                },
                "telefone": {
                    "type": "string"
                },
                "disciplinas": {
                    "type": "string"
                },
                "formacao_academica": {
                    "type": "string"
                },
                "data_admissao": {
                    "type": "string",
                    "format": "date",
                    "example": "2010-03-14"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Ativo",
                        "Inativo"
                    ]
                }
            }
        },
        "Teacher": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "nome_completo": {
                    "type": "string"
                },
                "data_nascimento": {
                    "type": "string",
                    "format": "date",
                    "example": "2010-03-14"
                },
                "genero": {
                    "type": "string"
                },
                "cpf": {
                    "type": "string"
                },
                "rg": {
                    "type": "string"
                },
                "endereco_rua": {
                    "type": "string"
                },
                "endereco_numero": {
                    "type": "string"
                },
                "endereco_bairro": {
                    "type": "string"
                },
                "endereco_cidade": {
                    "type": "string"
                },
                "endereco_estado": {
                    "type": "string"
                },
                "endereco_cep": {
                    "type": "string"
                },
                "email_institucional": {
                    "type": "string"
                },
                "telefone": {
                    "type": "string"
                },
                "disciplinas": {
                    "type": "string"
                },
                "formacao_academica": {
                    "type": "string"
                },
                "data_admissao": {
                    "type": "string",
                    "format": "date",
                    "example": "2010-03-14"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Ativo",
                        "Inativo"
                    ]
                },
                "data_cadastro": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "StudentRequest": {
            "type": "object",
            "required": [
                "nome_completo",
                "data_nascimento",
                "genero",
                "cpf",
                "endereco_rua",
                "endereco_numero",
                "endereco_bairro",
                "endereco_cidade",
                "endereco_estado",
                "endereco_cep",
                "nome_responsavel",
                "telefone_responsavel",
                "email_responsavel",
                "ano_ingresso"
            ],
            "properties": {
                "nome_completo": {
                    "type": "string"
                },
                "data_nascimento": {
                    "type": "string",
                    "format": "date",
                    "example": "2010-03-14"
                },
                "genero": {
                    "type": "string"
                },
                "cpf": {
                    "type": "string"
                },
                "rg": {
                    "type": "string",
                    "x-nullable": true
                },
                "endereco_rua": {
                    "type": "string"
                },
                "endereco_numero": {
                    "type": "string"
                },
                "endereco_bairro": {
                    "type": "string"
                },
                "endereco_cidade": {
                    "type": "string"
                },
                "endereco_estado": {
                    "type": "string"
                },
                "endereco_cep": {
                    "type": "string"
                },
                "nome_responsavel": {
                    "type": "string"
                },
                "telefone_responsavel": {
                    "type": "string"
                },
                "email_responsavel": {
                    "type": "string"
                },
                "turma_id": {
                    "type": "integer",
                    "x-nullable": true
                },
                "ano_ingresso": {
                    "type": "integer"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Ativo",
                        "Inativo"
                    ]
                }
            }
        },
        "StudentDetail": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "nome_completo": {
                    "type": "string"
                },
                "data_nascimento": {
                    "type": "string",
                    "format": "date",
                    "example": "2010-03-14"
                },
                "genero": {
                    "type": "string"
                },
                "cpf": {
                    "type": "string"
                },
                "rg": {
                    "type": "string",
                    "x-nullable": true
                },
                "endereco_rua": {
                    "type": "string"
                },
                "endereco_numero": {
                    "type": "string"
                },
                "endereco_bairro": {
                    "type": "string"
                },
                "endereco_cidade": {
                    "type": "string"
                },
                "endereco_estado": {
                    "type": "string"
                },
                "endereco_cep": {
                    "type": "string"
                },
                "nome_responsavel": {
                    "type": "string"
                },
                "telefone_responsavel": {
                    "type": "string"
                },
                "email_responsavel": {
                    "type": "string"
                },
                "turma_id": {
                    "type": "integer",
                    "x-nullable": true
                },
                "ano_ingresso": {
                    "type": "integer"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Ativo",
                        "Inativo"
                    ]
                },
                "data_cadastro": {
                    "type": "string",
                    "format": "date-time"
                },
                "turma_nome": {
                    "type": "string",
                    "x-nullable": true
                },
                "turma_serie": {
                    "type": "string",
                    "x-nullable": true
                }
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
