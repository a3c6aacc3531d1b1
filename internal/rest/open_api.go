package rest

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/ghodss/yaml"
	"github.com/go-chi/chi/v5"
)

//NewOpenAPI3 instantiates the OpenAPI specification for this service.
func NewOpenAPI3() openapi3.T {
	swagger := openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "Mini Task Manager API",
			Description: "A minimalist backend for managing daily tasks.",
			Version:     "1.0.0",
		},
		Servers: openapi3.Servers{
			&openapi3.Server{
				Description: "Local development",
				URL:         "http://0.0.0.0:9234",
			},
		},
	}

	createTasksSchema := openapi3.NewObjectSchema().
		WithProperty("title", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("description", openapi3.NewStringSchema().WithNullable())
	createTasksSchema.Required = []string{"title"}

	swagger.Components = &openapi3.Components{
		Schemas: openapi3.Schemas{
			"Task": openapi3.NewSchemaRef("",
				openapi3.NewObjectSchema().
					WithProperty("id", openapi3.NewInt64Schema()).
					WithProperty("title", openapi3.NewStringSchema()).
					WithProperty("description", openapi3.NewStringSchema().WithNullable()).
					WithProperty("status", openapi3.NewStringSchema().
						WithEnum("pending", "in-progress", "completed")).
					WithProperty("created_at", openapi3.NewStringSchema().
						WithFormat("date-time"))),
		},
		RequestBodies: openapi3.RequestBodies{
			"CreateTasksRequest": &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().
					WithDescription("Request used for creating a task.").
					WithRequired(true).
					WithJSONSchema(createTasksSchema),
			},
			"UpdateTasksRequest": &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().
					WithDescription("Request used for updating a task, all fields are optional.").
					WithRequired(true).
					WithJSONSchema(openapi3.NewObjectSchema().
						WithProperty("title", openapi3.NewStringSchema().WithMinLength(1)).
						WithProperty("description", openapi3.NewStringSchema().WithNullable()).
						WithProperty("status", openapi3.NewStringSchema().
							WithEnum("pending", "in-progress", "completed"))),
			},
			"SearchTasksRequest": &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().
					WithDescription("Request used for searching tasks.").
					WithRequired(true).
					WithJSONSchema(openapi3.NewObjectSchema().
						WithProperty("title", openapi3.NewStringSchema()).
						WithProperty("status", openapi3.NewStringSchema().
							WithEnum("pending", "in-progress", "completed"))),
			},
		},
		Responses: openapi3.Responses{
			"ErrorResponse": &openapi3.ResponseRef{
				Value: openapi3.NewResponse().
					WithDescription("Response when an error happens.").
					WithJSONSchema(openapi3.NewObjectSchema().
						WithProperty("error", openapi3.NewStringSchema())),
			},
			"MessageResponse": &openapi3.ResponseRef{
				Value: openapi3.NewResponse().
					WithDescription("Confirmation returned by destructive operations.").
					WithJSONSchema(openapi3.NewObjectSchema().
						WithProperty("message", openapi3.NewStringSchema())),
			},
			"TaskResponse": &openapi3.ResponseRef{
				Value: openapi3.NewResponse().
					WithDescription("Response returning a single task.").
					WithJSONSchemaRef(&openapi3.SchemaRef{
						Ref: "#/components/schemas/Task",
					}),
			},
			"TasksResponse": &openapi3.ResponseRef{
				Value: openapi3.NewResponse().
					WithDescription("Response returning a collection of tasks.").
					WithJSONSchemaRef(&openapi3.SchemaRef{
						Value: &openapi3.Schema{
							Type: "array",
							Items: &openapi3.SchemaRef{
								Ref: "#/components/schemas/Task",
							},
						},
					}),
			},
		},
	}

	swagger.Paths = openapi3.Paths{
		"/tasks": &openapi3.PathItem{
			Get: &openapi3.Operation{
				OperationID: "ListTasks",
				Parameters: openapi3.Parameters{
					&openapi3.ParameterRef{
						Value: openapi3.NewQueryParameter("status").
							WithSchema(openapi3.NewStringSchema().
								WithEnum("pending", "in-progress", "completed")),
					},
				},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/TasksResponse"},
					"422": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
			Post: &openapi3.Operation{
				OperationID: "CreateTask",
				RequestBody: &openapi3.RequestBodyRef{
					Ref: "#/components/requestBodies/CreateTasksRequest",
				},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/TaskResponse"},
					"422": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
		"/tasks/{id}": &openapi3.PathItem{
			Parameters: openapi3.Parameters{
				&openapi3.ParameterRef{
					Value: openapi3.NewPathParameter("id").
						WithSchema(openapi3.NewInt64Schema()),
				},
			},
			Get: &openapi3.Operation{
				OperationID: "ReadTask",
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/TaskResponse"},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
			Put: &openapi3.Operation{
				OperationID: "UpdateTask",
				RequestBody: &openapi3.RequestBodyRef{
					Ref: "#/components/requestBodies/UpdateTasksRequest",
				},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/TaskResponse"},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"422": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
			Delete: &openapi3.Operation{
				OperationID: "DeleteTask",
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/MessageResponse"},
					"404": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
		"/tasks/completed/clear": &openapi3.PathItem{
			Delete: &openapi3.Operation{
				OperationID: "ClearCompletedTasks",
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/MessageResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
		"/tasks/search": &openapi3.PathItem{
			Post: &openapi3.Operation{
				OperationID: "SearchTasks",
				RequestBody: &openapi3.RequestBodyRef{
					Ref: "#/components/requestBodies/SearchTasksRequest",
				},
				Responses: openapi3.Responses{
					"200": &openapi3.ResponseRef{Ref: "#/components/responses/TasksResponse"},
					"422": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
					"500": &openapi3.ResponseRef{Ref: "#/components/responses/ErrorResponse"},
				},
			},
		},
	}

	return swagger
}

//RegisterOpenAPI connects the OpenAPI endpoints to the router.
func RegisterOpenAPI(r *chi.Mux) {
	swagger := NewOpenAPI3()

	r.Get("/openapi3.json", func(w http.ResponseWriter, _ *http.Request) {
		renderResponse(w, &swagger, http.StatusOK)
	})

	r.Get("/openapi3.yaml", func(w http.ResponseWriter, _ *http.Request) {
		data, err := yaml.Marshal(&swagger)
		if err != nil {
			http.Error(w, "couldn't marshal", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/x-yaml")
		_, _ = w.Write(data)
	})
}
