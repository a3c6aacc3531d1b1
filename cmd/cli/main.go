package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/taskmgr/mini-task-manager/pkg/openapi3"
)

func main() {
	initTracer()

	httpClient := http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	client, err := openapi3.NewClientWithResponses("http://0.0.0.0:9234", openapi3.WithHTTPClient(&httpClient))
	if err != nil {
		log.Fatalf("Couldn't instantiate client: %s", err)
	}

	newPtrStr := func(s string) *string {
		return &s
	}

	//Create
	respC, err := client.CreateTaskWithResponse(context.Background(),
		openapi3.CreateTaskJSONRequestBody{
			Title:       "Sleep early",
			Description: newPtrStr("Lights out before midnight"),
		})
	if err != nil {
		log.Fatalf("Couldn't create task: %s", err)
	}

	if respC.JSON200 == nil {
		log.Fatalf("Couldn't create task: %s", respC.Status())
	}

	fmt.Printf("New Task\n\tID: %d\n", *respC.JSON200.Id)
	fmt.Printf("\tTitle: %s\n", *respC.JSON200.Title)
	fmt.Printf("\tStatus: %s\n", *respC.JSON200.Status)
	fmt.Printf("\tCreatedAt: %s\n", *respC.JSON200.CreatedAt)

	//Update
	status := openapi3.Completed

	_, err = client.UpdateTaskWithResponse(context.Background(),
		*respC.JSON200.Id,
		openapi3.UpdateTaskJSONRequestBody{
			Description: newPtrStr("Lights out before midnight..."),
			Status:      &status,
		})
	if err != nil {
		log.Fatalf("Couldn't update task: %s", err)
	}

	//Read
	respR, err := client.ReadTaskWithResponse(context.Background(), *respC.JSON200.Id)
	if err != nil {
		log.Fatalf("Couldn't read task: %s", err)
	}

	if respR.JSON200 == nil {
		log.Fatalf("Couldn't read task: %s", respR.Status())
	}

	fmt.Printf("Updated Task\n\tID: %d\n", *respR.JSON200.Id)
	fmt.Printf("\tTitle: %s\n", *respR.JSON200.Title)
	fmt.Printf("\tDescription: %s\n", *respR.JSON200.Description)
	fmt.Printf("\tStatus: %s\n", *respR.JSON200.Status)

	//Clear
	respD, err := client.ClearCompletedTasksWithResponse(context.Background())
	if err != nil {
		log.Fatalf("Couldn't clear completed tasks: %s", err)
	}

	if respD.JSON200 != nil {
		fmt.Printf("%s\n", *respD.JSON200.Message)
	}

	// Give the batch span processor time to flush.
	time.Sleep(10 * time.Second)
}

//initTracer initializes OpenTelemetry tracing with Jaeger and stdout exporters
func initTracer() {
	jaegerEndpoint := "http://localhost:14268/api/traces"

	jaegerExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
	if err != nil {
		log.Fatalf("Couldn't initialize jaeger exporter: %s", err)
	}

	stdoutExporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		log.Fatalf("Couldn't initialize stdout exporter: %s", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(stdoutExporter),
		sdktrace.WithBatcher(jaegerExporter),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
}
