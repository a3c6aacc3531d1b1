package redis

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	rv8 "github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/taskmgr/mini-task-manager/internal"
)

const otelName = "github.com/taskmgr/mini-task-manager/internal/redis"

func taskKey(id int64) string {
	return fmt.Sprintf("task:%d", id)
}

func deleteTask(ctx context.Context, client *rv8.Client, key string) {
	defer newOTELSpan(ctx, "deleteTask").End()

	_ = client.Del(ctx, key).Err()
}

func getTask(ctx context.Context, client *rv8.Client, key string, target interface{}) error {
	defer newOTELSpan(ctx, "getTask").End()

	val, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.Get")
	}

	if err := gob.NewDecoder(bytes.NewReader(val)).Decode(target); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "gob.NewDecoder")
	}

	return nil
}

func setTask(ctx context.Context, client *rv8.Client, key string, value interface{}, expiration time.Duration) {
	defer newOTELSpan(ctx, "setTask").End()

	var b bytes.Buffer

	if err := gob.NewEncoder(&b).Encode(value); err != nil {
		return
	}

	_ = client.Set(ctx, key, b.Bytes(), expiration).Err()
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemRedis)

	return span
}
