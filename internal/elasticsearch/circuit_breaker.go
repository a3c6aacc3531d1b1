package elasticsearch

import (
	"context"
	"time"

	"github.com/mercari/go-circuitbreaker"

	"github.com/taskmgr/mini-task-manager/internal"
)

//TaskCircuitBreaker protects the search cluster from repeated calls while it
//is unhealthy, every repository method goes through the breaker.
type TaskCircuitBreaker struct {
	orig *Task
	cb   *circuitbreaker.CircuitBreaker
}

//NewTaskCircuitBreaker instantiates the decorator.
func NewTaskCircuitBreaker(orig *Task) *TaskCircuitBreaker {
	return &TaskCircuitBreaker{
		orig: orig,
		cb: circuitbreaker.New(
			circuitbreaker.WithOpenTimeout(time.Minute),
			circuitbreaker.WithTripFunc(circuitbreaker.NewTripFuncConsecutiveFailures(3)),
		),
	}
}

//Index ...
func (t *TaskCircuitBreaker) Index(ctx context.Context, task internal.Task) error {
	_, err := t.do(ctx, func() (interface{}, error) {
		return nil, t.orig.Index(ctx, task)
	})

	return err
}

//Delete ...
func (t *TaskCircuitBreaker) Delete(ctx context.Context, id int64) error {
	_, err := t.do(ctx, func() (interface{}, error) {
		return nil, t.orig.Delete(ctx, id)
	})

	return err
}

//Search ...
func (t *TaskCircuitBreaker) Search(ctx context.Context, args internal.SearchParams) (internal.SearchResults, error) {
	res, err := t.do(ctx, func() (interface{}, error) {
		return t.orig.Search(ctx, args)
	})
	if err != nil {
		return internal.SearchResults{}, err
	}

	return res.(internal.SearchResults), nil
}

func (t *TaskCircuitBreaker) do(ctx context.Context, fn func() (interface{}, error)) (interface{}, error) {
	if !t.cb.Ready() {
		return nil, internal.NewErrorf(internal.ErrorCodeUnknown, "circuit breaker open")
	}

	res, err := t.cb.Do(ctx, fn)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "cb.Do")
	}

	return res, nil
}
