package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/taskmgr/mini-task-manager/cmd/internal"
	internaldomain "github.com/taskmgr/mini-task-manager/internal"
	"github.com/taskmgr/mini-task-manager/internal/elasticsearch"
	envvar "github.com/taskmgr/mini-task-manager/internal/envar"
)

func main() {
	var env string

	flag.StringVar(&env, "env", "", "Environment Variables filename")
	flag.Parse()

	errC, err := run(env)
	if err != nil {
		log.Fatalf("Couldn't run: %s", err)
	}

	if err := <-errC; err != nil {
		log.Fatalf("Error while running: %s", err)
	}
}

func run(env string) (<-chan error, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("zap.NewProduction %w", err)
	}

	if err := envvar.Load(env); err != nil {
		return nil, fmt.Errorf("envvar.Load %w", err)
	}

	vault, err := internal.NewVaultProvider()
	if err != nil {
		return nil, fmt.Errorf("internal.NewVaultProvider %w", err)
	}

	conf := envvar.New(vault)

	es, err := internal.NewElasticSearch(conf)
	if err != nil {
		return nil, fmt.Errorf("internal.NewElasticSearch %w", err)
	}

	rmq, err := internal.NewRabbitMQ(conf)
	if err != nil {
		return nil, fmt.Errorf("internal.NewRabbitMQ %w", err)
	}

	if _, err = internal.NewOTExporter(conf); err != nil {
		return nil, fmt.Errorf("internal.NewOTExporter %w", err)
	}

	srv := &Server{
		logger: logger,
		rmq:    rmq,
		task:   elasticsearch.NewTask(es),
		doneC:  make(chan struct{}),
	}

	errC := make(chan error, 1)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)

		defer func() {
			_ = logger.Sync()
			rmq.Close()
			stop()
			cancel()
			close(errC)
		}()

		if err := srv.Shutdown(ctxTimeout); err != nil {
			errC <- err
		}

		logger.Info("Shutdown completed")
	}()

	go func() {
		logger.Info("Listening and serving")

		if err := srv.ListenAndServe(); err != nil {
			errC <- err
		}
	}()

	return errC, nil
}

//Server consumes task events and keeps the search index in sync.
type Server struct {
	logger *zap.Logger
	rmq    *internal.RabbitMQ
	task   *elasticsearch.Task
	doneC  chan struct{}
}

//ListenAndServe binds a queue to the task events exchange and consumes
//messages until Shutdown is called.
func (s *Server) ListenAndServe() error {
	queue, err := s.rmq.Channel.QueueDeclare(
		"elasticsearch-indexer", // name
		true,                    // durable
		false,                   // auto-delete
		false,                   // exclusive
		false,                   // noWait
		nil,                     // arguments
	)
	if err != nil {
		return fmt.Errorf("channel.QueueDeclare %w", err)
	}

	err = s.rmq.Channel.QueueBind(
		queue.Name,      // queue name
		"tasks.event.*", // routing key
		"tasks",         // exchange
		false,           // noWait
		nil,             // arguments
	)
	if err != nil {
		return fmt.Errorf("channel.QueueBind %w", err)
	}

	msgs, err := s.rmq.Channel.Consume(
		queue.Name, // queue
		"",         // consumer
		false,      // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return fmt.Errorf("channel.Consume %w", err)
	}

	go func() {
		for msg := range msgs {
			s.logger.Info("Received message", zap.String("routing_key", msg.RoutingKey))

			var evt struct {
				ID    string
				Type  string
				Value internaldomain.Task
			}

			if err := json.NewDecoder(bytes.NewReader(msg.Body)).Decode(&evt); err != nil {
				s.logger.Info("Ignoring invalid message", zap.Error(err))
				s.nack(msg)

				continue
			}

			ok := false

			switch msg.RoutingKey {
			case "tasks.event.created", "tasks.event.updated":
				if err := s.task.Index(context.Background(), evt.Value); err == nil {
					ok = true
				}
			case "tasks.event.deleted":
				if err := s.task.Delete(context.Background(), evt.Value.ID); err == nil {
					ok = true
				}
			}

			if ok {
				s.logger.Info("Consumed", zap.String("type", evt.Type), zap.String("event_id", evt.ID))

				if err := msg.Ack(false); err != nil {
					s.logger.Error("ack failed", zap.Error(err))
				}

				continue
			}

			s.nack(msg)
		}

		s.logger.Info("No more messages to consume. Exiting.")
		s.doneC <- struct{}{}
	}()

	return nil
}

func (s *Server) nack(msg amqp.Delivery) {
	if err := msg.Nack(false, false); err != nil {
		s.logger.Error("nack failed", zap.Error(err))
	}
}

//Shutdown closes the channel so the consumer goroutine drains and exits.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	if err := s.rmq.Channel.Close(); err != nil {
		return fmt.Errorf("channel.Close %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("context.Done: %w", ctx.Err())
		case <-s.doneC:
			return nil
		}
	}
}
