package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/didip/tollbooth/v6"
	"github.com/didip/tollbooth/v6/limiter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"
	"go.uber.org/zap"

	"github.com/taskmgr/mini-task-manager/cmd/internal"
	internaldomain "github.com/taskmgr/mini-task-manager/internal"
	"github.com/taskmgr/mini-task-manager/internal/elasticsearch"
	envvar "github.com/taskmgr/mini-task-manager/internal/envar"
	"github.com/taskmgr/mini-task-manager/internal/kafka"
	"github.com/taskmgr/mini-task-manager/internal/memcached"
	"github.com/taskmgr/mini-task-manager/internal/postgresql"
	"github.com/taskmgr/mini-task-manager/internal/rabbitmq"
	"github.com/taskmgr/mini-task-manager/internal/redis"
	"github.com/taskmgr/mini-task-manager/internal/rest"
	"github.com/taskmgr/mini-task-manager/internal/service"
)

func main() {
	var env, address string

	flag.StringVar(&env, "env", "", "Environment Variables filename")
	flag.StringVar(&address, "address", ":9234", "HTTP Server Address")
	flag.Parse()

	errC, err := run(env, address)
	if err != nil {
		log.Fatalf("Couldn't run: %s", err)
	}

	if err := <-errC; err != nil {
		log.Fatalf("Error while running: %s", err)
	}
}

func run(env, address string) (<-chan error, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "zap.NewProduction")
	}

	if err := envvar.Load(env); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "envvar.Load")
	}

	vault, err := internal.NewVaultProvider()
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewVaultProvider")
	}

	conf := envvar.New(vault)

	pool, err := internal.NewPostgreSQL(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewPostgreSQL")
	}

	if err := postgresql.Migrate(context.Background(), pool); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "postgresql.Migrate")
	}

	es, err := internal.NewElasticSearch(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewElasticSearch")
	}

	msgBroker, closeBroker, err := newMessageBroker(conf)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "newMessageBroker")
	}

	repo, err := newTaskRepository(conf, pool, logger)
	if err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "newTaskRepository")
	}

	if _, err := internal.NewOTExporter(conf); err != nil {
		return nil, internaldomain.WrapErrorf(err, internaldomain.ErrorCodeUnknown, "internal.NewOTExporter")
	}

	logging := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Info(r.Method,
				zap.Time("time", time.Now()),
				zap.String("url", r.URL.String()),
			)

			h.ServeHTTP(w, r)
		})
	}

	srv, err := newServer(serverConfig{
		Address:     address,
		Repository:  repo,
		Search:      elasticsearch.NewTaskCircuitBreaker(elasticsearch.NewTask(es)),
		MsgBroker:   msgBroker,
		Middlewares: []func(next http.Handler) http.Handler{otelchi.Middleware("mini-task-manager"), logging},
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("newServer %w", err)
	}

	errC := make(chan error, 1)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	go func() {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		defer func() {
			_ = logger.Sync()
			pool.Close()
			closeBroker()
			stop()
			cancel()
			close(errC)
		}()

		srv.SetKeepAlivesEnabled(false)

		if err := srv.Shutdown(ctxTimeout); err != nil {
			errC <- err
		}

		logger.Info("Shutdown completed")
	}()

	go func() {
		logger.Info("Listening and serving", zap.String("address", address))

		// "ListenAndServe always returns a non-nil error. After Shutdown or
		// Close, the returned error is ErrServerClosed."
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errC <- err
		}
	}()

	return errC, nil
}

//newMessageBroker selects the event publisher using the configured broker
//backend, defaulting to kafka. The returned function releases the broker
//resources during shutdown.
func newMessageBroker(conf *envvar.Configuration) (service.TaskMessageBrokerRepository, func(), error) {
	backend, err := conf.Get("BROKER_BACKEND")
	if err != nil {
		return nil, nil, fmt.Errorf("conf.Get BROKER_BACKEND %w", err)
	}

	switch backend {
	case "rabbitmq":
		rmq, err := internal.NewRabbitMQ(conf)
		if err != nil {
			return nil, nil, fmt.Errorf("internal.NewRabbitMQ %w", err)
		}

		broker, err := rabbitmq.NewTask(rmq.Channel)
		if err != nil {
			return nil, nil, fmt.Errorf("rabbitmq.NewTask %w", err)
		}

		return broker, rmq.Close, nil
	default:
		kafkaProducer, err := internal.NewKafkaProducer(conf)
		if err != nil {
			return nil, nil, fmt.Errorf("internal.NewKafkaProducer %w", err)
		}

		return kafka.NewTask(kafkaProducer.Producer, kafkaProducer.Topic), kafkaProducer.Producer.Close, nil
	}
}

//newTaskRepository decorates the PostgreSQL repository with the configured
//cache backend, defaulting to memcached.
func newTaskRepository(conf *envvar.Configuration, pool *pgxpool.Pool, logger *zap.Logger) (service.TaskRepository, error) {
	repo := postgresql.NewTask(pool)

	backend, err := conf.Get("CACHE_BACKEND")
	if err != nil {
		return nil, fmt.Errorf("conf.Get CACHE_BACKEND %w", err)
	}

	switch backend {
	case "redis":
		rdb, err := internal.NewRedis(conf)
		if err != nil {
			return nil, fmt.Errorf("internal.NewRedis %w", err)
		}

		return redis.NewTask(rdb, repo, logger), nil
	case "none":
		return repo, nil
	default:
		client, err := internal.NewMemcached(conf)
		if err != nil {
			return nil, fmt.Errorf("internal.NewMemcached %w", err)
		}

		return memcached.NewTask(client, repo, logger), nil
	}
}

type serverConfig struct {
	Address     string
	Repository  service.TaskRepository
	Search      service.TaskSearchRepository
	MsgBroker   service.TaskMessageBrokerRepository
	Middlewares []func(next http.Handler) http.Handler
	Logger      *zap.Logger
}

func newServer(conf serverConfig) (*http.Server, error) {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	router.Use(render.SetContentType(render.ContentTypeJSON))

	for _, mw := range conf.Middlewares {
		router.Use(mw)
	}

	svc := service.NewTask(conf.Logger, conf.Repository, conf.Search, conf.MsgBroker)

	rest.RegisterOpenAPI(router)
	rest.NewTaskHandler(svc).Register(router)

	router.Handle("/metrics", promhttp.Handler())

	lmt := tollbooth.NewLimiter(100, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Second})
	lmtmw := tollbooth.LimitHandler(lmt, router)

	return &http.Server{
		Handler:           lmtmw,
		Addr:              conf.Address,
		ReadTimeout:       1 * time.Second,
		ReadHeaderTimeout: 1 * time.Second,
		WriteTimeout:      1 * time.Second,
		IdleTimeout:       1 * time.Second,
	}, nil
}
