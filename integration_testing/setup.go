// Package integration_testing runs the service against a real redis started with dockertest.
package integration_testing

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/2beens/workoutprogress/internal"
	"github.com/2beens/workoutprogress/internal/config"
	"github.com/2beens/workoutprogress/internal/history"
)

const (
	serverPort  = 9000
	metricsPort = "9001"
	serverHost  = "127.0.0.1"
	redisKey    = "workout-history-integration"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

// Env is a running service backed by a redis container.
type Env struct {
	Server      *internal.Server
	RedisClient *redis.Client

	dockerPool *dockertest.Pool
	teardown   []func()
}

func NewEnv(ctx context.Context) (_ *Env, err error) {
	env := &Env{}
	defer func() {
		if err != nil {
			env.Cleanup()
		}
	}()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	env.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}
	env.dockerPool.MaxWait = time.Minute

	// uses pool to try to connect to Docker
	if err = env.dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	redisPort, err := env.redisSetup(ctx)
	if err != nil {
		return nil, fmt.Errorf("setup redis: %w", err)
	}

	cfg := TestConfig(redisPort)
	env.Server, err = internal.NewServer(ctx, internal.NewServerParams{
		Config:      cfg,
		VersionInfo: "integration",
	})
	if err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}
	env.Server.Serve(cfg.Host, cfg.Port)

	if err := env.dockerPool.Retry(func() error {
		conn, err := net.Dial("tcp", net.JoinHostPort(serverHost, fmt.Sprint(serverPort)))
		if err != nil {
			return err
		}
		return conn.Close()
	}); err != nil {
		return nil, fmt.Errorf("server not reachable: %w", err)
	}

	return env, nil
}

func TestConfig(redisPort string) *config.Config {
	return &config.Config{
		Host:                  serverHost,
		Port:                  serverPort,
		Environment:           "integration",
		LogLevel:              "debug",
		StorageBackend:        config.StorageRedis,
		RedisHost:             "localhost",
		RedisPort:             redisPort,
		RedisKey:              redisKey,
		ReportCacheSizeMB:     1,
		PrometheusMetricsHost: serverHost,
		PrometheusMetricsPort: metricsPort,
	}
}

func (e *Env) redisSetup(ctx context.Context) (string, error) {
	redisResource, err := e.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}
	e.teardown = append(e.teardown, func() {
		_ = e.dockerPool.Purge(redisResource)
	})

	redisPort := redisResource.GetPort("6379/tcp")
	e.RedisClient = redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", redisPort),
	})
	e.teardown = append(e.teardown, func() {
		_ = e.RedisClient.Close()
	})

	if err := e.dockerPool.Retry(func() error {
		return e.RedisClient.Ping(ctx).Err()
	}); err != nil {
		return "", fmt.Errorf("redis not ready: %w", err)
	}

	return redisPort, nil
}

// SetRawHistory overwrites the history key, bypassing the service.
func (e *Env) SetRawHistory(ctx context.Context, payload string) error {
	return e.RedisClient.Set(ctx, redisKey, payload, 0).Err()
}

func (e *Env) RawHistory(ctx context.Context) (string, error) {
	payload, err := e.RedisClient.Get(ctx, redisKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", history.ErrSlotEmpty
	}
	return payload, err
}

func (e *Env) Cleanup() {
	if e.Server != nil {
		e.Server.GracefulShutdown()
	}
	// teardown in reverse order: client before container
	for i := len(e.teardown) - 1; i >= 0; i-- {
		e.teardown[i]()
	}
}
