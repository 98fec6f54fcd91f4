package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"social-feed/configs"
	"social-feed/internal/comment"
	"social-feed/internal/event"
	"social-feed/internal/karma"
	"social-feed/internal/like"
	"social-feed/internal/migrate"
	"social-feed/internal/post"
	"social-feed/internal/ratelimit"
	"social-feed/internal/shared/db"
	"social-feed/internal/shared/httpx"
	"social-feed/internal/user"
	"social-feed/pkg/di"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "otel-collector:4318"
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(os.Getenv("OTEL_SERVICE_NAME")),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}
	cfg := configs.LoadConfig()

	ctx := context.Background()
	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	store := db.Open(cfg)

	var rdb *redis.Client
	if addr := cfg.RedisAddr(); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr, DB: 0})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping: %v", err)
		}
	}

	var events event.Writer
	if cfg.KafkaBrokers != "" {
		var err error
		events, err = event.NewWriter(cfg.KafkaBrokers, "feed.events")
		if err != nil {
			log.Fatalf("kafka writer: %v", err)
		}
		defer events.Close()
	}

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := migrate.AutoMigrateAll(store); err != nil {
			log.Fatalf("migrate: %v", err)
		}
	}

	c := di.BuildContainer(store, rdb, events)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	uh := user.NewHandler(c.UserService)
	mux.Handle("POST /auth/guest", httpx.Wrap(uh.GuestLogin))

	ph := post.NewHandler(c.PostService)
	mux.Handle("GET /posts", httpx.OptionalAuth(httpx.Wrap(ph.List)))
	mux.Handle("GET /posts/{post_id}", httpx.OptionalAuth(httpx.Wrap(ph.GetByID)))

	ch := comment.NewHandler(c.CommentService)
	mux.Handle("GET /posts/{post_id}/comments", httpx.OptionalAuth(httpx.Wrap(ch.TreeByPost)))

	kh := karma.NewHandler(c.KarmaService)
	mux.Handle("GET /leaderboard", httpx.Wrap(kh.Leaderboard))

	var limiter *ratelimit.Limiter
	if rdb != nil {
		limiter = ratelimit.New(rdb)
	}
	protect := func(pattern string, h http.Handler) {
		if limiter != nil {
			h = limiter.PerUser(60, time.Minute, h)
		}
		mux.Handle(pattern, httpx.AuthMiddleware(h))
	}

	lh := like.NewHandler(c.LikeService)
	protect("POST /posts", httpx.Wrap(ph.Create))
	protect("POST /posts/{post_id}/comments", httpx.Wrap(ch.Create))
	protect("POST /posts/{post_id}/like", httpx.Wrap(lh.TogglePost))
	protect("POST /comments/{comment_id}/like", httpx.Wrap(lh.ToggleComment))
	protect("GET /me", httpx.Wrap(uh.Me))

	protect("GET /whoami", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := httpx.UserFromCtx(r)
		if err != nil {
			httpx.WriteJSON(w, map[string]any{"error": err.Error()}, http.StatusUnauthorized)
			return
		}
		httpx.WriteJSON(w, map[string]any{"user_id": uid}, http.StatusOK)
	}))

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           otelhttp.NewHandler(mux, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("social-feed listening on %s", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down")
	sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
}
