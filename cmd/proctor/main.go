// Proctor evaluation server: serves the chat and submission API, runs the
// sandbox worker pool and enforces data retention.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/examkit/proctor/pkg/api"
	"github.com/examkit/proctor/pkg/cache"
	"github.com/examkit/proctor/pkg/cleanup"
	"github.com/examkit/proctor/pkg/config"
	"github.com/examkit/proctor/pkg/database"
	"github.com/examkit/proctor/pkg/engine"
	"github.com/examkit/proctor/pkg/judge"
	"github.com/examkit/proctor/pkg/llm"
	"github.com/examkit/proctor/pkg/masking"
	"github.com/examkit/proctor/pkg/middleware"
	"github.com/examkit/proctor/pkg/problems"
	"github.com/examkit/proctor/pkg/prompts"
	"github.com/examkit/proctor/pkg/services"
	"github.com/examkit/proctor/pkg/tokens"
	"github.com/examkit/proctor/pkg/turneval"
	"github.com/examkit/proctor/pkg/version"
	"github.com/joho/godotenv"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// buildLLMClient resolves the named provider from the registry and wraps it
// in the standard middleware stack: metrics outermost, then rate limiting,
// retries, credential masking, and call logging closest to the provider.
// A nil scrubber skips the masking layer.
func buildLLMClient(ctx context.Context, registry *config.LLMProviderRegistry, scrubber *masking.Service, name, caller string) (llm.Client, error) {
	pcfg, err := registry.Get(name)
	if err != nil {
		return nil, err
	}

	clientCfg := llm.Config{
		Provider:  string(pcfg.Type),
		Model:     pcfg.Model,
		MaxTokens: pcfg.MaxTokens,
	}
	if pcfg.APIKeyEnv != "" {
		clientCfg.APIKey = os.Getenv(pcfg.APIKeyEnv)
	}
	if pcfg.Temperature != nil {
		clientCfg.Temperature = *pcfg.Temperature
	}

	base, err := llm.New(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create %s client: %w", caller, err)
	}

	rateCfg := middleware.DefaultRateLimitConfig()
	if pcfg.RateLimit != nil {
		rateCfg = middleware.RateLimitConfig{
			MaxCalls: pcfg.RateLimit.MaxCalls,
			Window:   pcfg.RateLimit.Period,
		}
	}
	retryCfg := middleware.DefaultRetryConfig()
	if pcfg.Retry != nil {
		retryCfg = middleware.RetryConfig{
			MaxAttempts:  pcfg.Retry.MaxRetries,
			Strategy:     string(pcfg.Retry.Backoff),
			InitialDelay: pcfg.Retry.InitialDelay,
			MaxDelay:     pcfg.Retry.MaxDelay,
		}
	}

	mws := []middleware.Middleware{
		middleware.Metrics(caller),
		middleware.RateLimit(rateCfg),
		middleware.Retry(retryCfg),
	}
	if scrubber != nil {
		mws = append(mws, middleware.Masking(scrubber))
	}
	mws = append(mws, middleware.Logging(caller))

	return middleware.Chain(base, mws...), nil
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting proctor",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Connect the cache. Redis going down must not take the engine down:
	// sessions degrade to Postgres-only reads and the in-memory queue.
	var cacheClient *cache.Client
	cacheCfg := cache.Config{
		Addr:       fmt.Sprintf("%s:%d", cfg.Cache.Host, cfg.Cache.Port),
		DB:         cfg.Cache.DB,
		DefaultTTL: cfg.Cache.DefaultTTL,
	}
	if cfg.Cache.PasswordEnv != "" {
		cacheCfg.Password = os.Getenv(cfg.Cache.PasswordEnv)
	}
	cacheClient, err = cache.NewClient(ctx, cacheCfg)
	if err != nil {
		slog.Warn("Cache unavailable, continuing without live state", "addr", cacheCfg.Addr, "error", err)
		cacheClient = nil
	} else {
		defer func() {
			if err := cacheClient.Close(); err != nil {
				slog.Error("Error closing cache client", "error", err)
			}
		}()
		slog.Info("Connected to Redis cache", "addr", cacheCfg.Addr)
	}

	// 4. Create LLM clients. Chat writes tutor replies; eval runs the
	// guardrail and every scoring call. They may name the same provider but
	// keep separate middleware stacks so rate limits do not interfere. Both
	// stacks share one credential scrubber: participants paste live tokens
	// into chat and code, and that text ships to third-party providers.
	var scrubber *masking.Service
	if cfg.Masking.IsEnabled() {
		scrubber = masking.NewService(cfg.Masking)
	} else {
		slog.Info("Outbound credential masking disabled")
	}

	chatClient, err := buildLLMClient(ctx, cfg.LLMProviderRegistry, scrubber, cfg.Defaults.LLMProvider, "chat")
	if err != nil {
		slog.Error("Failed to initialize chat LLM client", "provider", cfg.Defaults.LLMProvider, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := chatClient.Close(); err != nil {
			slog.Error("Error closing chat LLM client", "error", err)
		}
	}()

	evalProvider := cfg.Defaults.EvalProvider()
	evalClient, err := buildLLMClient(ctx, cfg.LLMProviderRegistry, scrubber, evalProvider, "eval")
	if err != nil {
		slog.Error("Failed to initialize eval LLM client", "provider", evalProvider, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := evalClient.Close(); err != nil {
			slog.Error("Error closing eval LLM client", "error", err)
		}
	}()
	slog.Info("LLM clients initialized", "chat_provider", cfg.Defaults.LLMProvider, "eval_provider", evalProvider)

	// 5. Registries: prompt templates (deployment overrides win over the
	// embedded set) and the problem bank (database rows win over the static
	// fallback set).
	promptRegistry := prompts.NewRegistryWithOverlay(filepath.Join(*configDir, "prompts"))
	problemRegistry := problems.NewRegistry(services.NewProblemStore(dbClient.Client))

	// 6. Execution queue and judge workers. No Judge0 endpoint means no
	// sandbox: the engine scores correctness by LLM estimation instead.
	var execQueue judge.Queue
	var workers []*judge.Worker
	if cfg.Judge0.BaseURL == "" {
		slog.Warn("Judge0 base URL not configured, sandbox execution disabled")
	} else {
		judgeCfg := judge.Judge0Config{
			BaseURL:      cfg.Judge0.BaseURL,
			PollInterval: cfg.Judge0.PollInterval,
		}
		if cfg.Judge0.APIKeyEnv != "" {
			judgeCfg.APIKey = os.Getenv(cfg.Judge0.APIKeyEnv)
		}
		if cfg.Judge0.MaxPollAttempts > 0 {
			judgeCfg.MaxWait = cfg.Judge0.PollInterval * time.Duration(cfg.Judge0.MaxPollAttempts)
		}
		executor, judgeErr := judge.NewJudge0Client(judgeCfg)
		if judgeErr != nil {
			slog.Error("Failed to initialize Judge0 client", "error", judgeErr)
			os.Exit(1)
		}

		if cacheClient != nil {
			execQueue = judge.NewRedisQueue(cacheClient)
		} else {
			slog.Warn("Using in-memory execution queue, tasks do not survive restarts")
			execQueue = judge.NewMemoryQueue()
		}

		for i := 0; i < cfg.Queue.WorkerCount; i++ {
			w := judge.NewWorker(execQueue, executor, cfg.Queue.BlockTimeout)
			w.Start(ctx)
			workers = append(workers, w)
		}
		slog.Info("Judge workers started", "count", len(workers), "judge0", cfg.Judge0.BaseURL)
	}

	// 7. Evaluation engine
	turnEvaluator := turneval.NewEvaluator(evalClient, promptRegistry)
	eng, err := engine.New(
		engine.Dependencies{
			Chat:     chatClient,
			Eval:     evalClient,
			Prompts:  promptRegistry,
			Problems: problemRegistry,
			Cache:    cacheClient,
			Queue:    execQueue,
			Turns:    turnEvaluator,
		},
		engine.Options{
			HistoryWindow:       cfg.Defaults.HistoryWindow,
			TurnEvalParallelism: cfg.Scoring.TurnEvalParallelism,
			GuardrailEnabled:    cfg.Guardrail.Enabled,
			ExtraBlockKeywords:  cfg.Guardrail.ExtraBlockKeywords,
			ExtraHintKeywords:   cfg.Guardrail.ExtraHintKeywords,
			ResultPollInterval:  cfg.Queue.ResultPollInterval,
			ResultMaxWait:       cfg.Queue.ResultMaxWait,
			PromptWeight:        cfg.Scoring.PromptWeight,
			PerformanceWeight:   cfg.Scoring.PerformanceWeight,
			CorrectnessWeight:   cfg.Scoring.CorrectnessWeight,
		},
	)
	if err != nil {
		slog.Error("Failed to build evaluation engine", "error", err)
		os.Exit(1)
	}

	// 8. Domain services and the orchestrator
	sessionService := services.NewSessionService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	evaluationService := services.NewEvaluationService(dbClient.Client)
	submissionService := services.NewSubmissionService(dbClient.Client)

	orchestrator, err := services.NewOrchestrator(services.OrchestratorConfig{
		Engine:      eng,
		Sessions:    sessionService,
		Messages:    messageService,
		Evaluations: evaluationService,
		Submissions: submissionService,
		Queue:       execQueue,
		Cache:       cacheClient,
		Turns:       turnEvaluator,
		Problems:    problemRegistry,
		Counter:     tokens.Default(),
	})
	if err != nil {
		slog.Error("Failed to build orchestrator", "error", err)
		os.Exit(1)
	}
	slog.Info("Services initialized")

	// 9. Retention cleanup on a cron schedule
	cleanupService := cleanup.NewService(cfg.Retention, sessionService, evaluationService)
	if err := cleanupService.Start(ctx); err != nil {
		slog.Error("Failed to start cleanup service", "error", err)
		os.Exit(1)
	}

	// 10. Create HTTP server
	serverCfg := api.ServerConfig{
		Orchestrator: orchestrator,
		Sessions:     sessionService,
		Problems:     problemRegistry,
		DB:           dbClient,
		Cache:        cacheClient,
	}
	if len(workers) > 0 {
		serverCfg.Worker = workers[0]
	}
	httpServer, err := api.NewServer(serverCfg)
	if err != nil {
		slog.Error("Failed to build HTTP server", "error", err)
		os.Exit(1)
	}

	// 11. Start HTTP server (non-blocking)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Proctor started successfully", "workers", len(workers))

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: stop admitting scheduled work, drain the judge
	// workers, wait out in-flight evaluations, then close the listener.
	cleanupService.Stop()

	for _, w := range workers {
		w.Stop()
	}
	if len(workers) > 0 {
		slog.Info("Judge workers stopped")
	}

	orchCtx, orchCancel := context.WithTimeout(ctx, 30*time.Second)
	defer orchCancel()
	if err := orchestrator.Shutdown(orchCtx); err != nil {
		slog.Warn("Orchestrator shutdown timeout exceeded, background evaluations abandoned", "error", err)
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
