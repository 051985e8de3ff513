package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"obliquity.pulsartiming.org/internal/app"
	"obliquity.pulsartiming.org/internal/logging"
	"obliquity.pulsartiming.org/internal/refdata"
	"obliquity.pulsartiming.org/internal/restapi"
)

func main() {
	var (
		configPath   string
		port         int
		env          string
		apiKeysFlag  string
		rateLimit    int
		obliquityURL string
		verbose      bool
	)

	defaults := app.DefaultConfig()

	pflag.StringVar(&configPath, "config", "", "path to a YAML config file")
	pflag.IntVar(&port, "port", defaults.Port, "API server port")
	pflag.StringVar(&env, "env", defaults.Env, "Environment (development|staging|production)")
	pflag.StringVar(&apiKeysFlag, "api-keys", "", "comma separated API keys")
	pflag.IntVar(&rateLimit, "rate-limit", defaults.RateLimit, "requests per second allowed per API key")
	pflag.StringVar(&obliquityURL, "obliquity-url", "", "URL or file path for the obliquity table (empty for the built-in table)")
	pflag.BoolVar(&verbose, "verbose", false, "verbose startup logging")
	pflag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	cfg := defaults
	if configPath != "" {
		fileCfg, err := app.LoadConfigFile(configPath)
		if err != nil {
			logging.LogError(logger, "failed to load config file", err, slog.String("path", configPath))
			os.Exit(1)
		}
		cfg = fileCfg
	}

	// Flags set explicitly on the command line win over the config file.
	flags := pflag.CommandLine
	if flags.Changed("port") {
		cfg.Port = port
	}
	if flags.Changed("env") {
		cfg.Env = env
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit = rateLimit
	}
	if apiKeysFlag != "" {
		cfg.APIKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(cfg.APIKeys[i])
		}
	}

	refConfig := refdata.Config{
		ObliquityURL: obliquityURL,
		Verbose:      verbose,
	}

	manager, err := refdata.InitManager(refConfig, logger)
	if err != nil {
		logging.LogError(logger, "failed to load obliquity table", err,
			slog.String("source", obliquityURL))
		os.Exit(1)
	}
	manager.LogStatistics()

	application := &app.Application{
		Config:     cfg,
		RefConfig:  refConfig,
		Logger:     logger,
		RefManager: manager,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Router(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	api.Shutdown()
	logger.Error(err.Error())
	os.Exit(1)
}
