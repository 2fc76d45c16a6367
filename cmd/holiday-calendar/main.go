package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/config"
	"github.com/username/holiday-calendar/internal/desktop"
	"github.com/username/holiday-calendar/internal/metrics"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "holiday-calendar",
		Short: "China holiday calendar",
		Long:  "Monthly calendar annotated with Chinese public holidays and makeup workdays",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				cfg.ExpandEnvVars()
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ./config.yaml, $HOME/.holiday-calendar, /etc/holiday-calendar)")

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(dayCmd())
	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(trayCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the wired pipeline shared by all subcommands
type app struct {
	cfg      *config.Config
	resolver *calendar.Resolver
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

// initializeApp loads config and wires source, store and resolver.
// headless selects the log notifier regardless of notify.mode.
func initializeApp(headless bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry)

	var notifier calendar.Notifier
	if headless || cfg.Notify.Mode == "log" {
		notifier = desktop.NewLogNotifier(logger)
	} else {
		notifier = desktop.NewDialogNotifier(os.Stderr, logger)
	}

	source := calendar.NewSource(
		cfg.Sources.PrimaryURL,
		cfg.Sources.BackupURL,
		cfg.Sources.GetRequestTimeout(),
		notifier,
		m,
		logger,
	)
	store := calendar.NewFileStore(cfg.Cache.Dir, logger)
	resolver := calendar.NewResolver(store, source, cfg.Sources.MinYear, m, logger)

	logger.Debug("Holiday pipeline initialized",
		zap.String("cache_dir", cfg.Cache.Dir),
		zap.Int("min_year", cfg.Sources.MinYear),
		zap.Duration("request_timeout", cfg.Sources.GetRequestTimeout()))

	return &app{
		cfg:      cfg,
		resolver: resolver,
		registry: registry,
		metrics:  m,
	}, nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
