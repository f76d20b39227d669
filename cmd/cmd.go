package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jon4hz/surfcast/internal/api"
	"github.com/jon4hz/surfcast/internal/config"
	"github.com/jon4hz/surfcast/internal/database"
	"github.com/jon4hz/surfcast/internal/forecast"
)

var rootCmdPersistentFlags struct {
	ConfigFile string
	LogLevel   string
}

var rootCmd = &cobra.Command{
	Use:     "surfcast",
	Short:   "Surfcast serves surf forecasts for Gold Coast spots with personal favorites",
	Long:    `Surfcast is a small web app that lets registered users browse surf forecasts for a fixed list of Gold Coast spots and keep a personal list of favorite spots.`,
	Example: `surfcast --config config.yml`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Environment overrides may live in a .env file next to the binary.
		if err := godotenv.Load(); err != nil {
			log.Debug("no .env file loaded", "error", err)
		}
		setLogLevel(rootCmdPersistentFlags.LogLevel)
	},
	Run: root,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootCmdPersistentFlags.ConfigFile, "config", "c", "", "Path to config file (default: search for config.yml in current dir, ~/.surfcast, /etc/surfcast)")
	rootCmd.PersistentFlags().StringVar(&rootCmdPersistentFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error) - overrides config file setting")
}

func root(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if rootCmdPersistentFlags.LogLevel == "" {
		setLogLevel(cfg.LogLevel)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close() //nolint:errcheck

	fc, err := forecast.New(cfg.Forecast)
	if err != nil {
		log.Fatalf("failed to create forecast client: %v", err)
	}

	server, err := api.New(cfg, db, fc, log.GetLevel() == log.DebugLevel)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	// Start the server in a goroutine
	go func() {
		log.Info("starting server", "listen", cfg.Listen)
		if err := server.Run(); err != nil {
			log.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Info("surfcast started successfully")
	<-c
	log.Info("shutting down gracefully...")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "":
	default:
		log.Warnf("unknown log level %s, defaulting to info", level)
		log.SetLevel(log.InfoLevel)
	}
}

func Execute() error {
	return rootCmd.Execute()
}
