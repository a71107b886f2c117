package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"

	api "github.com/rpupo63/nexusconsult-backend/api"
	"github.com/rpupo63/nexusconsult-backend/attachments"
	"github.com/rpupo63/nexusconsult-backend/config"
	"github.com/rpupo63/nexusconsult-backend/database"
	"github.com/rpupo63/nexusconsult-backend/errs"
	"github.com/rpupo63/nexusconsult-backend/models"
	"github.com/rpupo63/nexusconsult-backend/ratelimit"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "nexusconsult-backend",
	Short: "Data access layer for the NexusConsult marketing site",
	Long: `Serves the site's pages and forms from Supabase, over REST or a direct
Postgres connection, or from built-in sample data when Supabase is not configured.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the site tables in Postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Context())
		if err != nil {
			return err
		}
		db, err := database.OpenPostgres(cfg, database.NewGormLogger(logger.Info))
		if err != nil {
			return err
		}
		if err := models.Migrate(db); err != nil {
			return err
		}
		log.Info().Int("tables", len(models.All())).Msg("Migration complete")
		return nil
	},
}

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate-models",
	Short: "Migrate, report column mismatches and generate typed query helpers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Context())
		if err != nil {
			return err
		}
		db, err := database.OpenPostgres(cfg, database.NewGormLogger(logger.Warn))
		if err != nil {
			return err
		}
		return models.GenerateModels(db, generateOut)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML file overlaying the environment (default $CONFIG_FILE)")
	generateCmd.Flags().StringVar(&generateOut, "out", "./query", "Output directory for generated code")
	rootCmd.AddCommand(serveCmd, migrateCmd, generateCmd)
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for configuration problems and 1 for every other failure.
func exitCode(err error) int {
	if errs.IsConfigError(err) {
		return 2
	}
	return 1
}

// loadConfig builds the Config from the environment, the optional YAML overlay
// and SSM, and applies the log level.
func loadConfig(ctx context.Context) (config.Config, error) {
	env := config.New()
	cfg := config.Load(env)

	path := configFile
	if path == "" {
		path = config.GetString(env, "CONFIG_FILE", "")
	}
	if err := config.ApplyFile(&cfg, path); err != nil {
		return cfg, err
	}
	if err := config.ResolveSecrets(ctx, &cfg); err != nil {
		return cfg, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return err
	}

	store, _, err := database.OpenStore(cfg)
	if err != nil {
		return err
	}
	currentDB := database.New(store)

	limiter, err := ratelimit.New(cfg)
	if err != nil {
		return err
	}
	uploader, err := attachments.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	// Room for the signal and the ListenAndServe return that follows shutdown.
	errChannel := make(chan error, 2)

	server, err := api.NewServer(cfg, currentDB, limiter, uploader)
	if err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}
	log.Info().Str("mode", currentDB.Mode()).Msg("Data store ready")

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
	return serveResult(fatalErr)
}

var errInterrupted = errors.New("interrupted")

// serveResult maps the value that ended serving to the command's error. A signal
// or a closed server is a clean exit.
func serveResult(err error) error {
	if err == nil || errors.Is(err, errInterrupted) || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%w: %s", errInterrupted, <-c)
}
