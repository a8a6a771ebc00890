package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/cryptocoder0x/openclaw-mission-control/internal/application"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/config"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/domain"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/infrastructure/api"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/infrastructure/db"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/infrastructure/providers"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/infrastructure/repositories"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/logger"
	"github.com/cryptocoder0x/openclaw-mission-control/internal/ui"
)

func main() {
	app := &cli.App{
		Name:  "mission-control",
		Usage: "Terminal dashboard for agents on boards",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the TOML config file",
				EnvVars: []string{"OPENCLAW_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "Base URL of the coordination backend",
				EnvVars: []string{"OPENCLAW_API_URL"},
			},
			&cli.StringFlag{
				Name:    "auth-mode",
				Usage:   "Authentication mode (local or hosted)",
				EnvVars: []string{"OPENCLAW_AUTH_MODE"},
			},
			&cli.StringFlag{
				Name:    "provider-key",
				Usage:   "Hosted identity provider publishable key",
				EnvVars: []string{"OPENCLAW_PROVIDER_KEY"},
			},
			&cli.StringFlag{
				Name:    "db-path",
				Usage:   "Path to the local state database",
				EnvVars: []string{"OPENCLAW_DB_PATH"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"OPENCLAW_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text or json)",
				EnvVars: []string{"OPENCLAW_LOG_FORMAT"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Start the dashboard",
				Action: runDashboard,
			},
			{
				Name:  "login",
				Usage: "Store the shared access token without starting the dashboard",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "token",
						Usage:   "Shared access token",
						EnvVars: []string{"OPENCLAW_TOKEN"},
					},
				},
				Action: runLogin,
			},
			{
				Name:   "logout",
				Usage:  "Forget the stored shared access token",
				Action: runLogout,
			},
			{
				Name:   "migrate",
				Usage:  "Run local state migrations and exit",
				Action: runMigrate,
			},
		},
		Action: runDashboard,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	path := c.String("config")
	if path == "" {
		defaultPath, err := config.DefaultPath(db.DefaultAppName)
		if err != nil {
			return config.Config{}, err
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	// Flags win over both the file and the environment.
	if v := c.String("api-url"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := c.String("auth-mode"); v != "" {
		cfg.AuthMode = v
	}
	if v := c.String("provider-key"); v != "" {
		cfg.ProviderKey = v
	}
	if v := c.String("db-path"); v != "" {
		cfg.DBPath = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v := c.String("log-format"); v != "" {
		cfg.LogFormat = v
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	logger.Setup(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	return cfg, nil
}

func openStateDB(cfg config.Config) (*db.SQLiteAdapter, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		defaultPath, err := db.DefaultDBPath(db.DefaultAppName)
		if err != nil {
			return nil, err
		}
		dbPath = defaultPath
	}

	adapter, err := db.NewSQLiteAdapter(dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(context.Background(), adapter.Raw()); err != nil {
		adapter.Close()
		return nil, err
	}
	return adapter, nil
}

func runDashboard(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	adapter, err := openStateDB(cfg)
	if err != nil {
		return err
	}
	defer adapter.Close()

	sessionRepo := repositories.NewSessionRepository(adapter)
	sessionService := application.NewSessionService(sessionRepo, cfg.Mode(), cfg.ProviderKey, slog.Default())

	ctx := c.Context
	gate, err := sessionService.Gate(ctx)
	if err != nil {
		return err
	}

	var tokenSource api.TokenSource
	switch gate {
	case application.GateHosted:
		tokenSource = providers.NewHostedProvider(cfg.ProviderKey, cfg.ProviderSessionToken)
	case application.GateDegraded:
		tokenSource = nil
	default:
		tokenSource = providers.NewLocalProvider(sessionService)
	}

	client, err := api.NewClient(api.Config{
		BaseURL:     cfg.APIBaseURL,
		TokenSource: tokenSource,
		Logger:      slog.Default(),
	})
	if err != nil {
		return err
	}

	agentRepo := api.NewAgentRepository(client)
	boardRepo := api.NewBoardRepository(client)

	agentService := application.NewAgentService(agentRepo)
	contextService := application.NewContextService(boardRepo, sessionRepo)

	model := ui.NewModel(agentService, contextService, sessionService, gate)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func runLogin(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	adapter, err := openStateDB(cfg)
	if err != nil {
		return err
	}
	defer adapter.Close()

	sessionRepo := repositories.NewSessionRepository(adapter)
	sessionService := application.NewSessionService(sessionRepo, domain.AuthModeLocal, "", slog.Default())

	if _, err := sessionService.Login(c.Context, c.String("token")); err != nil {
		return err
	}
	fmt.Println("token stored")
	return nil
}

func runLogout(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	adapter, err := openStateDB(cfg)
	if err != nil {
		return err
	}
	defer adapter.Close()

	sessionRepo := repositories.NewSessionRepository(adapter)
	sessionService := application.NewSessionService(sessionRepo, domain.AuthModeLocal, "", slog.Default())

	if err := sessionService.Logout(c.Context); err != nil {
		return err
	}
	fmt.Println("token cleared")
	return nil
}

func runMigrate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	adapter, err := openStateDB(cfg)
	if err != nil {
		return err
	}
	defer adapter.Close()

	fmt.Println("migrations completed")
	return nil
}
