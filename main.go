package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/mz462/office-mcp/internal/config"
	"github.com/mz462/office-mcp/internal/powerpoint"
	"github.com/mz462/office-mcp/internal/server"
)

var version = "dev"

// parseLogLevel reads LOG_LEVEL and falls back to warn so that stdio
// transport stays quiet by default.
func parseLogLevel() logrus.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}

func main() {
	// .env is optional; missing files are fine.
	_ = godotenv.Load()

	// stdout carries the MCP protocol, so all logging goes to stderr.
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(parseLogLevel())
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	app := &cli.App{
		Name:    "office-mcp",
		Usage:   "MCP servers for Excel workbook analysis and PowerPoint deck building",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "excel",
				Usage: "Serve the Excel workbook tools over stdio",
				Action: func(c *cli.Context) error {
					logrus.WithField("version", version).Debug("starting excel server")
					return server.NewExcelServer(version).Start()
				},
			},
			{
				Name:  "powerpoint",
				Usage: "Serve the PowerPoint presentation tools over stdio",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "workspace",
						Aliases: []string{"w"},
						Usage:   "Directory holding the presentations",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("workspace"))
					if err != nil {
						return fmt.Errorf("failed to load configuration: %w", err)
					}
					if err := cfg.EnsureDirs(); err != nil {
						return err
					}
					logrus.WithFields(logrus.Fields{
						"version":   version,
						"workspace": cfg.WorkspaceDir,
						"templates": cfg.TemplatesDir,
					}).Debug("starting powerpoint server")
					ws := powerpoint.NewWorkspace(cfg)
					return server.NewPowerPointServer(version, ws).Start()
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
