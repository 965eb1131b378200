package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"pdfharvest/internal/config"
	"pdfharvest/internal/core/domain"
	"pdfharvest/internal/logging"
	"pdfharvest/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Warn("received interrupt signal, cancelling")
		cancel()
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		slog.Error("pdfharvest failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var (
		cfg      *config.Config
		logger   *slog.Logger
		logClose io.Closer
	)

	return &cli.App{
		Name:  "pdfharvest",
		Usage: "collect PDF documents linked from a web page into a ZIP archive",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML config file", EnvVars: []string{"CONFIG_FILE"}},
			&cli.StringFlag{Name: "url", Usage: "page to scan for PDF links"},
			&cli.StringFlag{Name: "filter", Usage: "case-insensitive keyword a PDF link must contain"},
			&cli.StringFlag{Name: "zip-name", Usage: "name of the PDF archive"},
			&cli.StringFlag{Name: "pdf-dir", Usage: "directory PDFs are downloaded to"},
			&cli.StringFlag{Name: "target-pdf", Usage: "PDF whose tables are converted to CSV"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = config.Load(c.String("config"))
			if err != nil {
				return err
			}
			applyFlags(c, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, logClose, err = logging.Configure(logging.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				File:   cfg.Log.File,
			})
			if err != nil {
				return err
			}

			if err := cfg.EnsureDirectories(); err != nil {
				logger.Error("failed to prepare directories", "error", err)
				return err
			}
			return nil
		},
		After: func(c *cli.Context) error {
			if logClose != nil {
				return logClose.Close()
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			return scrape(c.Context, service.NewPipeline(cfg, logger))
		},
		Commands: []*cli.Command{
			{
				Name:  "scrape",
				Usage: "download matching PDFs, archive them and remove the originals",
				Action: func(c *cli.Context) error {
					return scrape(c.Context, service.NewPipeline(cfg, logger))
				},
			},
			{
				Name:  "extract",
				Usage: "convert the target PDF's tables to a compressed CSV",
				Action: func(c *cli.Context) error {
					result, err := service.NewPipeline(cfg, logger).ExtractTables(c.Context)
					if err != nil {
						return err
					}
					fmt.Println("\n=== Table Summary ===")
					fmt.Printf("PDF:      %s\n", result.PDFPath)
					fmt.Printf("CSV:      %s\n", result.CSVPath)
					fmt.Printf("Tables:   %d\n", result.Tables)
					fmt.Printf("Rows:     %d\n", result.Rows)
					fmt.Printf("Archive:  %s\n", result.Archive.Path)
					return nil
				},
			},
			{
				Name:  "cleanup",
				Usage: "remove PDFs left in the PDF directory",
				Action: func(c *cli.Context) error {
					removed, err := service.NewPipeline(cfg, logger).Cleanup(c.Context)
					if err != nil {
						return err
					}
					fmt.Printf("Removed %d file(s)\n", removed)
					return nil
				},
			},
			{
				Name:  "run",
				Usage: "scrape, then extract tables and clean up when a target PDF is set",
				Action: func(c *cli.Context) error {
					return service.NewPipeline(cfg, logger).RunAll(c.Context)
				},
			},
		},
	}
}

func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("url") {
		cfg.URL = c.String("url")
	}
	if c.IsSet("filter") {
		cfg.Filter = c.String("filter")
	}
	if c.IsSet("zip-name") {
		cfg.ZipName = c.String("zip-name")
	}
	if c.IsSet("pdf-dir") {
		cfg.PDFDir = c.String("pdf-dir")
	}
	if c.IsSet("target-pdf") {
		cfg.TargetPDF = c.String("target-pdf")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
}

func scrape(ctx context.Context, p *service.Pipeline) error {
	result, err := p.Scrape(ctx)
	if result != nil {
		printSummary(result)
	}
	return err
}

func printSummary(result *domain.RunResult) {
	fmt.Println("\n=== Run Summary ===")
	fmt.Printf("Run ID:       %s\n", result.ID)
	fmt.Printf("URL:          %s\n", result.URL)
	fmt.Printf("Links:        %d\n", len(result.Links))
	fmt.Printf("Downloaded:   %d\n", len(result.Downloaded))
	fmt.Printf("Failed:       %d\n", len(result.Failures))
	if result.Archive != nil {
		fmt.Printf("Archive:      %s (%d entries)\n", result.Archive.Path, len(result.Archive.Entries))
	}
	fmt.Printf("Removed:      %d\n", result.Removed)
	fmt.Printf("Stage:        %s\n", result.Stage)
	fmt.Printf("Success:      %t\n", result.Success)
}
