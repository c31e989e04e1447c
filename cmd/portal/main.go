package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	portal "github.com/goliatone/go-portal"
)

const shutdownTimeout = 10 * time.Second

var moduleBuilder = portal.New

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Printf("portal: %v", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for rejected input and 1 for every other failure.
func exitCode(err error) int {
	if portal.ErrorKind(err) == portal.ErrorKindInvalidParameter {
		return 2
	}
	return 1
}

func run(args []string) error {
	command := "serve"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command, args = args[0], args[1:]
	}
	switch command {
	case "serve":
		return runServe(args)
	case "import":
		return runImport(args)
	default:
		return fmt.Errorf("unknown command %q (expected serve or import)", command)
	}
}

func loadConfig() (portal.Config, error) {
	cfg, err := portal.LoadConfig()
	if err != nil {
		return portal.Config{}, err
	}
	return cfg, nil
}

func runServe(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("portal-serve", flag.ExitOnError)
	addr := fs.String("addr", cfg.Server.Addr, "Listen address")
	source := fs.String("source", cfg.Source.Provider, "Content source: memory, bun or http")
	datasetDir := fs.String("dataset", cfg.Source.DatasetDir, "Markdown dataset loaded at startup")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.Server.Addr = *addr
	cfg.Source.Provider = *source
	cfg.Source.DatasetDir = *datasetDir

	module, err := moduleBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           module.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		log.Printf("portal: listening on %s (source=%s)", cfg.Server.Addr, cfg.Source.Provider)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runImport(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("portal-import", flag.ExitOnError)
	directory := fs.String("directory", "content", "Dataset root; first-level directories name the domains")
	domains := fs.String("domains", "", "Comma separated list of domains to import (defaults to all)")
	dryRun := fs.Bool("dry-run", false, "Parse and report without writing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.Source.Provider == portal.SourceMemory {
		cfg.Source.Provider = portal.SourceBun
	}

	module, err := moduleBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	result, err := module.ImportDataset(context.Background(), portal.ImportDatasetCommand{
		Directory: *directory,
		Domains:   splitList(*domains),
		DryRun:    *dryRun,
	})
	if err != nil {
		return fmt.Errorf("import dataset: %w", err)
	}

	fmt.Fprintf(os.Stdout, "imported %d records from %s (dry-run=%t)\n", result.Total, result.Directory, result.DryRun)
	for domainKey, count := range result.Counts {
		fmt.Fprintf(os.Stdout, "  %s: %d\n", domainKey, count)
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
