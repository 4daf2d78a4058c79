// Command lexicon-import loads a tab-separated lexicon file into the
// lexemes table. All writes happen in one transaction.
//
// Flags:
//
//	-file           path to the lexicon TSV (default: lexicon.path from config)
//	-replace        delete existing lexemes before inserting
//	-dry-run        validate the file without writing to DB
//	-import-config  path to import YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	postgres "github.com/heartmarshall/trmorph/internal/adapter/postgres"
	"github.com/heartmarshall/trmorph/internal/adapter/postgres/lexeme"
	"github.com/heartmarshall/trmorph/internal/app"
	"github.com/heartmarshall/trmorph/internal/app/importer"
	"github.com/heartmarshall/trmorph/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "path to the lexicon TSV")
	replaceFlag := flag.Bool("replace", false, "delete existing lexemes before inserting")
	dryRunFlag := flag.Bool("dry-run", false, "validate the file without writing to DB")
	importConfigFlag := flag.String("import-config", "", "path to import YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	importCfg, err := importer.LoadConfig(*importConfigFlag)
	if err != nil {
		logger.Error("load import config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *replaceFlag {
		importCfg.Replace = true
	}
	if *dryRunFlag {
		importCfg.DryRun = true
	}

	path := *fileFlag
	if path == "" {
		path = appCfg.Lexicon.Path
	}
	f, err := os.Open(path)
	if err != nil {
		logger.Error("open lexicon", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := importer.NewPipeline(logger, lexeme.New(pool), postgres.NewTxManager(pool), *importCfg)
	res, err := pipeline.Run(ctx, f)
	if err != nil {
		logger.Error("import failed", slog.String("path", path), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("lexicon imported",
		slog.String("path", path),
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
	)
}
