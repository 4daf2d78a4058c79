// Command morphparse parses whitespace-separated tokens with a pool of
// caching parsers and reports the tokens that have no parse.
//
// Flags:
//
//	-config            path to YAML config (default: CONFIG_PATH, then ./config.yaml)
//	-input             file with tokens (default: stdin)
//	-mode              bulk or single (overrides batch.mode)
//	-print-unparsable  print unparsable tokens to stdout, one per line
//	-print-parses      print every token with its parses to stdout
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/trmorph/internal/app"
	"github.com/heartmarshall/trmorph/internal/batch"
	"github.com/heartmarshall/trmorph/internal/config"
	"github.com/heartmarshall/trmorph/internal/domain"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	inputFlag := flag.String("input", "", "file with whitespace-separated tokens (default: stdin)")
	modeFlag := flag.String("mode", "", "batch mode: bulk or single")
	unparsableFlag := flag.Bool("print-unparsable", false, "print unparsable tokens")
	parsesFlag := flag.Bool("print-parses", false, "print every token with its parses")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *modeFlag != "" {
		cfg.Batch.Mode = *modeFlag
		if err := cfg.Validate(); err != nil {
			log.Fatalf("invalid -mode: %v", err)
		}
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting morphparse",
		slog.String("version", app.BuildVersion()),
		slog.String("mode", cfg.Batch.Mode),
		slog.Int("workers", cfg.Batch.Workers),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens, err := readTokens(*inputFlag)
	if err != nil {
		logger.Error("read tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lex, err := app.LoadLexicon(ctx, *cfg, logger)
	if err != nil {
		logger.Error("load lexicon", slog.String("error", err.Error()))
		os.Exit(1)
	}

	engine, err := app.NewEngine(logger, *cfg, lex, tokens)
	if err != nil {
		logger.Error("build engine", slog.String("error", err.Error()))
		os.Exit(1)
	}

	report, err := engine.Run(ctx, tokens)
	if err != nil {
		logger.Error("batch run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if *parsesFlag {
		writeParses(out, report)
	}
	if *unparsableFlag {
		for _, token := range report.Unparsable {
			fmt.Fprintln(out, token)
		}
	}

	logger.Info("morphparse completed",
		slog.String("run_id", report.RunID.String()),
		slog.Int("tokens", report.Tokens),
		slog.Int("unparsable", len(report.Unparsable)),
		slog.Int("cached", engine.Cached()),
		slog.Int("static_words", engine.StaticWords()),
		slog.Duration("duration", report.Duration),
	)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func readTokens(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		tokens = append(tokens, domain.SplitTokens(sc.Text())...)
	}
	return tokens, sc.Err()
}

func writeParses(w io.Writer, report batch.Report) {
	for _, res := range report.Results {
		if len(res.Parses) == 0 {
			fmt.Fprintf(w, "%s\t-\n", res.Token)
			continue
		}
		for _, p := range res.Parses {
			fmt.Fprintf(w, "%s\t%s\n", res.Token, p.Format())
		}
	}
}
