package main

import (
	"bufio"
	"flag"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Moises-Pirela/calculator-task"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	var (
		confname, inname string
		cfgflags         Config
		nocarry, echo    bool
	)
	flag.StringVar(&confname, "config", os.Getenv("CALC_CONFIG"), "YAML configuration file")
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&cfgflags.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flag.StringVar(&cfgflags.Format, "fmt", "", "result formatting string (default %g)")
	flag.StringVar(&cfgflags.Prompt, "prompt", "", "prompt printed before each line")
	flag.BoolVar(&cfgflags.StrictDivision, "strict", false, "treat division and modulo by zero as errors")
	flag.BoolVar(&nocarry, "no-carry", false, "do not continue from the last result")
	flag.BoolVar(&echo, "echo", false, "print tokens before results")
	flag.Parse()

	cfg := DefaultConfig()
	if confname != "" {
		c, err := LoadConfig(confname)
		if err != nil {
			fatal(zerolog.New(os.Stderr), err, "loading config")
		}
		cfg = c
	}
	cfg.ApplyEnv()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = cfgflags.LogLevel
		case "fmt":
			cfg.Format = cfgflags.Format
		case "prompt":
			cfg.Prompt = cfgflags.Prompt
		case "strict":
			cfg.StrictDivision = cfgflags.StrictDivision
		case "no-carry":
			cfg.CarryLastResult = !nocarry
		}
	})

	level, lerr := logLevel(cfg.LogLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("session", uuid.New().String()).Logger().
		Level(level)
	if lerr != nil {
		logger.Warn().Str("log-level", cfg.LogLevel).Msg("unknown log level, using warn")
	}
	logger.Debug().Str("version", version).Str("commit", commit).Msg("starting")

	opts, err := cfg.Options()
	if err != nil {
		fatal(logger, err, "invalid config")
	}
	opts = append(opts, calculator.WithLogger(logger))
	ctx := calculator.NewContext(opts...)
	logger.Debug().Stringer("precedence", ctx.Precedence()).Bool("carry", cfg.CarryLastResult).
		Bool("strict", cfg.StrictDivision).Msg("session ready")

	sh := &shell{
		ctx:    ctx,
		out:    os.Stdout,
		log:    logger,
		verb:   cfg.Format,
		prompt: cfg.Prompt,
		echo:   echo,
	}

	if flag.NArg() > 0 && inname == "" {
		if !evalArgs(sh, flag.Args()) {
			os.Exit(1)
		}
		return
	}
	in, err := infile(inname)
	if err != nil {
		fatal(logger, err, "opening input")
	}
	defer in.Close()
	ok, err := runInput(sh, in, flag.Args())
	if err != nil {
		fatal(logger, err, "reading input")
	}
	if !ok {
		in.Close()
		os.Exit(1)
	}
}

// runInput runs the session over in, then evaluates exprs in the same
// session. It returns whether all of exprs succeeded.
func runInput(sh *shell, in io.Reader, exprs []string) (bool, error) {
	if err := sh.run(in); err != nil {
		return false, err
	}
	return evalArgs(sh, exprs), nil
}

// evalArgs evaluates each expression in order in one session. It returns
// whether all of them succeeded.
func evalArgs(sh *shell, exprs []string) bool {
	ok := true
	for _, expr := range exprs {
		if !sh.eval(expr) {
			ok = false
		}
	}
	return ok
}

// infile opens the named input, or stdin for "" or "-". Closing stdin's
// reader does nothing.
func infile(inname string) (io.ReadCloser, error) {
	if inname == "" || inname == "-" {
		return io.NopCloser(bufio.NewReader(os.Stdin)), nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, err
	}
	return struct {
		io.Reader
		io.Closer
	}{bufio.NewReader(f), f}, nil
}

// logLevel parses a log level. An empty level means warn, as does an unknown
// one, which is also reported.
func logLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.WarnLevel, err
	}
	return level, nil
}

func fatal(logger zerolog.Logger, err error, msg string) {
	logger.Error().Err(err).Msg(msg)
	os.Exit(1)
}
