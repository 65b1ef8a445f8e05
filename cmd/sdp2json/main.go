// Command sdp2json reads an SDP message from a file or stdin and writes the
// parsed session as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/ini/v2"
	"github.com/pkg/errors"
	"golang.org/x/exp/slog"

	"github.com/nostressdev/sdpjson"
	"github.com/nostressdev/sdpjson/sdp"
)

const (
	exitOK    = 0
	exitParse = 1
	exitUsage = 2
)

const iniSection = "sdp2json"

type config struct {
	output     string
	envelope   bool
	indent     string
	logLevel   string
	verbose    bool
	configFile string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := &config{indent: "  ", logLevel: "info"}

	fs := flag.NewFlagSet("sdp2json", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: sdp2json [flags] [file]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.output, "o", "", "write JSON to `file` instead of stdout")
	fs.BoolVar(&cfg.envelope, "envelope", false, "input is a {\"type\",\"sdp\"} JSON envelope")
	fs.StringVar(&cfg.indent, "indent", cfg.indent, "indentation `string`, empty for compact output")
	fs.StringVar(&cfg.configFile, "config", "", "read defaults from ini `file`")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := cfg.tryRead(cfg.configFile, set); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger, err := newLogger(stderr, cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	var input io.Reader = stdin
	source := "stdin"
	if fs.NArg() == 1 {
		source = fs.Arg(0)
		f, err := os.Open(source)
		if err != nil {
			logger.Error("failed to open input", slog.String("error", err.Error()))
			return exitParse
		}
		defer f.Close()
		input = f
	}
	logger.Debug("reading session description", slog.String("source", source), slog.Bool("envelope", cfg.envelope))

	session, err := decode(input, cfg.envelope)
	if err != nil {
		attrs := []any{slog.String("source", source), slog.String("error", err.Error())}
		var lineErr *sdp.LineError
		if errors.As(err, &lineErr) {
			attrs = append(attrs, slog.Int("line", lineErr.Line))
		}
		logger.Error("failed to parse session description", attrs...)
		return exitParse
	}
	logger.Debug("parsed session description", slog.Int("media", len(session.Media)))

	if err := write(session, cfg, stdout); err != nil {
		logger.Error("failed to write session", slog.String("error", err.Error()))
		return exitParse
	}

	return exitOK
}

func decode(r io.Reader, envelope bool) (*sdp.Session, error) {
	if !envelope {
		return sdp.NewDecoder(r).Decode()
	}

	var desc sdpjson.SessionDescription
	if err := json.NewDecoder(r).Decode(&desc); err != nil {
		return nil, errors.Wrap(err, "envelope")
	}
	return desc.Parse()
}

func write(session *sdp.Session, cfg *config, stdout io.Writer) error {
	if cfg.output == "" {
		return errors.Wrap(encode(stdout, session, cfg.indent), "write stdout")
	}

	f, err := os.Create(cfg.output)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := encode(f, session, cfg.indent); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", cfg.output)
	}
	return errors.Wrapf(f.Close(), "close %s", cfg.output)
}

func encode(w io.Writer, session *sdp.Session, indent string) error {
	e := sdp.NewEncoder(w)
	e.SetIndent("", indent)
	return e.Encode(session)
}

// tryRead loads [sdp2json] from an ini file. Flags given on the command line
// keep their values.
func (c *config) tryRead(fname string, set map[string]bool) error {
	if fname == "" {
		return nil
	}

	reader := ini.New()
	if err := reader.LoadFiles(fname); err != nil {
		return errors.Wrapf(err, "load config %s", fname)
	}

	if !set["indent"] {
		if v := reader.Get(iniSection+".indent", ""); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return errors.Errorf("config %s: indent wants a number of spaces, got %q", fname, v)
			}
			c.indent = strings.Repeat(" ", n)
		}
	}
	if !set["envelope"] {
		c.envelope = reader.Bool(iniSection+".envelope", c.envelope)
	}
	c.logLevel = reader.Get(iniSection+".log_level", c.logLevel)

	return nil
}

func newLogger(w io.Writer, cfg *config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", cfg.logLevel)
	}
	if cfg.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
