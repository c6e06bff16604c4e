package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"

	"github.com/exprlab/expression-interpreter/internal/expression"
	"github.com/exprlab/expression-interpreter/internal/script"
	"github.com/exprlab/expression-interpreter/internal/server"
)

type Option struct {
	Expression string `short:"e" long:"expression" description:"[OPTIONAL] Evaluate a single expression and exit" required:"false"`
	Listen     string `short:"l" long:"listen" description:"[OPTIONAL] Listen host and port for the HTTP evaluation API" required:"false"`
	JSON       bool   `long:"json" description:"[OPTIONAL] Print the result as JSON" required:"false"`
	Jobs       int    `long:"jobs" description:"[OPTIONAL] Evaluate script entries with up to N concurrent workers" required:"false"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Usage = "[OPTIONS] [FILE...]"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		} else {
			parser.WriteHelp(os.Stdout)
			return 1
		}
	}
	if opt.Expression != "" && opt.Listen != "" {
		parser.WriteHelp(os.Stdout)
		return 1
	}

	// server mode
	if opt.Listen != "" {
		if err := serveExpressions(opt.Listen); err != nil {
			log.Printf("failed to serve expressions: %v", err)
			return 1
		}
		return 0
	}

	// single expression mode
	if opt.Expression != "" {
		value, err := expression.Run(opt.Expression)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if opt.JSON {
			if err := dumpJSON(os.Stdout, resultDoc{Result: value, Type: value.Type()}); err != nil {
				log.Printf("failed to dump result: %v", err)
				return 1
			}
		} else {
			fmt.Println(value)
		}
		return 0
	}

	runner := &script.Runner{Out: os.Stdout, ErrOut: os.Stderr, Jobs: opt.Jobs}

	// file mode
	if len(rest) != 0 {
		failed := 0
		for _, file := range rest {
			s, err := loadScript(file)
			if err != nil {
				log.Printf("failed to load script: %v", err)
				return 1
			}
			failed += runner.Run(s)
		}
		if failed != 0 {
			return 1
		}
		return 0
	}

	// interactive prompt when stdin is a terminal, otherwise treat stdin
	// as a text script
	if isatty.IsTerminal(os.Stdin.Fd()) {
		runPrompt(os.Stdin, os.Stdout, os.Stderr)
		return 0
	}

	s, err := script.ParseText(os.Stdin)
	if err != nil {
		log.Printf("failed to read stdin: %v", err)
		return 1
	}
	if runner.Run(s) != 0 {
		return 1
	}
	return 0
}

type resultDoc struct {
	Result expression.Value `json:"result"`
	Type   string           `json:"type"`
}

func loadScript(filePath string) (*script.Script, error) {
	var parseScript func(io.Reader) (*script.Script, error)
	switch filepath.Ext(filePath) {
	case ".json":
		parseScript = script.ParseJSON
	case ".yaml", ".yml":
		parseScript = script.ParseYAML
	default:
		parseScript = script.ParseText
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%q): %w", filePath, err)
	}
	defer f.Close()

	s, err := parseScript(f)
	if err != nil {
		return nil, fmt.Errorf("script.Parse(%q): %w", filePath, err)
	}
	return s, nil
}

func runPrompt(in io.Reader, out, errOut io.Writer) {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		value, err := expression.Run(line)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		fmt.Fprintln(out, value)
	}
}

func serveExpressions(listen string) error {
	srv := http.Server{
		Handler: server.NewHTTPHandler(),
		Addr:    listen,
	}

	log.Printf("Listen HTTP on %s", listen)
	if err := srv.ListenAndServe(); errors.Is(err, http.ErrServerClosed) {
		return nil
	} else if err != nil {
		return err
	}
	return nil
}

func dumpJSON(w io.Writer, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if isatty.IsTerminal(f.Fd()) {
			opts = append(opts, json.Colorize(json.DefaultColorScheme))
		}
	}

	b, err := json.MarshalIndentWithOption(v, "", "\t", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
