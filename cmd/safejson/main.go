package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/mcncl/safejson"
	"github.com/mcncl/safejson/internal/config"
	"github.com/mcncl/safejson/internal/errors"
	"github.com/mcncl/safejson/internal/render"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string   `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string   `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Field       string   `help:"Read one field of the current value: a key, or an index (or first/last) when it is an array." short:"k"`
	Type        string   `help:"Type to read the field as." short:"t" enum:"string,int,int64,float,bool,object,array" default:"string"`
	Default     *string  `help:"Value returned when the field is missing or has another type."`
	Format      string   `help:"Output format (json or yaml). Overrides the config file." short:"f"`
	Indent      bool     `help:"Indent JSON output."`
	KeyCase     string   `help:"Rename object keys on output (none, snake, camel, lower-camel, kebab)." name:"key-case"`
	Config      string   `help:"Path to config file. Defaults to the nearest .safejson.yml." short:"c" type:"path"`
	Debug       bool     `help:"Enable debug logging." short:"d"`
	Version     bool     `help:"Show version information." short:"v"`
	Interactive bool     `help:"Read JSON typed or pasted into the terminal, ending with Ctrl+D." short:"I"`
	Steps       []string `arg:"" optional:"" help:"Keys (or indices when the current value is an array) to descend through."`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
	Logger *zap.Logger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("safejson"),
		kong.Description("Read values out of JSON documents without failing on missing or mistyped fields"),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		// Usage has already been shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("safejson version %s\n", Version)
		return
	}

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, CLI.Format, CLI.KeyCase, CLI.Indent, CLI.Debug)
	if err != nil {
		exitWithError(errors.NewConfigError(fmt.Sprintf("failed to load configuration: %v", err), err))
	}

	logger, err := newLogger(cfg.Dev.Debug)
	if err != nil {
		exitWithError(errors.NewConfigError("failed to create logger", err))
	}
	if configPath != "" {
		logger.Debug("loaded config file", zap.String("path", configPath))
	}

	err = run(&Context{Debug: cfg.Dev.Debug, Config: cfg, Logger: logger})
	_ = logger.Sync()
	if err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
	fmt.Fprintf(os.Stderr, "\nFor help, run: safejson --help\n")
	os.Exit(1)
}

// run executes the main program logic
func run(ctx *Context) error {
	logger := ctx.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if ctx.Debug {
		logger.Debug("effective config",
			zap.String("format", ctx.Config.Output.Format),
			zap.String("key_case", ctx.Config.Output.KeyCase),
			zap.Bool("indent", ctx.Config.Output.Indent),
		)
	}

	// 1. Read the document
	data, err := readInput()
	if err != nil {
		return err
	}
	text := string(data)
	logger.Debug("read input", zap.Int("bytes", len(data)))

	if _, ok := safejson.ParseValue(text); !ok {
		logger.Warn("input is not well-formed JSON; continuing with an empty document")
	}

	// 2. Walk the steps
	nav := safejson.NewNavigator(text)
	if err := navigate(nav, CLI.Steps, logger); err != nil {
		return err
	}

	// 3. Pick the value to print
	result := nav.Value()
	if CLI.Field != "" {
		result, err = readField(nav, CLI.Field, CLI.Type, CLI.Default, ctx.Config.Defaults)
		if err != nil {
			return err
		}
		logger.Debug("read field", zap.String("field", CLI.Field), zap.String("type", CLI.Type), zap.Stringer("kind", result.Kind()))
	}

	// 4. Render and write it
	renderer, err := render.NewRenderer(ctx.Config.Output.Format, ctx.Config.Output.KeyCase, ctx.Config.Output.Indent)
	if err != nil {
		return errors.NewRenderError("invalid output settings", err)
	}
	out, err := renderer.Render(result)
	if err != nil {
		return errors.NewRenderError("failed to render value", err)
	}

	if err := writeOutput(out); err != nil {
		return err
	}
	if CLI.Output != "" {
		logger.Info("output written", zap.String("path", CLI.Output))
	}
	return nil
}

// navigate applies each step to nav. Integer steps index into arrays; any
// other step is an object key.
func navigate(nav *safejson.Navigator, steps []string, logger *zap.Logger) error {
	for i, step := range steps {
		if nav.IsArray() {
			index, err := strconv.Atoi(step)
			if err != nil {
				return errors.NewNavigationError(
					fmt.Sprintf("step %d ('%s') is a key but the current value is an array", i+1, step),
					errors.ErrWrongStep,
				)
			}
			nav.NextIndex(index)
		} else {
			nav.Next(step)
		}
		logger.Debug("step", zap.Int("n", i+1), zap.String("step", step), zap.Stringer("state", nav.State()))
	}
	return nil
}

// readInput reads JSON from file or stdin
func readInput() ([]byte, error) {
	var data []byte
	if CLI.Input != "" {
		info, err := os.Stat(CLI.Input)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NewInputError(fmt.Sprintf("file '%s' not found", CLI.Input), errors.ErrFileNotFound)
			}
			return nil, errors.NewInputError(fmt.Sprintf("failed to access file '%s'", CLI.Input), err)
		}
		if info.IsDir() {
			return nil, errors.NewInputError(fmt.Sprintf("'%s' is a directory", CLI.Input), errors.ErrInvalidFilePath)
		}

		data, err = os.ReadFile(CLI.Input)
		if err != nil {
			return nil, errors.NewInputError(fmt.Sprintf("failed to read file '%s'", CLI.Input), err)
		}
	} else {
		stdinInfo, err := os.Stdin.Stat()
		if err != nil {
			return nil, errors.NewInputError("failed to access stdin", err)
		}
		if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
			// Terminal is interactive (not piped)
			if !CLI.Interactive {
				return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
			}
			data, err = readInteractiveInput(os.Stdin, os.Stderr)
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return nil, errors.NewInputError("failed to read from stdin", err)
		}
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}
	return data, nil
}

// readInteractiveInput reads lines from in until EOF (Ctrl+D), prompting on prompt
func readInteractiveInput(in io.Reader, prompt io.Writer) ([]byte, error) {
	_, _ = fmt.Fprintln(prompt, "safejson interactive mode")
	_, _ = fmt.Fprintln(prompt, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(in)
	var jsonBuilder strings.Builder
	for {
		line, err := reader.ReadString('\n')
		jsonBuilder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return []byte(jsonBuilder.String()), nil
}

// writeOutput writes text to file or stdout
func writeOutput(text string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(text+"\n"), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		return nil
	}

	if _, err := fmt.Println(text); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
