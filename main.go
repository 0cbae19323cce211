package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mcncl/jsonpack/internal/config"
	"github.com/mcncl/jsonpack/internal/converter"
	"github.com/mcncl/jsonpack/internal/errors"
	"github.com/mcncl/jsonpack/internal/transport"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Decode      bool   `help:"Treat input as MessagePack (hex or base64, auto-detected) and convert it to JSON." short:"D"`
	Encoding    string `help:"Textual encoding for MessagePack output." short:"e" enum:"base64,hex" default:"base64"`
	Indent      int    `help:"Indent width for pretty-printed JSON output." default:"2"`
	Config      string `help:"Path to a config file. Defaults to the nearest .jsonpack.yml." short:"c" type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	kongParser := kong.Must(&CLI,
		kong.Name("jsonpack"),
		kong.Description("A tool to convert between JSON and MessagePack"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := kongParser.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonpack version %s\n", Version)
		return
	}

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfigWithCLI(configPath, CLI.Encoding, CLI.Indent, CLI.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := run(&Context{Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonpack --help\n")

		os.Exit(1)
	}
}

// run executes the main program logic
func run(ctx *Context) error {
	input, err := readInput()
	if err != nil {
		// Error is already wrapped by readInput
		return err
	}

	if ctx.Config.Dev.Debug {
		direction := "json -> messagepack"
		if CLI.Decode {
			direction = "messagepack -> json"
		}
		fmt.Fprintf(os.Stderr, "converting %d bytes (%s)\n", len(input), direction)
	}

	var result string
	if CLI.Decode {
		// Encoded input picked up from files or pipes usually carries a
		// trailing newline; the detector classifies on the raw character
		// set, so trim before handing over.
		result, err = converter.MessagePackToJSONIndent(strings.TrimSpace(input), ctx.Config.Output.Indent)
	} else {
		encoding := transport.Base64
		if ctx.Config.Output.Encoding == "hex" {
			encoding = transport.Hex
		}
		result, err = converter.JSONToMessagePackEncoded(input, encoding)
	}
	if err != nil {
		return err
	}

	return writeOutput(result)
}

// readInput reads the document to convert from file or stdin
func readInput() (string, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewInputError(
					fmt.Sprintf("file '%s' not found", CLI.Input),
					errors.ErrFileNotFound,
				)
			}
			return "", errors.NewInputError(
				fmt.Sprintf("failed to read file '%s'", CLI.Input),
				err,
			)
		}
		if len(data) == 0 {
			return "", errors.NewInputError(
				fmt.Sprintf("input file '%s' is empty", CLI.Input),
				errors.ErrFileEmpty,
			)
		}
		return string(data), nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}

	if len(data) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return string(data), nil
}

// writeOutput writes the conversion result to file or stdout
func writeOutput(result string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(result+"\n"), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(result)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste a
// document and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (string, error) {
	fmt.Fprintln(os.Stderr, "jsonpack Interactive Mode")
	if CLI.Decode {
		fmt.Fprintln(os.Stderr, "Paste your MessagePack (hex or base64) below and press Ctrl+D (or Ctrl+Z on Windows) when done:")
	} else {
		fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")
	}

	reader := bufio.NewReader(os.Stdin)
	var builder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			builder.WriteString(line)
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
		builder.WriteString(line)
	}

	input := builder.String()
	if len(input) == 0 {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing...")
	return input, nil
}
