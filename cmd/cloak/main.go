// Command cloak masks values from the command line and generates or verifies
// conformance vector files.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/zoobzio/cloak"
	"github.com/zoobzio/cloak/vectors"
)

const (
	success = 0
	failure = 1
	invalid = 2
)

const usage = `Deterministic, format-preserving masking.

Usage:
  cloak [-m MODE] [-i] VALUE...
  cloak [-m MODE] [-i] -s
  cloak generate [-m MODE] [-i] [-f FORMAT] [-o FILE] VALUE...
  cloak verify [-f FORMAT] [FILE]

Options:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// env holds defaults read from the environment.
type env struct {
	mode   string
	format string
}

func loadEnv() env {
	e := env{mode: string(cloak.ModeHash)}
	if v := os.Getenv("CLOAK_MODE"); v != "" {
		e.mode = v
	}
	e.format = os.Getenv("CLOAK_FORMAT")
	return e
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := slog.New(slog.NewTextHandler(stderr, nil))
	e := loadEnv()

	if len(args) > 0 {
		switch args[0] {
		case "generate":
			return runGenerate(args[1:], e, stdout, stderr, log)
		case "verify":
			return runVerify(args[1:], e, stdout, stderr, log)
		}
	}
	return runMask(args, e, stdin, stdout, stderr, log)
}

func newFlagSet(name string, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	return fs
}

func parseMode(raw string, log *slog.Logger) (cloak.Mode, bool) {
	mode, err := cloak.ParseMode(raw)
	if err != nil {
		log.Error("Invalid mode", "error", err, "modes", cloak.Modes())
		return "", false
	}
	return mode, true
}

func runMask(args []string, e env, stdin io.Reader, stdout, stderr io.Writer, log *slog.Logger) int {
	fs := newFlagSet("cloak", stderr)
	modeFlag := fs.StringP("mode", "m", e.mode, "keystream mode: hash or seeded")
	asInt := fs.BoolP("int", "i", false, "treat values as base-10 integers")
	fromStdin := fs.BoolP("stdin", "s", false, "read values from stdin, one per line")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return success
		}
		return invalid
	}
	mode, ok := parseMode(*modeFlag, log)
	if !ok {
		return invalid
	}
	if !*fromStdin && fs.NArg() == 0 {
		fs.Usage()
		return invalid
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	status := success
	emit := func(value string) {
		masked, err := maskOne(mode, value, *asInt)
		if err != nil {
			log.Error("Failed to mask value", "mode", mode, "error", err)
			status = failure
			return
		}
		fmt.Fprintln(out, masked)
	}

	if *fromStdin {
		sc := bufio.NewScanner(stdin)
		sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for sc.Scan() {
			emit(sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Error("Failed to read stdin", "error", err)
			return failure
		}
	}
	for _, value := range fs.Args() {
		emit(value)
	}
	return status
}

// maskOne masks value as text or, with asInt, as an integer of any magnitude.
func maskOne(mode cloak.Mode, value string, asInt bool) (string, error) {
	if !asInt {
		return cloak.Mask(mode, value)
	}
	n, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
	if !ok {
		return "", fmt.Errorf("%w: not a base-10 integer", cloak.ErrUnsupportedType)
	}
	out, err := cloak.MaskAny(mode, n)
	if err != nil {
		return "", err
	}
	return out.(*big.Int).String(), nil
}

// resolveFormat picks the vector file format from the flag, the file
// extension, the environment, and finally JSON.
func resolveFormat(flagValue, path string, e env) string {
	if flagValue != "" {
		return flagValue
	}
	if path != "" && path != "-" {
		if f, err := vectors.FormatFor(path); err == nil {
			return f
		}
	}
	if e.format != "" {
		return e.format
	}
	return vectors.FormatJSON
}

func runGenerate(args []string, e env, stdout, stderr io.Writer, log *slog.Logger) int {
	fs := newFlagSet("cloak generate", stderr)
	modeFlag := fs.StringP("mode", "m", e.mode, "keystream mode: hash or seeded")
	asInt := fs.BoolP("int", "i", false, "treat values as base-10 integers")
	formatFlag := fs.StringP("format", "f", "", "vector file format: "+strings.Join(vectors.Formats(), ", "))
	output := fs.StringP("output", "o", "-", "output file, - for stdout")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return success
		}
		return invalid
	}
	mode, ok := parseMode(*modeFlag, log)
	if !ok {
		return invalid
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return invalid
	}

	format := resolveFormat(*formatFlag, *output, e)
	c, err := vectors.Use(format)
	if err != nil {
		log.Error("Invalid format", "error", err, "formats", vectors.Formats())
		return invalid
	}

	kind := vectors.KindString
	if *asInt {
		kind = vectors.KindInt
	}
	set, err := vectors.Generate(mode, kind, fs.Args()...)
	if err != nil {
		log.Error("Failed to generate vectors", "error", err)
		return failure
	}
	data, err := vectors.Encode(c, set)
	if err != nil {
		log.Error("Failed to encode vectors", "format", format, "error", err)
		return failure
	}

	if *output == "-" {
		if _, err := stdout.Write(data); err != nil {
			log.Error("Failed to write vectors", "error", err)
			return failure
		}
		return success
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Error("Failed to write vectors", "path", *output, "error", err)
		return failure
	}
	log.Info("Wrote vectors", "path", *output, "format", format, "count", len(set.Vectors))
	return success
}

func runVerify(args []string, e env, stdout, stderr io.Writer, log *slog.Logger) int {
	fs := newFlagSet("cloak verify", stderr)
	formatFlag := fs.StringP("format", "f", "", "vector file format: "+strings.Join(vectors.Formats(), ", "))
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return success
		}
		return invalid
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return invalid
	}

	var set *vectors.Set
	var err error
	source := "golden"
	if fs.NArg() == 0 {
		set, err = vectors.Golden()
	} else {
		source = fs.Arg(0)
		set, err = readSet(source, *formatFlag, e)
	}
	if err != nil {
		log.Error("Failed to load vectors", "source", source, "error", err)
		if errors.Is(err, vectors.ErrUnknownFormat) {
			return invalid
		}
		return failure
	}

	report, err := vectors.Verify(context.Background(), set)
	if err != nil {
		log.Error("Verification aborted", "error", err)
		return failure
	}
	for _, f := range report.Failures {
		if f.Err != nil {
			fmt.Fprintf(stdout, "FAIL %d %s/%s: %v\n", f.Index, f.Vector.Mode, f.Vector.Kind, f.Err)
			continue
		}
		fmt.Fprintf(stdout, "FAIL %d %s/%s: got %q, want %q\n", f.Index, f.Vector.Mode, f.Vector.Kind, f.Got, f.Vector.Output)
	}
	fmt.Fprintf(stdout, "%d/%d vectors passed\n", report.Passed(), report.Total)
	if !report.OK() {
		return failure
	}
	return success
}

func readSet(path, formatFlag string, e env) (*vectors.Set, error) {
	c, err := vectors.Use(resolveFormat(formatFlag, path, e))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return vectors.Decode(c, data)
}
