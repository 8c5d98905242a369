// Command examtable converts a PDF exam schedule into CSV, JSON or HTML.
//
//	examtable [flags] <input.pdf> [output]
//	examtable merge [-o out.csv] <a.csv|a.html> <b.csv|b.html> ...
//
// Without an output name the result is written next to the input, with the
// extension of the chosen format.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tsawler/examtable"
	"github.com/tsawler/examtable/config"
	"github.com/tsawler/examtable/export"
	"github.com/tsawler/examtable/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := runCLI(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

const usage = "usage: examtable [-config file.yaml] [-format csv|json|html] [-workers n] [-pages 1,3-4] [-v] [-warnings] <input.pdf> [output]\n" +
	"   or: examtable merge [-o out.csv] <a.csv|a.html> <b.csv|b.html> ..."

func runCLI(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "merge" {
		return runMerge(args[1:], stdout, stderr)
	}

	fs := flag.NewFlagSet("examtable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML file with layout tunables")
	formatName := fs.String("format", "", "output format: csv|json|html (default from output extension, else csv)")
	workers := fs.Int("workers", 0, "pages parsed concurrently")
	pageSpec := fs.String("pages", "", "pages to read, e.g. 1,3-4 (default all)")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	showWarnings := fs.Bool("warnings", false, "print warnings to stderr")

	if err := fs.Parse(reorderArgs(args)); err != nil {
		return 2
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	input, output := fs.Arg(0), fs.Arg(1)

	format := export.Detect(output)
	if *formatName != "" {
		f, err := export.ParseFormat(*formatName)
		if err != nil {
			fmt.Fprintf(stderr, "invalid -format: %v\n", err)
			return 2
		}
		format = f
	}
	if format == export.Unknown {
		format = export.CSV
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + format.Extension()
	}
	if filepath.Clean(output) == filepath.Clean(input) {
		fmt.Fprintln(stderr, "output would overwrite the input")
		return 2
	}

	pages, err := parsePages(*pageSpec)
	if err != nil {
		fmt.Fprintf(stderr, "invalid -pages: %v\n", err)
		return 2
	}

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer logging.SetLogger(nil)
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "config: %v\n", err)
			return 1
		}
	}

	ext := examtable.Open(input).WithConfig(cfg).Pages(pages...).Workers(*workers)
	rows, warnings, err := ext.Rows(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "extract: %v\n", err)
		return 1
	}
	if *showWarnings && len(warnings) > 0 {
		fmt.Fprintln(stderr, examtable.FormatWarnings(warnings))
	}

	if err := writeFile(output, func(w io.Writer) error {
		return export.Write(w, format, rows)
	}); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Wrote %d rows -> %s\n", len(rows), output)
	return 0
}

func runMerge(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("examtable merge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "final_exams_schedule.csv", "merged file; its extension picks csv, json or html")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	format := export.Detect(*output)
	if format == export.Unknown {
		format = export.CSV
	}

	var n int
	err := writeFile(*output, func(w io.Writer) error {
		var err error
		n, err = export.MergeFiles(w, format, fs.Args()...)
		return err
	})
	if err != nil {
		fmt.Fprintf(stderr, "merge: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Wrote %d rows -> %s\n", n, *output)
	return 0
}

// writeFile creates path and writes it with fn. A partly written file is
// removed on failure.
func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// parsePages parses a list such as "1,3-4" into 1-indexed page numbers
func parsePages(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	var pages []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("bad page %q", part)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("bad page range %q", part)
			}
		}
		if start < 1 || end < start {
			return nil, errors.New("pages must be positive and ranges ascending")
		}
		for p := start; p <= end; p++ {
			pages = append(pages, p)
		}
	}
	return pages, nil
}

// reorderArgs moves flags in front of positional arguments so that
// "examtable in.pdf out.csv -v" works like "examtable -v in.pdf out.csv".
func reorderArgs(args []string) []string {
	flags := make([]string, 0, len(args))
	pos := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			pos = append(pos, args[i+1:]...)
			break
		}
		name := strings.TrimLeft(a, "-")
		if name == a || name == "" {
			pos = append(pos, a)
			continue
		}
		flags = append(flags, a)
		switch name {
		case "config", "format", "workers", "pages":
			if i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	return append(flags, pos...)
}
