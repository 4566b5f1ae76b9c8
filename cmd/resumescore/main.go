package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/resumescore/internal/compare"
	"github.com/dgallion1/resumescore/internal/doctree"
	"github.com/dgallion1/resumescore/internal/feedback"
	"github.com/dgallion1/resumescore/internal/keywords"
	"github.com/dgallion1/resumescore/internal/textproc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := slog.New(slog.NewTextHandler(stderr, nil))

	fs := flag.NewFlagSet("resumescore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	topN := fs.Int("top-n", keywords.DefaultTopN, "number of keywords per document")
	language := fs.String("language", textproc.DefaultLanguage, "stop-word language (english, none)")
	format := fs.String("format", "json", "output format: json, markdown or html")
	pdftotext := fs.Bool("pdftotext", false, "retry unreadable PDFs with the pdftotext binary")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: resumescore [flags] RESUME JOB_DESCRIPTION")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}
	if *format != "json" && *format != "markdown" && *format != "html" {
		log.Error("unknown format", "format", *format)
		return 2
	}

	comparer, err := compare.New(compare.Options{TopN: *topN, Language: *language, PDFFallback: *pdftotext})
	if err != nil {
		log.Error("invalid options", "error", err)
		return 2
	}

	resume, err := readDocument(fs.Arg(0))
	if err != nil {
		log.Error("read resume", "error", err)
		return 1
	}
	job, err := readDocument(fs.Arg(1))
	if err != nil {
		log.Error("read job description", "error", err)
		return 1
	}

	report, err := comparer.Compare(resume, job)
	if err != nil {
		log.Error("comparison failed", "kind", compare.ErrorKind(err), "error", err)
		return 1
	}

	switch *format {
	case "markdown":
		fmt.Fprint(stdout, feedback.Markdown(report))
	case "html":
		out, err := feedback.HTML(report)
		if err != nil {
			log.Error("render html", "error", err)
			return 1
		}
		fmt.Fprint(stdout, out)
	default:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Error("encode report", "error", err)
			return 1
		}
	}
	return 0
}

func readDocument(path string) (*doctree.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &doctree.Document{Filename: filepath.Base(path), Content: data}, nil
}
