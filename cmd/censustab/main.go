// Command censustab extracts structured tables from scanned census and
// election PDFs, and downloads published PDF sets.
//
// Usage:
//
//	censustab parse -in district_54.pdf -out district_54.csv
//	censustab parse -in na120.pdf -profile election -format xlsx -out na120.xlsx
//	censustab fetch -manifest districts.csv -base https://bureau.example.com/downloads -pattern "{code}{table}.pdf" -dest ./pdfs
//	censustab fetch -index https://bureau.example.com/census/index.html -dest ./pdfs
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	censustab "github.com/censuspdf/censustab"
	"github.com/censuspdf/censustab/export"
	"github.com/censuspdf/censustab/fetch"
	"github.com/censuspdf/censustab/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch os.Args[1] {
	case "parse":
		err = runParse(logger, os.Args[2:])
	case "fetch":
		err = runFetch(ctx, logger, os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: censustab <parse|fetch> [flags]")
	fmt.Fprintln(os.Stderr, "  parse  extract structured tables from PDFs")
	fmt.Fprintln(os.Stderr, "  fetch  download published PDF sets")
	fmt.Fprintln(os.Stderr, "run 'censustab <command> -h' for command flags")
}

func runParse(logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	var (
		in           = fs.String("in", "", "input PDF file (required)")
		out          = fs.String("out", "", "output file; stdout when empty")
		format       = fs.String("format", "csv", "output format: csv, xlsx, json, md")
		profName     = fs.String("profile", "census", "built-in profile: census, election, generic")
		profFile     = fs.String("profile-file", "", "YAML profile file (overrides -profile)")
		pagesSpec    = fs.String("pages", "", "page selection, e.g. 1-5,8 (default all)")
		dpi          = fs.Int("dpi", 0, "target OCR resolution (default 300)")
		lang         = fs.String("lang", "", "OCR language, e.g. eng+urd")
		forceOCR     = fs.Bool("force-ocr", false, "skip the text layer and always OCR")
		textOnly     = fs.Bool("text-only", false, "use the text layer only, never OCR")
		noSort       = fs.Bool("no-sort", false, "keep rows in encounter order")
		dedupSource  = fs.Bool("dedup-source", false, "include the source page in duplicate detection")
		caseInsens   = fs.Bool("case-insensitive", false, "match section headers ignoring case")
		dropContext  = fs.Bool("drop-page-context", false, "reset region/section at page boundaries")
		showStats    = fs.Bool("stats", false, "print a run summary to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("parse: -in is required")
	}

	ex := censustab.Open(*in)
	if *profFile != "" {
		ex = ex.ProfileFile(*profFile)
	} else {
		ex = ex.ProfileName(*profName)
	}
	if *pagesSpec != "" {
		pages, err := parsePageSpec(*pagesSpec)
		if err != nil {
			return err
		}
		ex = ex.Pages(pages...)
	}
	if *dpi != 0 {
		ex = ex.DPI(*dpi)
	}
	if *lang != "" {
		ex = ex.Language(*lang)
	}
	if *forceOCR {
		ex = ex.ForceOCR()
	}
	if *textOnly {
		ex = ex.TextLayerOnly()
	}
	if *noSort {
		ex = ex.NoSort()
	}
	if *dedupSource {
		ex = ex.DedupIncludeProvenance()
	}
	if *caseInsens {
		ex = ex.CaseInsensitiveSections()
	}
	if *dropContext {
		ex = ex.DropPageContext()
	}

	start := time.Now()
	table, warnings, err := ex.Table()
	if err != nil {
		return err
	}
	logger.Info("parsed",
		zap.String("file", *in),
		zap.Int("rows", table.RowCount()),
		zap.Int("warnings", len(warnings)),
		zap.Duration("elapsed", time.Since(start)))

	for _, w := range warnings {
		color.Yellow("warning: %s", w)
	}

	if *showStats {
		fmt.Fprint(os.Stderr, export.Summarize(table).String())
	}

	return writeOutput(table, *out, *format)
}

func writeOutput(table *model.Table, out, format string) error {
	if out == "" {
		switch format {
		case "csv":
			fmt.Print(table.ToCSV())
		case "md":
			fmt.Print(table.ToMarkdown())
		case "json":
			return export.WriteJSON(table, os.Stdout)
		default:
			return fmt.Errorf("format %q requires -out", format)
		}
		return nil
	}

	switch format {
	case "csv":
		return export.WriteCSVFile(table, out)
	case "xlsx":
		return export.WriteXLSXFile(table, out)
	case "json":
		return export.WriteJSONFile(table, out)
	case "md":
		return os.WriteFile(out, []byte(table.ToMarkdown()), 0o644)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func runFetch(ctx context.Context, logger *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	var (
		index     = fs.String("index", "", "index page URL to discover PDF links from")
		manifest  = fs.String("manifest", "", "district manifest CSV")
		base      = fs.String("base", "", "base URL for manifest downloads")
		pattern   = fs.String("pattern", "{code}{table}.pdf", "filename pattern for manifest downloads")
		dest      = fs.String("dest", ".", "destination directory")
		delay     = fs.Duration("delay", time.Second, "delay between downloads")
		timeout   = fs.Duration("timeout", 60*time.Second, "per-request timeout")
		retries   = fs.Int("retries", 3, "attempts per URL")
		insecure  = fs.Bool("insecure", false, "skip TLS certificate verification")
		overwrite = fs.Bool("overwrite", false, "re-download existing files")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client := fetch.NewClient(fetch.Options{
		Delay:              *delay,
		Timeout:            *timeout,
		Retries:            *retries,
		InsecureSkipVerify: *insecure,
		Overwrite:          *overwrite,
	})

	var urls []string
	switch {
	case *index != "":
		links, err := client.DiscoverLinks(ctx, *index)
		if err != nil {
			return err
		}
		urls = links
		logger.Info("discovered links", zap.Int("count", len(urls)))
	case *manifest != "":
		if *base == "" {
			return fmt.Errorf("fetch: -base is required with -manifest")
		}
		entries, err := fetch.LoadManifest(*manifest)
		if err != nil {
			return err
		}
		urls = fetch.ManifestURLs(*base, *pattern, entries)
		logger.Info("loaded manifest", zap.Int("entries", len(entries)))
	default:
		return fmt.Errorf("fetch: one of -index or -manifest is required")
	}

	done, failed := client.DownloadAll(ctx, urls, *dest)
	logger.Info("download complete",
		zap.Int("downloaded", len(done)),
		zap.Int("failed", len(failed)))

	for url, err := range failed {
		color.Red("failed: %s: %v", url, err)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d downloads failed", len(failed), len(urls))
	}
	color.Green("%d files in %s", len(done), *dest)
	return nil
}

// parsePageSpec parses a page selection like "1-3,7,10-12".
func parsePageSpec(spec string) ([]int, error) {
	var pages []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err1 := strconv.Atoi(lo)
			end, err2 := strconv.Atoi(hi)
			if err1 != nil || err2 != nil || start < 1 || end < start {
				return nil, fmt.Errorf("bad page range %q", part)
			}
			for i := start; i <= end; i++ {
				pages = append(pages, i)
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad page number %q", part)
		}
		pages = append(pages, n)
	}
	return pages, nil
}
