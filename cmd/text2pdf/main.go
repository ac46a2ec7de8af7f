// seehuhn.de/go/text2pdf - convert plain text files to PDF
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Text2pdf converts a plain text file into a PDF file.
//
// Usage:
//
//	text2pdf [options] file.txt
//
// By default the output is written to "file.pdf".  Run "text2pdf -h"
// for a list of options.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/text2pdf"
	"seehuhn.de/go/text2pdf/internal/buildinfo"
	"seehuhn.de/go/text2pdf/internal/profile"
)

// Exit codes.
const (
	exitOK     = 0
	exitConfig = 1
	exitOpen   = 3
	exitWrite  = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	output     string
	keywords   string
	quiet      bool
	version    bool
	cpuprofile string
	memprofile string
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := text2pdf.DefaultConfig()
	opt := &options{}

	flags := flag.NewFlagSet("text2pdf", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: text2pdf [options] file.txt")
		flags.PrintDefaults()
	}

	stringVar(flags, &opt.output, "o", "output", "", "output file `name`")
	stringVar(flags, &cfg.Font, "f", "font", cfg.Font, "standard PDF font `name`")
	boolVar(flags, &cfg.ISOLatin1, "I", "isolatin", "use ISO Latin-1 encoding")
	floatVar(flags, &cfg.FontSize, "s", "size", cfg.FontSize, "font size in points")
	floatVar(flags, &cfg.LineSpacing, "v", "linespace", cfg.LineSpacing, "line spacing in points")
	intVar(flags, &cfg.LinesPerPage, "l", "lines", 0, "lines per page (0 = fit to page)")
	intVar(flags, &cfg.CharsPerLine, "c", "chars", cfg.CharsPerLine, "wrap lines after `n` characters")
	intVar(flags, &cfg.TruncateAt, "T", "truncate", 0, "truncate lines after `n` characters (0 = off)")
	intVar(flags, &cfg.TabWidth, "t", "tab", cfg.TabWidth, "tab width")
	boolVar(flags, &cfg.FormFeed, "F", "useff", "start a new page at form feed characters")
	boolVar(flags, &cfg.Greenbar, "G", "greenbar", "draw a listing paper background")
	stringVar(flags, &cfg.PaperSize, "P", "papersize", "", "paper size: letter, A4 or A3")
	floatVar(flags, &cfg.Width, "W", "width", cfg.Width, "page width in points")
	floatVar(flags, &cfg.Height, "H", "height", cfg.Height, "page height in points")
	twoColumns := func(string) error {
		cfg.Columns = 2
		return nil
	}
	flags.BoolFunc("2", "print in two columns", twoColumns)
	flags.BoolFunc("twocolumns", "same as -2", twoColumns)
	boolVar(flags, &cfg.Landscape, "L", "landscape", "swap page width and height")
	stringVar(flags, &cfg.Subject, "S", "subject", "", "document subject")
	stringVar(flags, &cfg.Author, "A", "author", "", "document author")
	stringVar(flags, &opt.keywords, "K", "keywords", "", "comma-separated document keywords")
	flags.StringVar(&cfg.Title, "title", "", "document title (default: subject or input file name)")
	flags.StringVar(&cfg.Lang, "lang", "", "language `tag` of the document text")
	flags.BoolVar(&cfg.XMP, "xmp", false, "include an XMP metadata stream")
	boolVar(flags, &cfg.StrictEscapes, "E", "strict", "write non-printable bytes as octal escapes")
	boolVar(flags, &opt.quiet, "q", "quiet", "suppress informational messages")
	flags.StringVar(&opt.cpuprofile, "cpuprofile", "", "write CPU profile to `file`")
	flags.StringVar(&opt.memprofile, "memprofile", "", "write memory profile to `file`")
	flags.BoolVar(&opt.version, "version", false, "print the version and exit")

	err := flags.Parse(args)
	if err == flag.ErrHelp {
		return exitOK
	} else if err != nil {
		return exitConfig
	}

	if opt.version {
		fmt.Fprintln(stdout, buildinfo.Producer("text2pdf"))
		return exitOK
	}

	if flags.NArg() != 1 {
		if flags.NArg() == 0 {
			fmt.Fprintln(stderr, "text2pdf:", text2pdf.ErrMissingInput)
		} else {
			fmt.Fprintln(stderr, "text2pdf: too many arguments")
		}
		flags.Usage()
		return exitConfig
	}
	inName := flags.Arg(0)
	cfg.Keywords = text2pdf.ParseKeywords(opt.keywords)

	stop, err := profile.Start(opt.cpuprofile, opt.memprofile)
	if err != nil {
		fmt.Fprintln(stderr, "text2pdf:", err)
		return exitConfig
	}
	defer func() {
		err := stop()
		if err != nil {
			fmt.Fprintln(stderr, "text2pdf:", err)
		}
	}()

	msg := stdout
	if opt.quiet {
		msg = io.Discard
	}
	cfg.Clamp()
	announce(msg, cfg, inName)

	showProgress := !opt.quiet && isTerminal(stderr)
	if showProgress {
		cfg.Progress = func(pageNo int) {
			fmt.Fprintf(stderr, "\rpage %d", pageNo)
		}
	}

	outName := opt.output
	if outName == "" {
		outName = text2pdf.OutputName(inName)
	}
	fmt.Fprintf(msg, "Writing pdf file ---> %s\n", outName)

	res, err := text2pdf.ConvertFile(inName, outName, cfg)
	if showProgress && res != nil && res.Pages > 0 {
		fmt.Fprintln(stderr)
	}
	if err != nil {
		fmt.Fprintln(stderr, "text2pdf:", err)
		return exitCode(err)
	}

	fmt.Fprintf(msg, "Wrote file %s (%d pages, %d bytes)\n",
		res.OutputName, res.Pages, res.Size)
	return exitOK
}

// announce prints the option notices of the classic tool.
func announce(w io.Writer, cfg *text2pdf.Config, inName string) {
	if cfg.Landscape {
		fmt.Fprintln(w, "Landscape option on ...")
	}
	if cfg.Columns == 2 {
		fmt.Fprintln(w, "Printing in two columns ...")
	}
	if cfg.FormFeed {
		fmt.Fprintln(w, "Using form feed character as page break ...")
	}
	if cfg.ISOLatin1 {
		fmt.Fprintln(w, "Using ISO Latin Encoding ...")
	}
	fmt.Fprintf(w, "Using font %s size = %g\n", cfg.Font, cfg.FontSize)
	fmt.Fprintf(w, "Input file ===> %s\n", inName)
}

func exitCode(err error) int {
	var cfgErr *text2pdf.ConfigError
	var openErr *text2pdf.OpenError
	var readErr *text2pdf.ReadError
	switch {
	case errors.As(err, &cfgErr), errors.Is(err, text2pdf.ErrMissingInput):
		return exitConfig
	case errors.As(err, &openErr), errors.As(err, &readErr):
		return exitOpen
	default:
		return exitWrite
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func stringVar(flags *flag.FlagSet, p *string, short, long, value, usage string) {
	flags.StringVar(p, short, value, usage)
	flags.StringVar(p, long, value, "same as -"+short)
}

func boolVar(flags *flag.FlagSet, p *bool, short, long, usage string) {
	flags.BoolVar(p, short, false, usage)
	flags.BoolVar(p, long, false, "same as -"+short)
}

func intVar(flags *flag.FlagSet, p *int, short, long string, value int, usage string) {
	flags.IntVar(p, short, value, usage)
	flags.IntVar(p, long, value, "same as -"+short)
}

func floatVar(flags *flag.FlagSet, p *float64, short, long string, value float64, usage string) {
	flags.Float64Var(p, short, value, usage)
	flags.Float64Var(p, long, value, "same as -"+short)
}
