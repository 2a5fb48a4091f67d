package main

import (
	"encoding/binary"
	"flag"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"github.com/iw2rmb/hexed/hexview"
	"github.com/iw2rmb/hexed/memory"
)

type options struct {
	path string

	cols, midCols int
	digits        int
	base          string
	readOnly      bool
	utf8          bool
	hexII         bool
	noASCII       bool
	noGrey        bool
	lower         bool
	noPreview     bool

	previewType   string
	bigEndian     bool
	previewFormat string
	copyFormat    string

	logPath string
	noWatch bool
	color   string
	version bool
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("hexed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = io.WriteString(stderr, "usage: hexed [flags] FILE\n")
		fs.PrintDefaults()
	}

	fs.IntVar(&o.cols, "cols", 16, "bytes per row (0 fits the terminal width)")
	fs.IntVar(&o.midCols, "midcols", 8, "extra space every N columns (0 disables)")
	fs.IntVar(&o.digits, "digits", 0, "address digits (0 derives from size)")
	fs.StringVar(&o.base, "base", "0", "base display address (accepts 0x prefix)")
	fs.BoolVar(&o.readOnly, "readonly", false, "disable editing")
	fs.BoolVar(&o.utf8, "utf8", false, "interpret the text column and selection as UTF-8")
	fs.BoolVar(&o.hexII, "hexii", false, "HexII byte display")
	fs.BoolVar(&o.noASCII, "no-ascii", false, "hide the text column")
	fs.BoolVar(&o.noGrey, "no-grey", false, "do not grey out zero bytes")
	fs.BoolVar(&o.lower, "lower", false, "lower-case hex digits")
	fs.BoolVar(&o.noPreview, "no-preview", false, "hide the data preview line")
	fs.StringVar(&o.previewType, "type", "int32", "preview data type (int8..uint64, float32, float64)")
	fs.BoolVar(&o.bigEndian, "be", false, "big-endian preview and typed search")
	fs.StringVar(&o.previewFormat, "format", "dec", "preview format: bin, oct, dec or hex")
	fs.StringVar(&o.copyFormat, "copy", "hex", "copy format: hex, decimal, binary, ascii or utf8")
	fs.StringVar(&o.logPath, "log", "", "write debug log to this file")
	fs.BoolVar(&o.noWatch, "no-watch", false, "do not reload the file when it changes on disk")
	fs.StringVar(&o.color, "color", "auto", "colour profile: auto, ascii, ansi, ansi256 or truecolor")
	fs.BoolVar(&o.version, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.version {
		return o, nil
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return o, errors.New("expected exactly one file")
	}
	o.path = fs.Arg(0)
	return o, nil
}

// config maps the command-line options onto a view configuration.
func (o options) config() (hexview.Config, error) {
	cfg := hexview.DefaultConfig()
	cfg.Cols = o.cols
	cfg.MidCols = o.midCols
	cfg.AddrDigits = o.digits
	cfg.ReadOnly = o.readOnly
	cfg.UTF8 = o.utf8
	cfg.HexII = o.hexII
	cfg.ShowASCII = !o.noASCII
	cfg.GreyOutZeroes = !o.noGrey
	cfg.LowercaseHex = o.lower
	cfg.ShowPreview = !o.noPreview
	cfg.CopyOptions.Lowercase = o.lower

	base, err := strconv.ParseUint(strings.TrimSpace(o.base), 0, 63)
	if err != nil {
		return cfg, errors.Wrapf(err, "invalid -base %q", o.base)
	}
	cfg.BaseAddr = int(base)

	t, ok := memory.ParseDataType(o.previewType)
	if !ok {
		return cfg, errors.Errorf("unknown -type %q", o.previewType)
	}
	cfg.PreviewType = t
	if o.bigEndian {
		cfg.PreviewOrder = binary.BigEndian
	}

	f, ok := parsePreviewFormat(o.previewFormat)
	if !ok {
		return cfg, errors.Errorf("unknown -format %q", o.previewFormat)
	}
	cfg.PreviewFormat = f

	cf, ok := memory.ParseCopyFormat(o.copyFormat)
	if !ok {
		return cfg, errors.Errorf("unknown -copy %q", o.copyFormat)
	}
	cfg.CopyFormat = cf
	return cfg, nil
}

func parsePreviewFormat(name string) (memory.PreviewFormat, bool) {
	for f := memory.FormatBin; f <= memory.FormatHex; f++ {
		if f.String() == strings.ToLower(name) {
			return f, true
		}
	}
	return memory.FormatDec, false
}

// colorProfile returns the forced profile, or ok=false for auto detection.
func (o options) colorProfile() (p termenv.Profile, ok bool, err error) {
	switch strings.ToLower(o.color) {
	case "", "auto":
		return termenv.Ascii, false, nil
	case "ascii", "none":
		return termenv.Ascii, true, nil
	case "ansi":
		return termenv.ANSI, true, nil
	case "ansi256":
		return termenv.ANSI256, true, nil
	case "truecolor":
		return termenv.TrueColor, true, nil
	default:
		return termenv.Ascii, false, errors.Errorf("unknown -color %q", o.color)
	}
}
