package hexview

import (
	"encoding/binary"

	"github.com/iw2rmb/hexed/memory"
)

// Config configures the hex view Model.
type Config struct {
	// Source is the byte store being viewed. Its size is fixed for the
	// lifetime of the view; use Model.SetSource to replace it.
	Source memory.Source

	// Forwarded to memory.Options.
	ReadOnly     bool
	UTF8         bool
	HistoryLimit int

	// Cols is the number of bytes per row. Zero fits as many columns as the
	// width allows.
	Cols int
	// MidCols adds one extra space every MidCols columns. Zero disables it.
	MidCols int

	ShowASCII     bool
	HexII         bool
	GreyOutZeroes bool
	LowercaseHex  bool

	// AddrDigits is the number of hex digits in the address column. Zero
	// derives it from BaseAddr and the source size.
	AddrDigits int
	// BaseAddr is added to every displayed address.
	BaseAddr int

	// ShowPreview renders the data-type preview line under the rows.
	ShowPreview   bool
	PreviewType   memory.DataType
	PreviewOrder  binary.ByteOrder
	PreviewFormat memory.PreviewFormat

	// Copy produces clipboard text from the selection.
	CopyFormat  memory.CopyFormat
	CopyOptions memory.CopyOptions

	Style     Style
	KeyMap    KeyMap
	Clipboard Clipboard

	ScrollPolicy ScrollPolicy

	// OnChange is called after an update that changed the session version:
	// writes, undo, redo, cursor and selection moves.
	OnChange func(ChangeEvent)
}

// DefaultConfig returns the configuration used by the hexed CLI: 16
// columns split in two groups, a text column, greyed zero bytes and a
// little-endian 32-bit preview.
func DefaultConfig() Config {
	return Config{
		Cols:          16,
		MidCols:       8,
		ShowASCII:     true,
		GreyOutZeroes: true,
		ShowPreview:   true,
		PreviewType:   memory.Int32,
		PreviewOrder:  binary.LittleEndian,
		PreviewFormat: memory.FormatDec,
		CopyFormat:    memory.CopyHex,
		Style:         DefaultStyle(),
		KeyMap:        DefaultKeyMap(),
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.Cols < 0 {
		cfg.Cols = 0
	}
	if cfg.MidCols < 0 {
		cfg.MidCols = 0
	}
	if cfg.AddrDigits < 0 {
		cfg.AddrDigits = 0
	}
	if cfg.BaseAddr < 0 {
		cfg.BaseAddr = 0
	}
	if cfg.PreviewOrder == nil {
		cfg.PreviewOrder = binary.LittleEndian
	}
	if len(cfg.KeyMap.Up.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}
