package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/iw2rmb/hexed"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "hexed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseOptions(args, os.Stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Println(hexed.VersionTag())
		return nil
	}

	if opts.logPath != "" {
		f, err := tea.LogToFile(opts.logPath, "hexed")
		if err != nil {
			return errors.Wrap(err, "open log")
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	profile, forced, err := opts.colorProfile()
	if err != nil {
		return err
	}
	if forced {
		lipgloss.SetColorProfile(profile)
	}

	cfg, err := opts.config()
	if err != nil {
		return err
	}
	cfg.Clipboard = systemClipboard{}

	data, err := readFile(opts.path)
	if err != nil {
		return err
	}
	if fi, err := os.Stat(opts.path); err == nil && fi.Mode().Perm()&0o200 == 0 {
		cfg.ReadOnly = true
	}
	log.Printf("opened %s (%d bytes)", opts.path, len(data))

	p := tea.NewProgram(newModel(opts.path, data, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())

	if !opts.noWatch {
		fw, err := newFileWatcher(opts.path)
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			defer fw.Close()
			go fw.run(p.Send)
		}
	}

	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run")
	}
	return nil
}
