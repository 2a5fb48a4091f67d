package main

import "github.com/atotto/clipboard"

// systemClipboard adapts the OS clipboard to hexview.Clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }
