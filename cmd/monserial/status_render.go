package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusOK statusKind = iota
	statusError
)

func statusLabel(kind statusKind, colorize bool) string {
	label, colors := "OK", text.Colors{text.FgGreen}
	if kind == statusError {
		label, colors = "FAIL", text.Colors{text.FgRed, text.Bold}
	}
	if !colorize {
		return label
	}
	return colors.Sprint(label)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
