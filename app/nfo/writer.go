package nfo

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"time"
)

// Movie is the subset of the Jellyfin/Kodi movie NFO schema the mirror writes
type Movie struct {
	Title     string
	Plot      string
	Premiered time.Time
	SortTitle string
}

// Writer produces movie sidecar files next to downloaded media so library
// scanners pick up title, description and release date without guessing.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Run writes the sidecar file at path. The parent directory must exist.
func (w *Writer) Run(path string, movie Movie) error {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	buf.WriteString("\n<movie>\n")

	w.writeElement(&buf, "title", movie.Title, 2)
	w.writeElement(&buf, "sorttitle", movie.SortTitle, 2)
	w.writeElement(&buf, "plot", movie.Plot, 2)
	w.writeElement(&buf, "premiered", movie.Premiered.UTC().Format("2006-01-02"), 2)

	buf.WriteString("</movie>\n")

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write NFO file: %w", err)
	}

	return nil
}

func (w *Writer) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
