// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logparse turns a plain-text meeting log into a MeetingRecord.
//
// A log is a sequence of "=== Section ===" headers followed by "Key: value"
// lines. Only the "Meeting Summary" and "Questions and Responses" sections
// carry data; every other line is skipped. Parsing is best-effort: malformed
// content never produces an error.
package logparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pdiddy/meeting-report/pkg/types"
)

const (
	// SectionSummary holds meeting metadata lines.
	SectionSummary = "Meeting Summary"
	// SectionQA holds Q/A lines.
	SectionQA = "Questions and Responses"

	headerMarker = "==="
	maxLineSize  = 1 << 20
)

// ErrLogNotFound is returned by ParseFile when the log does not exist.
var ErrLogNotFound = errors.New("meeting log not found")

// ParseFile reads and parses the log at path. A missing file yields an error
// matching both ErrLogNotFound and fs.ErrNotExist.
func ParseFile(path string) (*types.MeetingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrLogNotFound, path, err)
		}
		return nil, fmt.Errorf("opening meeting log: %w", err)
	}
	defer f.Close()

	rec, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading meeting log %s: %w", path, err)
	}
	return rec, nil
}

// Parse consumes r line by line. It fails only when r cannot be read.
func Parse(r io.Reader) (*types.MeetingRecord, error) {
	p := newParser()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		p.line(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p.rec, nil
}

// ParseLines parses already-read lines.
func ParseLines(lines []string) *types.MeetingRecord {
	p := newParser()
	for _, l := range lines {
		p.line(l)
	}
	return p.rec
}

// parser carries the only state of a parse: the current section.
type parser struct {
	section string
	rec     *types.MeetingRecord
}

func newParser() *parser {
	return &parser{rec: &types.MeetingRecord{QAPairs: []types.QAPair{}}}
}

func (p *parser) line(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return
	}

	if strings.HasPrefix(line, headerMarker) {
		p.section = strings.Trim(line, "= ")
		return
	}

	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch p.section {
	case SectionSummary:
		p.rec.Info.Set(strings.ToLower(key), value)
	case SectionQA:
		p.qa(key, value)
	}
}

func (p *parser) qa(key, value string) {
	switch {
	case strings.HasPrefix(key, "Q"):
		p.rec.QAPairs = append(p.rec.QAPairs, types.QAPair{Question: value})
	case strings.HasPrefix(key, "A"):
		if len(p.rec.QAPairs) == 0 {
			return
		}
		answer := value
		p.rec.QAPairs[len(p.rec.QAPairs)-1].Answer = &answer
	}
}
