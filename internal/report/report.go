// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders a MeetingRecord as a self-contained HTML email body.
//
// The document has four regions in fixed order: a header with logo and title,
// the "Key Discussion Points" question cards, the "Meeting Summary" metadata
// blocks and the "Detailed Discussion" question/answer blocks. All text taken
// from the log is escaped by html/template. A question without an answer gets
// no Response block.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/meeting-report/pkg/types"
)

const (
	subjectPrefix = "Meeting Summary - "
	undated       = "Undated"
)

//go:embed report.html.tmpl
var reportHTML string

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"title": titleCase,
}).Parse(reportHTML))

// Renderer produces HTML reports with a fixed header.
type Renderer struct {
	title   string
	logoURL string
}

// NewRenderer returns a Renderer for cfg. An empty Title falls back to
// types.DefaultReportTitle; an empty LogoURL renders no logo.
func NewRenderer(cfg types.ReportConfig) *Renderer {
	title := cfg.Title
	if title == "" {
		title = types.DefaultReportTitle
	}
	return &Renderer{title: title, logoURL: cfg.LogoURL}
}

type topic struct {
	Number    int
	Question  string
	Answer    string
	HasAnswer bool
}

type field struct {
	Key   string
	Value string
}

type page struct {
	Title   string
	LogoURL string
	Topics  []topic
	Info    []field
}

// Render returns the HTML document for rec. It does not modify rec and
// returns identical output for identical input. An error means the built-in
// template is broken; record content cannot cause one.
func (r *Renderer) Render(rec *types.MeetingRecord) (string, error) {
	p := page{Title: r.title, LogoURL: r.logoURL}
	if rec != nil {
		p.Topics = make([]topic, len(rec.QAPairs))
		for i, qa := range rec.QAPairs {
			p.Topics[i] = topic{
				Number:    i + 1,
				Question:  qa.Question,
				Answer:    qa.AnswerText(),
				HasAnswer: qa.HasAnswer(),
			}
		}
		for _, k := range rec.Info.Keys() {
			v, _ := rec.Info.Get(k)
			p.Info = append(p.Info, field{Key: k, Value: v})
		}
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return buf.String(), nil
}

// Subject returns the email subject for rec: "Meeting Summary - <date>",
// or "Meeting Summary - Undated" when the log has no date field.
func Subject(rec *types.MeetingRecord) string {
	if rec != nil {
		if date, ok := rec.Info.Get("date"); ok {
			return subjectPrefix + date
		}
	}
	return subjectPrefix + undated
}

// titleCase upper-cases the first letter of every word and lower-cases the rest.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
