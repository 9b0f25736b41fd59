// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"html"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-relay/models"
)

const (
	messageHeader    = "New Form Submission"
	submittedAtLabel = "Submitted at"
	captionPrefix    = "Photo from: "
	captionField     = "name"

	timestampLayout = "2006-01-02 15:04:05 MST"
)

// markdownV2Replacer escapes every character MarkdownV2 reserves.
var markdownV2Replacer = strings.NewReplacer(
	`\`, `\\`,
	"_", `\_`, "*", `\*`, "[", `\[`, "]", `\]`, "(", `\(`, ")", `\)`,
	"~", `\~`, "`", "\\`", ">", `\>`, "#", `\#`, "+", `\+`, "-", `\-`,
	"=", `\=`, "|", `\|`, "{", `\{`, "}", `\}`, ".", `\.`, "!", `\!`,
)

// MessageRenderer turns a submission into the text sent to the bot API.
type MessageRenderer struct {
	fields    models.FieldSet
	parseMode models.ParseMode
	location  *time.Location
}

func NewMessageRenderer(fields models.FieldSet, parseMode models.ParseMode) *MessageRenderer {
	return &MessageRenderer{
		fields:    fields,
		parseMode: parseMode,
		location:  time.Local,
	}
}

// Render writes a bold header, one labelled line per present field in the
// configured order and a trailing timestamp line. Blank fields produce no
// line at all.
func (r *MessageRenderer) Render(submission models.Submission) string {
	var b strings.Builder

	b.WriteString(r.bold(messageHeader))
	b.WriteString("\n")

	lines := 0
	for _, field := range r.fields {
		value := submission.Value(field.Key)
		if value == "" {
			continue
		}
		if lines == 0 {
			b.WriteString("\n")
		}
		r.writeLine(&b, field.Label, value)
		lines++
	}

	receivedAt := submission.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	b.WriteString("\n")
	r.writeLine(&b, submittedAtLabel, receivedAt.In(r.location).Format(timestampLayout))

	return strings.TrimRight(b.String(), "\n")
}

// Caption returns the plain text photo caption. The photo is sent without a
// parse mode so nothing is escaped.
func (r *MessageRenderer) Caption(submission models.Submission) string {
	name := submission.Value(captionField)
	if name == "" {
		return ""
	}
	return captionPrefix + name
}

func (r *MessageRenderer) ParseMode() models.ParseMode {
	return r.parseMode
}

func (r *MessageRenderer) writeLine(b *strings.Builder, label, value string) {
	b.WriteString(r.bold(label + ":"))
	b.WriteString(" ")
	b.WriteString(r.escape(value))
	b.WriteString("\n")
}

func (r *MessageRenderer) bold(s string) string {
	switch r.parseMode {
	case models.ParseModeMarkdownV2:
		return "*" + r.escape(s) + "*"
	default:
		return "<b>" + r.escape(s) + "</b>"
	}
}

func (r *MessageRenderer) escape(s string) string {
	switch r.parseMode {
	case models.ParseModeMarkdownV2:
		return markdownV2Replacer.Replace(s)
	default:
		return html.EscapeString(s)
	}
}
