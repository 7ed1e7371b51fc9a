// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts admin-entered copy into HTML using goldmark.
// The about story and FAQ answers are stored as plain text with blank-line
// paragraph breaks; treating them as Markdown renders those paragraphs
// properly and tolerates light formatting (links, emphasis) in the copy.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // tables, strikethrough, autolinks
		extension.Typographer, // smart quotes and dashes
	),
)

// ToHTML converts Markdown source into HTML. Raw HTML in the source is
// escaped by goldmark's default renderer, so admin copy cannot inject markup.
func ToHTML(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
