package libcmd

import (
	"fmt"
	"strings"

	"github.com/mfridman/libcmd/pkg/textutil"
)

// Usage returns the help text of c, using c.UsageFunc when set.
func (c *Command) Usage() string {
	if c == nil {
		return ""
	}
	if c.UsageFunc != nil {
		return c.UsageFunc(c)
	}
	return DefaultUsage(c)
}

// DefaultUsage renders the help text of c for the path it was reached through:
//
//	<usage header>
//	Usage: example print [subcmd] [flags] [options]
//	<description>
//
//	Flags:      -h          --help      Shows this message
//	            --verbose
//
//	Options:    -i          --input     input string which is then printed
//
//	Subcmd:     bakeice     This is baking ice.
//
//	For more help: example print bakeice --help
//
// Anonymous hands are never shown, and an option without any displayed hand is left out.
func DefaultUsage(c *Command) string {
	if c == nil {
		return ""
	}
	cfg := c.config()

	var flags, options []row
	for _, opt := range c.Options {
		if opt == nil || opt.value == nil || len(opt.Hands) == 0 {
			continue
		}
		r := row{hands: opt.Hands, description: opt.Description}
		if opt.IsFlag() {
			flags = append(flags, r)
		} else {
			options = append(options, r)
		}
	}
	var subs []row
	for _, sub := range c.SubCommands {
		if sub != nil {
			subs = append(subs, row{hands: []string{sub.Name}, description: sub.Description})
		}
	}

	var b strings.Builder
	if header := c.header(); header != "" {
		b.WriteString(header)
		b.WriteString("\n")
	}

	usage := "Usage: " + c.Path()
	if len(subs) > 0 {
		usage += " [subcmd]"
	}
	if len(flags) > 0 {
		usage += " [flags]"
	}
	if len(options) > 0 {
		usage += " [options]"
	}
	b.WriteString(usage)
	b.WriteString("\n")
	if c.Description != "" {
		writeWrapped(&b, c.Description, "", cfg.Width)
	}
	b.WriteString("\n")

	blocks := []struct {
		label string
		rows  []row
	}{
		{"Flags:", flags},
		{"Options:", options},
		{"Subcmd:", subs},
	}
	written := 0
	for _, block := range blocks {
		if len(block.rows) == 0 {
			continue
		}
		if written > 0 {
			b.WriteString("\n")
		}
		writeBlock(&b, block.label, block.rows, cfg)
		written++
	}

	switch len(subs) {
	case 0:
	case 1:
		fmt.Fprintf(&b, "\nFor more help: %s %s --help\n", c.Path(), subs[0].hands[0])
	default:
		fmt.Fprintf(&b, "\nFor more help: %s [subcmd] --help\n", c.Path())
	}

	return strings.TrimRight(b.String(), "\n")
}

type row struct {
	hands       []string
	description string
}

// writeBlock writes one labelled block. Every row reserves as many name columns as the row with the
// most hands, so the descriptions line up.
func writeBlock(b *strings.Builder, label string, rows []row, cfg *Config) {
	columns := 0
	for _, r := range rows {
		columns = max(columns, len(r.hands))
	}
	blank := strings.Repeat(" ", cfg.ColumnWidth)
	for i, r := range rows {
		var line strings.Builder
		if i == 0 {
			line.WriteString(textutil.Cell(label, cfg.ColumnWidth))
		} else {
			line.WriteString(blank)
		}
		for _, hand := range r.hands {
			line.WriteString(textutil.Cell(hand, cfg.ColumnWidth))
		}
		for j := len(r.hands); j < columns; j++ {
			line.WriteString(blank)
		}
		prefix := line.String()
		if r.description == "" {
			b.WriteString(strings.TrimRight(prefix, " "))
			b.WriteString("\n")
			continue
		}
		b.WriteString(prefix)
		writeWrapped(b, r.description, strings.Repeat(" ", textutil.Width(prefix)), cfg.Width-textutil.Width(prefix))
	}
}

// writeWrapped writes text wrapped to width cells, indenting continuation lines. A width below one
// disables wrapping.
func writeWrapped(b *strings.Builder, text, indent string, width int) {
	if width < 1 {
		b.WriteString(text)
		b.WriteString("\n")
		return
	}
	lines := textutil.Wrap(text, width)
	if len(lines) == 0 {
		b.WriteString("\n")
		return
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteString(indent)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}
