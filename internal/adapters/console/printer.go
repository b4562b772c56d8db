// Package console renders items and values for the command line.
package console

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"flowdoc/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

// Printer writes styled output. Styling is dropped when the writer is not
// a terminal.
type Printer struct {
	out   io.Writer
	color bool

	accent  lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	errMsg  lipgloss.Style
	header  lipgloss.Style
	panel   lipgloss.Style
}

// NewPrinter creates a printer for out
func NewPrinter(out io.Writer) *Printer {
	return newPrinter(out, isTerminal(out))
}

func newPrinter(out io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(out)
	p := &Printer{
		out:     out,
		color:   color,
		accent:  r.NewStyle(),
		muted:   r.NewStyle(),
		success: r.NewStyle(),
		warn:    r.NewStyle(),
		errMsg:  r.NewStyle(),
		header:  r.NewStyle(),
		panel:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
	if color {
		p.accent = p.accent.Foreground(lipgloss.Color("#7C3AED")).Bold(true)
		p.muted = p.muted.Foreground(lipgloss.Color("#6B7280"))
		p.success = p.success.Foreground(lipgloss.Color("#10B981")).Bold(true)
		p.warn = p.warn.Foreground(lipgloss.Color("#F59E0B"))
		p.errMsg = p.errMsg.Foreground(lipgloss.Color("#EF4444")).Bold(true)
		p.header = p.header.Foreground(lipgloss.Color("#7C3AED")).Bold(true)
		p.panel = p.panel.BorderForeground(lipgloss.Color("#7C3AED"))
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Println writes a plain line
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Success writes a success message
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, p.success.Render("✓ "+msg))
}

// Warn writes a warning
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.out, p.warn.Render("! "+msg))
}

// Error writes an error message
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, p.errMsg.Render("✗ "+msg))
}

// Value writes a value in the given format
func (p *Printer) Value(v any, format string) error {
	s, err := FormatValue(v, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, s)
	return nil
}

// ItemsTable writes one row per item
func (p *Printer) ItemsTable(items []domain.CollectionItem) {
	summaries := make([]domain.ItemSummary, len(items))
	for i, it := range items {
		summaries[i] = it.Summary()
	}
	p.SummaryTable(summaries)
}

// SummaryTable writes one row per summary
func (p *Printer) SummaryTable(items []domain.ItemSummary) {
	if len(items) == 0 {
		p.Println(p.muted.Render("No items"))
		return
	}

	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{it.ID, it.Name, it.Slug, formatTime(it), status(it)}
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		BorderStyle(p.muted).
		Headers("ID", "NAME", "SLUG", "UPDATED", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(2)
			switch {
			case row == table.HeaderRow:
				return style.Inherit(p.header)
			case col == 0:
				return style.Inherit(p.muted)
			}
			return style
		})

	fmt.Fprintln(p.out, tbl.Render())
	fmt.Fprintln(p.out, p.muted.Render(fmt.Sprintf("%d items", len(items))))
}

// ItemPanel writes an item's metadata and top-level fields inside a border
func (p *Printer) ItemPanel(item *domain.CollectionItem) {
	var b strings.Builder

	b.WriteString(p.accent.Render(item.Name()))
	b.WriteString("\n\n")

	meta := [][2]string{
		{"ID", item.ID},
		{"Slug", item.Slug()},
		{"Created", item.CreatedOn.Format(timeLayout)},
		{"Updated", item.LastUpdated.Format(timeLayout)},
		{"Status", status(item.Summary())},
	}
	if item.LastPublished != nil {
		meta = append(meta, [2]string{"Published", item.LastPublished.Format(timeLayout)})
	}
	if item.CMSLocaleID != "" {
		meta = append(meta, [2]string{"Locale", item.CMSLocaleID})
	}
	for _, m := range meta {
		fmt.Fprintf(&b, "%s %s\n", p.muted.Render(fmt.Sprintf("%-10s", m[0])), m[1])
	}

	keys := make([]string, 0, len(item.FieldData))
	for k := range item.FieldData {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("\n")
	b.WriteString(p.header.Render("Fields"))
	for _, k := range keys {
		fmt.Fprintf(&b, "\n  %s %s", k, p.muted.Render(describe(item.FieldData[k])))
	}

	fmt.Fprintln(p.out, p.panel.Render(b.String()))
}

func formatTime(s domain.ItemSummary) string {
	if s.LastUpdated.IsZero() {
		return "-"
	}
	return s.LastUpdated.Format(timeLayout)
}

func status(s domain.ItemSummary) string {
	switch {
	case s.IsArchived:
		return "archived"
	case s.IsDraft:
		return "draft"
	default:
		return "live"
	}
}

// describe returns a short type hint for a field value
func describe(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return fmt.Sprintf("{%d keys}", len(val))
	case []any:
		return fmt.Sprintf("[%d items]", len(val))
	case string:
		if r := []rune(val); len(r) > 40 {
			return fmt.Sprintf("%q…", string(r[:40]))
		}
		return fmt.Sprintf("%q", val)
	default:
		return fmt.Sprint(val)
	}
}
