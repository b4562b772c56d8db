package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"flowdoc/internal/adapters/tui/styles"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders key bindings separated by bullets, skipping disabled ones
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a status message
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title and optional subtitle
func (v *ViewBuilder) Title(title, subtitle string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n")
	if subtitle != "" {
		v.b.WriteString(styles.Subtitle.Render(subtitle))
		v.b.WriteString("\n")
	}
	v.b.WriteString("\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	return v.Line(styles.MutedText.Render(text))
}

// Field adds an aligned "label  value" line
func (v *ViewBuilder) Field(label, value string) *ViewBuilder {
	return v.Line(styles.FieldKey.Render(fmt.Sprintf("%-10s", label)) + " " + value)
}

// Message adds a message if non-empty
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString("\n")
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n")
	return v
}

// Help adds a help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString("\n")
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// String returns the built view wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
