package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmorgan81/imagegen/internal/preview"
)

// chrome is the number of lines taken by everything except the image panel.
const chrome = 16

func (m Model) panelSize() (int, int) {
	return max(m.width-4, 20), max(m.height-chrome, 6)
}

func (m Model) View() string {
	t := m.theme

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		t.Title.Render("AI Image Generator"),
		"  ",
		t.Muted.Render("theme: "+t.Name),
	)

	all := m.deps.Examples.All()
	examples := make([]string, 0, len(all))
	for i, ex := range all[:min(len(all), 9)] {
		examples = append(examples, t.Muted.Render(fmt.Sprintf("alt+%d  %s", i+1, ex)))
	}

	sections := []string{
		header,
		"",
		m.input.View(),
		strings.Join(examples, "\n"),
		"",
		m.generateButton(),
		"",
		m.panel(),
	}
	if m.toast != nil {
		sections = append(sections, m.toastView())
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) generateButton() string {
	if m.Loading() {
		return m.theme.Button.Render(m.spinner.View() + " Generating...")
	}
	return m.theme.Button.Render("Generate Image")
}

// panel shows the loading placeholder, the result or the empty hint. Loading
// wins over a held image.
func (m Model) panel() string {
	t := m.theme
	w, h := m.panelSize()

	var content string
	switch m.State() {
	case Loading:
		bar := t.Shimmer.Render(strings.Repeat("░", max(w-8, 1)))
		content = lipgloss.JoinVertical(lipgloss.Center, bar, "", t.Text.Render(m.spinner.View()+" Generating..."), "", bar)
	case Result:
		body := m.preview
		if body == "" {
			body = t.Muted.Render("Preview unavailable (" + preview.Describe(m.image) + ")")
		}
		content = lipgloss.JoinVertical(lipgloss.Right, body, t.Secondary.Render("[ Download ]"))
	default:
		content = t.Muted.Render("Your generated image will appear here")
	}

	return t.Panel.Width(w).Height(h).Render(
		lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content),
	)
}

func (m Model) toastView() string {
	style := m.theme.Toast
	if m.toast.Destructive {
		style = m.theme.Destructive
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(m.toast.Title),
		m.toast.Description,
	))
}
