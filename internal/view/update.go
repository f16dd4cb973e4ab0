package view

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmorgan81/imagegen/internal/log"
	"github.com/dmorgan81/imagegen/internal/preview"
	"github.com/dmorgan81/imagegen/internal/store"
)

type generatedMsg struct {
	prompt string
	data   []byte
}

type generateFailedMsg struct {
	err error
}

type savedMsg struct {
	location string
}

type saveFailedMsg struct {
	err error
}

type toastExpiredMsg struct {
	id int
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	log := log.FromContextOrDiscard(m.ctx).WithGroup("view")

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.SetWidth(max(m.width-4, 10))
		m.help.Width = m.width
		m.preview = m.renderPreview()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Generate):
			return m.generate()
		case key.Matches(msg, m.keys.Download):
			return m.download()
		case key.Matches(msg, m.keys.Example):
			if idx, ok := exampleIndex(msg); ok {
				if text, ok := m.deps.Examples.At(idx); ok {
					return m.SelectExample(text), nil
				}
			}
			return m, nil
		case key.Matches(msg, m.keys.Random):
			return m.SelectExample(m.deps.Examples.Random(m.ctx)), nil
		case key.Matches(msg, m.keys.Theme):
			m.theme = m.theme.Toggle()
			m.spinner.Style = m.theme.Spinner
			log.Debug("switched theme", "theme", m.theme.Name)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case generatedMsg:
		m.inflight--
		m.image = msg.data
		m.imagePrompt = msg.prompt
		m.preview = m.renderPreview()
		log.Info("showing generated image", "bytes", len(msg.data), "pending", m.inflight)
		return m, nil

	case generateFailedMsg:
		m.inflight--
		log.Error("image generation failed", "error", msg.err, "pending", m.inflight)
		return m.notify("Error", failedMessage, true)

	case savedMsg:
		log.Info("image downloaded", "location", msg.location)
		return m.notify("Downloaded", "Saved "+msg.location, false)

	case saveFailedMsg:
		log.Error("image download failed", "error", msg.err)
		return m.notify("Error", saveFailedMessage, true)

	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		if m.inflight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// generate validates the prompt and dispatches one request. Requests are not
// serialised: a second generate while one is pending starts another, and
// whichever finishes last leaves its image on screen.
func (m Model) generate() (Model, tea.Cmd) {
	log := log.FromContextOrDiscard(m.ctx).WithGroup("view")

	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		log.Info("rejected empty prompt")
		return m.notify("Error", emptyPromptMessage, true)
	}

	m.inflight++
	log.Info("dispatching generation", "pending", m.inflight)

	cmds := []tea.Cmd{m.request(text)}
	if m.inflight == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) request(text string) tea.Cmd {
	ctx, gen := m.ctx, m.deps.Generator
	return func() tea.Msg {
		data, err := gen.Generate(ctx, text)
		if err != nil {
			return generateFailedMsg{err}
		}
		return generatedMsg{prompt: text, data: data}
	}
}

// download saves the held image. It only acts in Result: with no image, or
// while a request is pending, there is nothing on screen to save.
func (m Model) download() (Model, tea.Cmd) {
	if m.State() != Result {
		return m, nil
	}

	ctx, saver := m.ctx, m.deps.Saver
	params := store.SaveParams{
		Name:        store.Filename(m.deps.Now()),
		Data:        m.image,
		ContentType: "image/png",
		Metadata:    map[string]string{"prompt": m.imagePrompt},
	}
	return m, func() tea.Msg {
		loc, err := saver.Save(ctx, params)
		if err != nil {
			return saveFailedMsg{err}
		}
		return savedMsg{loc}
	}
}

// notify replaces the visible toast and schedules its removal.
func (m Model) notify(title, description string, destructive bool) (Model, tea.Cmd) {
	m.toastSeq++
	id := m.toastSeq
	m.toast = &Toast{Title: title, Description: description, Destructive: destructive, id: id}
	return m, tea.Tick(m.deps.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id}
	})
}

func (m Model) renderPreview() string {
	if m.image == nil {
		return ""
	}
	w, h := m.panelSize()
	out, err := preview.Render(m.image, w, h-1)
	if err != nil {
		log.FromContextOrDiscard(m.ctx).Debug("preview unavailable", "error", err)
		return ""
	}
	return out
}
