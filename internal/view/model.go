// Package view is the interactive screen: a prompt editor, example prompts,
// the generate action, the image panel and the download action.
//
// All state lives in Model and is only changed inside Update, which
// bubbletea calls from a single goroutine. Requests and downloads run as
// commands and report back through messages.
package view

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmorgan81/imagegen/internal/image"
	"github.com/dmorgan81/imagegen/internal/prompt"
	"github.com/dmorgan81/imagegen/internal/store"
	"github.com/dmorgan81/imagegen/internal/theme"
)

const (
	emptyPromptMessage = "Please enter a prompt first"
	failedMessage      = "Failed to generate image. Please try again."
	saveFailedMessage  = "Failed to save image."

	defaultWidth  = 80
	defaultHeight = 32
)

type State int

const (
	Idle State = iota
	Loading
	Result
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Result:
		return "result"
	default:
		return "idle"
	}
}

type Toast struct {
	Title       string
	Description string
	Destructive bool
	id          int
}

type Deps struct {
	Generator     image.Generator
	Saver         store.Saver
	Examples      *prompt.Examples
	Theme         theme.Theme
	ToastDuration time.Duration
	Now           func() time.Time
}

type Model struct {
	ctx  context.Context
	deps Deps
	keys keyMap

	input   textarea.Model
	spinner spinner.Model
	help    help.Model
	theme   theme.Theme

	inflight    int
	image       []byte
	imagePrompt string
	preview     string

	toast    *Toast
	toastSeq int

	width, height int
}

// New builds the screen. ctx is handed to every request and download and is
// expected to carry the logger; it is never cancelled by user actions.
func New(ctx context.Context, deps Deps) Model {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Examples == nil {
		deps.Examples = prompt.New(nil)
	}
	if deps.Theme.Name == "" {
		deps.Theme = theme.Dark()
	}
	if deps.ToastDuration <= 0 {
		deps.ToastDuration = 5 * time.Second
	}

	keys := defaultKeyMap()

	ta := textarea.New()
	ta.Placeholder = "Enter your prompt here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.KeyMap.InsertNewline = keys.Newline
	ta.SetWidth(defaultWidth - 4)
	ta.SetHeight(3)
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = deps.Theme.Spinner

	return Model{
		ctx:     ctx,
		deps:    deps,
		keys:    keys,
		input:   ta,
		spinner: s,
		help:    help.New(),
		theme:   deps.Theme,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// State is derived: any outstanding request means Loading, otherwise a held
// image means Result.
func (m Model) State() State {
	switch {
	case m.inflight > 0:
		return Loading
	case m.image != nil:
		return Result
	default:
		return Idle
	}
}

func (m Model) Loading() bool {
	return m.inflight > 0
}

func (m Model) Prompt() string {
	return m.input.Value()
}

// Image is the last successfully generated image, or nil.
func (m Model) Image() []byte {
	return m.image
}

// Toast is the visible notification, or nil.
func (m Model) Toast() *Toast {
	return m.toast
}

func (m Model) Theme() theme.Theme {
	return m.theme
}

// SelectExample replaces the prompt. It never changes State.
func (m Model) SelectExample(text string) Model {
	m.input.SetValue(text)
	return m
}
