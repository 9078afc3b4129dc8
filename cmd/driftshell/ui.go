package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ErebusAres/DriftShell/internal/engine"
	"github.com/ErebusAres/DriftShell/internal/render"
)

const placeholderText = "Type a command..."

// entry is one block of transcript: either echoed player input or engine
// output. Raw text is kept so the transcript can be rewrapped on resize.
type entry struct {
	input bool
	text  string
}

// UI is the BubbleTea model that runs the shell.
// https://github.com/charmbracelet/bubbletea
type UI struct {
	engine     *engine.Engine
	viewport   viewport.Model
	textarea   textarea.Model
	transcript []entry
	wrapWidth  int
	width      int
	height     int
	ready      bool
}

func NewUI(eng *engine.Engine, wrapWidth int) UI {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.Focus()
	ta.Prompt = render.PromptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	vp := viewport.New(50, 20)
	vp.MouseWheelEnabled = true

	return UI{
		engine:     eng,
		textarea:   ta,
		viewport:   vp,
		transcript: []entry{{text: eng.Intro()}},
		wrapWidth:  wrapWidth,
	}
}

func (m UI) Init() tea.Cmd {
	return textarea.Blink
}

func (m UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.viewport.Width = m.width - 2
		m.viewport.Height = m.height - 5
		m.textarea.SetWidth(m.width - 4)

		m.ready = true
		m.writeTranscript()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if line == "" {
				return m, nil
			}

			m.transcript = append(m.transcript, entry{
				input: true,
				text:  m.engine.Location() + "> " + line,
			})
			output, quit := m.engine.Execute(context.Background(), line)
			if output != "" {
				m.transcript = append(m.transcript, entry{text: output})
			}
			m.writeTranscript()
			if quit {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

// writeTranscript reformats the whole transcript for the current width and
// scrolls to the newest output.
func (m *UI) writeTranscript() {
	width := m.wrapWidth
	if m.viewport.Width > 0 && m.viewport.Width < width {
		width = m.viewport.Width
	}

	var content strings.Builder
	for i, e := range m.transcript {
		if i > 0 {
			content.WriteString("\n\n")
		}
		if e.input {
			content.WriteString(render.InputEchoStyle.Render(e.text))
		} else {
			content.WriteString(render.OutputStyle.Render(render.Wrap(e.text, width)))
		}
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

func (m UI) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := render.TitleStyle.Render("DRIFTSHELL")
	prompt := render.PromptStyle.Render(m.engine.Location() + ">")

	return title + "\n" +
		m.viewport.View() + "\n" +
		prompt + "\n" +
		m.textarea.View()
}
