package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// resultModel is a full-screen scrollable viewport over a rendered result,
// grounded on this codebase's own diff-review TUI model: a bubbles
// viewport wrapped in a bubbletea.Model, sized on the first WindowSizeMsg
// and resized on every one after.
type resultModel struct {
	title   string
	content string

	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func newResultModel(title, content string) resultModel {
	return resultModel{title: title, content: content}
}

func (m resultModel) Init() tea.Cmd {
	return nil
}

func (m resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		viewportHeight := m.height - headerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "j", "down":
			m.viewport.LineDown(1)
		case "k", "up":
			m.viewport.LineUp(1)
		case "ctrl+d":
			m.viewport.HalfViewDown()
		case "ctrl+u":
			m.viewport.HalfViewUp()
		case "g", "home":
			m.viewport.GotoTop()
		case "G", "end":
			m.viewport.GotoBottom()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m resultModel) View() string {
	if !m.ready {
		return "Loading...\n"
	}
	header := styles.Title.Render(m.title)
	footer := styles.Key.Render("j/k scroll · g/G top/bottom · q quit")
	return fmt.Sprintf("%s\n%s\n%s", header, m.viewport.View(), footer)
}

// runResultTUI blocks until the user quits the full-screen viewport.
func runResultTUI(title, content string) error {
	_, err := tea.NewProgram(newResultModel(title, content), tea.WithAltScreen()).Run()
	return err
}
