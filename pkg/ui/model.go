// Package ui is the interactive token-table browser. It is a pure consumer of
// scan results: it re-runs the scanner on demand and renders the token and
// error sequences, never mutating them.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/lexer"
	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/source"
)

// Model holds the browser state.
type Model struct {
	editor     textarea.Model
	tokenTable table.Model
	errorView  viewport.Model
	help       help.Model
	keys       keyMap

	result     *lexer.ScanResult
	exampleIdx int
	editorMode bool
	showHelp   bool
	width      int
	height     int
}

// NewModel builds the browser, optionally preloading initial source text.
func NewModel(initial string) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter IBTAC code, then ctrl+r to scan..."
	ta.CharLimit = 5000
	ta.ShowLineNumbers = true
	ta.SetHeight(6)
	ta.Focus()
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(bgLight)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(textMuted)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(textPrimary)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(textMuted)
	if initial != "" {
		ta.SetValue(initial)
	}

	t := table.New(
		table.WithColumns(tokenColumns(80)),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(primaryColor).
		BorderBottom(true).
		Bold(true).
		Foreground(primaryColor)
	s.Selected = s.Selected.
		Foreground(bgDark).
		Background(accentColor).
		Bold(false)
	t.SetStyles(s)

	vp := viewport.New(80, 8)
	vp.Style = errorPaneStyle

	m := Model{
		editor:     ta,
		tokenTable: t,
		errorView:  vp,
		help:       help.New(),
		keys:       keys,
		editorMode: true,
	}
	if initial != "" {
		m.rescan()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Analyze):
			m.rescan()
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.editor.SetValue("")
			m.result = nil
			m.tokenTable.SetRows([]table.Row{})
			m.errorView.SetContent("")
			return m, nil

		case key.Matches(msg, m.keys.NextExample):
			ex := examples[m.exampleIdx%len(examples)]
			m.exampleIdx++
			m.editor.SetValue(ex.code)
			m.rescan()
			return m, nil

		case key.Matches(msg, m.keys.FocusNext):
			m.editorMode = !m.editorMode
			if m.editorMode {
				m.editor.Focus()
				m.tokenTable.Blur()
			} else {
				m.editor.Blur()
				m.tokenTable.Focus()
			}
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.editorMode {
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.tokenTable, cmd = m.tokenTable.Update(msg)
		cmds = append(cmds, cmd)
		m.errorView, cmd = m.errorView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render("IBTAC Lexical Analyzer"))

	sections = append(sections,
		sectionLabelStyle.Render("Source"),
		editorStyle.Render(m.editor.View()))

	sections = append(sections,
		sectionLabelStyle.Render("Tokens"),
		m.tokenTable.View())

	if m.result != nil && m.result.HasErrors() {
		sections = append(sections,
			sectionLabelStyle.Render("Errors"),
			m.errorView.View())
	}

	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

// rescan runs the scanner over the editor contents and refreshes both panes.
func (m *Model) rescan() {
	src := source.NewSourceFile("<ui>", "", m.editor.Value())
	m.result = lexer.Scan(src)

	rows := make([]table.Row, 0, len(m.result.Tokens))
	for i, tok := range m.result.Tokens {
		lexeme := tok.Lexeme
		if tok.Kind == lexer.EOF {
			lexeme = "<eof>"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			tok.Kind.String(),
			lexeme,
			strconv.Itoa(tok.Line),
			strconv.Itoa(tok.Column),
		})
	}
	m.tokenTable.SetRows(rows)
	m.errorView.SetContent(renderErrors(m.result))
}

// renderErrors builds the grouped error text shown in the viewport.
func renderErrors(result *lexer.ScanResult) string {
	var b strings.Builder
	summary := result.Summary()
	for _, g := range summary.Groups {
		fmt.Fprintf(&b, "%s (%d)\n", g.Kind, len(g.Entries))
		for _, e := range g.Entries {
			fmt.Fprintf(&b, "  line %d, col %d: %s\n", e.Line, e.Column, e.Message)
			if e.Suggestion != "" {
				fmt.Fprintf(&b, "    hint: %s\n", e.Suggestion)
			}
		}
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	badge := cleanBadgeStyle.Render(" clean ")
	detail := "no scan yet"
	if m.result != nil {
		tokens := len(m.result.Tokens)
		errCount := len(m.result.Errors)
		detail = fmt.Sprintf("%d tokens, %d errors", tokens, errCount)
		if errCount > 0 {
			badge = errorBadgeStyle.Render(fmt.Sprintf(" %d error(s) ", errCount))
		}
	}
	hint := " | ctrl+r scan | ctrl+e example | ctrl+h help"
	width := m.width - 4
	if width < 0 {
		width = 0
	}
	return statusBarStyle.Width(width).Render(badge + " " + detail + hint)
}

func (m Model) renderHelp() string {
	helpText := m.help.FullHelpView([][]key.Binding{
		{
			m.keys.Analyze,
			m.keys.Clear,
			m.keys.NextExample,
			m.keys.FocusNext,
			m.keys.Help,
			m.keys.Quit,
		},
	})
	return helpBoxStyle.Render(helpText)
}

func (m *Model) updateLayout() {
	contentWidth := m.width - 6
	if contentWidth < 20 {
		contentWidth = 20
	}
	m.editor.SetWidth(contentWidth)
	m.tokenTable.SetColumns(tokenColumns(contentWidth))
	tableHeight := m.height - 20
	if tableHeight < 5 {
		tableHeight = 5
	}
	m.tokenTable.SetHeight(tableHeight)
	m.errorView.Width = contentWidth
}

func tokenColumns(width int) []table.Column {
	lexWidth := width - 40
	if lexWidth < 12 {
		lexWidth = 12
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Kind", Width: 20},
		{Title: "Lexeme", Width: lexWidth},
		{Title: "Line", Width: 6},
		{Title: "Col", Width: 6},
	}
}

// Run launches the browser.
func Run(initial string) error {
	p := tea.NewProgram(NewModel(initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
