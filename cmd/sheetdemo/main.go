package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/term"

	"github.com/tessfold/bubblesheet"
	"github.com/tessfold/bubblesheet/position"
	"github.com/tessfold/bubblesheet/scrollable"
	"github.com/tessfold/bubblesheet/sheet"
)

var (
	filePath   = flag.String("file", "", "file to browse in the sheet (default: built-in sample)")
	useSection = flag.Bool("sections", false, "group rows into sections by leading '## ' headings")
)

const sampleContent = `## Getting started

Drag the sheet handle with the mouse to move it between snap points.
Expand it fully and the wheel scrolls this content instead.
Pull down from the top of the content to refresh.

## Keys

tab switches between list and markdown preview.
/ filters rows, y copies the selected row, q quits.
`

// statusClearMsg wipes the status line after a short delay.
type statusClearMsg struct{}

type model struct {
	width  int
	height int

	engine    *position.SnapEngine
	container *sheet.Container

	list    *bubblesheet.Scrollable
	preview *bubblesheet.Scrollable
	showing *bubblesheet.Scrollable

	filter textinput.Model

	md      *mdRenderer
	watcher *fsnotify.Watcher
	path    string

	rows   []string
	raw    string
	status string
}

func newModel(path string, sections bool) *model {
	m := &model{
		path: path,
		md:   newMDRenderer(),
	}

	m.filter = textinput.New()
	m.filter.Placeholder = "filter"
	m.filter.Prompt = "/ "

	m.engine = position.NewSnapEngine(3, 12, 24)
	m.container = sheet.New(m.engine)

	typ := bubblesheet.NewFlatList
	if sections {
		typ = bubblesheet.NewSectionList
	}
	m.list = typ(
		bubblesheet.WithOnRefresh(func() tea.Cmd { return loadFile(m.path) }),
		bubblesheet.WithOnKeyboardDismiss(func() { m.filter.Blur() }),
		bubblesheet.WithFooterMarginAdjustment(),
	)
	m.preview = bubblesheet.NewScrollView(
		bubblesheet.WithShowsScrollIndicator(true),
	)

	m.showing = m.list
	m.container.SetScroller(m.list)
	return m
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadFile(m.path)}
	if m.watcher != nil {
		cmds = append(cmds, nextFileEvent(m.watcher, m.path))
	}
	// Terminal size may arrive late over some terminals; seed it.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cmds = append(cmds, func() tea.Msg { return tea.WindowSizeMsg{Width: w, Height: h} })
	}
	cmds = append(cmds, m.engine.Expand())
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if m.filter.Focused() {
			switch msg.String() {
			case "enter", "esc":
				m.filter.Blur()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			if m.watcher != nil {
				m.watcher.Close()
			}
			return m, tea.Quit
		case "tab":
			m.toggleScroller()
		case "e":
			cmds = append(cmds, m.engine.Expand())
		case "c":
			cmds = append(cmds, m.engine.RequestCollapse())
		case "/":
			cmds = append(cmds, m.filter.Focus())
		case "y":
			cmds = append(cmds, m.copySelected())
		default:
			cmds = append(cmds, m.showing.Update(msg))
		}

	case rowsLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("load failed: %v", msg.err)
		} else {
			m.rows = msg.rows
			m.raw = msg.raw
			m.applyFilter()
		}
		m.list.SetRefreshing(false)
		cmds = append(cmds, clearStatusLater())

	case fileChangedMsg:
		cmds = append(cmds, loadFile(m.path))
		if m.watcher != nil {
			cmds = append(cmds, nextFileEvent(m.watcher, m.path))
		}

	case statusClearMsg:
		m.status = ""

	case position.TickMsg:
		cmds = append(cmds, m.engine.Update(msg))
	}

	cmds = append(cmds, m.container.Update(msg))
	return m, tea.Batch(cmds...)
}

// toggleScroller swaps the active scrollable between list and preview. The
// registry keeps the inactive one's offset untouched until it re-registers.
func (m *model) toggleScroller() {
	if m.showing == m.list {
		m.preview.SetContent(m.md.Render(m.raw, max(20, m.width-2)))
		m.showing = m.preview
	} else {
		m.showing = m.list
	}
	m.container.SetScroller(m.showing)
}

func (m *model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		m.setRows(m.rows)
		return
	}
	var filtered []string
	for _, row := range m.rows {
		if strings.Contains(strings.ToLower(row), query) {
			filtered = append(filtered, row)
		}
	}
	m.setRows(filtered)
}

func (m *model) setRows(rows []string) {
	if m.list.Type() == scrollable.TypeSectionList {
		m.list.SetSections(groupSections(rows))
		return
	}
	m.list.SetRows(rows)
}

// groupSections splits rows on '## ' headings.
func groupSections(rows []string) []bubblesheet.Section {
	var out []bubblesheet.Section
	current := bubblesheet.Section{Title: "Notes"}
	for _, row := range rows {
		if title, ok := strings.CutPrefix(row, "## "); ok {
			if len(current.Rows) > 0 {
				out = append(out, current)
			}
			current = bubblesheet.Section{Title: title}
			continue
		}
		current.Rows = append(current.Rows, row)
	}
	if len(current.Rows) > 0 {
		out = append(out, current)
	}
	return out
}

func (m *model) copySelected() tea.Cmd {
	row, ok := m.list.SelectedRow()
	if !ok {
		m.status = "nothing selected"
		return clearStatusLater()
	}
	if err := clipboard.WriteAll(ansi.Strip(row)); err != nil {
		m.status = "copy failed: " + err.Error()
	} else {
		m.status = "copied"
	}
	return clearStatusLater()
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg { return statusClearMsg{} })
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	backdrop := m.backdrop()
	return m.container.View(backdrop)
}

func (m *model) backdrop() string {
	lines := make([]string, m.height)
	lines[0] = fmt.Sprintf(" sheetdemo · %s", m.path)
	if m.filter.Focused() || m.filter.Value() != "" {
		lines[1] = " " + m.filter.View()
	}
	if m.status != "" {
		lines[len(lines)-1] = " " + m.status
	}
	return strings.Join(lines, "\n")
}

func main() {
	flag.Parse()

	path := *filePath
	if path == "" {
		tmp, err := os.CreateTemp("", "sheetdemo-*.md")
		if err != nil {
			fmt.Fprintf(os.Stderr, "sheetdemo: %v\n", err)
			os.Exit(1)
		}
		if _, err := tmp.WriteString(sampleContent); err != nil {
			fmt.Fprintf(os.Stderr, "sheetdemo: %v\n", err)
			os.Exit(1)
		}
		tmp.Close()
		path = tmp.Name()
		defer os.Remove(path)
	}

	m := newModel(path, *useSection)
	if w, err := watchFile(path); err == nil {
		m.watcher = w
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "sheetdemo: %v\n", err)
		os.Exit(1)
	}
}
