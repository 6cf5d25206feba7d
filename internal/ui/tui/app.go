package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/drills/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenReport
)

type itemKind int

const (
	itemDrillSet itemKind = iota
	itemInit
	itemRefresh
	itemQuit
)

type menuItem struct {
	kind  itemKind
	title string
	desc  string
	path  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	cwd            string
	workspaceFound bool
	workspaceRoot  string

	running bool
	toast   string

	report     domain.Report
	reportView string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Drill sets"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		menu:  l,
	}
	m.menu.SetItems(m.menuItems(nil))
	return m
}

// menuItems builds the home menu: drill sets first, then actions.
func (m model) menuItems(refs []domain.DrillSetRef) []list.Item {
	items := make([]list.Item, 0, len(refs)+3)
	for _, r := range refs {
		items = append(items, menuItem{kind: itemDrillSet, title: r.Name, desc: r.Path, path: r.Path})
	}
	if !m.workspaceFound {
		items = append(items, menuItem{kind: itemInit, title: "Init workspace", desc: "Create drills.yaml and a sample drill set here"})
	}
	items = append(items,
		menuItem{kind: itemRefresh, title: "Refresh", desc: "Reload drill sets from disk"},
		menuItem{kind: itemQuit, title: "Quit", desc: "Exit drills"},
	)
	return items
}

// reset returns to the home screen and drops any in-flight run state.
func (m model) reset(toast string) model {
	m.scr = screenHome
	m.running = false
	m.report = domain.Report{}
	m.reportView = ""
	m.toast = toast
	return m
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if !msg.found {
			m.menu.SetItems(m.menuItems(nil))
			return m, nil
		}
		return m, cmdLoadDrillSets(msg.root)

	case drillSetsLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		m.menu.SetItems(m.menuItems(msg.refs))
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case runnerDoneMsg:
		m.running = false
		if msg.err != nil && msg.report.Started.IsZero() {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.report = msg.report
		m.reportView = renderReport(msg.report, m.theme)
		m.scr = screenReport
		m.toast = userMessage(msg.err)
		if msg.err == nil {
			m.toast = checksSummary(msg.report)
		}
		return m, nil

	case tea.KeyMsg:
		if m.menu.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			return m, nil

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				return m, nil
			}

		case "enter":
			if m.scr == screenHome {
				return m.activate()
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) activate() (tea.Model, tea.Cmd) {
	it, ok := m.menu.SelectedItem().(menuItem)
	if !ok || m.running {
		return m, nil
	}

	switch it.kind {
	case itemQuit:
		return m, tea.Quit
	case itemRefresh:
		m.toast = ""
		return m, cmdRefreshWorkspace(m.deps)
	case itemInit:
		if m.cwd == "" {
			m.toast = "Working directory unknown"
			return m, nil
		}
		return m, cmdInitWorkspace(m.deps, m.cwd)
	default:
		m.running = true
		m.toast = "Running " + it.title + "…"
		return m, startRunAsync(m.workspaceRoot, it.path, m.deps)
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("drills") + "\n" +
		m.theme.Subtitle.Render("thermostat, glide mixins and friends, from YAML drill sets") + "\n"

	var banner string
	if m.workspaceFound {
		info := fmt.Sprintf("Workspace: %s", m.workspaceRoot)
		if m.deps.LogPath != "" {
			info += fmt.Sprintf("\nLog: %s", m.deps.LogPath)
		}
		banner = m.theme.Help.Render(info)
	} else {
		banner = m.theme.Card.Render("⚠ No workspace found.\n\nChoose \"Init workspace\" to create one here.")
	}

	var footer string
	if m.toast != "" {
		footer = "\n" + m.theme.Status.Render(clampString(m.toast, 120))
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • / search • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help + footer)

	case screenReport:
		card := m.theme.Card.Render(m.reportView + "\n" + m.theme.Help.Render("esc/b back • q home"))
		return wrap.Render(header + "\n" + card + footer)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
