package interactive

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nickboucher/abom/journal"
)

type keymap struct {
	Up     key.Binding
	Down   key.Binding
	Detail key.Binding
	Quit   key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Detail: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (it keymap) ShortHelp() []key.Binding {
	return []key.Binding{it.Up, it.Down, it.Detail, it.Quit}
}

func (it keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{it.ShortHelp()}
}

type viewer struct {
	table  table.Model
	help   help.Model
	events []journal.BuildEvent
	keys   keymap
	styles *Styles
	detail bool
	width  int
	height int
}

// ShowJournal opens the build event viewer and blocks until the user
// quits it. Events arrive oldest first; the viewer shows newest first.
func ShowJournal(events []journal.BuildEvent) error {
	program := tea.NewProgram(newViewer(events), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func newViewer(events []journal.BuildEvent) *viewer {
	styles := defaultStyles()
	columns := []table.Column{
		{Title: "When", Width: 19},
		{Title: "Action", Width: 7},
		{Title: "Tool", Width: 10},
		{Title: "Deps", Width: 5},
		{Title: "Filters", Width: 7},
		{Title: "Output", Width: 40},
	}
	rows := make([]table.Row, 0, len(events))
	for at := len(events) - 1; at >= 0; at-- {
		event := events[at]
		rows = append(rows, table.Row{
			time.Unix(event.When, 0).Format("2006-01-02 15:04:05"),
			event.Action,
			event.Tool,
			fmt.Sprintf("%d", event.Dependencies),
			fmt.Sprintf("%d", event.Filters),
			event.Output,
		})
	}
	shown := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	style := table.DefaultStyles()
	style.Header = styles.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	style.Selected = styles.Selected
	shown.SetStyles(style)
	return &viewer{
		table:  shown,
		help:   help.New(),
		events: events,
		keys:   defaultKeymap(),
		styles: styles,
	}
}

func (it *viewer) Init() tea.Cmd {
	return nil
}

// selected maps the table cursor back to the underlying event, undoing
// the newest-first row order.
func (it *viewer) selected() *journal.BuildEvent {
	at := len(it.events) - 1 - it.table.Cursor()
	if at < 0 || at >= len(it.events) {
		return nil
	}
	return &it.events[at]
}

func (it *viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		it.width = msg.Width
		it.height = msg.Height
		it.help.Width = msg.Width
		height := msg.Height - 6
		if height < 5 {
			height = 5
		}
		it.table.SetHeight(height)
		return it, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, it.keys.Quit):
			return it, tea.Quit
		case key.Matches(msg, it.keys.Detail):
			it.detail = !it.detail
			return it, nil
		}
	}
	var cmd tea.Cmd
	it.table, cmd = it.table.Update(msg)
	return it, cmd
}

func (it *viewer) detailView() string {
	event := it.selected()
	if event == nil {
		return it.styles.Detail.Render("No event selected.")
	}
	line := func(label, form string, details ...interface{}) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			it.styles.Label.Render(label),
			it.styles.Value.Render(fmt.Sprintf(form, details...)))
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		line("When", "%s", time.Unix(event.When, 0).Format(time.RFC3339)),
		line("Action", "%s (%s)", event.Action, event.Tool),
		line("Output", "%s", event.Output),
		line("Build tool", "%s", event.BuildTool),
		line("Controller", "%s", event.Controller),
		line("Dependencies", "%d hashed, %d linked manifests", event.Dependencies, event.Linked),
		line("Manifest", "%d filters, %d bits set", event.Filters, event.Ones),
		line("Carrier", "sidecar=%v assembly=%v", event.Sidecar, event.Assembly),
		line("Warnings", "%d", event.Warnings),
		line("Elapsed", "%s", event.Elapsed),
	)
	return it.styles.Detail.Render(body)
}

func (it *viewer) View() string {
	title := it.styles.Title.Render(fmt.Sprintf(" abom build journal · %d events ", len(it.events)))
	sections := []string{title, it.styles.Frame.Render(it.table.View())}
	if it.detail {
		sections = append(sections, it.detailView())
	}
	sections = append(sections, it.styles.Footer.Render(it.help.View(it.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
