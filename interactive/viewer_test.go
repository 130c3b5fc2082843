package interactive

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nickboucher/abom/hamlet"
	"github.com/nickboucher/abom/journal"
)

func sampleEvents() []journal.BuildEvent {
	return []journal.BuildEvent{
		{When: 1700000000, Action: "compile", Tool: "clang", Output: "hello", Dependencies: 3, Filters: 1},
		{When: 1700000100, Action: "archive", Tool: "ar", Output: "libhello.a", Dependencies: 0, Filters: 1},
	}
}

func TestViewerShowsNewestFirst(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	subject := newViewer(sampleEvents())
	wont.Nil(subject)
	selected := subject.selected()
	wont.Nil(selected)
	must.Equal("archive", selected.Action)
}

func TestViewerKeysToggleDetailAndQuit(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	subject := newViewer(sampleEvents())
	must.Equal(false, subject.detail)

	model, cmd := subject.Update(tea.KeyMsg{Type: tea.KeyEnter})
	must.Nil(cmd)
	must.True(model.(*viewer).detail)

	_, cmd = subject.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	wont.Nil(cmd)
}

func TestViewerSurvivesEmptyJournal(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	subject := newViewer(nil)
	must.Nil(subject.selected())
	must.True(len(subject.View()) > 0)
}
