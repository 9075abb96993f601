package cli

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/studypal/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func longContent(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i+1)
	}
	return strings.Join(lines, "\n")
}

func TestPagerModel_NotReadyBeforeSize(t *testing.T) {
	d := teatest.New(t, newPagerModel("Plan", "hello"))
	d.DrainInit()
	assert.Equal(t, "loading...", d.View())
}

func TestPagerModel_ShowsTitleAndContent(t *testing.T) {
	d := teatest.New(t, newPagerModel("Study plan: Physics", "hello world"), teatest.WithSize(80, 10))
	d.DrainInit()

	view := stripANSI(d.View())
	assert.Contains(t, view, "Study plan: Physics")
	assert.Contains(t, view, "hello world")
	assert.Contains(t, view, "q quit")
}

func TestPagerModel_Scrolling(t *testing.T) {
	d := teatest.New(t, newPagerModel("Plan", longContent(40)), teatest.WithSize(80, 12))
	d.DrainInit()

	view := stripANSI(d.View())
	assert.Contains(t, view, "line 01")
	assert.Contains(t, view, "[TOP]")

	d.PressKey('G')
	view = stripANSI(d.View())
	assert.Contains(t, view, "line 40")
	assert.NotContains(t, view, "line 01")
	assert.Contains(t, view, "[END]")

	d.PressKey('g')
	view = stripANSI(d.View())
	assert.Contains(t, view, "line 01")

	d.PressDown()
	view = stripANSI(d.View())
	assert.NotContains(t, view, "line 01")
	assert.Contains(t, view, "line 02")
}

func TestPagerModel_QuitKeys(t *testing.T) {
	for _, send := range []func(d *teatest.Driver){
		func(d *teatest.Driver) { d.PressKey('q') },
		func(d *teatest.Driver) { d.PressEsc() },
		func(d *teatest.Driver) { d.PressCtrlC() },
	} {
		d := teatest.New(t, newPagerModel("Plan", "x"), teatest.WithSize(40, 10))
		d.DrainInit()
		send(d)
		assert.True(t, d.Quitting)
	}
}

func TestPagerModel_Resize(t *testing.T) {
	d := teatest.New(t, newPagerModel("Plan", longContent(5)), teatest.WithSize(40, 10))
	d.Send(tea.WindowSizeMsg{Width: 60, Height: 4})

	m, ok := d.Model.(pagerModel)
	require.True(t, ok)
	assert.Equal(t, 60, m.vp.Width)
	assert.Equal(t, 2, m.vp.Height)
}

func TestApp_RunUsesInjectedProgram(t *testing.T) {
	var ran tea.Model
	app := &App{RunProgram: func(m tea.Model) error { ran = m; return nil }}

	require.NoError(t, app.run(newPagerModel("Plan", "x")))
	assert.IsType(t, pagerModel{}, ran)
}
