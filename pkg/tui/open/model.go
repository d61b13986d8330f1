// Package openui hosts the Bubble Tea program for the countdown redirect.
package openui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/spinner"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/detour/pkg/browser"
	"tableflip.dev/detour/pkg/countdown"
	"tableflip.dev/detour/pkg/redirect"
	"tableflip.dev/detour/pkg/tui/theme"
)

type countTickMsg time.Time

type settleMsg struct{}

type navigatedMsg struct{ err error }

// Model wraps the countdown controller in a Bubble Tea event loop. All
// timers live here as tea commands; they are rescheduled only while their
// state demands them, so both stop at commitment or teardown.
type Model struct {
	ctrl *countdown.Controller
	nav  browser.Navigator

	theme  theme.Theme
	spin   spinner.Model
	total  int
	target string
	navErr error

	navigated bool
	quitting  bool
}

// New creates the countdown model. nav may be nil, in which case the
// committed URL is dropped (used by tests and dry runs).
func New(ctrl *countdown.Controller, nav browser.Navigator) *Model {
	th := theme.Default()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = th.Status

	return &Model{
		ctrl:  ctrl,
		nav:   nav,
		theme: th,
		spin:  sp,
		total: ctrl.Remaining(),
	}
}

// Target reports the committed redirect URL, empty before commitment.
func (m *Model) Target() string { return m.target }

// Navigated reports whether the navigation fired.
func (m *Model) Navigated() bool { return m.navigated }

// Err reports the navigation failure, if any. Navigation is fire and
// forget; a failure here surfaces after the program exits.
func (m *Model) Err() error { return m.navErr }

func (m *Model) Init() tea.Cmd {
	if m.ctrl.Remaining() == 0 {
		return m.commit()
	}
	return countTickCmd()
}

func countTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return countTickMsg(t) })
}

func settleCmd() tea.Cmd {
	return tea.Tick(redirect.SettleDelay, func(time.Time) tea.Msg { return settleMsg{} })
}

// commit latches the redirect and schedules the navigation after the
// settle delay so the redirecting frame gets a chance to render. The
// latch lives in the controller; a second commit is a no-op here too.
func (m *Model) commit() tea.Cmd {
	target, ok := m.ctrl.Commit()
	if !ok {
		return nil
	}
	m.target = target
	return tea.Batch(m.spin.Tick, settleCmd())
}

func (m *Model) navigateCmd() tea.Cmd {
	nav := m.nav
	target := m.target
	return func() tea.Msg {
		if nav == nil {
			return navigatedMsg{}
		}
		return navigatedMsg{err: nav.Navigate(target)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter", "g", "space":
			return m, m.commit()
		}
		return m, nil
	case countTickMsg:
		if m.ctrl.Status() != countdown.Counting {
			// stray tick after commitment; the timer is not rescheduled
			return m, nil
		}
		if m.ctrl.Tick() {
			return m, m.commit()
		}
		return m, countTickCmd()
	case settleMsg:
		return m, m.navigateCmd()
	case navigatedMsg:
		m.navigated = true
		m.navErr = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if m.ctrl.Status() != countdown.Redirecting || m.navigated {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting || m.navigated {
		return ""
	}

	th := m.theme
	var b strings.Builder
	b.WriteString(th.Title.Render("detour"))
	b.WriteString("\n\n")

	switch m.ctrl.Status() {
	case countdown.Counting:
		digits := th.Digits.Foreground(theme.CountdownColor(m.ctrl.Remaining(), m.total))
		b.WriteString(fmt.Sprintf("redirecting in %s", digits.Render(strconv.Itoa(m.ctrl.Remaining()))))
		b.WriteString("\n")
		b.WriteString(th.Status.Render(m.ctrl.Status().String()))
		b.WriteString("\n\n")
		b.WriteString(th.Help.Render("enter go now · q cancel"))
	case countdown.Redirecting:
		b.WriteString(m.spin.View())
		b.WriteString(" ")
		b.WriteString(th.Status.Render(m.ctrl.Status().String()))
		b.WriteString("\n")
		b.WriteString(th.Target.Render(m.target))
	}

	return th.Frame.Render(b.String())
}

// Run launches the countdown program and reports the navigation outcome.
func Run(ctrl *countdown.Controller, nav browser.Navigator) error {
	p := tea.NewProgram(New(ctrl, nav))
	out, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := out.(*Model); ok {
		return m.Err()
	}
	return nil
}
