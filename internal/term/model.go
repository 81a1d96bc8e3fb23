package term

import (
	"fmt"
	"strings"

	"pomodoro/internal/core/timer"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Config defines the terminal front end.
type Config struct {
	Debug  bool
	Logger *zerolog.Logger
}

// Model is the bubbletea model hosting a timer engine. Every engine operation
// runs inside Update, so the engine only ever sees the event loop goroutine.
type Model struct {
	engine   *timer.Engine
	clock    *Clock
	notifier *Notifier
	keys     keyMap
	help     help.Model
	styles   styles
	log      zerolog.Logger
	debug    bool
	quitting bool
}

// New creates the model. clock and notifier must be the ones the engine was
// built with.
func New(engine *timer.Engine, clock *Clock, notifier *Notifier, config Config) Model {
	log := zerolog.Nop()
	if config.Logger != nil {
		log = config.Logger.With().Str("module", "term").Logger()
	}
	return Model{
		engine:   engine,
		clock:    clock,
		notifier: notifier,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   defaultStyles(),
		log:      log,
		debug:    config.Debug,
	}
}

// Run starts the terminal UI and blocks until the user quits.
func Run(engine *timer.Engine, clock *Clock, notifier *Notifier, config Config) error {
	program := tea.NewProgram(New(engine, clock, notifier, config), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return m.clock.Schedule()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.clock.fire(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, m.clock.Schedule()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.engine.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if m.engine.Snapshot().Controls().Play {
			m.engine.Play()
		} else {
			m.engine.Pause()
		}
	case key.Matches(msg, m.keys.Skip):
		m.engine.Skip()
	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
	case key.Matches(msg, m.keys.Open):
		m.notifier.Open()
	case key.Matches(msg, m.keys.Dismiss):
		m.notifier.Dismiss()
	default:
		return m, nil
	}
	m.log.Debug().Str("key", msg.String()).Msg("key handled")
	return m, m.clock.Schedule()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	state := m.engine.Snapshot()

	phaseStyle := m.styles.Work
	if state.Phase == timer.PhaseBreak {
		phaseStyle = m.styles.Break
	}

	status := "paused"
	if state.Running {
		status = "running"
	}
	if state.Overtime() {
		status += ", overtime"
	}

	var builder strings.Builder
	builder.WriteString(phaseStyle.Render(state.Phase.Title()))
	builder.WriteString(m.styles.Display.Render(state.Display()))
	builder.WriteString(m.styles.Dim.Render(status))
	builder.WriteString("\n\n")

	if banner := m.notifier.Current(); banner != nil {
		notification := banner.Notification()
		builder.WriteString(m.styles.Banner.Render(
			m.styles.Title.Render(notification.Title) + "\n" + notification.Body,
		))
		builder.WriteString("\n\n")
	}

	if m.debug {
		builder.WriteString(m.styles.Dim.Render(fmt.Sprintf(
			"time: %d  isRunning: %t  isWorkTime: %t  notificationsEnabled: %t",
			state.Elapsed, state.Running, state.Phase == timer.PhaseWork, state.NotificationsEnabled,
		)))
		builder.WriteString("\n\n")
	}

	builder.WriteString(m.help.View(m.activeKeys(state)))
	return m.styles.Base.Render(builder.String())
}

func (m Model) activeKeys(state timer.State) keyMap {
	keys := m.keys
	controls := state.Controls()
	if controls.Play {
		keys.Toggle.SetHelp("space", "start")
	} else {
		keys.Toggle.SetHelp("space", "pause")
	}
	keys.Skip.SetEnabled(controls.Skip)
	banner := m.notifier.Current() != nil
	keys.Open.SetEnabled(banner)
	keys.Dismiss.SetEnabled(banner)
	return keys
}
