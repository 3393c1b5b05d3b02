package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"habitcore/internal/engine"
	"habitcore/internal/ui"
)

// rippleDuration is how long a freshly completed row stays highlighted.
const rippleDuration = 600 * time.Millisecond

type boardModel struct {
	ctx      context.Context
	svc      *engine.Service
	notifier *engine.Notifier
	logger   *zap.Logger

	width  int
	height int

	snap     engine.Snapshot
	selected int
	input    textinput.Model

	banner    engine.Notification
	bannerGen uint64

	rippleID  int64
	rippleGen uint64

	lastLog string
	err     error
}

type snapshotMsg struct {
	snap engine.Snapshot
}

type addedMsg struct {
	habit *engine.Habit
	err   error
}

type deletedMsg struct {
	id  int64
	ok  bool
	err error
}

type completedMsg struct {
	id  int64
	res *engine.CompleteResult
	err error
}

type notificationMsg engine.Notification

type rippleDoneMsg struct {
	gen uint64
}

func newBoardModel(ctx context.Context, svc *engine.Service, notifier *engine.Notifier, logger *zap.Logger) boardModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	in := textinput.New()
	in.Placeholder = "e.g. Meditate 10 minutes..."
	in.CharLimit = engine.MaxNameLength
	in.Width = engine.MaxNameLength
	in.Prompt = "+ "

	lastLog := "Loaded."
	if svc.ResetOnOpen() {
		lastLog = "New day: completions reset."
	}
	return boardModel{
		ctx:      ctx,
		svc:      svc,
		notifier: notifier,
		logger:   logger,
		snap:     svc.Snapshot(),
		input:    in,
		lastLog:  lastLog,
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snap: m.svc.Snapshot()}
	}
}

func (m boardModel) addCmd(name string) tea.Cmd {
	return func() tea.Msg {
		h, err := m.svc.AddHabit(m.ctx, name)
		return addedMsg{habit: h, err: err}
	}
}

func (m boardModel) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ok, err := m.svc.DeleteHabit(m.ctx, id)
		return deletedMsg{id: id, ok: ok, err: err}
	}
}

func (m boardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteHabit(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func rippleCmd(gen uint64) tea.Cmd {
	return tea.Tick(rippleDuration, func(time.Time) tea.Msg { return rippleDoneMsg{gen: gen} })
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case snapshotMsg:
		m.snap = msg.snap
		m.clampSelection()
		return m, nil
	case addedMsg:
		if msg.err != nil {
			m.lastLog = "Add failed: " + msg.err.Error()
			m.logger.Error("add habit", zap.Error(msg.err))
			return m, nil
		}
		if msg.habit == nil {
			m.lastLog = "Name is empty; nothing added."
			return m, nil
		}
		m.selected = 0
		m.lastLog = fmt.Sprintf("Deployed #%d %s.", msg.habit.ID, msg.habit.Name)
		return m, m.refreshCmd()
	case deletedMsg:
		if msg.err != nil {
			m.lastLog = "Delete failed: " + msg.err.Error()
			m.logger.Error("delete habit", zap.Int64("id", msg.id), zap.Error(msg.err))
			return m, nil
		}
		if msg.ok {
			m.lastLog = fmt.Sprintf("Deleted #%d.", msg.id)
		}
		return m, m.refreshCmd()
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			m.logger.Error("complete habit", zap.Int64("id", msg.id), zap.Error(msg.err))
			return m, nil
		}
		if msg.res == nil {
			m.lastLog = "Already done today."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed #%d: +%d XP", msg.id, msg.res.XPAwarded)
		m.rippleGen++
		m.rippleID = msg.id
		if msg.res.LevelUp && m.notifier != nil {
			m.notifier.Trigger(msg.res.LevelAfter)
		}
		return m, tea.Batch(m.refreshCmd(), rippleCmd(m.rippleGen))
	case rippleDoneMsg:
		if msg.gen == m.rippleGen {
			m.rippleID = 0
		}
		return m, nil
	case notificationMsg:
		if msg.Gen < m.bannerGen {
			return m, nil
		}
		m.banner = engine.Notification(msg)
		m.bannerGen = msg.Gen
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.banner.Visible {
			m.banner = engine.Notification{}
			if m.notifier != nil {
				m.notifier.Dismiss()
				m.bannerGen = m.notifier.State().Gen
			}
			return m, nil
		}
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m boardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := m.input.Value()
		m.input.Reset()
		return m, m.addCmd(name)
	case "esc":
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m boardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "a", "n", "i":
		cmd := m.input.Focus()
		return m, cmd
	case "r":
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, m.refreshCmd()
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.selected < len(m.snap.Habits)-1 {
			m.selected++
		}
		return m, nil
	case "c", " ", "enter":
		h, ok := m.current()
		if !ok {
			return m, nil
		}
		if h.CompletedToday {
			m.lastLog = "Already done today."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completing #%d…", h.ID)
		return m, m.completeCmd(h.ID)
	case "d", "x", "delete":
		h, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.deleteCmd(h.ID)
	}
	return m, nil
}

func (m boardModel) current() (engine.Habit, bool) {
	if m.selected < 0 || m.selected >= len(m.snap.Habits) {
		return engine.Habit{}, false
	}
	return m.snap.Habits[m.selected], true
}

func (m *boardModel) clampSelection() {
	if m.selected >= len(m.snap.Habits) {
		m.selected = len(m.snap.Habits) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	header := m.renderHeader()
	if m.banner.Visible {
		banner := ui.LevelUpBanner(m.banner.Level)
		if m.width > 0 && m.height > 0 {
			banner = lipgloss.Place(m.width, m.height-3, lipgloss.Center, lipgloss.Center, banner)
		}
		return header + "\n\n" + banner
	}
	return strings.Join([]string{
		header,
		m.renderStats(),
		"",
		m.renderInput(),
		"",
		m.renderList(),
		m.renderFooter(),
	}, "\n")
}

func (m boardModel) renderHeader() string {
	s := m.snap
	return fmt.Sprintf("%s  %s %s %d/%d XP",
		ui.Heading(ui.IconBrand, "HABITCORE"),
		ui.Gold.Render(fmt.Sprintf("LVL %d", s.Stats.Level)),
		ui.XPBar(s.XPPercent, 30),
		s.Stats.XP, s.Threshold,
	)
}

func (m boardModel) renderStats() string {
	s := m.snap
	return strings.Join([]string{
		ui.LabelValue("HABITS", len(s.Habits)),
		ui.LabelValue("TODAY", s.CompletedToday),
		ui.LabelValue("BEST STREAK", s.BestStreak),
	}, "   ")
}

func (m boardModel) renderInput() string {
	if m.input.Focused() {
		return ui.H2.Render("NEW PROTOCOL") + "\n" + m.input.View()
	}
	return ui.Muted.Render("press a to add a habit")
}

func (m boardModel) renderList() string {
	s := m.snap
	out := []string{ui.H2.Render(fmt.Sprintf("ACTIVE PROTOCOLS %d/%d", s.CompletedToday, len(s.Habits)))}
	if len(s.Habits) == 0 {
		out = append(out, ui.Muted.Render(ui.IconEmpty+" NO PROTOCOLS LOADED"))
		out = append(out, ui.Muted.Render("Deploy your first habit to begin your journey"))
		return strings.Join(out, "\n")
	}
	for i, h := range s.Habits {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %-*s %s", cursor, ui.Badge(h.CompletedToday, engine.XPPerCompletion), engine.MaxNameLength/2, h.Name, ui.StreakText(h.Streak))
		switch {
		case h.ID == m.rippleID:
			line = ui.RippleRow.Render(line)
		case i == m.selected:
			line = ui.SelectedRow.Render(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	keys := ui.Muted.Render("↑/↓ move · c complete · d delete · a add · r refresh · q quit")
	return "\n" + m.lastLog + "\n" + keys
}
