// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/rtyping/internal/model"
	"github.com/verte-zerg/rtyping/internal/session"
	statsPkg "github.com/verte-zerg/rtyping/internal/stats"
	"github.com/verte-zerg/rtyping/internal/store"
	"github.com/verte-zerg/rtyping/internal/wordsource"
)

const (
	refreshInterval = 500 * time.Millisecond
	contentRatio    = 0.70
)

type tickMsg time.Time

// Model implements the Bubble Tea typing UI. It owns the session and feeds it
// one key per update through a KeySlot.
type Model struct {
	config model.Config
	sess   *session.Session
	picker *wordsource.Picker
	store  *store.Store
	log    *slog.Logger

	slot session.KeySlot
	keys keyMap
	help help.Model

	width  int
	height int

	errMsg    string
	completed int
}

// NewModel constructs a typing TUI model. picker and st may be nil, which
// disables weak-char focus and sample archiving respectively.
func NewModel(cfg model.Config, sess *session.Session, picker *wordsource.Picker, st *store.Store, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	return &Model{
		config: cfg,
		sess:   sess,
		picker: picker,
		store:  st,
		log:    logger,
		keys:   newKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		// The speed label depends on wall time, so redraw periodically.
		return m, tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Skip):
			m.regenerate()
			return m, nil
		}
		switch msg.Type {
		case tea.KeySpace:
			m.slot.Set(' ')
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.slot.Set(r)
			}
		default:
			return m, nil
		}
		m.process()
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) process() {
	out, ok, err := m.sess.Update(&m.slot)
	if !ok {
		return
	}
	if out.Completed != nil {
		m.completed++
		m.archive(*out.Completed)
	}
	if err != nil {
		m.log.Error("failed to regenerate text", "error", err)
		m.errMsg = err.Error()
		return
	}
	if out.Regenerated {
		m.log.Debug("new text", "target", m.sess.Target())
	}
	m.errMsg = ""
}

func (m *Model) regenerate() {
	if err := m.sess.Regenerate(); err != nil {
		m.log.Error("failed to regenerate text", "error", err)
		m.errMsg = err.Error()
		return
	}
	m.log.Debug("new text", "target", m.sess.Target())
	m.errMsg = ""
}

func (m *Model) archive(sample session.Sample) {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	stats, chars := statsPkg.FromSample(sample, m.sess.WordCount())
	id, err := m.store.InsertSample(ctx, stats, chars)
	if err != nil {
		m.log.Error("failed to archive sample", "error", err)
		return
	}
	m.log.Debug("sample archived", "id", id, "length", sample.Length, "errors", sample.ErrorCount, "duration", sample.Duration)

	if m.config.FocusWeak && m.picker != nil {
		m.refreshWeakSet(ctx)
	}
}

func (m *Model) refreshWeakSet(ctx context.Context) {
	aggs, err := m.store.GetWeakChars(ctx, m.config.WeakWindow)
	if err != nil {
		m.log.Error("failed to load weak chars", "error", err)
		return
	}
	weak := statsPkg.SelectWeakChars(aggs, m.config.WeakTop)
	m.picker.SetWeakSet(weak)
	m.log.Debug("weak set refreshed", "size", len(weak))
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.sess.Snapshot()
	labels := []string{
		FormatSpeed(snap.Speed),
		FormatErrors(snap.Errors),
		FormatProgress(m.completed, m.sess.State()),
	}
	if m.config.FocusWeak && m.picker != nil {
		if focus := FormatFocus(m.picker.WeakSet()); focus != "" {
			labels = append(labels, focus)
		}
	}
	parts := make([]string, 0, len(labels)+4)
	for _, label := range labels {
		parts = append(parts, labelStyle.Render(m.fitLine(label)))
	}

	if m.width == 0 || m.height == 0 {
		parts = append(parts, "", renderText(m.sess.Text(), m.sess.Cursor(), 0))
		return strings.Join(parts, "\n")
	}

	contentWidth := int(float64(m.width) * contentRatio)
	if contentWidth < 1 {
		contentWidth = 1
	}
	parts = append(parts, "", renderText(m.sess.Text(), m.sess.Cursor(), contentWidth))
	if m.errMsg != "" {
		parts = append(parts, "", errorLineStyle.Render(m.fitLine(m.errMsg)))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.help.View(m.keys))
	return body + "\n" + footer
}

func (m *Model) fitLine(s string) string {
	if m.width <= 0 {
		return s
	}
	return runewidth.Truncate(s, m.width, "…")
}
