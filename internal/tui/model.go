// Package tui provides the Bubble Tea practice interface. It is a thin
// adapter: every key press maps onto a session transition, and timers
// and translation lookups arrive as tagged messages so stale results
// are dropped.
package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lidtrain/lidtrain/internal/model"
	"github.com/lidtrain/lidtrain/internal/session"
	"github.com/lidtrain/lidtrain/internal/store"
	"github.com/lidtrain/lidtrain/internal/translate"
)

var (
	promptStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	optionStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	currentPageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	pageStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	translationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	filterStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	activeFilter     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// textKey identifies which question and language a translation result
// belongs to.
type textKey struct {
	id   string
	lang string
}

type translationMsg struct {
	key  textKey
	text model.DisplayText
}

type timerMsg struct {
	gen     int
	removal bool
}

// Model implements the Bubble Tea practice UI.
type Model struct {
	sess     *session.Session
	resolver *translate.Resolver
	bank     *model.Bank
	store    *store.Store
	lang     string

	keys keyMap
	help help.Model

	width  int
	height int

	translation    model.DisplayText
	translationFor textKey
	haveText       bool

	timerGen int
	notice   string
}

// NewModel constructs a practice TUI model.
func NewModel(sess *session.Session, resolver *translate.Resolver, bank *model.Bank, st *store.Store, lang string) *Model {
	return &Model{
		sess:     sess,
		resolver: resolver,
		bank:     bank,
		store:    st,
		lang:     lang,
		keys:     newKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case translationMsg:
		// A result for a superseded question or language is stale.
		if msg.key != m.currentKey() {
			return m, nil
		}
		m.translation = msg.text
		m.translationFor = msg.key
		m.haveText = true
		return m, nil
	case timerMsg:
		if msg.gen != m.timerGen {
			return m, nil
		}
		if msg.removal {
			m.sess.CompleteRemoval()
		} else {
			m.sess.Advance()
		}
		m.haveText = false
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Answer):
		return m.handleAnswer(msg.String())
	case key.Matches(msg, m.keys.Next):
		m.navigate(func() { m.sess.Advance() })
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.navigate(func() { m.sess.Previous() })
		return m, nil
	case key.Matches(msg, m.keys.JumpLeft):
		m.jumpEllipsis(true)
		return m, nil
	case key.Matches(msg, m.keys.JumpRight):
		m.jumpEllipsis(false)
		return m, nil
	case key.Matches(msg, m.keys.Flag):
		flagged := m.sess.ToggleFlagCurrent()
		m.saveProgress()
		if flagged {
			m.notice = "question flagged"
		} else {
			m.notice = "flag removed"
		}
		return m, nil
	case key.Matches(msg, m.keys.Translation):
		return m.handleTranslationToggle()
	case key.Matches(msg, m.keys.Auto):
		m.sess.ToggleAuto()
		if m.sess.Auto() {
			m.notice = "auto-advance on"
		} else {
			m.notice = "auto-advance off"
		}
		return m, nil
	case key.Matches(msg, m.keys.FlaggedF):
		m.toggleStatus(model.StatusFlagged)
		return m, nil
	case key.Matches(msg, m.keys.WrongF):
		m.toggleStatus(model.StatusIncorrect)
		return m, nil
	case key.Matches(msg, m.keys.CorrectF):
		m.toggleStatus(model.StatusCorrect)
		return m, nil
	case key.Matches(msg, m.keys.ClearF):
		m.timerGen++
		m.sess.ClearFilters()
		m.haveText = false
		m.notice = "filters cleared"
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleAnswer(keyStr string) (tea.Model, tea.Cmd) {
	idx, err := strconv.Atoi(keyStr)
	if err != nil {
		return m, nil
	}
	out := m.sess.Answer(idx - 1)
	if out.Ignored {
		return m, nil
	}
	m.saveProgress()
	if len(out.Badges) > 0 {
		m.notice = "badge earned: " + strings.Join(out.Badges, ", ")
	} else {
		m.notice = ""
	}
	if out.Delay <= 0 {
		return m, nil
	}
	m.timerGen++
	gen := m.timerGen
	removal := out.Removal
	return m, tea.Tick(out.Delay, func(time.Time) tea.Msg {
		return timerMsg{gen: gen, removal: removal}
	})
}

func (m *Model) handleTranslationToggle() (tea.Model, tea.Cmd) {
	if m.lang == model.SourceLang {
		m.notice = "display language is " + model.SourceLang + "; set --lang to translate"
		return m, nil
	}
	m.sess.ToggleTranslation()
	if !m.sess.TranslationShown() {
		return m, nil
	}
	q, ok := m.sess.Current()
	if !ok {
		return m, nil
	}
	if m.haveText && m.translationFor == m.currentKey() {
		return m, nil
	}
	return m, m.resolveCmd(q)
}

// resolveCmd resolves display text off the event loop; the result is
// tagged so only the still-current question applies it.
func (m *Model) resolveCmd(q model.Question) tea.Cmd {
	lang := m.lang
	resolver := m.resolver
	bank := m.bank
	return func() tea.Msg {
		text := resolver.Resolve(q, lang, bank)
		return translationMsg{key: textKey{id: q.ID, lang: lang}, text: text}
	}
}

func (m *Model) currentKey() textKey {
	q, ok := m.sess.Current()
	if !ok {
		return textKey{}
	}
	return textKey{id: q.ID, lang: m.lang}
}

func (m *Model) navigate(move func()) {
	// Render any pending timer moot before the cursor moves.
	m.timerGen++
	move()
	m.haveText = false
	m.notice = ""
}

func (m *Model) jumpEllipsis(left bool) {
	items := m.sess.PageItems()
	current := m.sess.Cursor() + 1
	for i, it := range items {
		if !it.Ellipsis {
			continue
		}
		if left && it.Target < current {
			m.navigate(func() { m.sess.JumpToPage(items[i].Target) })
			return
		}
		if !left && it.Target > current {
			m.navigate(func() { m.sess.JumpToPage(items[i].Target) })
			return
		}
	}
}

func (m *Model) toggleStatus(st model.Status) {
	m.timerGen++
	m.sess.ToggleStatus(st)
	m.haveText = false
	m.notice = ""
}

func (m *Model) saveProgress() {
	// In-memory state is already updated; persistence is best-effort.
	if err := m.store.Save(context.Background(), m.sess.Progress()); err != nil {
		logErrf("failed to save progress: %v\n", err)
		m.notice = "warning: progress not saved"
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.sess.Empty() {
		return m.renderEmpty()
	}

	q, ok := m.sess.Current()
	if !ok {
		return m.renderEmpty()
	}

	contentWidth := int(float64(m.width) * 0.80)
	if contentWidth < 20 {
		contentWidth = m.width
	}

	var b strings.Builder
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")
	b.WriteString(m.renderQuestion(q, contentWidth))
	b.WriteString("\n")
	b.WriteString(m.renderPagination())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(m.renderFooter()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderQuestion(q model.Question, width int) string {
	var b strings.Builder

	prompt := q.Prompt
	options := q.Options
	explanation := q.Explanation
	if m.sess.TranslationShown() && m.haveText {
		prompt = m.translation.Prompt
		options = m.translation.Options
		explanation = m.translation.Explanation
	}

	header := fmt.Sprintf("%d/%d", m.sess.Cursor()+1, len(m.sess.View().Questions))
	if q.Category != "" {
		header += "  " + q.Category
	}
	if m.sess.Progress().IsFlagged(q.ID) {
		header += "  ⚑"
	}
	b.WriteString(pageStyle.Render(header))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(wrapText(prompt, width)))
	b.WriteString("\n")
	if q.Image != "" {
		b.WriteString(pageStyle.Render("[image: " + q.Image + "]"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	last := m.sess.LastAnswer()
	for i, opt := range options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		style := optionStyle
		if last != nil {
			switch {
			case i == q.AnswerIndex:
				style = correctStyle
			case i == last.OptionIndex:
				style = incorrectStyle
			}
		}
		b.WriteString(style.Render(wrapText(line, width)))
		b.WriteString("\n")
	}

	if last != nil && explanation != "" {
		b.WriteString("\n")
		b.WriteString(translationStyle.Render(wrapText(explanation, width)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderFilterBar() string {
	sel := m.sess.Selection()
	counts := m.sess.View().Counts
	segment := func(label string, st model.Status, count int) string {
		text := fmt.Sprintf("%s %d", label, count)
		if sel.HasStatus(st) {
			return activeFilter.Render("[" + text + "]")
		}
		return filterStyle.Render(text)
	}
	parts := []string{
		segment("⚑ flagged", model.StatusFlagged, counts.Flagged),
		segment("✗ wrong", model.StatusIncorrect, counts.Incorrect),
		segment("✓ correct", model.StatusCorrect, counts.Correct),
	}
	if len(sel.Regions) > 0 {
		parts = append(parts, filterStyle.Render(fmt.Sprintf("regions: %d", len(sel.Regions))))
	}
	if len(sel.Categories) > 0 {
		parts = append(parts, filterStyle.Render(fmt.Sprintf("categories: %d", len(sel.Categories))))
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderPagination() string {
	items := m.sess.PageItems()
	if len(items) == 0 {
		return ""
	}
	current := m.sess.Cursor() + 1
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.Ellipsis {
			parts = append(parts, pageStyle.Render("…"))
			continue
		}
		label := strconv.Itoa(it.Page)
		if it.Page == current {
			parts = append(parts, currentPageStyle.Render(label))
		} else {
			parts = append(parts, pageStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderFooter() string {
	p := m.sess.Progress()
	segments := []string{
		fmt.Sprintf("XP %d", p.XP),
		fmt.Sprintf("Streak %d (best %d)", p.Streak, p.MaxStreak),
	}
	if m.sess.Auto() {
		segments = append(segments, "auto")
	}
	if m.sess.TranslationShown() {
		segments = append(segments, "lang "+m.lang)
	}
	return strings.Join(segments, "  ")
}

func (m *Model) renderEmpty() string {
	sel := m.sess.Selection()
	var active []string
	if len(sel.Regions) > 0 {
		active = append(active, "region")
	}
	if len(sel.Categories) > 0 {
		active = append(active, "category")
	}
	if len(sel.Statuses) > 0 {
		active = append(active, "status")
	}
	msg := "No questions loaded."
	if len(active) > 0 {
		msg = fmt.Sprintf("No questions match the active %s filters.", strings.Join(active, "+"))
	}
	body := msg + "\n\n" + footerStyle.Render("press x to clear all filters, q to quit")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
