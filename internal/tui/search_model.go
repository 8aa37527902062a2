package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/recipefind/internal/catalog"
	"github.com/rshade/recipefind/internal/engine"
	"github.com/rshade/recipefind/internal/logging"
	listview "github.com/rshade/recipefind/internal/tui/list"
)

// ViewState represents the current screen of the search UI.
type ViewState int

const (
	// ViewStateList shows the query input and the current result page.
	ViewStateList ViewState = iota
	// ViewStateDetail shows one record rendered as markdown.
	ViewStateDetail
	// ViewStateQuitting is set once the user has asked to quit.
	ViewStateQuitting
)

const (
	queryInputWidth = 50
	idColWidth      = 4
	titleColWidth   = 24
	rowPadding      = 6
	minSnippetLen   = 10

	labelPrevious = "Previous"
	labelNext     = "Next"
)

// SearchModel is the Bubble Tea model for the interactive search screen.
// All search state lives in the engine.Session; the model only renders it and
// translates keys into session commands.
type SearchModel struct {
	ctx     context.Context
	session *engine.Session

	// View state
	state       ViewState
	detail      string
	detailStyle string

	// Interactive components
	textInput textinput.Model
	results   *listview.Model[catalog.Record]
	pager     paginator.Model
	help      help.Model
	keys      KeyMap

	// Display configuration
	width  int
	height int
}

// NewSearchModel creates a search screen driven by session.
func NewSearchModel(ctx context.Context, session *engine.Session) *SearchModel {
	m := &SearchModel{
		ctx:         ctx,
		session:     session,
		state:       ViewStateList,
		detailStyle: DetailStyleDark,
		textInput:   newQueryInput(session.Query()),
		pager:       newPager(session.PageSize()),
		help:        help.New(),
		keys:        DefaultKeyMap(),
		width:       TerminalWidth(),
		height:      defaultHeight,
	}
	m.results = listview.New(m.renderRecordRow)
	m.refresh()
	return m
}

func newQueryInput(initial string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search recipes..."
	ti.CharLimit = 0
	ti.Width = queryInputWidth
	ti.SetValue(initial)
	ti.Focus()
	return ti
}

func newPager(perPage int) paginator.Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = perPage
	p.ActiveDot = InfoStyle.Render("•")
	p.InactiveDot = DimStyle.Render("•")
	return p
}

// SetDetailStyle selects the glamour style used by the detail view.
func (m *SearchModel) SetDetailStyle(style string) {
	m.detailStyle = style
}

// Session returns the underlying search session.
func (m *SearchModel) Session() *engine.Session {
	return m.session
}

// State returns the current view state.
func (m *SearchModel) State() ViewState {
	return m.state
}

// Init initializes the model.
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.help.Width = winMsg.Width
		m.textInput.Width = min(queryInputWidth, max(winMsg.Width-len("Search: ")-1, minSnippetLen))
		return m, nil
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *SearchModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.state = ViewStateQuitting
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Submit):
		m.session.Submit(m.ctx)
		m.refresh()
		return m, nil
	case key.Matches(keyMsg, m.keys.ToggleCase):
		on := m.session.ToggleCaseSensitive()
		logging.FromContext(m.ctx).Debug().Ctx(m.ctx).
			Str("component", "tui").
			Bool("case_sensitive", on).
			Msg("case sensitivity toggled")
		return m, nil
	case key.Matches(keyMsg, m.keys.NextPage):
		if m.session.NextPage() {
			m.refresh()
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.PrevPage):
		if m.session.PrevPage() {
			m.refresh()
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Up), key.Matches(keyMsg, m.keys.Down):
		m.results.Update(keyMsg)
		return m, nil
	case key.Matches(keyMsg, m.keys.Detail):
		return m.openDetail()
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(keyMsg)
	if m.textInput.Value() != m.session.Query() {
		m.session.SetQuery(m.textInput.Value())
		m.refresh()
	}
	return m, cmd
}

func (m *SearchModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.state = ViewStateQuitting
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		m.state = ViewStateList
		m.detail = ""
	}
	return m, nil
}

func (m *SearchModel) openDetail() (tea.Model, tea.Cmd) {
	rec := m.results.GetSelectedItem()
	if rec == nil {
		return m, nil
	}
	m.detail = RenderRecordDetail(*rec, m.detailStyle, m.width)
	m.state = ViewStateDetail

	logging.FromContext(m.ctx).Debug().Ctx(m.ctx).
		Str("component", "tui").
		Int("record_id", rec.ID).
		Msg("detail opened")
	return m, nil
}

// refresh copies the session's current page into the list and pager.
func (m *SearchModel) refresh() {
	view := m.session.PageView()
	m.results.SetItems(view.Items)
	m.pager.TotalPages = view.TotalPages
	m.pager.Page = view.PageNumber - 1
}

// View renders the current screen.
func (m *SearchModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.detail + "\n" + DimStyle.Render("[esc] Back  [ctrl+c] Quit")
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m *SearchModel) renderListView() string {
	sections := []string{
		HeaderStyle.Render("RECIPE SEARCH"),
		"Search: " + m.textInput.View(),
		m.renderCaseLine(),
	}

	if body := m.renderBody(); body != "" {
		sections = append(sections, "", body)
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *SearchModel) renderCaseLine() string {
	mode := "off"
	if m.session.CaseSensitive() {
		mode = "on"
	}
	line := LabelStyle.Render("Case sensitive: ") + ValueStyle.Render(mode)
	if m.session.Stale() {
		line += "  " + WarningStyle.Render("(press enter to refresh results)")
	}
	return line
}

func (m *SearchModel) renderBody() string {
	view := m.session.View()
	if view.ErrorMessage != "" {
		return ErrorStyle.Render(view.ErrorMessage)
	}
	if view.NoResultsMessage != "" {
		return InfoStyle.Render(view.NoResultsMessage)
	}
	if !view.Searched {
		return ""
	}

	parts := []string{
		ValueStyle.Render(FormatResultCount(view.MatchCount)),
		m.results.View(),
	}
	if controls := m.renderPageControls(view.Page); controls != "" {
		parts = append(parts, "", controls)
	}
	return strings.Join(parts, "\n")
}

// renderPageControls returns "" when there is a single page so that no
// navigation is drawn at all.
func (m *SearchModel) renderPageControls(view engine.PageView) string {
	if !view.ShowControls() {
		return ""
	}

	prev := DimStyle.Render("← " + labelPrevious)
	if view.HasPrevious() {
		prev = ValueStyle.Render("← " + labelPrevious)
	}
	next := DimStyle.Render(labelNext + " →")
	if view.HasNext() {
		next = ValueStyle.Render(labelNext + " →")
	}

	position := FormatPagePosition(view.PageNumber, view.TotalPages)
	return fmt.Sprintf("%s   %s   %s\n%s", prev, position, next, m.pager.View())
}

func (m *SearchModel) renderRecordRow(rec catalog.Record, selected bool) string {
	snippetLen := max(m.width-idColWidth-titleColWidth-rowPadding, minSnippetLen)
	row := fmt.Sprintf("%*s  %-*s  %s",
		idColWidth, strconv.Itoa(rec.ID),
		titleColWidth, Truncate(rec.Title, titleColWidth),
		Truncate(rec.Content, snippetLen),
	)
	if selected {
		return SelectedStyle.Render(row)
	}
	return row
}
