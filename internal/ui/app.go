package ui

import (
	"context"
	"strings"
	"time"

	"github.com/abelbrown/tutoriais/internal/activity"
	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/abelbrown/tutoriais/internal/chat"
	"github.com/abelbrown/tutoriais/internal/filter"
	"github.com/abelbrown/tutoriais/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppConfig wires the App to the outside world. The App never calls the
// assistant directly: it asks these factories for commands and receives
// SummaryLoaded / AnswerReceived messages back.
type AppConfig struct {
	Catalog *catalog.Catalog

	// Context is the parent of every detail visit's context. Defaults to
	// context.Background.
	Context context.Context

	// Summarize returns a Cmd that produces a SummaryLoaded for item,
	// echoing act so a stale result can be recognised. ctx is cancelled
	// when the detail visit ends.
	Summarize func(ctx context.Context, item catalog.Item, act session.Activation) tea.Cmd

	// Ask returns a Cmd that produces an AnswerReceived for turn, using
	// item's content as the only context. ctx is cancelled when the detail
	// visit ends.
	Ask func(ctx context.Context, item catalog.Item, turn chat.Turn) tea.Cmd

	// Activity records navigation and assistant events. May be nil.
	Activity *activity.Recorder

	// StartPath opens the app on a route other than the listing,
	// e.g. "/tutorial/2".
	StartPath string
}

// listPos is the listing scroll position. Held by pointer so the state's
// scroll-reset hook and every copy of App see the same value.
type listPos struct {
	cursor int
}

// App is the root Bubble Tea model. It exclusively owns the selection state
// and the chat session of the current detail activation.
type App struct {
	cfg     AppConfig
	catalog *catalog.Catalog
	state   *session.State
	pos     *listPos
	visible []catalog.Item

	search    textinput.Model
	searching bool

	detail         session.Detail
	visitCtx       context.Context
	endVisit       context.CancelFunc
	summary        string
	summaryLoading bool
	summaryStarted time.Time
	related        []catalog.Item
	viewport       viewport.Model
	md             *markdown

	chat       *chat.Session
	chatOpen   bool
	chatInput  textinput.Model
	askStarted time.Time

	spinner   spinner.Model
	showDebug bool
	now       func() time.Time

	width  int
	height int
	ready  bool
}

// NewApp creates the App. A StartPath naming a detail route is resolved
// immediately; Init then starts its summary.
func NewApp(cfg AppConfig) App {
	state := session.New()
	pos := &listPos{}
	state.OnScrollReset(func() { pos.cursor = 0 })

	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "Search tutorials..."
	search.CharLimit = 200

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Ask a question..."
	input.CharLimit = 500

	a := App{
		cfg:       cfg,
		catalog:   cfg.Catalog,
		state:     state,
		pos:       pos,
		search:    search,
		chatInput: input,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport:  viewport.New(80, 20),
		md:        &markdown{},
		now:       time.Now,
	}
	if a.catalog == nil {
		a.catalog = catalog.New(nil, nil)
	}
	if a.cfg.Context == nil {
		a.cfg.Context = context.Background()
	}
	a.refreshVisible()

	if cfg.StartPath != "" {
		state.Navigate(cfg.StartPath)
		if state.View() == session.ViewDetail {
			a.resolveDetail()
		}
	}
	a.record(activity.Event{Kind: activity.KindStartup, Msg: state.Path()})
	return a
}

// Init starts the summary for a detail StartPath.
func (a App) Init() tea.Cmd {
	if a.state.View() == session.ViewDetail && a.summaryLoading {
		return a.summaryCmd()
	}
	return nil
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layoutDetail()
		return a, nil

	case spinner.TickMsg:
		if !a.summaryLoading && (a.chat == nil || !a.chat.Pending()) {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		if a.summaryLoading {
			a.refreshDetail()
		}
		return a, cmd

	case SummaryLoaded:
		if a.state.View() != session.ViewDetail || !a.state.IsCurrent(msg.Activation) {
			a.record(activity.Event{Kind: activity.KindSummaryStale, ItemID: msg.ItemID, Activation: uint64(msg.Activation)})
			return a, nil
		}
		a.summary = msg.Summary
		a.summaryLoading = false
		kind := activity.KindSummaryComplete
		if msg.Summary == "" {
			kind = activity.KindSummaryEmpty
		}
		a.record(activity.Event{Kind: kind, ItemID: msg.ItemID, Activation: uint64(msg.Activation), Dur: a.now().Sub(a.summaryStarted)})
		a.refreshDetail()
		return a, nil

	case AnswerReceived:
		if a.chat == nil || !a.chat.Complete(msg.Turn, msg.Answer) {
			a.record(activity.Event{Kind: activity.KindAskStale, SessionID: msg.Turn.SessionID})
			return a, nil
		}
		a.record(activity.Event{Kind: activity.KindAskComplete, ItemID: a.detail.Item.ID, SessionID: msg.Turn.SessionID, Dur: a.now().Sub(a.askStarted)})
		return a, nil
	}

	return a, nil
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.ForceQuit) {
		return a, tea.Quit
	}

	if a.showDebug {
		if key.Matches(msg, keys.Debug) {
			a.showDebug = false
		}
		return a, nil
	}

	if a.state.View() == session.ViewDetail {
		return a.handleDetailKey(msg)
	}
	return a.handleListingKey(msg)
}

func (a App) handleListingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			a.searching = false
			a.search.Blur()
			a.record(activity.Event{Kind: activity.KindSearch, Msg: a.state.Query()})
			return a, nil
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		if q := a.search.Value(); q != a.state.Query() {
			a.state.SetSearch(q)
			a.refreshVisible()
		}
		return a, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Debug):
		a.showDebug = true
		return a, nil

	case key.Matches(msg, keys.Down):
		if a.pos.cursor < len(a.visible)-1 {
			a.pos.cursor++
		}
		return a, nil

	case key.Matches(msg, keys.Up):
		if a.pos.cursor > 0 {
			a.pos.cursor--
		}
		return a, nil

	case key.Matches(msg, keys.Top):
		a.pos.cursor = 0
		return a, nil

	case key.Matches(msg, keys.Bottom):
		if len(a.visible) > 0 {
			a.pos.cursor = len(a.visible) - 1
		}
		return a, nil

	case key.Matches(msg, keys.Open):
		if a.pos.cursor < len(a.visible) {
			cmd := a.openItem(a.visible[a.pos.cursor].ID)
			return a, cmd
		}
		return a, nil

	case key.Matches(msg, keys.Search):
		a.searching = true
		cmd := a.search.Focus()
		return a, cmd

	case key.Matches(msg, keys.NextCat):
		a.stepCategory(1)
		return a, nil

	case key.Matches(msg, keys.PrevCat):
		a.stepCategory(-1)
		return a, nil

	case key.Matches(msg, keys.AllTypes):
		a.state.SetType(filter.AllTypes)
		a.afterFilter()
		return a, nil

	case key.Matches(msg, keys.TypeKeys):
		i := int(msg.Runes[0] - '1')
		a.state.SetType(string(catalog.ContentTypes[i]))
		a.afterFilter()
		return a, nil

	case key.Matches(msg, keys.Clear):
		a.state.ClearFilters()
		a.search.SetValue("")
		a.pos.cursor = 0
		a.afterFilter()
		return a, nil

	case key.Matches(msg, keys.Back):
		if a.state.Query() != "" {
			a.state.SetSearch("")
			a.search.SetValue("")
			a.refreshVisible()
		}
		return a, nil
	}

	return a, nil
}

func (a App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.detail.NotFound {
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Back), key.Matches(msg, keys.Open):
			a.goBack()
		case key.Matches(msg, keys.Search):
			cmd := a.searchFromDetail()
			return a, cmd
		}
		return a, nil
	}

	if a.chatOpen {
		switch msg.Type {
		case tea.KeyEsc:
			a.chatOpen = false
			a.chatInput.Blur()
			a.layoutDetail()
			return a, nil
		case tea.KeyEnter:
			cmd := a.submitQuestion()
			return a, cmd
		}
		if a.chat != nil && a.chat.Pending() {
			// input is disabled until the answer arrives
			return a, nil
		}
		var cmd tea.Cmd
		a.chatInput, cmd = a.chatInput.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Debug):
		a.showDebug = true
		return a, nil

	case key.Matches(msg, keys.Back):
		a.goBack()
		return a, nil

	case key.Matches(msg, keys.Search):
		cmd := a.searchFromDetail()
		return a, cmd

	case key.Matches(msg, keys.Ask):
		a.chatOpen = true
		a.layoutDetail()
		cmd := a.chatInput.Focus()
		return a, cmd

	case key.Matches(msg, keys.Related):
		i := int(msg.Runes[0] - '1')
		if i < len(a.related) {
			cmd := a.openItem(a.related[i].ID)
			return a, cmd
		}
		return a, nil

	case key.Matches(msg, keys.Down):
		a.viewport.SetYOffset(a.viewport.YOffset + 1)
	case key.Matches(msg, keys.Up):
		a.viewport.SetYOffset(a.viewport.YOffset - 1)
	case key.Matches(msg, keys.PageDown):
		a.viewport.SetYOffset(a.viewport.YOffset + a.viewport.Height)
	case key.Matches(msg, keys.PageUp):
		a.viewport.SetYOffset(a.viewport.YOffset - a.viewport.Height)
	case key.Matches(msg, keys.Top):
		a.viewport.GotoTop()
	case key.Matches(msg, keys.Bottom):
		a.viewport.GotoBottom()
	}
	return a, nil
}

// openItem routes to the detail view for id and starts its summary.
func (a *App) openItem(id string) tea.Cmd {
	a.state.SelectItem(id)
	a.resolveDetail()
	if a.detail.NotFound {
		return nil
	}
	return a.summaryCmd()
}

// resolveDetail sets up a fresh detail activation: new chat session, empty
// summary, related items.
func (a *App) resolveDetail() {
	a.cancelVisit()
	a.detail = a.state.Resolve(a.catalog)
	a.chat = nil
	a.chatOpen = false
	a.chatInput.Reset()
	a.chatInput.Blur()
	a.summary = ""
	a.summaryLoading = false
	a.related = nil

	a.record(activity.Event{Kind: activity.KindRoute, Msg: a.state.Path(), Activation: uint64(a.state.Activation())})
	if a.detail.NotFound {
		a.record(activity.Event{Kind: activity.KindNotFound, ItemID: a.state.ItemID()})
		return
	}

	a.visitCtx, a.endVisit = context.WithCancel(a.cfg.Context)
	a.chat = chat.New(chat.DefaultGreeting)
	a.related = filter.Related(a.catalog.Items(), a.detail.Item, relatedLimit)
	a.summaryLoading = a.cfg.Summarize != nil
	a.summaryStarted = a.now()
	a.viewport.GotoTop()
	a.layoutDetail()
}

func (a *App) summaryCmd() tea.Cmd {
	if a.cfg.Summarize == nil {
		return nil
	}
	act := a.state.Activation()
	a.record(activity.Event{Kind: activity.KindSummaryStart, ItemID: a.detail.Item.ID, Activation: uint64(act)})
	return tea.Batch(a.cfg.Summarize(a.visitCtx, a.detail.Item, act), a.spinner.Tick)
}

// submitQuestion begins a chat turn from the input line. Blank input and
// submissions while an answer is pending are ignored.
func (a *App) submitQuestion() tea.Cmd {
	if a.chat == nil || a.cfg.Ask == nil {
		return nil
	}
	turn, err := a.chat.Begin(a.chatInput.Value())
	if err != nil {
		return nil
	}
	a.chatInput.Reset()
	a.askStarted = a.now()
	a.record(activity.Event{Kind: activity.KindAskStart, ItemID: a.detail.Item.ID, SessionID: turn.SessionID})
	return tea.Batch(a.cfg.Ask(a.visitCtx, a.detail.Item, turn), a.spinner.Tick)
}

// goBack returns to the listing and discards the detail activation,
// cancelling its outstanding assistant calls.
func (a *App) goBack() {
	a.cancelVisit()
	a.state.Back()
	a.detail = session.Detail{}
	a.chat = nil
	a.chatOpen = false
	a.chatInput.Reset()
	a.chatInput.Blur()
	a.summary = ""
	a.summaryLoading = false
	a.related = nil
	a.record(activity.Event{Kind: activity.KindRoute, Msg: a.state.Path()})
	a.refreshVisible()
}

// searchFromDetail leaves the detail view for the listing with the search
// box focused.
func (a *App) searchFromDetail() tea.Cmd {
	a.goBack()
	a.searching = true
	return a.search.Focus()
}

func (a *App) cancelVisit() {
	if a.endVisit != nil {
		a.endVisit()
	}
	a.visitCtx, a.endVisit = nil, nil
}

func (a *App) stepCategory(delta int) {
	cats := a.catalog.Categories()
	if len(cats) == 0 {
		return
	}
	i := categoryIndex(cats, a.state.Category())
	if i < 0 {
		i = 0
	} else {
		i = (i + delta + len(cats)) % len(cats)
	}
	a.state.PickCategory(cats[i].ID)
	a.afterFilter()
}

func (a *App) afterFilter() {
	a.record(activity.Event{Kind: activity.KindFilter, Msg: a.state.Category() + "/" + a.state.Type()})
	a.refreshVisible()
}

// refreshVisible recomputes the filtered listing and keeps the cursor in
// range.
func (a *App) refreshVisible() {
	a.visible = a.state.Visible(a.catalog.Items())
	if a.pos.cursor >= len(a.visible) {
		a.pos.cursor = len(a.visible) - 1
	}
	if a.pos.cursor < 0 {
		a.pos.cursor = 0
	}
}

// layoutDetail sizes the viewport for the current window and chat panel,
// then re-renders its content.
func (a *App) layoutDetail() {
	w := a.width
	if a.chatOpen {
		w -= chatPanelWidth
	}
	if w < 30 {
		w = 30
	}
	h := a.height - 2 // toolbar + status bar
	if h < 3 {
		h = 3
	}
	a.viewport.Width = w
	a.viewport.Height = h
	a.refreshDetail()
}

func (a *App) refreshDetail() {
	if a.state.View() != session.ViewDetail || a.detail.NotFound {
		return
	}
	a.viewport.SetContent(renderDetail(detailView{
		item:           a.detail.Item,
		summary:        a.summary,
		summaryLoading: a.summaryLoading,
		spinner:        a.spinner.View(),
		related:        a.related,
		width:          a.viewport.Width,
	}, a.md))
}

func (a *App) record(e activity.Event) {
	a.cfg.Activity.Record(e)
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.showDebug {
		overlay := debugOverlay(a.cfg.Activity.Ring(), a.now(), a.width, a.height-1)
		if overlay == "" {
			overlay = HelpStyle.Render("No activity recorder attached.")
		}
		return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, overlay) +
			"\n" + debugStatusBar(a.width)
	}

	if a.state.View() == session.ViewDetail {
		return a.viewDetail()
	}
	return a.viewListing()
}

func (a App) viewListing() string {
	side := RenderSidebar(a.catalog.Categories(), a.state, a.height-1)
	mainWidth := a.width - lipgloss.Width(side)
	if mainWidth < 30 {
		mainWidth = 30
	}

	searchText := a.state.Query()
	if a.searching {
		searchText = a.search.View()
	}

	// search bar (1) + header (2) + blank (1) + status bar (1)
	listHeight := a.height - 5
	main := strings.Join([]string{
		RenderSearchBar(searchText, a.searching, mainWidth),
		RenderHeader(a.state, len(a.visible), mainWidth),
		"",
		RenderListing(a.visible, a.pos.cursor, mainWidth, listHeight),
	}, "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, side, main)
	status := RenderStatusBar(positionLabel(a.pos.cursor, len(a.visible)), listingHints(), a.width)
	return lipgloss.NewStyle().Height(a.height-1).MaxHeight(a.height-1).Render(body) + "\n" + status
}

func (a App) viewDetail() string {
	status := RenderStatusBar(a.state.Path(), detailHints(a.chatOpen), a.width)
	if a.detail.NotFound {
		return renderNotFound(a.width, a.height-1) + "\n" + status
	}

	toolbar := StatusBarKey.Render("←") + " Back to Library"
	askLabel := StatusBarKey.Render("a") + " Ask AI about this"
	pad := a.width - lipgloss.Width(toolbar) - lipgloss.Width(askLabel)
	if pad < 1 {
		pad = 1
	}
	toolbar += strings.Repeat(" ", pad) + askLabel

	body := a.viewport.View()
	if a.chatOpen {
		input := a.chatInput.View()
		pending := a.chat != nil && a.chat.Pending()
		if pending {
			input = MetaItem.Render("(waiting for answer)")
		}
		var msgs []chat.Message
		if a.chat != nil {
			msgs = a.chat.Messages()
		}
		panel := renderChat(msgs, pending, a.spinner.View(), input, chatPanelWidth, a.viewport.Height)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}
	return toolbar + "\n" + body + "\n" + status
}

// State returns the selection state (for testing and the CLI).
func (a App) State() *session.State {
	return a.state
}

// Cursor returns the listing cursor (for testing).
func (a App) Cursor() int {
	return a.pos.cursor
}

// Visible returns the filtered listing (for testing).
func (a App) Visible() []catalog.Item {
	return a.visible
}

// Chat returns the current chat session, nil outside a detail activation.
func (a App) Chat() *chat.Session {
	return a.chat
}

// Summary returns the loaded summary and whether it is still loading.
func (a App) Summary() (string, bool) {
	return a.summary, a.summaryLoading
}

// ChatOpen reports whether the chat panel is shown.
func (a App) ChatOpen() bool {
	return a.chatOpen
}
