package tui

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/internal/service"
	"github.com/MKhiriev/sticky-board/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// rows above the canvas: header and divider
	canvasTop = 2
	// rows below the canvas: divider, note input, status, help
	canvasFooter     = 4
	minCanvasHeight  = noteHeight
	statusTTL        = 3 * time.Second
	versionTimeout   = 5 * time.Second
	noteInputLimit   = 280
	noteInputWidth   = 40
	createNoteButton = "Create Note"
)

const (
	boardFocusCanvas = iota
	boardFocusInput
	boardFocusCreate
	boardFocusCount
)

// boardModel is the whole client UI. It shows the session gate until the
// board service reports the client joined, then the board itself.
type boardModel struct {
	ctx     context.Context
	board   service.BoardService
	appInfo service.ClientAppInfoService
	events  *eventBridge
	connect func(context.Context) error

	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	width, height int

	gate gateModel

	noteInput textinput.Model
	focus     int
	selected  string
	drag      *drag

	status    string
	statusSeq int

	showBuildInfo bool
	serverVersion string
}

func newBoardModel(ctx context.Context, services *service.ClientServices, events *eventBridge, buildInfo models.AppBuildInfo, logger *logger.Logger) boardModel {
	in := textinput.New()
	in.Placeholder = "Write a note..."
	in.CharLimit = noteInputLimit
	in.Width = noteInputWidth

	return boardModel{
		ctx:       ctx,
		board:     services.BoardService,
		appInfo:   services.AppInfoService,
		events:    events,
		buildInfo: buildInfo,
		logger:    logger,
		width:     defaultWidth,
		height:    defaultHeight,
		gate:      newGateModel(),
		noteInput: in,
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForEvent(), m.connectCmd())
}

// connectCmd dials the relay. The outcome reaches the board as a connect or
// connect_error event, so the command itself yields no message.
func (m boardModel) connectCmd() tea.Cmd {
	if m.connect == nil {
		return nil
	}
	connect, ctx := m.connect, m.ctx
	return func() tea.Msg {
		if err := connect(ctx); err != nil {
			m.logger.Debug().Err(err).Msg("initial connect failed")
		}
		return nil
	}
}

func (m boardModel) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return m.events.wait()
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case inboundMsg:
		return m.applyInbound(msg)

	case serverVersionMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("failed to fetch server version")
			m.serverVersion = ""
		} else {
			m.serverVersion = msg.version
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m.setStatus("Copy failed: " + msg.err.Error())
		}
		return m.setStatus("Session code copied")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.MouseMsg:
		if m.overlayOpen() || !m.board.Joined() {
			return m, nil
		}
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m boardModel) overlayOpen() bool {
	_, alert := m.board.Alert()
	return alert || m.showBuildInfo
}

func (m boardModel) applyInbound(msg inboundMsg) (tea.Model, tea.Cmd) {
	wasJoined := m.board.Joined()

	if err := m.board.Apply(msg.event, msg.payload); err != nil {
		m.logger.Warn().Err(err).Str("event", string(msg.event)).Msg("inbound event ignored")
	}

	if !wasJoined && m.board.Joined() {
		m.focus = boardFocusCanvas
		m.noteInput.Blur()
	}
	if wasJoined && !m.board.Joined() {
		m.selected, m.drag = "", nil
		m.gate = m.gate.setFocus(gateFocusInput)
	}
	if _, ok := m.board.Note(m.selected); !ok {
		m.selected = ""
	}
	if m.drag != nil {
		if _, ok := m.board.Note(m.drag.id); !ok {
			m.drag = nil
		}
	}

	return m, m.waitForEvent()
}

func (m boardModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if _, ok := m.board.Alert(); ok {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.board.DismissAlert()
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if key.Matches(msg, keys.buildInfo) {
		m.showBuildInfo = true
		return m, m.fetchServerVersion()
	}

	if !m.board.Joined() {
		return m.updateGate(msg)
	}
	return m.updateBoard(msg)
}

func (m boardModel) updateGate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		action gateAction
		cmd    tea.Cmd
		err    error
	)
	m.gate, action, cmd = m.gate.Update(msg)

	switch action {
	case gateJoin:
		err = m.board.JoinSession(m.gate.code())
	case gateCreate:
		err = m.board.CreateSession()
	}
	if err != nil {
		m.logger.Error().Err(err).Msg("session request failed")
		return m.setStatus(humanizeError(err))
	}

	return m, cmd
}

func (m boardModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		return m.setFocus((m.focus + 1) % boardFocusCount), nil
	case key.Matches(msg, keys.backtab):
		return m.setFocus((m.focus + boardFocusCount - 1) % boardFocusCount), nil
	}

	switch m.focus {
	case boardFocusInput:
		if key.Matches(msg, keys.esc) {
			return m.setFocus(boardFocusCanvas), nil
		}
		var cmd tea.Cmd
		m.noteInput, cmd = m.noteInput.Update(msg)
		return m, cmd

	case boardFocusCreate:
		switch {
		case key.Matches(msg, keys.enter):
			return m.createNote()
		case key.Matches(msg, keys.esc):
			return m.setFocus(boardFocusCanvas), nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.newNote):
		return m.setFocus(boardFocusInput), nil
	case key.Matches(msg, keys.prevNote):
		m.selected = m.cycleSelection(-1)
	case key.Matches(msg, keys.nextNote):
		m.selected = m.cycleSelection(1)
	case key.Matches(msg, keys.delete):
		if m.selected != "" {
			return m.handleErr(m.board.DeleteNote(m.selected), "delete failed")
		}
	case key.Matches(msg, keys.copy):
		return m, copySessionCode(m.board.SessionCode())
	case key.Matches(msg, keys.up):
		return m.nudge(0, -1)
	case key.Matches(msg, keys.down):
		return m.nudge(0, 1)
	case key.Matches(msg, keys.left):
		return m.nudge(-1, 0)
	case key.Matches(msg, keys.right):
		return m.nudge(1, 0)
	}

	return m, nil
}

func (m boardModel) setFocus(focus int) boardModel {
	m.focus = focus
	if focus == boardFocusInput {
		m.noteInput.Focus()
	} else {
		m.noteInput.Blur()
	}
	return m
}

func (m boardModel) createNote() (tea.Model, tea.Cmd) {
	content := m.noteInput.Value()
	if strings.TrimSpace(content) == "" {
		return m, nil
	}

	if err := m.board.CreateNote(content); err != nil {
		return m.handleErr(err, "create note failed")
	}
	m.noteInput.Reset()

	notes := m.board.Notes()
	m.selected = notes[len(notes)-1].ID
	return m, nil
}

func (m boardModel) cycleSelection(step int) string {
	notes := m.board.Notes()
	if len(notes) == 0 {
		return ""
	}

	i := slices.IndexFunc(notes, func(n models.Note) bool { return n.ID == m.selected })
	if i < 0 {
		if step > 0 {
			return notes[0].ID
		}
		return notes[len(notes)-1].ID
	}
	return notes[(i+step+len(notes))%len(notes)].ID
}

func (m boardModel) nudge(dx, dy int) (tea.Model, tea.Cmd) {
	n, ok := m.board.Note(m.selected)
	if !ok {
		return m, nil
	}

	x, y := placeNote(n.Position, m.width, m.canvasHeight())
	x, y = clampPos(x+dx, y+dy, m.width, m.canvasHeight())
	return m.handleErr(m.board.MoveNote(n.ID, float64(x), float64(y)), "move failed")
}

func (m boardModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cx, cy := msg.X, msg.Y-canvasTop
	inCanvas := cy >= 0 && cy < m.canvasHeight()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inCanvas {
			return m, nil
		}
		h, ok := noteAt(m.board.Notes(), cx, cy, m.width, m.canvasHeight())
		if !ok {
			m.selected = ""
			return m, nil
		}
		m = m.setFocus(boardFocusCanvas)
		m.selected = h.id
		if h.onDelete {
			return m.handleErr(m.board.DeleteNote(h.id), "delete failed")
		}
		n, _ := m.board.Note(h.id)
		x, y := placeNote(n.Position, m.width, m.canvasHeight())
		m.drag = &drag{id: h.id, grabX: cx - x, grabY: cy - y, x: x, y: y}

	case tea.MouseActionMotion:
		if m.drag == nil {
			return m, nil
		}
		d := *m.drag
		d.x, d.y = clampPos(cx-d.grabX, cy-d.grabY, m.width, m.canvasHeight())
		m.drag = &d

	case tea.MouseActionRelease:
		if m.drag == nil {
			return m, nil
		}
		d := *m.drag
		m.drag = nil
		return m.handleErr(m.board.MoveNote(d.id, float64(d.x), float64(d.y)), "move failed")
	}

	return m, nil
}

func (m boardModel) handleErr(err error, what string) (tea.Model, tea.Cmd) {
	if err == nil {
		return m, nil
	}
	m.logger.Error().Err(err).Msg(what)
	return m.setStatus(humanizeError(err))
}

func (m boardModel) setStatus(s string) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status = s
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m boardModel) fetchServerVersion() tea.Cmd {
	if m.appInfo == nil {
		return nil
	}
	appInfo, parent := m.appInfo, m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, versionTimeout)
		defer cancel()
		version, err := appInfo.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func copySessionCode(code string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(code)}
	}
}

func (m boardModel) canvasHeight() int {
	return max(m.height-canvasTop-canvasFooter, minCanvasHeight)
}

func (m boardModel) View() string {
	if msg, ok := m.board.Alert(); ok {
		return m.centered(errorOverlayModel{message: msg}.View())
	}
	if m.showBuildInfo {
		return m.centered(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}
	if !m.board.Joined() {
		return appStyle.Render(m.gate.View() + "\n\n" + statusStyle.Render(m.status))
	}
	return m.boardView()
}

func (m boardModel) centered(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m boardModel) boardView() string {
	var b strings.Builder

	header := "Shared board"
	if m.board.SessionsEnabled() {
		header = "Current Session: " + m.board.SessionCode()
	}
	b.WriteString(titleStyle.Render(fitText(header, m.width)))
	b.WriteString("\n")
	b.WriteString(fitText(uiDivider, m.width))
	b.WriteString("\n")

	b.WriteString(renderBoard(m.board.Notes(), m.selected, m.drag, m.width, m.canvasHeight()))
	b.WriteString("\n")

	b.WriteString(fitText(uiDivider, m.width))
	b.WriteString("\n")
	b.WriteString(m.noteInput.View())
	b.WriteString(" ")
	b.WriteString(renderButton(createNoteButton, m.focus == boardFocusCreate))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")

	help := helpLine(keys.tab, keys.prevNote, keys.nextNote, keys.delete, keys.copy, keys.buildInfo, keys.quit)
	if m.focus != boardFocusCanvas {
		help = helpLine(keys.tab, keys.enter, keys.esc, keys.forceQuit)
	}
	b.WriteString(helpStyle.Render(fitText(help, m.width)))

	return b.String()
}
