package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"groupedit/internal/config"
	"groupedit/internal/domain"
	"groupedit/internal/eventbus"
	"groupedit/internal/groupedit"
	"groupedit/internal/groups"
	"groupedit/internal/ui/input"
	"groupedit/internal/ui/input/modes"
	inputtypes "groupedit/internal/ui/input/types"
	"groupedit/internal/ui/views"
)

const statusTimeout = 4 * time.Second

// Model represents the UI state
type Model struct {
	ctx    context.Context
	bus    eventbus.EventBus
	config *config.Config
	caps   domain.Capabilities
	store  groups.Store

	groups        []*domain.GroupRecord
	selectedIndex int
	loading       bool

	width         int
	height        int
	help          help.Model
	keys          keyMap
	statusMessage string
	statusIsError bool
	statusAt      time.Time
	popup         string
	inPagerMode   bool
	pendingReload bool

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	form         *groupForm

	// Program reference for terminal management
	program *tea.Program
	pager   *PagerOps
}

// NewModel creates a new UI model. bus may be nil.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, store groups.Store) *Model {
	return &Model{
		ctx:          ctx,
		bus:          bus,
		config:       cfg,
		caps:         cfg.Capabilities(),
		store:        store,
		help:         help.New(),
		keys:         newKeyMap(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.loading = true
	return m.loadGroups()
}

// Publish receives the dialog controller's events and the model's own
// errors. Everything is forwarded to the bus; a saved group also schedules
// a reload of the listing.
func (m *Model) Publish(event domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
	if e, ok := event.(domain.GroupSavedEvent); ok {
		verb := "Saved"
		if e.Mode == domain.ModeCreate {
			verb = "Created"
		}
		m.setStatus(fmt.Sprintf("%s group %q", verb, e.Record.Name), false)
		m.pendingReload = true
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if m.pendingReload {
		m.pendingReload = false
		cmd = tea.Batch(cmd, m.loadGroups(), m.clearStatusAfter())
	}
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, &inputContext{m: m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return tea.Batch(cmds...)

	case groupsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			text := fmt.Sprintf("Loading groups failed: %v", msg.err)
			m.setStatus(text, true)
			m.Publish(domain.ErrorEvent{Message: text, Err: msg.err})
			return m.clearStatusAfter()
		}
		m.setGroups(msg.groups)
		return nil

	case saveResultMsg:
		msg.ctrl.HandleResult(msg.result)
		return nil

	case clearStatusMsg:
		if msg.at.Equal(m.statusAt) {
			m.statusMessage = ""
			m.statusIsError = false
		}
		return nil

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed, showing inline: %v", msg.err)
			m.openPopup(msg.content)
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return nil
	}

	// Cursor blinks and the like
	return m.inputHandler.Update(msg)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.NewGroupAction:
		return m.openForm(nil)

	case inputtypes.EditGroupAction:
		if g := m.groupAt(a.Index); g != nil {
			return m.openForm(g)
		}

	case inputtypes.ShowDetailsAction:
		if g := m.groupAt(a.Index); g != nil {
			return m.showInPager(views.GroupDetails(g))
		}

	case inputtypes.ToggleHelpAction:
		return m.showInPager(m.helpRenderer.RenderHelpContent(m.caps.IsAdministrator))

	case inputtypes.ClosePopupAction:
		m.popup = ""

	case inputtypes.RefreshAction:
		m.loading = true
		return m.loadGroups()

	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.FocusAction:
		if m.formOpen() {
			next := m.form.nextFocus(a.Delta)
			m.form.ctrl.SetFocus(next)
			m.form.vm.Focus = next
			return m.inputHandler.FocusText(string(next))
		}

	case inputtypes.TogglePrivacyAction:
		if m.formOpen() {
			m.form.ctrl.CheckPrivacy(m.form.togglePrivacy())
		}

	case inputtypes.CyclePolicyAction:
		if m.formOpen() {
			if v, ok := m.form.cyclePolicy(a.Delta); ok {
				m.form.ctrl.SelectAddAllowed(v)
			}
		}

	case inputtypes.SubmitFormAction:
		return m.submit()

	case inputtypes.CancelFormAction:
		if m.formOpen() {
			m.form.ctrl.Cancel()
		}
	}
	return nil
}

// openForm constructs a dialog controller bound to record, nil for a new group
func (m *Model) openForm(record *domain.GroupRecord) tea.Cmd {
	if m.formOpen() {
		return nil
	}
	form := newGroupForm(m.inputHandler, m.formHidden)
	form.ctrl = groupedit.New(record, m.caps, m.store, form, m)
	m.form = form

	m.inputHandler.ChangeMode(inputtypes.ModeGroupForm)
	form.ctrl.Render()
	form.ctrl.Opened()
	return m.inputHandler.FocusText(string(form.vm.Focus))
}

func (m *Model) formHidden() {
	m.inputHandler.ChangeMode(inputtypes.ModeNormal)
}

func (m *Model) formOpen() bool {
	return m.form != nil && m.form.visible
}

// submit hands the controller's save request to bubbletea to run off the loop
func (m *Model) submit() tea.Cmd {
	if !m.formOpen() {
		return nil
	}
	ctrl := m.form.ctrl
	save := ctrl.Submit(m.ctx, m.form.values())
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		return saveResultMsg{ctrl: ctrl, result: save()}
	}
}

func (m *Model) loadGroups() tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		list, err := store.List(ctx)
		return groupsLoadedMsg{groups: list, err: err}
	}
}

// setGroups replaces the listing, keeping the cursor on the same group when it still exists
func (m *Model) setGroups(list []*domain.GroupRecord) {
	var selectedID int64
	if g := m.groupAt(m.selectedIndex); g != nil {
		selectedID = g.ID
	}
	m.groups = list
	m.selectedIndex = 0
	for i, g := range list {
		if g.ID == selectedID {
			m.selectedIndex = i
			break
		}
	}
}

func (m *Model) groupAt(index int) *domain.GroupRecord {
	if index < 0 || index >= len(m.groups) {
		return nil
	}
	return m.groups[index]
}

func (m *Model) navigate(direction string) {
	last := len(m.groups) - 1
	switch direction {
	case "up":
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case "down":
		if m.selectedIndex < last {
			m.selectedIndex++
		}
	case "home":
		m.selectedIndex = 0
	case "end":
		if last >= 0 {
			m.selectedIndex = last
		}
	}
}

// showInPager runs ov when a program is attached and falls back to an inline popup
func (m *Model) showInPager(content string) tea.Cmd {
	if m.program == nil {
		m.openPopup(content)
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{content: content, err: err}
	}
}

func (m *Model) openPopup(content string) {
	m.popup = content
	m.inputHandler.ChangeMode(inputtypes.ModePopup)
}

func (m *Model) setStatus(text string, isError bool) {
	m.statusMessage = text
	m.statusIsError = isError
	m.statusAt = time.Now()
}

func (m *Model) clearStatusAfter() tea.Cmd {
	at := m.statusAt
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{at: at}
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Groups:        m.groups,
		SelectedIndex: m.selectedIndex,
		Loading:       m.loading,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		Popup:         m.popup,
	}
	if m.config.UISettings.ShowHelpFooter {
		state.HelpView = m.help.View(m.keys)
	}
	if m.formOpen() {
		state.Form = &views.FormView{
			VM:               m.form.vm,
			NameInput:        m.inputHandler.TextInput(modes.FieldName).View(),
			DescriptionInput: m.inputHandler.TextInput(modes.FieldDescription).View(),
		}
	}
	return m.renderer.Render(state)
}

// inputContext exposes model state to the input modes
type inputContext struct {
	m *Model
}

func (c *inputContext) CurrentIndex() int {
	return c.m.selectedIndex
}

func (c *inputContext) TotalItems() int {
	return len(c.m.groups)
}

func (c *inputContext) FormFocus() string {
	if !c.m.formOpen() {
		return ""
	}
	return string(c.m.form.vm.Focus)
}

func (c *inputContext) FormHasSelector() bool {
	return c.m.formOpen() && c.m.form.vm.AddPolicy != nil
}
