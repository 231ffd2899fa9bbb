package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fd1az/asset-console/business/assets/app"
	"github.com/fd1az/asset-console/business/assets/domain"
	"github.com/fd1az/asset-console/internal/asset"
)

// Model is the main Bubble Tea model for the asset creation form.
type Model struct {
	ctx  context.Context
	svc  *app.CreationService
	form *app.Form

	keys KeyMap
	help help.Model

	inputs []textinput.Model
	errs   []error // per field, set when the text does not parse
	focus  fieldID

	// State
	status         string
	statusErr      bool
	submitting     bool
	refreshPending bool // asset ids changed during a submission
	submitted      bool
	quitting       bool
	width          int
}

// New creates the form model. accounts are offered as completions in the
// creator account field.
func New(ctx context.Context, svc *app.CreationService, accounts []string) Model {
	keys := DefaultKeyMap()
	form := svc.Form()

	m := Model{
		ctx:    ctx,
		svc:    svc,
		form:   form,
		keys:   keys,
		help:   help.New(),
		inputs: newInputs(form, accounts, keys.Complete),
		errs:   make([]error, fieldCount),
		focus:  fieldName,
	}
	m.inputs[m.focus].Focus()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Always allow quit
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.submitting {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m.moveFocus(-1)
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Refresh):
			m.svc.Refresh(m.ctx)
			m.setStatus("asset ids reloaded", false)
			return m, nil
		}
		return m.updateFocused(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case SubmittedMsg:
		m.submitting = false
		if m.refreshPending {
			m.refreshPending = false
			m.svc.Refresh(m.ctx)
		}
		if msg.Err != nil {
			m.setStatus(msg.Err.Error(), true)
			return m, nil
		}
		m.submitted = true
		return m, tea.Quit

	case AssetsChangedMsg:
		if m.submitting {
			m.refreshPending = true
			return m, nil
		}
		m.svc.Refresh(m.ctx)
		m.setStatus(fmt.Sprintf("asset ids reloaded, %d existing", msg.Count), false)
		return m, nil

	case ErrorMsg:
		if msg.Error != nil {
			m.setStatus(msg.Error.Error(), true)
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// Submitted reports whether the record was handed to the reporter.
func (m Model) Submitted() bool {
	return m.submitted
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = fieldID((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	return m, m.inputs[m.focus].Focus()
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if text := m.inputs[m.focus].Value(); text != before {
		m.setField(m.focus, text)
	}
	return m, cmd
}

// setField applies one widget change. The balance text is re-read when the
// display unit it is entered in changes.
func (m *Model) setField(id fieldID, text string) {
	display := m.form.Evaluation().Display
	m.errs[id] = apply(m.form, id, text)

	if id != fieldMinBalance && m.form.Evaluation().Display != display {
		if bal := m.inputs[fieldMinBalance].Value(); bal != "" {
			m.errs[fieldMinBalance] = apply(m.form, fieldMinBalance, bal)
		}
	}
	m.status = ""
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	info := m.form.Output()
	if info == nil {
		m.setStatus("complete the highlighted fields before creating the asset", true)
		return m, nil
	}

	m.submitting = true
	m.setStatus("creating asset...", false)

	ctx, svc := m.ctx, m.svc
	return m, func() tea.Msg {
		return SubmittedMsg{Err: svc.SubmitRecord(ctx, info)}
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// invalid reports whether field id should render in the error state.
func (m Model) invalid(id fieldID) bool {
	if m.errs[id] != nil {
		return true
	}

	eval := m.form.Evaluation()
	state := m.form.State()
	switch id {
	case fieldName:
		return !eval.ValidName
	case fieldSymbol:
		return !eval.ValidSymbol
	case fieldDecimals:
		return !eval.ValidDecimals
	case fieldMinBalance:
		return state.MinBalance != nil && state.MinBalance.Sign() == 0
	case fieldAssetID:
		return !eval.ValidID
	}
	return false
}

// View renders the form.
func (m Model) View() string {
	if m.quitting {
		return "\n  Cancelled.\n\n"
	}
	if m.submitted {
		return "\n  Asset created.\n\n"
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(" Create asset "))
	b.WriteString("\n\n")

	for id := fieldID(0); id < fieldCount; id++ {
		b.WriteString(m.renderField(id))
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m Model) renderField(id fieldID) string {
	spec := fieldSpecs[id]
	invalid := m.invalid(id)

	label := LabelStyle.Render(spec.label)
	if invalid {
		label = ErrorLabelStyle.Render(spec.label)
	}
	if id == fieldMinBalance {
		display := m.form.Evaluation().Display
		label += HintStyle.Render(fmt.Sprintf("  in %s, %d decimals", display.Symbol, display.Decimals))
	}

	var content strings.Builder
	content.WriteString(label)
	content.WriteString("\n")
	content.WriteString(m.inputs[id].View())

	if err := m.errs[id]; err != nil {
		content.WriteString("\n")
		content.WriteString(DangerStyle.Render(err.Error()))
	} else if id == fieldMinBalance {
		if raw := m.form.State().MinBalance; raw != nil {
			content.WriteString("\n")
			content.WriteString(HintStyle.Render(fmt.Sprintf("= %s raw units", raw.String())))
		}
	}
	content.WriteString("\n")
	content.WriteString(HintStyle.Render(spec.hint))

	box := BoxStyle
	switch {
	case id == m.focus:
		box = FocusedBoxStyle
	case invalid:
		box = ErrorBoxStyle
	}
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	return box.Render(content.String())
}

func (m Model) renderStatus() string {
	if m.status != "" {
		if m.statusErr {
			return DangerStyle.Render(m.status)
		}
		return WarningStyle.Render(m.status)
	}

	info := m.form.Output()
	if info == nil {
		return WarningStyle.Render("incomplete")
	}
	return ValidStyle.Render("ready: ") + summary(info)
}

func summary(info *domain.Info) string {
	display := domain.DisplayFor(info.AssetDecimals(), info.AssetSymbol())
	return fmt.Sprintf("asset %s %s (%s), min balance %s",
		info.AssetID(),
		display.Symbol,
		info.AssetName(),
		asset.FormatUnits(info.MinBalance(), display.Decimals, display.Symbol),
	)
}

// Program holds the Bubble Tea program instance for external access.
var Program *tea.Program

// Run starts the Bubble Tea program and returns the final model.
func Run(m Model) (Model, error) {
	Program = tea.NewProgram(m, tea.WithAltScreen())
	final, err := Program.Run()
	if fm, ok := final.(Model); ok {
		return fm, err
	}
	return m, err
}

// Send sends a message to the running program.
func Send(msg tea.Msg) {
	if Program != nil {
		Program.Send(msg)
	}
}
