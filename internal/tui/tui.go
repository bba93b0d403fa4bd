// Package tui provides a Bubble Tea terminal user interface for edupro.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/edupro/internal/access"
	"github.com/handiism/edupro/internal/approval"
	"github.com/handiism/edupro/internal/config"
	"github.com/handiism/edupro/internal/logging"
	"github.com/handiism/edupro/internal/model"
	"github.com/handiism/edupro/internal/platform"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	courseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateMenu State = iota
	StateAddCourse
	StateRemove
	StateRequest
)

// maxLogs is how many messages stay on screen.
const maxLogs = 10

// LogEntry represents a message shown under the menu.
type LogEntry struct {
	Message string
	Level   platform.EventLevel
}

// feed collects messages. It is shared by pointer so the platform event
// callback and copies of Model see the same entries.
type feed struct {
	entries []LogEntry
}

func (f *feed) push(e platform.Event) {
	f.entries = append(f.entries, LogEntry{Message: e.Message, Level: e.Level})
	if len(f.entries) > maxLogs {
		f.entries = f.entries[len(f.entries)-maxLogs:]
	}
}

// Steps of the add-course form.
type formStep int

const (
	stepKind formStep = iota
	stepTitle
	stepInstructor
	stepStudents
	stepTopics
	stepStart
	stepEnd
	stepExtra
)

// courseForm holds the answers collected so far.
type courseForm struct {
	step  formStep
	kind  model.Kind
	info  model.Info
	extra string
}

func (f *courseForm) prompt() string {
	switch f.step {
	case stepKind:
		return "Тип курса (programming/design/science):"
	case stepTitle:
		return "Название:"
	case stepInstructor:
		return "Преподаватель:"
	case stepStudents:
		return "Студенты через запятую:"
	case stepTopics:
		return "Темы через запятую:"
	case stepStart:
		return "Дата начала (YYYY-MM-DD):"
	case stepEnd:
		return "Дата окончания (YYYY-MM-DD):"
	case stepExtra:
		return f.kind.ExtraPrompt() + ":"
	}
	return ""
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	input    textinput.Model
	settings *config.Settings
	platform *platform.Platform
	registry *model.Registry
	logger   *slog.Logger
	feed     *feed
	form     *courseForm
	output   []string
	quitting bool

	ctx context.Context
}

// NewModel creates a new TUI model around an empty platform.
func NewModel(settings *config.Settings, logger *slog.Logger) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 60

	f := &feed{}
	p := platform.New(settings.PlatformName, settings.Address(),
		platform.WithLogger(logger),
		platform.WithBackup(settings.BackupSnapshot),
		platform.WithEvents(f.push),
	)

	return Model{
		state:    StateMenu,
		input:    ti,
		settings: settings,
		platform: p,
		registry: model.DefaultRegistry(),
		logger:   logger,
		feed:     f,
		ctx:      context.Background(),
	}
}

// Platform returns the platform driven by the model.
func (m Model) Platform() *platform.Platform {
	return m.platform
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state != StateMenu {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state == StateMenu {
		return m.updateMenu(keyMsg)
	}

	switch keyMsg.String() {
	case "esc":
		m.toMenu()
		return m, nil
	case "enter":
		value := m.input.Value()
		m.input.Reset()
		switch m.state {
		case StateAddCourse:
			return m.submitFormStep(value)
		case StateRemove:
			return m.removeCourse(strings.TrimSpace(value))
		case StateRequest:
			return m.handleRequest(value)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.output = nil

	switch msg.String() {
	case "1":
		if !m.allowed() {
			return m, nil
		}
		m.form = &courseForm{}
		return m, m.prompt(StateAddCourse)

	case "2":
		m.listCourses()

	case "3":
		if !m.allowed() {
			return m, nil
		}
		return m, m.prompt(StateRemove)

	case "4":
		m.listTopCourses()

	case "5":
		if !m.allowed() {
			return m, nil
		}
		m.saveCourses()

	case "6":
		return m, m.prompt(StateRequest)

	case "7", "q", "esc":
		m.quitting = true
		m.feed.push(platform.Event{Message: "👋 Выход из программы.", Level: platform.LevelInfo})
		return m, tea.Quit

	default:
		m.feed.push(platform.Event{Message: "❌ Неверный выбор.", Level: platform.LevelError})
	}

	return m, nil
}

// prompt switches to a state that reads a line of input.
func (m *Model) prompt(state State) tea.Cmd {
	m.state = state
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) toMenu() {
	m.state = StateMenu
	m.form = nil
	m.input.Reset()
	m.input.Blur()
}

// allowed runs the role guard before the catalog is changed.
func (m *Model) allowed() bool {
	err := access.Require(access.ParseRole(m.settings.UserRole), access.ParseRole(m.settings.EditorRole))
	if err != nil {
		m.logger.Warn("permission denied", slog.String("user_role", m.settings.UserRole), slog.String("required", m.settings.EditorRole))
		m.feed.push(platform.Event{Message: "⛔ " + err.Error(), Level: platform.LevelError})
		return false
	}
	return true
}

func (m Model) submitFormStep(value string) (tea.Model, tea.Cmd) {
	f := m.form

	switch f.step {
	case stepKind:
		kind, err := model.ParseKind(value)
		if err != nil {
			m.fail(fmt.Sprintf("❌ Неизвестный тип курса: %q", value))
			return m, nil
		}
		f.kind = kind
	case stepTitle:
		f.info.Title = strings.TrimSpace(value)
	case stepInstructor:
		f.info.Instructor = strings.TrimSpace(value)
	case stepStudents:
		f.info.Students = model.SplitList(value)
	case stepTopics:
		f.info.Topics = model.SplitList(value)
	case stepStart:
		date, err := model.ParseDate(strings.TrimSpace(value))
		if err != nil {
			m.fail(fmt.Sprintf("❌ Неверная дата: %q", value))
			return m, nil
		}
		f.info.StartDate = date
	case stepEnd:
		date, err := model.ParseDate(strings.TrimSpace(value))
		if err != nil {
			m.fail(fmt.Sprintf("❌ Неверная дата: %q", value))
			return m, nil
		}
		f.info.EndDate = date
	case stepExtra:
		f.extra = value
		m.createCourse()
		return m, nil
	}

	f.step++
	return m, nil
}

func (m *Model) createCourse() {
	defer m.toMenu()

	course, err := m.registry.Build(m.form.kind, m.form.info, m.form.extra)
	if err != nil {
		m.fail("❌ " + err.Error())
		return
	}

	m.platform.AddCourse(course)
	m.feed.push(platform.Event{Message: "✅ Курс добавлен!", Level: platform.LevelSuccess})
}

func (m *Model) fail(message string) {
	m.logger.Warn("course not created", slog.String("reason", message))
	m.feed.push(platform.Event{Message: message, Level: platform.LevelError})
	m.toMenu()
}

func (m *Model) listCourses() {
	courses := m.platform.Courses()
	if len(courses) == 0 {
		m.output = []string{"Курсов пока нет."}
		return
	}
	for _, c := range courses {
		m.output = append(m.output, "- "+c.String())
	}
}

func (m *Model) listTopCourses() {
	top := m.platform.TopCourses(m.topCount())
	if len(top) == 0 {
		m.output = []string{"Курсов пока нет."}
		return
	}
	for _, c := range top {
		m.output = append(m.output, fmt.Sprintf("%s — студентов: %d", c, len(c.Students())))
	}
}

// saveCourses reports the outcome through the feed.
func (m *Model) saveCourses() {
	if err := m.platform.SaveToFile(m.ctx, m.settings.SnapshotPath); err != nil {
		m.feed.push(platform.Event{Message: "❌ " + err.Error(), Level: platform.LevelError})
	}
}

func (m Model) removeCourse(title string) (tea.Model, tea.Cmd) {
	m.platform.RemoveCourse(title)
	m.feed.push(platform.Event{Message: "🗑 Курс удалён (если существовал).", Level: platform.LevelInfo})
	m.toMenu()
	return m, nil
}

func (m Model) handleRequest(text string) (tea.Model, tea.Cmd) {
	req := approval.NewRequest(text)
	res, ok := approval.DefaultChain().Handle(req)
	if ok {
		m.logger.Info("change request decided",
			slog.String("request_id", req.ID.String()),
			slog.String("approver", res.Approver),
		)
		m.output = []string{res.Decision}
	} else {
		m.output = []string{"Запрос не обработан."}
	}
	m.toMenu()
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎓 " + m.platform.Name()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.platform.Address().String()))
	b.WriteString("\n\n")

	switch m.state {
	case StateMenu:
		b.WriteString(m.viewMenu())
	case StateAddCourse:
		b.WriteString(m.viewPrompt(m.form.prompt()))
	case StateRemove:
		b.WriteString(m.viewPrompt("Введите название курса для удаления:"))
	case StateRequest:
		b.WriteString(m.viewPrompt("Введите запрос на изменение:"))
	}

	if len(m.output) > 0 {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(courseStyle.Render(strings.Join(m.output, "\n"))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("=== МЕНЮ ПЛАТФОРМЫ ==="))
	b.WriteString("\n")
	b.WriteString("1. Добавить курс\n")
	b.WriteString("2. Показать все курсы\n")
	b.WriteString("3. Удалить курс\n")
	b.WriteString(fmt.Sprintf("4. Топ-%d курса по студентам\n", m.topCount()))
	b.WriteString("5. Сохранить курсы\n")
	b.WriteString("6. Одобрение изменений (цепочка)\n")
	b.WriteString("7. Выйти\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Курсов: %d | Файл: %s", m.platform.Len(), m.settings.SnapshotPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewPrompt(question string) string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(question))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.feed.entries {
		var style lipgloss.Style
		switch log.Level {
		case platform.LevelError:
			style = errorStyle
		case platform.LevelWarning:
			style = warningStyle
		case platform.LevelSuccess:
			style = successStyle
		case platform.LevelInfo:
			style = infoStyle
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) topCount() int {
	if m.settings.TopCount <= 0 {
		return platform.DefaultTopCount
	}
	return m.settings.TopCount
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateMenu:
		return "1-7: выбрать пункт • q: выход"
	default:
		return "enter: подтвердить • esc: в меню"
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings, logger *slog.Logger) error {
	p := tea.NewProgram(NewModel(settings, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
