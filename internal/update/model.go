package update

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"
	"github.com/skarun/taskpad/internal/assist"
	"github.com/skarun/taskpad/internal/config"
	"github.com/skarun/taskpad/internal/model"
	"github.com/skarun/taskpad/internal/query"
	"github.com/skarun/taskpad/internal/storage"
)

type Mode string

const (
	ModeList Mode = "list"
	ModeForm Mode = "form"
	ModeEdit Mode = "edit"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
}

// Assister is the slice of the assist client the reducers need; the concrete
// client satisfies it, tests substitute a stub.
type Assister interface {
	Enabled() bool
	SuggestTitleCmd(description string) func() (string, error)
	CategorizeCmd(title, description string) func() (model.Category, error)
}

// formField identifies the focused control in the add and edit panels.
type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldDue
	fieldPriority
	fieldCategory
	fieldCount
)

func (f formField) name() string {
	switch f {
	case fieldTitle:
		return "title"
	case fieldDescription:
		return "description"
	case fieldDue:
		return "due"
	case fieldPriority:
		return "priority"
	default:
		return "category"
	}
}

type formState struct {
	title       textinput.Model
	description textarea.Model
	due         textinput.Model
	priorityIdx int
	categoryIdx int
	focus       formField
	editingID   int64
}

// Model is the whole application state: created at session start, updated
// per action, discarded at session end.
type Model struct {
	repo     storage.Repository
	assist   Assister
	logger   *log.Logger
	dataFile string
	Mode     Mode
	Tasks    []model.Task
	Visible  []model.Task
	Cursor   int
	Filters  query.Options
	Status   StatusBar
	Palette  CommandPaletteState
	Keys     config.Keymap
	Quitting bool

	form         formState
	paletteInput textinput.Model
	helpModel    help.Model
	helpKeys     helpKeyMap
	spin         spinner.Model
	assistBusy   bool
}

type helpKeyMap struct {
	bindings []key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.bindings }
func (k helpKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.bindings} }

// SuggestTitleMsg carries the outcome of an async title suggestion.
type SuggestTitleMsg struct {
	Title string
	Err   error
}

// CategorizeMsg carries the outcome of an async categorization.
type CategorizeMsg struct {
	Category model.Category
	Err      error
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type assistClient struct {
	*assist.Client
}

func (a assistClient) SuggestTitleCmd(description string) func() (string, error) {
	return func() (string, error) {
		ctx, cancel := a.RequestContext()
		defer cancel()
		return a.SuggestTitle(ctx, description)
	}
}

func (a assistClient) CategorizeCmd(title, description string) func() (model.Category, error) {
	return func() (model.Category, error) {
		ctx, cancel := a.RequestContext()
		defer cancel()
		return a.Categorize(ctx, title, description)
	}
}

// WrapAssist adapts the concrete assist client to the reducer interface.
func WrapAssist(c *assist.Client) Assister {
	return assistClient{c}
}

func NewModel(cfg config.Config, repo storage.Repository, assister Assister, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	sortKey := query.SortKey(cfg.DefaultSort)
	if !sortKey.IsValid() {
		sortKey = query.SortCreated
	}
	category := cfg.DefaultCategory
	if category == "" {
		category = query.CategoryAll
	}

	m := Model{
		repo:     repo,
		assist:   assister,
		logger:   logger.WithPrefix("update"),
		dataFile: cfg.DataFile,
		Mode:     ModeList,
		Filters: query.Options{
			ShowDone: cfg.ShowDone,
			Category: category,
			SortKey:  sortKey,
		},
		Keys: cfg.Keys,
	}

	res := repo.Load()
	if res.Source == storage.LoadSourceCorrupt {
		m.Status = StatusBar{Text: "task file was unreadable, starting with an empty list", IsError: true}
	}

	m.initComponents()
	m.refresh()
	return m
}

func (m *Model) initComponents() {
	m.form = newFormState()

	pi := textinput.New()
	pi.Placeholder = "add <title> | sort <key> | filter <category> | show done|pending"
	pi.Prompt = "/"
	pi.CharLimit = 200
	pi.Width = 48
	m.paletteInput = pi

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.helpKeys = helpKeyMap{bindings: []key.Binding{
		key.NewBinding(key.WithKeys(m.Keys.Add), key.WithHelp(m.Keys.Add, "add")),
		key.NewBinding(key.WithKeys(m.Keys.Toggle), key.WithHelp("space", "done")),
		key.NewBinding(key.WithKeys(m.Keys.Edit), key.WithHelp(m.Keys.Edit, "edit")),
		key.NewBinding(key.WithKeys(m.Keys.Delete), key.WithHelp(m.Keys.Delete, "delete")),
		key.NewBinding(key.WithKeys(m.Keys.MoveToTop), key.WithHelp(m.Keys.MoveToTop, "top")),
		key.NewBinding(key.WithKeys(m.Keys.ShowDone), key.WithHelp(m.Keys.ShowDone, "show done")),
		key.NewBinding(key.WithKeys(m.Keys.CycleCat), key.WithHelp(m.Keys.CycleCat, "category")),
		key.NewBinding(key.WithKeys(m.Keys.CycleSort), key.WithHelp(m.Keys.CycleSort, "sort")),
		key.NewBinding(key.WithKeys(m.Keys.Palette), key.WithHelp(m.Keys.Palette, "palette")),
		key.NewBinding(key.WithKeys(m.Keys.Quit), key.WithHelp(m.Keys.Quit, "quit")),
	}}
}

func newFormState() formState {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 256
	title.Width = 40
	title.Focus()

	description := textarea.New()
	description.Placeholder = "Description"
	description.CharLimit = 2000
	description.SetWidth(40)
	description.SetHeight(4)

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = 10
	due.Width = 12

	return formState{
		title:       title,
		description: description,
		due:         due,
		priorityIdx: 1, // Medium
		categoryIdx: 0, // uncategorized
		focus:       fieldTitle,
	}
}

// refresh recomputes the rendered projection from the store and the current
// filters, keeping the cursor in range.
func (m *Model) refresh() {
	m.Tasks = m.repo.Tasks()
	m.Visible = query.Apply(m.Tasks, m.Filters)
	if m.Cursor >= len(m.Visible) {
		m.Cursor = len(m.Visible) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) cursorTask() (model.Task, bool) {
	if len(m.Visible) == 0 || m.Cursor < 0 || m.Cursor >= len(m.Visible) {
		return model.Task{}, false
	}
	return m.Visible[m.Cursor], true
}

func (m formState) priority() model.Priority {
	ps := model.Priorities()
	return ps[m.priorityIdx%len(ps)]
}

func (m formState) category() model.Category {
	cs := model.Categories()
	return cs[m.categoryIdx%len(cs)]
}
