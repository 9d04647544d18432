package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/phaseplot/internal/portrait"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the interactive portrait viewer: pan with arrow keys or
// hjkl, zoom with +/-, reset with r.
type Model struct {
	portrait *portrait.PhasePortrait
	title    string
	vp       Viewport
	home     Viewport
	width    int
	height   int
}

func NewModel(p *portrait.PhasePortrait, title string) Model {
	vp := FitViewport(p)
	return Model{
		portrait: p,
		title:    title,
		vp:       vp,
		home:     vp,
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - 4
		m.height = msg.Height - 6
		if m.width < 20 {
			m.width = 20
		}
		if m.height < 8 {
			m.height = 8
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.vp = m.vp.Pan(-0.1, 0)
		case "right", "l":
			m.vp = m.vp.Pan(0.1, 0)
		case "up", "k":
			m.vp = m.vp.Pan(0, 0.1)
		case "down", "j":
			m.vp = m.vp.Pan(0, -0.1)
		case "+", "=":
			m.vp = m.vp.Zoom(0.8)
		case "-", "_":
			m.vp = m.vp.Zoom(1.25)
		case "r":
			m.vp = m.home
		}
	}
	return m, nil
}

func (m Model) View() string {
	s := View(m.portrait, m.width, m.height, m.vp, m.title)
	return s + helpStyle.Render("←↓↑→/hjkl pan · +/- zoom · r reset · q quit")
}

// RunViewer starts the interactive viewer and blocks until quit.
func RunViewer(p *portrait.PhasePortrait, title string) error {
	prog := tea.NewProgram(NewModel(p, title), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
