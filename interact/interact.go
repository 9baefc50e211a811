package interact

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"

	goroom "github.com/jdginn/go-mirror-box/room"
)

// AimStep is how far, in degrees, one key press turns the eye
const AimStep = 5.0

var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type item struct {
	index int
	leg   *goroom.RayNode
}

func (i item) Title() string {
	return fmt.Sprintf("leg %d: (%.2f, %.2f) -> (%.2f, %.2f)",
		i.index, i.leg.Origin.X, i.leg.Origin.Y, i.leg.Endpoint.X, i.leg.Endpoint.Y)
}

func (i item) Description() string {
	switch {
	case i.leg.Terminated:
		return fmt.Sprintf("%.2f long, absorbed by %s", i.leg.Length(), i.leg.Surface)
	case i.leg.Child != nil:
		return fmt.Sprintf("%.2f long, reflected", i.leg.Length())
	default:
		return fmt.Sprintf("%.2f long, ran off", i.leg.Length())
	}
}

func (i item) FilterValue() string {
	return i.Title()
}

// model owns the scene and the chain currently on display
type model struct {
	list       list.Model
	scene      goroom.Scene
	eye        goroom.Eye
	maxBounces int
	angle      float64
	cast       *goroom.RayNode
}

func newModel(scene goroom.Scene, eye goroom.Eye, maxBounces int) model {
	m := model{
		list:       list.New(nil, list.NewDefaultDelegate(), 0, 0),
		scene:      scene,
		eye:        eye,
		maxBounces: maxBounces,
		angle:      goroom.Angle(eye.Aim),
	}
	m.list.SetShowStatusBar(false)
	m.recast()
	return m
}

// recast replaces the current chain with a fresh cast at m.angle
func (m *model) recast() tea.Cmd {
	m.cast = m.eye.Cast(m.scene, goroom.Direction(m.angle), m.maxBounces)
	legs := m.cast.Legs()
	items := make([]list.Item, len(legs))
	for i, leg := range legs {
		items[i] = item{index: i, leg: leg}
	}
	m.list.Title = m.title()
	return m.list.SetItems(items)
}

func (m model) title() string {
	title := fmt.Sprintf("%.1f° %s after %d bounces", m.angle, m.cast.Outcome(), m.cast.Bounces())
	if surface, ok := m.cast.FinalSurface(); ok {
		title += fmt.Sprintf(" on %s", surface)
	}
	return title
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left":
			m.angle -= AimStep
			return m, m.recast()
		case "right":
			m.angle += AimStep
			return m, m.recast()
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-1)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	end := m.cast.ContinuationEnd()
	status := statusStyle.Render(fmt.Sprintf("total %.2f, seen through the mirrors at %s",
		m.cast.TotalLength(), formatVec(end)))
	return docStyle.Render(m.list.View() + "\n" + status)
}

func formatVec(v r2.Vec) string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Interact opens a terminal view of the legs cast from eye.
//
// Left and right turn the eye by AimStep degrees and cast again.
func Interact(scene goroom.Scene, eye goroom.Eye, maxBounces int) error {
	p := tea.NewProgram(newModel(scene, eye, maxBounces), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running inspector: %w", err)
	}
	return nil
}
