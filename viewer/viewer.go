// Package viewer browses consecutive ordinals of one side interactively.
//
// Keys:
//
//	→ l space   next ordinal
//	← h         previous ordinal
//	r           random ordinal
//	0 home      first ordinal (all black)
//	$ end       last ordinal (all white)
//	s           save the current image through the save sink
//	q ctrl+c    quit
//
// Stepping saturates at both ends of the range.
package viewer

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flavioheleno/universe"
	"github.com/flavioheleno/universe/ordinal"
	"github.com/flavioheleno/universe/output"
)

var (
	one = big.NewInt(1)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
)

// Model is the Bubble Tea model of the browser.
type Model struct {
	r      *universe.Renderer
	side   int
	max    *big.Int
	n      *big.Int
	cur    *universe.Rendered
	save   universe.Sink
	saved  int // images saved so far, used as the next index
	styles output.Styles
	status string
	err    error
}

// New creates a browser over side starting at start. A nil start samples one.
// save receives images when the user presses s; it can be nil.
func New(r *universe.Renderer, side int, start *big.Int, save universe.Sink) (Model, error) {
	limit, err := r.Max(side)
	if err != nil {
		return Model{}, err
	}
	if start == nil {
		if start, err = r.Sample(side); err != nil {
			return Model{}, err
		}
	}
	if err := r.Validate(side, start); err != nil {
		return Model{}, err
	}

	m := Model{
		r:      r,
		side:   side,
		max:    limit,
		save:   save,
		styles: output.NewStyles(lipgloss.DefaultRenderer()),
	}
	m.show(new(big.Int).Set(start))
	return m, nil
}

// Run starts the browser and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Ordinal returns the ordinal currently shown.
func (m Model) Ordinal() *big.Int {
	return new(big.Int).Set(m.n)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l", " ":
		if m.n.Cmp(m.max) < 0 {
			m.show(new(big.Int).Add(m.n, one))
		}
	case "left", "h":
		if m.n.Sign() > 0 {
			m.show(new(big.Int).Sub(m.n, one))
		}
	case "0", "home":
		m.show(new(big.Int))
	case "$", "end":
		m.show(new(big.Int).Set(m.max))
	case "r":
		n, err := m.r.Sample(m.side)
		if err != nil {
			m.err = err
			break
		}
		m.show(n)
	case "s":
		m.saveCurrent()
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Render(m.cur.Image))
	sb.WriteString(statusStyle.Render(fmt.Sprintf("side %d  ordinal %s / %s",
		m.side, ordinal.Approx(m.n), ordinal.Approx(m.max))))
	sb.WriteByte('\n')
	switch {
	case m.err != nil:
		sb.WriteString(errorStyle.Render(m.err.Error()))
	case m.status != "":
		sb.WriteString(mutedStyle.Render(m.status))
	default:
		sb.WriteString(mutedStyle.Render("←/→ step  r random  0/$ ends  s save  q quit"))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// show renders n, which must already be within range.
func (m *Model) show(n *big.Int) {
	img, err := m.r.Render(m.side, n)
	if err != nil {
		m.err = err
		return
	}
	m.n = n
	m.cur = img
	m.err = nil
	m.status = ""
}

func (m *Model) saveCurrent() {
	if m.save == nil {
		m.err = errors.New("viewer: no output configured")
		return
	}
	img := *m.cur
	img.Index = m.saved
	if err := m.save.Put(&img); err != nil {
		m.err = err
		return
	}
	m.saved++
	m.status = fmt.Sprintf("saved #%d", img.Index)
}
