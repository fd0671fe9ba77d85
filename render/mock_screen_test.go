package render

import "github.com/gdamore/tcell/v2"

// MockScreen records SetContent calls; unimplemented methods panic via the nil embedded interface
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	styles        map[[2]int]tcell.Style
	shows         int
	syncs         int
}

func NewMockScreen(w, h int) *MockScreen {
	return &MockScreen{
		width:  w,
		height: h,
		cells:  make(map[[2]int]rune),
		styles: make(map[[2]int]tcell.Style),
	}
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }
func (m *MockScreen) Init() error      { return nil }
func (m *MockScreen) Fini()            {}
func (m *MockScreen) Clear()           {}
func (m *MockScreen) Show()            { m.shows++ }
func (m *MockScreen) Sync()            { m.syncs++ }

func (m *MockScreen) SetContent(x, y int, r rune, combining []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = r
	m.styles[[2]int{x, y}] = style
}

func (m *MockScreen) RuneAt(x, y int) rune {
	return m.cells[[2]int{x, y}]
}
