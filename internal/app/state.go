// Package app provides the plot panel collection, its operations, and change events.
package app

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"graph-plotter/internal/chart"
	"graph-plotter/internal/dataset"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrNoColumns is returned when an import selects no columns.
	ErrNoColumns = errors.New("no columns selected")
	// ErrTooFewSelected is returned when combining fewer than two panels.
	ErrTooFewSelected = errors.New("at least 2 plots must be selected")
	// ErrUnknownPanel is returned for a plot number not in the collection.
	ErrUnknownPanel = errors.New("unknown plot")
)

// Random graph parameters.
const (
	randomPoints = 100
	randomXMax   = 100
	randomYMax   = 50
)

// Panel is one chart in the collection together with its selection and
// display size. Panels are identified by their plot number, which is
// assigned once and never reused.
type Panel struct {
	Number   int
	Chart    *chart.Chart
	Selected bool
	Size     Size // custom display size; zero means the default
}

// Label is the text of the panel's selection checkbox.
func (p *Panel) Label() string {
	return fmt.Sprintf("Plot number %d", p.Number)
}

// Title is used for windows showing the panel on its own.
func (p *Panel) Title() string {
	return fmt.Sprintf("Plot %d", p.Number)
}

// EventType identifies different application events.
type EventType int

const (
	EventPanelAdded       EventType = iota // data: *Panel
	EventPanelsRemoved                     // data: []*Panel
	EventPanelResized                      // data: *Panel
	EventSelectionChanged                  // data: nil
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the ordered panel collection. Order is insertion order and
// is the order panels are displayed in.
type State struct {
	mu       sync.RWMutex
	panels   []*Panel
	count    int
	settings Settings

	// Event listeners
	listeners map[EventType][]EventListener
}

// NewState creates an empty collection using the given display settings.
func NewState(settings Settings) *State {
	return &State{
		settings:  settings.normalized(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Settings returns the display settings.
func (s *State) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Panels returns the panels in display order.
func (s *State) Panels() []*Panel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.panels)
}

// Len returns the number of panels.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.panels)
}

// Panel looks up a panel by plot number.
func (s *State) Panel(number int) (*Panel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(number)
}

func (s *State) find(number int) (*Panel, error) {
	for _, p := range s.panels {
		if p.Number == number {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownPanel, number)
}

// AddPanel appends a panel showing c and assigns it the next plot number.
func (s *State) AddPanel(c *chart.Chart) *Panel {
	s.mu.Lock()
	s.count++
	p := &Panel{Number: s.count, Chart: c}
	s.panels = append(s.panels, p)
	s.mu.Unlock()

	log.Printf("Added plot %d with %d series", p.Number, len(c.Series))
	s.Emit(EventPanelAdded, p)
	return p
}

// AddRandom appends a panel with a single line of random points, x in
// [0, 100) and y in [0, 50), labelled "Graph N".
func (s *State) AddRandom() *Panel {
	xs := distuv.Uniform{Min: 0, Max: randomXMax}
	ys := distuv.Uniform{Min: 0, Max: randomYMax}
	x := make([]float64, randomPoints)
	y := make([]float64, randomPoints)
	for i := range x {
		x[i] = xs.Rand()
		y[i] = ys.Rand()
	}
	// x and y are drawn independently, so sorting x alone keeps the
	// same distribution of points.
	slices.Sort(x)

	s.mu.RLock()
	next := s.count + 1
	s.mu.RUnlock()

	c := chart.New("")
	c.Add(chart.NewSeries(fmt.Sprintf("Graph %d", next), x, y))
	return s.AddPanel(c)
}

// Import creates panels from the chosen y-columns of t. With separate set
// every column gets its own panel; otherwise all columns share one.
func (s *State) Import(t *dataset.Table, columns []string, separate bool) ([]*Panel, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	series, err := t.SeriesFor(columns)
	if err != nil {
		return nil, err
	}

	if !separate {
		c := chart.New("")
		c.Add(series...)
		return []*Panel{s.AddPanel(c)}, nil
	}

	out := make([]*Panel, 0, len(series))
	for _, sr := range series {
		c := chart.New("")
		c.Add(sr)
		out = append(out, s.AddPanel(c))
	}
	return out, nil
}

// Combine overlays the series of every selected panel onto a new panel,
// relabelling each line "<label> from plot <N>". At least two panels must
// be selected. On success the selection is cleared.
func (s *State) Combine() (*Panel, error) {
	selected := s.SelectedPanels()
	if len(selected) < 2 {
		return nil, ErrTooFewSelected
	}

	c := chart.New("")
	for _, p := range selected {
		for _, sr := range p.Chart.Series {
			c.Add(sr.Relabel(fmt.Sprintf("%s from plot %d", sr.Label, p.Number)))
		}
	}
	combined := s.AddPanel(c)
	s.SelectAll(false)
	return combined, nil
}

// SelectedPanels returns the selected panels in display order.
func (s *State) SelectedPanels() []*Panel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Panel
	for _, p := range s.panels {
		if p.Selected {
			out = append(out, p)
		}
	}
	return out
}

// SetSelected changes the selection of one panel.
func (s *State) SetSelected(number int, selected bool) error {
	s.mu.Lock()
	p, err := s.find(number)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	changed := p.Selected != selected
	p.Selected = selected
	s.mu.Unlock()

	if changed {
		s.Emit(EventSelectionChanged, nil)
	}
	return nil
}

// SelectAll sets every panel's selection.
func (s *State) SelectAll(selected bool) {
	s.mu.Lock()
	for _, p := range s.panels {
		p.Selected = selected
	}
	s.mu.Unlock()
	s.Emit(EventSelectionChanged, nil)
}

// DeleteSelected removes every selected panel, keeping the others in
// order, and returns the removed panels.
func (s *State) DeleteSelected() []*Panel {
	s.mu.Lock()
	var removed []*Panel
	kept := s.panels[:0]
	for _, p := range s.panels {
		if p.Selected {
			removed = append(removed, p)
			continue
		}
		kept = append(kept, p)
	}
	clear(s.panels[len(kept):])
	s.panels = kept
	s.mu.Unlock()

	if len(removed) == 0 {
		return nil
	}
	log.Printf("Deleted %d plot(s)", len(removed))
	s.Emit(EventPanelsRemoved, removed)
	return removed
}

// Resize gives a panel a custom display size.
func (s *State) Resize(number int, size Size) error {
	if !size.Valid() {
		return ErrInvalidSize
	}
	s.mu.Lock()
	p, err := s.find(number)
	if err == nil {
		p.Size = size
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.Emit(EventPanelResized, p)
	return nil
}

// ResetSize drops a panel's custom size. It reports whether anything changed.
func (s *State) ResetSize(number int) (bool, error) {
	s.mu.Lock()
	p, err := s.find(number)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	changed := !p.Size.IsZero()
	p.Size = Size{}
	s.mu.Unlock()

	if changed {
		s.Emit(EventPanelResized, p)
	}
	return changed, nil
}

// DisplayPixels returns the pixel size a panel's canvas should have and
// whether that size is fixed. Panels without a custom size use the
// default size, at least MinHeightPixels tall, and may stretch their width.
func (s *State) DisplayPixels(p *Panel) (w, h int, fixed bool) {
	settings := s.Settings()
	s.mu.RLock()
	size := p.Size
	s.mu.RUnlock()

	if !size.IsZero() {
		w, h = size.Pixels(settings.DPI)
		return w, h, true
	}
	w, h = settings.DefaultSize.Pixels(settings.DPI)
	if h < settings.MinHeightPixels {
		h = settings.MinHeightPixels
	}
	return w, h, false
}
