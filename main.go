package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/chromebar/bar"
	"github.com/lixenwraith/chromebar/config"
	"github.com/lixenwraith/chromebar/events"
	"github.com/lixenwraith/chromebar/render"
)

const (
	tickMs         = 16 // ~60 FPS
	wheelStep      = 3  // Rows per wheel notch
	contentLines   = 600
	showToneHz     = 880
	hideToneHz     = 440
	toneDurationMs = 50
)

var sampleLines = []string{
	"Scroll down and the bar above minimizes, then hides.",
	"Scroll back up, or jump to the top, and it returns.",
	"Move the pointer to the top rows to pull it out of hiding.",
	"Press and drag downward from the top rows for the same effect.",
	"Watch the position indicator track the viewport.",
	"",
}

// App owns the demo's UI thread state: the scrollable document, the bar
// controller, and the event plumbing between them
type App struct {
	screen        tcell.Screen
	width, height int

	cfg    *config.Config
	view   *render.BarView
	ctrl   *bar.Controller
	queue  *events.EventQueue
	router *events.Router

	content      []string
	scrollOffset int

	// Drag state for the touch-gesture analog
	dragActive bool

	audioInit bool
}

// notifyApplier forwards flags to the bar view and reports hide/show
// transitions back onto the event queue for the audio cues
type notifyApplier struct {
	view  *render.BarView
	queue *events.EventQueue
	prev  bar.Flags
}

func (a *notifyApplier) Apply(f bar.Flags) {
	if f.Hidden != a.prev.Hidden {
		if f.Hidden {
			a.queue.Push(events.Event{Type: events.EventBarHidden})
		} else {
			a.queue.Push(events.Event{Type: events.EventBarShown})
		}
	}
	a.prev = f
	a.view.Apply(f)
}

// barHandler routes input events into the visibility controller
type barHandler struct {
	ctrl *bar.Controller
}

func (h *barHandler) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.EventScroll:
		h.ctrl.OnScroll(ev.Payload.(*events.ScrollPayload).Offset)
	case events.EventPointerMove:
		h.ctrl.OnPointerMove(ev.Payload.(*events.PointerMovePayload).Y)
	case events.EventTouchStart:
		h.ctrl.OnTouchStart(ev.Payload.(*events.TouchPayload).Y)
	case events.EventTouchMove:
		h.ctrl.OnTouchMove(ev.Payload.(*events.TouchPayload).Y)
	case events.EventViewportResize:
		h.ctrl.SetViewportWidth(ev.Payload.(*events.ViewportResizePayload).Width)
	}
}

func (h *barHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventScroll,
		events.EventPointerMove,
		events.EventTouchStart,
		events.EventTouchMove,
		events.EventViewportResize,
	}
}

// cueHandler plays short blips on bar hide/show transitions
type cueHandler struct {
	app *App
}

func (h *cueHandler) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.EventBarShown:
		h.app.playTone(showToneHz)
	case events.EventBarHidden:
		h.app.playTone(hideToneHz)
	}
}

func (h *cueHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventBarShown, events.EventBarHidden}
}

func NewApp(cfg *config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)

	a := &App{
		screen:  screen,
		cfg:     cfg,
		view:    render.NewBarView(" chromebar demo "),
		queue:   events.NewEventQueue(),
		content: generateContent(contentLines),
	}
	a.width, a.height = screen.Size()

	applier := &notifyApplier{view: a.view, queue: a.queue}
	a.ctrl = bar.NewController(applier, bar.NewMonotonicTimeProvider(), cfg.Params())
	a.ctrl.SetViewportWidth(a.width)

	a.router = events.NewRouter(a.queue)
	a.router.Register(&barHandler{ctrl: a.ctrl})
	a.router.Register(&cueHandler{app: a})

	if cfg.AudioEnabled {
		if err := a.initAudio(); err != nil {
			// Non-fatal, demo can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	return a, nil
}

func (a *App) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audioInit = true
	}
	return err
}

func (a *App) playTone(freq float64) {
	if !a.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(toneDurationMs * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, freq)
	speaker.Play(beep.Take(duration, sine))
}

func generateContent(n int) []string {
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		lines[i] = fmt.Sprintf("%4d  %s", i+1, sampleLines[i%len(sampleLines)])
	}
	return lines
}

// maxScroll returns the largest valid content offset for the current layout
func (a *App) maxScroll() int {
	visible := a.height - a.view.Height()
	return render.ClampScroll(len(a.content), visible, len(a.content))
}

// scrollTo clamps and stores the new offset and emits a scroll event
func (a *App) scrollTo(offset int) {
	visible := a.height - a.view.Height()
	offset = render.ClampScroll(offset, visible, len(a.content))
	if offset == a.scrollOffset {
		return
	}
	a.scrollOffset = offset
	a.queue.Push(events.Event{Type: events.EventScroll, Payload: &events.ScrollPayload{Offset: offset}})
}

// handleInput translates one tcell event into bar events and app actions
// Returns false to quit
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown:
			a.scrollTo(a.scrollOffset + 1)
		case tcell.KeyUp:
			a.scrollTo(a.scrollOffset - 1)
		case tcell.KeyPgDn:
			a.scrollTo(a.scrollOffset + render.PageDelta(a.height))
		case tcell.KeyPgUp:
			a.scrollTo(a.scrollOffset - render.PageDelta(a.height))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'j':
				a.scrollTo(a.scrollOffset + 1)
			case 'k':
				a.scrollTo(a.scrollOffset - 1)
			case 'g':
				a.scrollTo(0)
			case 'G':
				a.scrollTo(a.maxScroll())
			}
		}

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.handleResize()
	}

	return true
}

// handleMouse maps wheel to scrolling, plain motion to pointer proximity,
// and press-drag to the touch-gesture analog
func (a *App) handleMouse(ev *tcell.EventMouse) {
	_, y := ev.Position()
	buttons := ev.Buttons()

	if buttons&tcell.WheelDown != 0 {
		a.scrollTo(a.scrollOffset + wheelStep)
		return
	}
	if buttons&tcell.WheelUp != 0 {
		a.scrollTo(a.scrollOffset - wheelStep)
		return
	}

	if buttons&tcell.Button1 != 0 {
		if !a.dragActive {
			a.dragActive = true
			a.queue.Push(events.Event{Type: events.EventTouchStart, Payload: &events.TouchPayload{Y: y}})
		} else {
			a.queue.Push(events.Event{Type: events.EventTouchMove, Payload: &events.TouchPayload{Y: y}})
		}
		return
	}

	a.dragActive = false
	a.queue.Push(events.Event{Type: events.EventPointerMove, Payload: &events.PointerMovePayload{Y: y}})
}

func (a *App) handleResize() {
	newWidth, newHeight := a.screen.Size()
	if newWidth == a.width && newHeight == a.height {
		return
	}
	a.width = newWidth
	a.height = newHeight
	a.queue.Push(events.Event{
		Type:    events.EventViewportResize,
		Payload: &events.ViewportResizePayload{Width: newWidth, Height: newHeight},
	})
	a.scrollTo(a.scrollOffset) // Reclamp against the new layout
	a.screen.Sync()
}

func (a *App) draw() {
	a.screen.Clear()

	barHeight := a.view.Height()
	visible := a.height - barHeight

	a.view.Sections = []render.Section{
		{Label: "pos ", Value: render.ScrollIndicatorText(a.scrollOffset, visible, len(a.content)), Priority: 5},
		{Label: "line ", Value: fmt.Sprintf("%d/%d", a.scrollOffset+1, len(a.content)), Priority: 3},
		{Label: "term ", Value: fmt.Sprintf("%dx%d", a.width, a.height), Priority: 1},
	}
	a.view.Draw(a.screen, a.width)

	style := tcell.StyleDefault
	for row := 0; row < visible; row++ {
		idx := a.scrollOffset + row
		if idx >= len(a.content) {
			break
		}
		for x, ch := range a.content[idx] {
			if x >= a.width {
				break
			}
			a.screen.SetContent(x, barHeight+row, ch, nil, style)
		}
	}

	a.screen.Show()
}

func (a *App) run() {
	ticker := time.NewTicker(tickMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			a.router.DispatchAll()
			a.ctrl.Update()
			a.draw()
		}
	}
}

func (a *App) cleanup() {
	if a.audioInit {
		speaker.Close()
	}
	a.screen.Fini()
}

func main() {
	app, err := NewApp(config.Load())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
