package cui

import (
	"errors"
	"fmt"
	"hirelens/internal/lib/logger/sl"
	"hirelens/internal/services/analysis"
	"hirelens/internal/services/keywords"
	"hirelens/internal/services/report"
	"hirelens/internal/services/search"
	"hirelens/internal/utils"
	"log/slog"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
)

// CUI is an interactive view over an analysis session. Every change of
// keywords or algorithm re-runs the analysis.
type CUI struct {
	cui            *gocui.Gui
	log            *slog.Logger
	session        *analysis.Session
	mandatory      []string
	optional       []string
	showComparison bool
	drawn          bool
}

func New(log *slog.Logger, session *analysis.Session, mandatory, optional []string) (*CUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("cui.New: %w", err)
	}
	return &CUI{
		cui:       g,
		log:       log,
		session:   session,
		mandatory: mandatory,
		optional:  append([]string(nil), optional...),
	}, nil
}

func (c *CUI) Close() {
	c.cui.Close()
}

type binding struct {
	view    string
	key     interface{}
	handler func(*gocui.Gui, *gocui.View) error
}

func (c *CUI) Start() error {
	c.cui.Cursor = true
	c.cui.SetManagerFunc(c.layout)
	defer c.cui.Close()

	bindings := []binding{
		{"", gocui.KeyCtrlC, quit},
		{"input", gocui.KeyEnter, c.addKeyword},
		{"", gocui.KeyCtrlA, c.nextAlgorithm},
		{"", gocui.KeyCtrlP, c.toggleComparison},
		{"", gocui.KeyCtrlD, c.dropKeyword},
		{"output", gocui.KeyArrowDown, scrollDown},
		{"output", gocui.KeyArrowUp, scrollUp},
		{"", gocui.KeyTab, switchView},
	}
	for _, b := range bindings {
		if err := c.cui.SetKeybinding(b.view, b.key, gocui.ModNone, b.handler); err != nil {
			c.log.Error("Failed to set keybinding:", "error", sl.Err(err))
		}
	}

	if err := c.cui.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		c.log.Error("Failed to run GUI:", "error", sl.Err(err))
		return err
	}

	return nil
}

func (c *CUI) addKeyword(g *gocui.Gui, v *gocui.View) error {
	kw := strings.ToLower(strings.TrimSpace(v.Buffer()))
	v.Clear()
	_ = v.SetCursor(0, 0)
	if kw == "" {
		return nil
	}
	c.optional = append(c.optional, kw)
	return c.refresh(g)
}

func (c *CUI) dropKeyword(g *gocui.Gui, _ *gocui.View) error {
	if len(c.optional) == 0 {
		return nil
	}
	c.optional = c.optional[:len(c.optional)-1]
	return c.refresh(g)
}

func (c *CUI) nextAlgorithm(g *gocui.Gui, _ *gocui.View) error {
	next := search.Algorithms[(int(c.session.Algorithm())+1)%len(search.Algorithms)]
	if err := c.session.SetAlgorithm(next); err != nil {
		return err
	}
	return c.refresh(g)
}

func (c *CUI) toggleComparison(g *gocui.Gui, _ *gocui.View) error {
	c.showComparison = !c.showComparison
	return c.refresh(g)
}

func scrollDown(g *gocui.Gui, v *gocui.View) error {
	_, oy := v.Origin()
	_, sy := v.Size()

	lines := len(v.BufferLines())

	if oy+sy < lines {
		return v.SetOrigin(0, oy+1)
	}
	return nil
}

func scrollUp(g *gocui.Gui, v *gocui.View) error {
	_, oy := v.Origin()
	if oy > 0 {
		return v.SetOrigin(0, oy-1)
	}
	return nil
}

func switchView(g *gocui.Gui, v *gocui.View) error {
	if v != nil && v.Name() == "input" {
		_, err := g.SetCurrentView("output")
		return err
	}
	_, err := g.SetCurrentView("input")
	return err
}

func (c *CUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxX < 10 || maxY < 6 {
		return fmt.Errorf("terminal window is too small")
	}

	// Left sidebar for the session state
	if v, err := g.SetView("session", 0, 0, maxX/4, maxY-2); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Session"
		v.Wrap = true
	}

	if v, err := g.SetView("input", maxX/4+1, 0, maxX-2, 2); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Editable = true
		v.Title = "Add optional keyword (Enter)"
		_, _ = g.SetCurrentView("input")
	}

	if v, err := g.SetView("output", maxX/4+1, 3, maxX-2, maxY-2); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Results"
	}

	if v, err := g.SetView("help", 0, maxY-2, maxX-2, maxY); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		fmt.Fprint(v, "^A algorithm  ^P compare  ^D drop keyword  Tab switch  ↑↓ scroll  ^C quit")
	}

	// first frame: views exist now
	if !c.drawn {
		c.drawn = true
		return c.refresh(g)
	}

	return nil
}

// refresh recomputes the session and redraws the session and output views.
func (c *CUI) refresh(g *gocui.Gui) error {
	kws := keywords.Combine(c.mandatory, c.optional)
	if err := c.session.SetKeywords(kws); err != nil {
		return err
	}

	sessionView, err := g.View("session")
	if err != nil {
		return err
	}
	outputView, err := g.View("output")
	if err != nil {
		return err
	}
	sessionView.Clear()
	outputView.Clear()
	_ = outputView.SetOrigin(0, 0)

	fmt.Fprintf(sessionView, "\033[33mAlgorithm:\033[0m %s\n", c.session.Algorithm())
	fmt.Fprintf(sessionView, "\033[33mDocuments:\033[0m %d\n\n", len(c.session.Documents()))
	fmt.Fprintln(sessionView, "\033[33mMandatory:\033[0m")
	for _, kw := range c.mandatory {
		fmt.Fprintf(sessionView, "  %s\n", kw)
	}
	fmt.Fprintln(sessionView, "\033[33mOptional:\033[0m")
	for _, kw := range c.optional {
		fmt.Fprintf(sessionView, "  %s\n", kw)
	}

	start := time.Now()
	if c.showComparison {
		err = c.renderComparison(outputView)
	} else {
		err = c.renderAnalysis(outputView)
	}
	if err != nil {
		fmt.Fprintf(outputView, "\033[31m%s\033[0m\n", err)
		c.log.Debug("Refresh failed", sl.Err(err))
		return nil
	}

	fmt.Fprintf(sessionView, "\n\033[32mRefresh: %s\033[0m\n", utils.FormatDuration(time.Since(start)))
	return nil
}

func (c *CUI) renderAnalysis(v *gocui.View) error {
	res, err := c.session.Analyze()
	if err != nil {
		return err
	}
	v.Title = "Results: " + res.Algorithm
	return report.PlainTheme.WriteAnalysis(v, res)
}

func (c *CUI) renderComparison(v *gocui.View) error {
	cmp, err := c.session.Compare()
	if err != nil {
		return err
	}
	v.Title = "Compare All Algorithms"
	return report.PlainTheme.WriteComparison(v, cmp)
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
