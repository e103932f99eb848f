package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	ds "github.com/starfederation/datastar-go/datastar"

	"pokeplot/export"
	"pokeplot/models"
	"pokeplot/utils"
	"pokeplot/web"
)

var ErrNoChart = errors.New("no chart loaded")

// filterContainers are the page elements the generation and legendary dropdowns live in.
var filterContainers = map[string]string{
	"generation": "filter",
	"legendary":  "filter2",
}

type Scatter struct {
	templates *template.Template

	scatter *models.Scatter
	loadErr error

	sessions *sessions
}

// controlView is a copy of a control's state, safe to render after the session lock is released.
type controlView struct {
	Key      string
	Label    string
	Options  []string
	Selected string
}

func newControlView(c *models.Control) controlView {
	return controlView{c.Key(), c.Label(), c.Options(), c.Selected()}
}

type filterSig struct {
	Filters struct {
		Generation string `json:"generation"`
		Legendary  string `json:"legendary"`
	} `json:"filters"`
}

type pointerSig struct {
	Pointer struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		// Seq counts hovers, so a late request for an earlier one can be told apart.
		Seq int64 `json:"seq"`
	} `json:"pointer"`
}

// NewScatter serves scatter, or just loadErr when the data couldn't be loaded.
func NewScatter(scatter *models.Scatter, loadErr error) (s *Scatter, err error) {
	if scatter == nil && loadErr == nil {
		loadErr = ErrNoChart
	}
	s = &Scatter{
		scatter: scatter,
		loadErr: loadErr,
	}
	if scatter != nil {
		s.sessions = newSessions(scatter.NewFilters)
	}

	templates := template.New("").Funcs(template.FuncMap{
		"optionLabel": func(option string) string {
			if option == models.All {
				return "All"
			}
			return option
		},
		"containerID": func(key string) string {
			if id, ok := filterContainers[key]; ok {
				return id
			}
			return key
		},
		"labelTransform": func(l models.Label) string {
			transform := fmt.Sprintf("translate(%v, %v)", l.X, l.Y)
			if l.Rotate != 0 {
				transform += fmt.Sprintf("rotate(%v)", l.Rotate)
			}
			return transform
		},
	})
	s.templates, err = templates.ParseFS(web.Templates, "templates/scatter/*.gohtml")
	return s, err
}

func (s *Scatter) Templates() *template.Template {
	return s.templates
}

func (s *Scatter) Err() error {
	return s.loadErr
}

func (s *Scatter) Handlers() map[string]func(w http.ResponseWriter, r *http.Request) {
	return map[string]func(w http.ResponseWriter, r *http.Request){
		"/filter":       s.requireChart(s.FilterHandler),
		"/tooltip":      s.requireChart(s.TooltipHandler),
		"/tooltip/hide": s.requireChart(s.HideTooltipHandler),
		"/export":       s.requireChart(s.ExportHandler),
	}
}

func (s *Scatter) requireChart(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.loadErr != nil {
			http.Error(w, s.loadErr.Error(), http.StatusServiceUnavailable)
			return
		}
		handler(w, r)
	}
}

func (s *Scatter) Data(clientID string) map[string]interface{} {
	sess := s.sessions.get(clientID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	// A fresh page has nothing hovered.
	sess.tooltip = models.Tooltip{}

	selection := sess.filters.Selection()
	shown := sess.filters.VisibleCount()
	total := len(s.scatter.Points())

	signals, err := json.Marshal(map[string]interface{}{
		"filters": map[string]string{
			"generation": selection.Generation,
			"legendary":  selection.Legendary,
		},
		"pointer": map[string]interface{}{"x": 0, "y": 0, "seq": sess.tooltipSeq},
		"shown":   shown,
		"total":   total,
	})
	if err != nil {
		log.Printf("couldn't marshal signals: %s", err)
	}

	return map[string]interface{}{
		"layout":     s.scatter.Layout(),
		"points":     s.scatter.Points(),
		"xAxis":      s.scatter.XAxis(),
		"yAxis":      s.scatter.YAxis(),
		"legend":     s.scatter.Legend(),
		"visible":    append([]bool(nil), sess.filters.Visible()...),
		"generation": newControlView(sess.filters.Generation()),
		"legendary":  newControlView(sess.filters.Legendary()),
		"tooltip":    sess.tooltip,
		"shown":      shown,
		"total":      total,
		"signals":    string(signals),
	}
}

// FilterHandler is called when the client changes either dropdown. It applies both selections and sends the
// resulting visibility of every point.
func (s *Scatter) FilterHandler(w http.ResponseWriter, r *http.Request) {
	var sig filterSig
	if err := ds.ReadSignals(r, &sig); err != nil {
		log.Printf("error reading signals: %s", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sess := s.sessions.get(getClientID(w, r))
	sess.mu.Lock()
	err := sess.filters.Apply(models.Selection{
		Generation: sig.Filters.Generation,
		Legendary:  sig.Filters.Legendary,
	})
	mask := utils.BoolsToMask(sess.filters.Visible())
	shown := sess.filters.VisibleCount()
	sess.mu.Unlock()
	if err != nil {
		log.Printf("couldn't apply filters: %s", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sse := ds.NewSSE(w, r)
	if err := sse.ExecuteScript(buildVisibilityFunction(mask)); err != nil {
		log.Printf("error executing visibility function: %s", err)
		return
	}
	if err := sse.MarshalAndPatchSignals(map[string]int{"shown": shown}); err != nil {
		log.Printf("error patching signals: %s", err)
	}
}

// TooltipHandler fills the tooltip with the hovered point and moves it next to the pointer.
func (s *Scatter) TooltipHandler(w http.ResponseWriter, r *http.Request) {
	point, err := strconv.Atoi(r.URL.Query().Get("point"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var sig pointerSig
	if err := ds.ReadSignals(r, &sig); err != nil {
		log.Printf("error reading signals: %s", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tooltip, err := s.scatter.Tooltip(point, sig.Pointer.X, sig.Pointer.Y)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	s.patchTooltip(w, r, sig.Pointer.Seq, func(models.Tooltip) models.Tooltip { return tooltip })
}

// HideTooltipHandler fades the tooltip out, unless the pointer has already moved on to another point.
func (s *Scatter) HideTooltipHandler(w http.ResponseWriter, r *http.Request) {
	var sig pointerSig
	if err := ds.ReadSignals(r, &sig); err != nil {
		log.Printf("error reading signals: %s", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.patchTooltip(w, r, sig.Pointer.Seq, models.Tooltip.Hide)
}

func (s *Scatter) patchTooltip(w http.ResponseWriter, r *http.Request, seq int64, update func(models.Tooltip) models.Tooltip) {
	sess := s.sessions.get(getClientID(w, r))
	sess.mu.Lock()
	if seq < sess.tooltipSeq {
		sess.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
		return
	}
	sess.tooltipSeq = seq
	sess.tooltip = update(sess.tooltip)
	tooltip := sess.tooltip
	sess.mu.Unlock()

	var buf strings.Builder
	if err := s.templates.ExecuteTemplate(&buf, "tooltip", tooltip); err != nil {
		log.Printf("couldn't execute tooltip template %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	sse := ds.NewSSE(w, r)
	if err := sse.PatchElements(strings.TrimSpace(buf.String())); err != nil { // morphs #tooltip
		log.Printf("error patching elements: %s", err)
	}
}

// ExportHandler renders the client's current view as a png or svg file.
func (s *Scatter) ExportHandler(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := s.sessions.get(getClientID(w, r))
	sess.mu.Lock()
	visible := append([]bool(nil), sess.filters.Visible()...)
	sess.mu.Unlock()

	var buf bytes.Buffer
	if err := export.Render(&buf, s.scatter, visible, format); err != nil {
		if errors.Is(err, export.ErrNoVisiblePoints) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Printf("couldn't export chart: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="scatter%s"`, format.Ext()))
	_, _ = buf.WriteTo(w)
}

func buildVisibilityFunction(mask string) string {
	return fmt.Sprintf(`v('%s')`, mask)
}
