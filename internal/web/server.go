// Package web serves the dashboard page and keeps it in sync over a websocket.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"crypto_dash/internal/chart"
	"crypto_dash/internal/dashboard"
	"crypto_dash/internal/domain"
	"crypto_dash/internal/infra/coingecko"
	"crypto_dash/internal/quotes"
	"crypto_dash/internal/symbol"

	"github.com/gorilla/mux"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Refresher runs an on-demand quote fetch.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// State is the JSON pushed to pages and returned by /api/state.
type State struct {
	quotes.Frame
	Widgets []chart.Embed `json:"widgets"`
}

// Server is the dashboard web view.
type Server struct {
	dash      *dashboard.Dashboard
	binder    *dashboard.Binder
	embeds    *chart.EmbedProvider
	refresher Refresher
	hub       *Hub
	version   string
	router    *mux.Router
	http      *http.Server
}

// NewServer wires routes for d. The returned server's hub is registered
// as a render target of d.
func NewServer(addr, version string, d *dashboard.Dashboard, embeds *chart.EmbedProvider, refresher Refresher) *Server {
	s := &Server{
		dash:      d,
		binder:    dashboard.NewBinder(d),
		embeds:    embeds,
		refresher: refresher,
		version:   version,
		router:    mux.NewRouter(),
	}
	s.hub = NewHub(s.binder, s.stateFor, d.Frame)
	d.AddTarget(s.hub)

	s.router.HandleFunc("/", s.pageHandler).Methods(http.MethodGet)
	s.router.Handle("/ws", s.hub)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/ping", s.pingHandler).Methods(http.MethodGet)
	api.HandleFunc("/state", s.stateHandler).Methods(http.MethodGet)
	api.HandleFunc("/symbol", s.changeHandler(dashboard.SymbolSelect, "symbol")).Methods(http.MethodPost)
	api.HandleFunc("/interval", s.changeHandler(dashboard.IntervalSelect, "interval")).Methods(http.MethodPost)
	api.HandleFunc("/refresh", s.refreshHandler).Methods(http.MethodPost)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the websocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	slog.Info("✅ Web view listening", slog.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and disconnects pages.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.CloseAll()
	return s.http.Shutdown(ctx)
}

func (s *Server) stateFor(frame quotes.Frame) State {
	return State{Frame: frame, Widgets: s.embeds.Embeds()}
}

type pageData struct {
	Selection domain.Selection
	Symbols   []symbol.Option
	Intervals []symbol.Option
}

func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Selection: s.dash.Selection(),
		Symbols:   symbol.Symbols(s.dash.Coins()),
		Intervals: symbol.Intervals,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.Error("Page render failed", slog.Any("error", err))
	}
}

func (s *Server) pingHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"version": s.version,
		"clients": s.hub.Count(),
	})
}

func (s *Server) stateHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.stateFor(s.dash.Frame()))
}

// changeHandler applies {"<field>": "<value>"} to control.
func (s *Server) changeHandler(control, field string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, readLimit)).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		err := s.binder.Dispatch(dashboard.ChangeEvent{Control: control, Value: body[field]})
		switch {
		case errors.Is(err, dashboard.ErrInvalidSelection):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			slog.Warn("Widget render failed", slog.String("control", control), slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, s.stateFor(s.dash.Frame()))
	}
}

func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	err := s.refresher.Refresh(r.Context())
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, s.stateFor(s.dash.Frame()))
	case errors.Is(err, coingecko.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, coingecko.ErrInFlight):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.Warn("Manual refresh failed", slog.Any("error", err))
		writeError(w, http.StatusBadGateway, "quote refresh failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Response encode failed", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
