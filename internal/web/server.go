// Package web serves the calculator widget to browsers.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"calcpad/internal/config"
	"calcpad/internal/engine"
	"calcpad/internal/handlers"
	"calcpad/internal/input"
	"calcpad/internal/observability"
	"calcpad/internal/theme"
	"calcpad/internal/widget"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// Server renders widget pages and hosts their WebSocket sessions.
type Server struct {
	cfg      config.Config
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewServer(cfg config.Config) *Server {
	return &Server{
		cfg: cfg,
		hub: NewHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (s *Server) Hub() *Hub { return s.hub }

// RegisterRoutes mounts the widget pages and the /ws endpoint.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/{variant}", s.handleVariant)
}

type pageData struct {
	Title       string
	Variant     theme.Variant
	Mode        theme.Mode
	Toggleable  bool
	Display     string
	Dark        theme.Palette
	Light       theme.Palette
	Rows        [][]input.Button
	PreventKeys []string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, s.cfg.Variant)
}

func (s *Server) handleVariant(w http.ResponseWriter, r *http.Request) {
	variant, err := theme.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		handlers.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	s.renderPage(w, r, variant)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, variant theme.Variant) {
	ts := theme.New(variant)
	data := pageData{
		Title:       s.cfg.Title,
		Variant:     variant,
		Mode:        ts.Mode,
		Toggleable:  variant.Toggleable(),
		Display:     engine.New().Display(),
		Dark:        theme.PaletteFor(theme.ModeDark),
		Light:       theme.PaletteFor(theme.ModeLight),
		Rows:        input.Layout(),
		PreventKeys: input.PreventDefaultKeys(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		observability.LoggerWithTrace(r.Context()).Error("failed to render page",
			zap.String("variant", string(variant)),
			zap.Error(err),
		)
	}
}

// handleWebSocket mounts a widget for the lifetime of the connection.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	logger := observability.LoggerWithTrace(r.Context())

	variant := s.cfg.Variant
	if v := r.URL.Query().Get("variant"); v != "" {
		parsed, err := theme.ParseVariant(v)
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		variant = parsed
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := NewClient(s.hub, conn, widget.New(variant))
	s.hub.Register(client)
	client.enqueue(client.state(false, false))

	logger.Info("widget mounted",
		zap.String("client_id", client.ID),
		zap.String("variant", string(variant)),
		zap.String("request_id", observability.RequestIDFromContext(r.Context())),
	)

	go client.WritePump()
	go client.ReadPump()
}

// Shutdown disconnects all clients, unmounting their widgets.
func (s *Server) Shutdown() {
	s.hub.CloseAll()
}
