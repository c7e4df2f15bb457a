package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/yurifrl/fintrack/pkg/config"
	"github.com/yurifrl/fintrack/pkg/csv"
	"github.com/yurifrl/fintrack/pkg/ledger"
	"github.com/yurifrl/fintrack/pkg/models"
	"github.com/yurifrl/fintrack/pkg/parser"
	"github.com/yurifrl/fintrack/pkg/service"
)

// Server exposes the ledger over HTTP. The tracker is not safe for
// concurrent use, so every handler takes the server mutex.
type Server struct {
	config    *config.Config
	logger    *log.Logger
	mux       *http.ServeMux
	tracker   *ledger.Tracker
	processor *service.Processor
	mu        sync.Mutex
}

// New creates a new HTTP server around an open ledger.
func New(config *config.Config, logger *log.Logger, tracker *ledger.Tracker) *Server {
	return &Server{
		config:    config,
		logger:    logger,
		mux:       http.NewServeMux(),
		tracker:   tracker,
		processor: service.NewProcessor(logger, parser.New(logger), tracker),
	}
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	s.setupRoutes()
	s.logger.Info("listening", "addr", addr, "file", s.tracker.Path())
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/", s.withLogging(s.handleHome))
	s.mux.HandleFunc("/api/records", s.withLogging(s.handleRecords))
	s.mux.HandleFunc("/api/records/", s.withLogging(s.handleRecordByIndex))
	s.mux.HandleFunc("/api/balance", s.withLogging(s.handleBalance))
	s.mux.HandleFunc("/api/export", s.withLogging(s.handleExport))
	s.mux.HandleFunc("/api/import", s.withLogging(s.handleImport))
}

// recordJSON is the wire form of a ledger record. Amount stays a string so
// the stored decimal form survives the round trip.
type recordJSON struct {
	Index       int    `json:"index"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	ID          string `json:"id"`
}

// recordPayload is the request body for creating or replacing a record.
type recordPayload struct {
	Date        string `json:"date"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

func recordFromPayload(p recordPayload) (models.Record, error) {
	if !models.IsValidDate(p.Date) {
		return models.Record{}, fmt.Errorf("date must be in YYYY-MM-DD form")
	}
	category, err := models.ParseCategory(p.Category)
	if err != nil {
		return models.Record{}, err
	}
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return models.Record{}, fmt.Errorf("amount must be a decimal number")
	}
	if amount.IsNegative() {
		return models.Record{}, fmt.Errorf("amount must not be negative")
	}
	return models.Record{
		Date:        p.Date,
		Category:    category,
		Amount:      amount,
		Description: p.Description,
	}, nil
}

func toRecordJSON(index int, r models.Record) recordJSON {
	return recordJSON{
		Index:       index,
		Date:        r.Date,
		Category:    string(r.Category),
		Amount:      r.AmountString(),
		Description: r.Description,
		ID:          r.ID(),
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	count := s.tracker.Len()
	s.mu.Unlock()

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": count,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listRecords(w, r)
	case http.MethodPost:
		s.addRecord(w, r)
	default:
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
	}
}

func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]recordJSON, 0, s.tracker.Len())
	if r.URL.Query().Has("q") {
		for i, rec := range s.tracker.Search(r.URL.Query().Get("q")) {
			out = append(out, toRecordJSON(i, rec))
		}
	} else {
		for i, rec := range s.tracker.Records() {
			out = append(out, toRecordJSON(i, rec))
		}
	}
	s.mu.Unlock()

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"records": out,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) addRecord(w http.ResponseWriter, r *http.Request) {
	var payload recordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid json body", err)
		return
	}

	record, err := recordFromPayload(payload)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	s.mu.Lock()
	err = s.tracker.Add(record)
	index := s.tracker.Len() - 1
	s.mu.Unlock()
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to persist record", err)
		return
	}

	if err := s.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"index":  index,
		"id":     record.ID(),
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleRecordByIndex(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/api/records/")
	if raw == "" {
		s.respondError(w, r, http.StatusBadRequest, "record index required", nil)
		return
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "record index must be an integer", err)
		return
	}

	switch r.Method {
	case http.MethodPut:
		s.editRecord(w, r, index)
	case http.MethodDelete:
		s.deleteRecord(w, r, index)
	default:
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
	}
}

func (s *Server) editRecord(w http.ResponseWriter, r *http.Request, index int) {
	var payload recordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid json body", err)
		return
	}

	record, err := recordFromPayload(payload)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	s.mu.Lock()
	err = s.tracker.Edit(index, record)
	s.mu.Unlock()
	if errors.Is(err, ledger.ErrIndexOutOfRange) {
		s.respondError(w, r, http.StatusNotFound, "record index out of range", nil)
		return
	}
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to persist record", err)
		return
	}

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"index":  index,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) deleteRecord(w http.ResponseWriter, r *http.Request, index int) {
	s.mu.Lock()
	err := s.tracker.Delete(index)
	s.mu.Unlock()
	if errors.Is(err, ledger.ErrIndexOutOfRange) {
		s.respondError(w, r, http.StatusNotFound, "record index out of range", nil)
		return
	}
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to persist record", err)
		return
	}

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	s.mu.Lock()
	balance := s.tracker.Balance()
	s.mu.Unlock()

	if err := s.writeJSON(w, http.StatusOK, map[string]string{
		"income":  balance.Income.String(),
		"expense": balance.Expense.String(),
		"net":     balance.Net.String(),
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	var filter csv.FilterFunc
	if c := r.URL.Query().Get("category"); c != "" {
		category, err := models.ParseCategory(c)
		if err != nil {
			s.respondError(w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		filter = func(rec models.Record) bool { return rec.Category == category }
	}

	s.mu.Lock()
	records := make([]models.Record, 0, s.tracker.Len())
	for _, rec := range s.tracker.Records() {
		records = append(records, rec)
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "fintrack.csv"))
	if _, err := w.Write(csv.Create(records, filter)); err != nil {
		s.logger.Warn("failed to write csv response", "err", err)
	}
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	file, header, err := r.FormFile("statement")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "statement file required", err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to read file", err)
		return
	}

	s.mu.Lock()
	added, err := s.processor.ImportBytes(data, header.Filename)
	s.mu.Unlock()
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to process file", err)
		return
	}

	s.logger.Info("statement imported", "file", header.Filename, "added", added)

	if err := s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"added":  added,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// --- helpers ---

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log request start/end and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}
