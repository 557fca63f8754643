// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package stubserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/schema"

	"github.com/jeranaias/aidesk/internal/chunking"
	"github.com/jeranaias/aidesk/internal/model"
	"github.com/jeranaias/aidesk/internal/util"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "company-ai-training"

// NotFoundReply is the assistant text used when no document matches.
const NotFoundReply = "Xin lỗi, tôi không tìm thấy thông tin liên quan trong tài liệu hiện có."

// TicketCreatedMessage is returned when an action card creates a ticket.
const TicketCreatedMessage = "Ticket đã được tạo thành công! Bộ phận nhân sự sẽ liên hệ với bạn sớm."

// maxUploadSize bounds multipart uploads (32 MB).
const maxUploadSize = 32 << 20

// =============================================================================
// SERVER
// =============================================================================

// Server serves the backend REST contract from memory.
type Server struct {
	store      *store
	logRequest bool
}

// Option configures a Server.
type Option func(*Server)

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.store.now = now }
}

// WithRequestLogging enables chi's request logger.
func WithRequestLogging() Option {
	return func(s *Server) { s.logRequest = true }
}

// WithSeed loads a small Vietnamese HR/IT corpus.
func WithSeed() Option {
	return func(s *Server) { s.Seed() }
}

// New creates an empty stub backend.
func New(opts ...Option) *Server {
	s := &Server{store: newStore(time.Now)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed adds sample categories and documents.
func (s *Server) Seed() {
	hr := s.store.createCategory("Nhân sự", "Chính sách nghỉ phép, phúc lợi và quy trình tuyển dụng")
	it := s.store.createCategory("IT", "Hỗ trợ kỹ thuật, tài khoản và thiết bị")
	s.store.createCategory("Tài chính", "Thanh toán, hoàn ứng và công tác phí")

	s.store.createDocument("Quy định nghỉ phép năm",
		"# Nghỉ phép năm\n\nNhân viên chính thức được nghỉ phép 12 ngày mỗi năm. "+
			"Đơn nghỉ phép cần gửi cho quản lý trực tiếp trước ít nhất 3 ngày làm việc.",
		"text", []string{hr.ID})
	s.store.createDocument("Hướng dẫn kết nối VPN",
		"# VPN\n\n1. Cài đặt ứng dụng VPN của công ty\n2. Đăng nhập bằng tài khoản email\n\n"+
			"```bash\nsudo openvpn --config company.ovpn\n```",
		"text", []string{it.ID})
}

// Tickets returns the tickets created so far.
func (s *Server) Tickets() []Ticket {
	return s.store.listTickets()
}

// Router builds the chi router with every route under /api/v1.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	// The browser frontend runs on its own dev origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if s.logRequest {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(api chi.Router) {
		s.RegisterRoutes(api)
	})
	return r
}

// RegisterRoutes mounts the backend endpoints on r.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/health", s.handleHealth)

	r.Route("/chat/sessions", func(cr chi.Router) {
		cr.Post("/", s.handleCreateSession)
		cr.Get("/", s.handleListSessions)
		cr.Get("/{id}", s.handleGetSession)
		cr.Delete("/{id}", s.handleDeleteSession)
		cr.Post("/{id}/messages", s.handleSendMessage)
	})

	r.Route("/documents", func(dr chi.Router) {
		dr.Get("/", s.handleListDocuments)
		dr.Post("/upload", s.handleUploadDocument)
		dr.Post("/semantic-reembed", s.handleSemanticReembed)
		dr.Get("/{id}", s.handleGetDocument)
		dr.Put("/{id}", s.handleUpdateDocument)
		dr.Delete("/{id}", s.handleDeleteDocument)
		dr.Post("/{id}/reembed", s.handleReembed)
		dr.Get("/{id}/categories", s.handleGetDocumentCategories)
		dr.Put("/{id}/categories", s.handleSetDocumentCategories)
	})

	r.Route("/categories", func(cr chi.Router) {
		cr.Get("/", s.handleListCategories)
		cr.Post("/", s.handleCreateCategory)
		cr.Get("/{id}", s.handleGetCategory)
		cr.Put("/{id}", s.handleUpdateCategory)
		cr.Delete("/{id}", s.handleDeleteCategory)
		cr.Get("/{id}/documents", s.handleCategoryDocuments)
	})

	r.Get("/search", s.handleSearch)
	r.Get("/search/", s.handleSearch)
	r.Post("/tickets", s.handleCreateTicket)
	r.Post("/tickets/", s.handleCreateTicket)
	r.Get("/tickets", s.handleListTickets)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("stub backend shutdown: %v", err)
		}
		return nil
	}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

type h map[string]any

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, h{"error": message})
}

func respondStoreError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, errNotFound):
		respondError(w, http.StatusNotFound, notFound)
	case errors.Is(err, errInUse):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxUploadSize)).Decode(v)
}

// =============================================================================
// HEALTH
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, model.Health{Status: "ok", Service: ServiceName})
}

// =============================================================================
// SESSION HANDLERS
// =============================================================================

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string `json:"name"`
		UserID     string `json:"user_id"`
		CategoryID string `json:"category_id"`
	}
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	sess, err := s.store.createSession(req.Name, req.UserID, req.CategoryID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "category not found")
		return
	}
	respondJSON(w, http.StatusCreated, h{"session": sess})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h{"sessions": s.store.listSessions()})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, msgs, err := s.store.getSession(chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err, "Session not found")
		return
	}
	if msgs == nil {
		msgs = []model.Message{}
	}
	respondJSON(w, http.StatusOK, h{"session": sess, "messages": msgs})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.deleteSession(chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err, "Session not found")
		return
	}
	respondJSON(w, http.StatusOK, h{"message": "Session deleted successfully"})
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Message string `json:"message"`
	}
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	sess, _, err := s.store.getSession(id)
	if err != nil {
		respondStoreError(w, err, "Session not found")
		return
	}

	answer, found := s.answer(sess, req.Message)
	reply, err := s.store.appendExchange(id, req.Message, answer)
	if err != nil {
		respondStoreError(w, err, "Session not found")
		return
	}

	resp := h{"message": reply}
	if !found {
		resp["action_card"] = model.ActionCard{
			Type:        "create_ticket",
			Title:       "Không tìm thấy thông tin?",
			Description: "Tạo ticket để được hỗ trợ trực tiếp từ bộ phận nhân sự",
			Action: model.ActionButton{
				Text:     "Tạo Ticket Hỏi HR",
				Endpoint: "/api/v1/tickets",
				Method:   http.MethodPost,
				Payload: map[string]string{
					"question":   req.Message,
					"category":   "general",
					"session_id": id,
				},
			},
		}
	}
	respondJSON(w, http.StatusOK, h{"response": resp})
}

// answer builds a markdown reply from the best matching chunks.
func (s *Server) answer(sess model.Session, question string) (string, bool) {
	hits := s.store.search(question, 3, sess.CategoryID)
	if len(hits) == 0 {
		return NotFoundReply, false
	}
	var b strings.Builder
	b.WriteString("Dựa trên tài liệu nội bộ:\n\n")
	for _, hit := range hits {
		name := hit.DocumentID
		if hit.Document != nil {
			name = hit.Document.Name
		}
		b.WriteString("**" + name + "**\n\n")
		b.WriteString("> " + strings.ReplaceAll(util.TruncateRunes(strings.TrimSpace(hit.Content), 300), "\n", "\n> ") + "\n\n")
	}
	return strings.TrimSpace(b.String()), true
}

// =============================================================================
// DOCUMENT HANDLERS
// =============================================================================

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h{"documents": s.store.listDocuments("")})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.getDocument(chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err, "Document not found")
		return
	}
	respondJSON(w, http.StatusOK, h{"document": doc})
}

// handleUploadDocument accepts either multipart form data with a "file" part
// or a JSON body with name and content.
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		s.uploadFile(w, r)
		return
	}

	var req struct {
		Name        string   `json:"name"`
		Content     string   `json:"content"`
		CategoryIDs []string `json:"category_ids"`
	}
	if err := decode(r, &req); err != nil || req.Name == "" || req.Content == "" {
		respondError(w, http.StatusBadRequest, "Either file or content+name must be provided")
		return
	}
	doc := s.store.createDocument(req.Name, req.Content, "text", req.CategoryIDs)
	respondJSON(w, http.StatusCreated, h{"message": "Document created successfully", "document": doc})
}

func (s *Server) uploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Either file or content+name must be provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read file")
		return
	}
	docType := strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	if docType == "" {
		docType = "text"
	}
	doc := s.store.createDocument(header.Filename, string(data), docType, r.MultipartForm.Value["category_ids"])
	respondJSON(w, http.StatusCreated, h{"message": "Document uploaded successfully", "document": doc})
}

func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Content) == "" {
		respondError(w, http.StatusBadRequest, "content is required")
		return
	}
	doc, err := s.store.updateDocument(chi.URLParam(r, "id"), req.Content)
	if err != nil {
		respondStoreError(w, err, "Document not found")
		return
	}
	respondJSON(w, http.StatusOK, h{"message": "Document updated successfully", "document": doc})
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.store.deleteDocument(chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err, "Document not found")
		return
	}
	respondJSON(w, http.StatusOK, h{"message": "Document deleted successfully"})
}

func (s *Server) handleReembed(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.reembed(chi.URLParam(r, "id"), chunking.Default())
	if err != nil {
		respondStoreError(w, err, "Document not found")
		return
	}
	respondJSON(w, http.StatusOK, h{"message": "Document re-embedding started", "document": doc})
}

func (s *Server) handleSemanticReembed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DocumentID string           `json:"document_id"`
		Config     *chunking.Config `json:"config"`
	}
	if err := decode(r, &req); err != nil || req.DocumentID == "" {
		respondError(w, http.StatusBadRequest, "document_id is required")
		return
	}
	cfg := chunking.Default()
	if req.Config != nil {
		if err := req.Config.Validate(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		cfg = *req.Config
	}
	doc, err := s.store.reembed(req.DocumentID, cfg)
	if err != nil {
		respondStoreError(w, err, "Document not found")
		return
	}
	respondJSON(w, http.StatusOK, h{
		"message":  "Document semantic re-embedding started",
		"document": doc,
		"config":   cfg,
	})
}

func (s *Server) handleGetDocumentCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.store.documentCategories(chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err, "Document not found")
		return
	}
	respondJSON(w, http.StatusOK, h{"categories": cats})
}

func (s *Server) handleSetDocumentCategories(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryIDs []string `json:"category_ids"`
	}
	if err := decode(r, &req); err != nil || req.CategoryIDs == nil {
		respondError(w, http.StatusBadRequest, "category_ids is required")
		return
	}
	if err := s.store.setDocumentCategories(chi.URLParam(r, "id"), req.CategoryIDs); err != nil {
		respondStoreError(w, err, "Document not found")
		return
	}
	respondJSON(w, http.StatusOK, h{"message": "Document categories updated successfully"})
}

// =============================================================================
// CATEGORY HANDLERS
// =============================================================================

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h{"categories": s.store.listCategories()})
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	respondJSON(w, http.StatusCreated, h{"category": s.store.createCategory(req.Name, req.Description)})
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.getCategory(chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err, "Category not found")
		return
	}
	respondJSON(w, http.StatusOK, h{"category": c})
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decode(r, &req); err != nil || strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	c, err := s.store.updateCategory(chi.URLParam(r, "id"), req.Name, req.Description)
	if err != nil {
		respondStoreError(w, err, "Category not found")
		return
	}
	respondJSON(w, http.StatusOK, h{"category": c})
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.store.deleteCategory(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, errNotFound) {
			respondError(w, http.StatusBadRequest, "Category not found")
			return
		}
		respondStoreError(w, err, "Category not found")
		return
	}
	respondJSON(w, http.StatusOK, h{"message": "Category deleted successfully"})
}

func (s *Server) handleCategoryDocuments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.store.getCategory(id); err != nil {
		respondStoreError(w, err, "Category not found")
		return
	}
	respondJSON(w, http.StatusOK, h{"documents": s.store.listDocuments(id)})
}

// =============================================================================
// SEARCH & TICKETS
// =============================================================================

// searchParams is the query string of GET /search.
type searchParams struct {
	Q     string `schema:"q"`
	Limit int    `schema:"limit"`
}

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var params searchParams
	if err := queryDecoder.Decode(&params, r.URL.Query()); err != nil {
		// An unparsable limit falls back to the default like the real backend.
		params = searchParams{Q: r.URL.Query().Get("q")}
	}
	if params.Q == "" {
		respondError(w, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}
	if params.Limit <= 0 {
		params.Limit = 10
	}
	respondJSON(w, http.StatusOK, h{"query": params.Q, "results": s.store.search(params.Q, params.Limit, "")})
}

func (s *Server) handleCreateTicket(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question    string `json:"question"`
		Category    string `json:"category"`
		Description string `json:"description"`
		SessionID   string `json:"session_id"`
	}
	if err := decode(r, &req); err != nil || req.Question == "" || req.SessionID == "" {
		respondError(w, http.StatusBadRequest, "question and session_id are required")
		return
	}
	if _, _, err := s.store.getSession(req.SessionID); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}
	t := s.store.createTicket(req.SessionID, req.Question, req.Category, req.Description)
	respondJSON(w, http.StatusCreated, h{"ticket": t, "message": TicketCreatedMessage})
}

func (s *Server) handleListTickets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h{"tickets": s.store.listTickets()})
}
