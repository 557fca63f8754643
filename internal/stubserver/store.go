// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package stubserver

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/jeranaias/aidesk/internal/chunking"
	"github.com/jeranaias/aidesk/internal/model"
)

var (
	errNotFound = errors.New("not found")
	errInUse    = errors.New("category is still in use by documents or sessions")
)

// Ticket is a support request created from an action card.
type Ticket struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Question    string    `json:"question"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// store holds all entities behind one lock.
type store struct {
	mu sync.RWMutex

	now func() time.Time

	sessions   map[string]*model.Session
	messages   map[string][]model.Message
	documents  map[string]*model.Document
	docCats    map[string][]string
	docConfig  map[string]chunking.Config
	categories map[string]*model.Category
	catOrder   []string
	tickets    []Ticket
}

func newStore(now func() time.Time) *store {
	return &store{
		now:        now,
		sessions:   make(map[string]*model.Session),
		messages:   make(map[string][]model.Message),
		documents:  make(map[string]*model.Document),
		docCats:    make(map[string][]string),
		docConfig:  make(map[string]chunking.Config),
		categories: make(map[string]*model.Category),
	}
}

// =============================================================================
// SESSIONS
// =============================================================================

func (s *store) createSession(name, userID, categoryID string) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if categoryID != "" {
		if _, ok := s.categories[categoryID]; !ok {
			return model.Session{}, errNotFound
		}
	}
	now := s.now()
	sess := &model.Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		CategoryID: categoryID,
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.sessions[sess.ID] = sess
	return *sess, nil
}

func (s *store) listSessions() []model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, *sess)
	}
	model.SortSessionsByRecency(out)
	return out
}

func (s *store) getSession(id string) (model.Session, []model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return model.Session{}, nil, errNotFound
	}
	msgs := append([]model.Message{}, s.messages[id]...)
	return *sess, msgs, nil
}

func (s *store) deleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return errNotFound
	}
	delete(s.sessions, id)
	delete(s.messages, id)
	return nil
}

// appendExchange records a user message and the assistant reply, bumping the
// session's UpdatedAt.
func (s *store) appendExchange(sessionID, question, answer string) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return model.Message{}, errNotFound
	}
	now := s.now()
	user := model.Message{ID: uuid.NewString(), SessionID: sessionID, Role: model.RoleUser, Content: question, CreatedAt: now}
	reply := model.Message{ID: uuid.NewString(), SessionID: sessionID, Role: model.RoleAssistant, Content: answer, CreatedAt: now}
	s.messages[sessionID] = append(s.messages[sessionID], user, reply)
	sess.UpdatedAt = now
	return reply, nil
}

// =============================================================================
// DOCUMENTS
// =============================================================================

// chunkCount mirrors the backend's estimate: one chunk per MaxChunkSize characters.
func chunkCount(content string, cfg chunking.Config) int {
	n := len([]rune(content))
	if n == 0 {
		return 0
	}
	return (n + cfg.MaxChunkSize - 1) / cfg.MaxChunkSize
}

func (s *store) materialize(doc *model.Document) model.Document {
	out := *doc
	out.Categories = nil
	for _, id := range s.docCats[doc.ID] {
		if c, ok := s.categories[id]; ok {
			out.Categories = append(out.Categories, *c)
		}
	}
	return out
}

func (s *store) validCategoryIDs(ids []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, id := range ids {
		if _, ok := s.categories[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (s *store) createDocument(name, content, docType string, categoryIDs []string) model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cfg := chunking.Default()
	doc := &model.Document{
		ID:          uuid.NewString(),
		Name:        name,
		Content:     content,
		Type:        docType,
		Size:        int64(len(content)),
		ChunksCount: chunkCount(content, cfg),
		UploadedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.documents[doc.ID] = doc
	s.docCats[doc.ID] = s.validCategoryIDs(categoryIDs)
	s.docConfig[doc.ID] = cfg
	return s.materialize(doc)
}

func (s *store) listDocuments(categoryID string) []model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		if categoryID != "" && !contains(s.docCats[doc.ID], categoryID) {
			continue
		}
		out = append(out, s.materialize(doc))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *store) getDocument(id string) (model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return model.Document{}, errNotFound
	}
	return s.materialize(doc), nil
}

func (s *store) updateDocument(id, content string) (model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return model.Document{}, errNotFound
	}
	doc.Content = content
	doc.Size = int64(len(content))
	doc.ChunksCount = chunkCount(content, s.docConfig[id])
	doc.UpdatedAt = s.now()
	return s.materialize(doc), nil
}

func (s *store) deleteDocument(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return errNotFound
	}
	delete(s.documents, id)
	delete(s.docCats, id)
	delete(s.docConfig, id)
	return nil
}

func (s *store) reembed(id string, cfg chunking.Config) (model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return model.Document{}, errNotFound
	}
	s.docConfig[id] = cfg
	doc.ChunksCount = chunkCount(doc.Content, cfg)
	doc.UpdatedAt = s.now()
	return s.materialize(doc), nil
}

func (s *store) documentCategories(id string) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, errNotFound
	}
	cats := s.materialize(doc).Categories
	if cats == nil {
		cats = []model.Category{}
	}
	return cats, nil
}

func (s *store) setDocumentCategories(id string, categoryIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return errNotFound
	}
	s.docCats[id] = s.validCategoryIDs(categoryIDs)
	return nil
}

// =============================================================================
// CATEGORIES
// =============================================================================

func (s *store) createCategory(name, description string) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c := &model.Category{ID: uuid.NewString(), Name: name, Description: description, CreatedAt: now, UpdatedAt: now}
	s.categories[c.ID] = c
	s.catOrder = append(s.catOrder, c.ID)
	return *c
}

func (s *store) listCategories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, 0, len(s.catOrder))
	for _, id := range s.catOrder {
		out = append(out, *s.categories[id])
	}
	return out
}

func (s *store) getCategory(id string) (model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return model.Category{}, errNotFound
	}
	return *c, nil
}

func (s *store) updateCategory(id, name, description string) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return model.Category{}, errNotFound
	}
	c.Name = name
	c.Description = description
	c.UpdatedAt = s.now()
	return *c, nil
}

func (s *store) deleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return errNotFound
	}
	for _, ids := range s.docCats {
		if contains(ids, id) {
			return errInUse
		}
	}
	for _, sess := range s.sessions {
		if sess.CategoryID == id {
			return errInUse
		}
	}
	delete(s.categories, id)
	for i, cid := range s.catOrder {
		if cid == id {
			s.catOrder = append(s.catOrder[:i], s.catOrder[i+1:]...)
			break
		}
	}
	return nil
}

// =============================================================================
// SEARCH
// =============================================================================

// search splits every document into chunks and ranks them by how many query
// words they contain. categoryID, when set, restricts the corpus.
func (s *store) search(query string, limit int, categoryID string) []model.SearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fold := cases.Fold()
	var words []string
	for _, w := range strings.Fields(fold.String(query)) {
		if len([]rune(w)) >= 3 {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return []model.SearchResult{}
	}

	type scored struct {
		result model.SearchResult
		score  int
	}
	var hits []scored
	for _, doc := range s.documents {
		if categoryID != "" && !contains(s.docCats[doc.ID], categoryID) {
			continue
		}
		cfg, ok := s.docConfig[doc.ID]
		if !ok {
			cfg = chunking.Default()
		}
		for i, chunk := range splitChunks(doc.Content, cfg.MaxChunkSize) {
			folded := fold.String(chunk)
			score := 0
			for _, w := range words {
				if strings.Contains(folded, w) {
					score++
				}
			}
			if score == 0 {
				continue
			}
			d := s.materialize(doc)
			hits = append(hits, scored{
				result: model.SearchResult{
					ID:         doc.ID + "-" + strconv.Itoa(i),
					DocumentID: doc.ID,
					Document:   &d,
					Content:    chunk,
					ChunkIndex: i,
				},
				score: score,
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].result.ID < hits[j].result.ID
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]model.SearchResult, len(hits))
	for i, h := range hits {
		out[i] = h.result
	}
	return out
}

// =============================================================================
// TICKETS
// =============================================================================

func (s *store) createTicket(sessionID, question, category, description string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category == "" {
		category = "general"
	}
	t := Ticket{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Question:    question,
		Category:    category,
		Description: description,
		Status:      "open",
		CreatedAt:   s.now(),
	}
	s.tickets = append(s.tickets, t)
	return t
}

func (s *store) listTickets() []Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Ticket{}, s.tickets...)
}

// =============================================================================
// HELPERS
// =============================================================================

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func splitChunks(content string, size int) []string {
	runes := []rune(content)
	if size <= 0 {
		size = len(runes)
	}
	var out []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}
