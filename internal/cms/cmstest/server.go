// Package cmstest provides an in-memory content API for tests.
package cmstest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/arabiq/showroomseed/internal/models"
)

// Request is a recorded call to the server
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Auth   string
}

// Server is a Strapi-style API backed by memory. Documents keep one field
// set per locale; a locale variant created through PUT starts from the EN
// fields so shared attributes (price, sku) carry over.
type Server struct {
	*httptest.Server
	Token string

	mu       sync.Mutex
	nextID   int64
	docs     map[string][]*document
	requests []Request
}

type document struct {
	documentID string
	ids        map[string]int64
	locales    map[string]map[string]interface{}
	order      []string
}

// New starts a server that accepts only the given bearer token.
// It is closed when the test ends.
func New(t testing.TB, token string) *Server {
	s := &Server{
		Token: token,
		docs:  make(map[string][]*document),
	}

	r := mux.NewRouter()
	r.Use(s.record, s.auth)
	r.HandleFunc("/api/{apiID}", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/api/{apiID}", s.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/api/{apiID}/{documentID}", s.handleLocalize).Methods(http.MethodPut)
	r.HandleFunc("/api/{apiID}/{documentID}", s.handleDelete).Methods(http.MethodDelete)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Put stores fields for a document in one locale and returns its documentId.
// An empty documentID mints a new document.
func (s *Server) Put(apiID, documentID, locale string, fields map[string]interface{}) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.find(apiID, documentID)
	if doc == nil {
		doc = s.newDocument(apiID, documentID)
	}
	s.setLocale(doc, locale, fields)
	return doc.documentID
}

// AddDemo stores an EN demo entry and returns its documentId
func (s *Server) AddDemo(slug, title string) string {
	return s.Put("demos", "", "en", map[string]interface{}{"slug": slug, "title": title})
}

// AddProduct stores a product variant linked to the demo and returns its documentId.
// p.DocumentID selects an existing document; leave it empty for a new one.
func (s *Server) AddProduct(demoDocumentID, locale string, p models.Product) string {
	raw, _ := json.Marshal(p)
	var fields map[string]interface{}
	_ = json.Unmarshal(raw, &fields)
	delete(fields, "id")
	delete(fields, "documentId")
	delete(fields, "locale")
	fields["demo"] = demoDocumentID

	return s.Put("demo-products", p.DocumentID, locale, fields)
}

// Entries returns the stored entries of apiID in locale, in insertion order
func (s *Server) Entries(apiID, locale string) []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []map[string]interface{}
	for _, doc := range s.docs[apiID] {
		if _, ok := doc.locales[locale]; ok {
			out = append(out, s.render(doc, locale))
		}
	}
	return out
}

// Requests returns every request received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Auth:   r.Header.Get("Authorization"),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.Token {
			writeError(w, http.StatusUnauthorized, "UnauthorizedError", "Missing or invalid credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	apiID := mux.Vars(r)["apiID"]
	q := r.URL.Query()
	locale := q.Get("locale")
	if locale == "" {
		locale = "en"
	}

	s.mu.Lock()
	var matched []map[string]interface{}
	for _, doc := range s.docs[apiID] {
		for _, loc := range doc.order {
			if locale != "all" && loc != locale {
				continue
			}
			if !s.matches(doc, loc, q) {
				continue
			}
			entry := s.render(doc, loc)
			if q.Get("populate") != "images" {
				delete(entry, "images")
			}
			matched = append(matched, entry)
		}
	}
	s.mu.Unlock()

	page, pageSize := 1, 25
	if v, err := strconv.Atoi(q.Get("pagination[page]")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(q.Get("pagination[pageSize]")); err == nil && v > 0 {
		pageSize = v
	}
	if v, err := strconv.Atoi(q.Get("pagination[limit]")); err == nil && v > 0 {
		pageSize = v
	}

	total := len(matched)
	pageCount := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	data := matched[start:end]
	if data == nil {
		data = []map[string]interface{}{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": data,
		"meta": map[string]interface{}{
			"pagination": models.Pagination{Page: page, PageSize: pageSize, PageCount: pageCount, Total: total},
		},
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	apiID := mux.Vars(r)["apiID"]
	fields, ok := decodeData(w, r)
	if !ok {
		return
	}
	locale, _ := fields["locale"].(string)
	if locale == "" {
		locale = "en"
	}
	delete(fields, "locale")

	s.mu.Lock()
	doc := s.newDocument(apiID, "")
	s.setLocale(doc, locale, fields)
	entry := s.render(doc, locale)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]interface{}{"data": entry})
}

func (s *Server) handleLocalize(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = "en"
	}
	fields, ok := decodeData(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	doc := s.find(vars["apiID"], vars["documentID"])
	if doc == nil {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "NotFoundError", "Not Found")
		return
	}
	merged := make(map[string]interface{})
	base, ok := doc.locales[locale]
	if !ok {
		base = doc.locales["en"]
	}
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	s.setLocale(doc, locale, merged)
	entry := s.render(doc, locale)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": entry})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	apiID := vars["apiID"]

	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.docs[apiID]
	for i, doc := range docs {
		if doc.documentID == vars["documentID"] {
			s.docs[apiID] = append(docs[:i:i], docs[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "NotFoundError", "Not Found")
}

// matches applies the slug filters the tools use
func (s *Server) matches(doc *document, locale string, q url.Values) bool {
	fields := doc.locales[locale]
	if slug := q.Get("filters[slug][$eq]"); slug != "" && fields["slug"] != slug {
		return false
	}
	if slug := q.Get("filters[demo][slug][$eq]"); slug != "" {
		demoID, _ := fields["demo"].(string)
		demo := s.find("demos", demoID)
		if demo == nil {
			return false
		}
		found := false
		for _, f := range demo.locales {
			if f["slug"] == slug {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (s *Server) find(apiID, documentID string) *document {
	if documentID == "" {
		return nil
	}
	for _, doc := range s.docs[apiID] {
		if doc.documentID == documentID {
			return doc
		}
	}
	return nil
}

func (s *Server) newDocument(apiID, documentID string) *document {
	if documentID == "" {
		documentID = uuid.NewString()
	}
	doc := &document{
		documentID: documentID,
		ids:        make(map[string]int64),
		locales:    make(map[string]map[string]interface{}),
	}
	s.docs[apiID] = append(s.docs[apiID], doc)
	return doc
}

func (s *Server) setLocale(doc *document, locale string, fields map[string]interface{}) {
	if _, ok := doc.locales[locale]; !ok {
		s.nextID++
		doc.ids[locale] = s.nextID
		doc.order = append(doc.order, locale)
	}
	doc.locales[locale] = fields
}

func (s *Server) render(doc *document, locale string) map[string]interface{} {
	out := make(map[string]interface{}, len(doc.locales[locale])+3)
	for k, v := range doc.locales[locale] {
		out[k] = v
	}
	out["id"] = doc.ids[locale]
	out["documentId"] = doc.documentID
	out["locale"] = locale
	return out
}

func decodeData(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Data == nil {
		writeError(w, http.StatusBadRequest, "ValidationError", "Missing \"data\" payload in the request body")
		return nil, false
	}
	return body.Data, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, name, message string) {
	writeJSON(w, status, map[string]interface{}{
		"data": nil,
		"error": map[string]interface{}{
			"status":  status,
			"name":    name,
			"message": message,
		},
	})
}
