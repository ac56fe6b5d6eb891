package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/core/service"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /boiler-parts?limit=&offset=&<filters>.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.PaginateAndFilter(r.Context(), r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// FindOne handles GET /boiler-parts/find/{id}.
func (h *CatalogHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: malformed part id", domain.ErrInvalidArgument))
		return
	}

	part, err := h.catalog.FindOne(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}

// Bestsellers handles GET /boiler-parts/bestsellers.
func (h *CatalogHandler) Bestsellers(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.Bestsellers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// New handles GET /boiler-parts/new.
func (h *CatalogHandler) New(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.New(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Search handles POST /boiler-parts/search with body {"search": "..."}.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Search string `json:"search"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrInvalidArgument))
		return
	}

	page, err := h.catalog.SearchByString(r.Context(), req.Search)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// ByName handles POST /boiler-parts/name with body {"name": "..."}.
func (h *CatalogHandler) ByName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrInvalidArgument))
		return
	}

	part, err := h.catalog.FindOneByName(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}
