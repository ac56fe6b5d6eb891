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

type CartHandler struct {
	cart *service.CartService
}

func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// GetCart handles GET /shopping-cart/{userId}.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}

	lines, err := h.cart.FindAll(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lines)
}

// Add handles POST /shopping-cart/add with body {"username": "...", "partId": N}.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		PartID   int64  `json:"partId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrInvalidArgument))
		return
	}

	line, err := h.cart.Add(r.Context(), req.Username, req.PartID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, line)
}

// UpdateCount handles PATCH /shopping-cart/count/{id} with body {"count": N}.
func (h *CartHandler) UpdateCount(w http.ResponseWriter, r *http.Request) {
	lineID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrInvalidArgument))
		return
	}

	count, err := h.cart.UpdateCount(r.Context(), lineID, req.Count)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// UpdateTotalPrice handles PATCH /shopping-cart/total-price/{id} with body
// {"total_price": X}.
func (h *CartHandler) UpdateTotalPrice(w http.ResponseWriter, r *http.Request) {
	lineID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		TotalPrice float64 `json:"total_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrInvalidArgument))
		return
	}

	totalPrice, err := h.cart.UpdateTotalPrice(r.Context(), lineID, req.TotalPrice)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"total_price": totalPrice})
}

// RemoveOne handles DELETE /shopping-cart/one/{id}.
func (h *CartHandler) RemoveOne(w http.ResponseWriter, r *http.Request) {
	lineID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.cart.Remove(r.Context(), lineID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveAll handles DELETE /shopping-cart/all/{userId}.
func (h *CartHandler) RemoveAll(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.cart.RemoveAll(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed %s", domain.ErrInvalidArgument, name)
	}
	return id, nil
}
