package httpapi

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/dmitrijs2005/farmconnect/internal/server/models"
	"github.com/dmitrijs2005/farmconnect/internal/server/validation"
)

// Confirmation and error texts are part of the client contract; the
// cart widget matches on some of them.
const (
	msgProfileSubmitted = "Profile submitted successfully!"
	msgProductAdded     = "Product added successfully!"
	msgAddedToCart      = "Product added to cart!"
	msgRemovedFromCart  = "Product removed from cart!"
	msgCartSaved        = "Cart saved!"
	msgInternalError    = "Internal server error"
	msgSomethingWrong   = "Something went wrong!"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
	// Details carries the store error text and is only populated in
	// development mode.
	Details string `json:"details,omitempty"`
}

type violationsResponse struct {
	Errors []validation.Violation `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleSubmitProfile stores a profile submission. The input is not
// validated and the raw store error text is returned on failure; the
// profile form depends on both.
func (s *HTTPServer) handleSubmitProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.log(r).Error(r.Context(), "bad profile payload", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgSomethingWrong})
		return
	}

	if err := s.profiles.SubmitProfile(r.Context(), &profile); err != nil {
		s.log(r).Error(r.Context(), "error submitting profile", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msgProfileSubmitted})
}

// handleAddProduct validates a product submission and stores it. Validation
// failures come back as a 400 with one entry per failed field; store
// failures are redacted unless the server runs in development mode.
func (s *HTTPServer) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		s.log(r).Error(r.Context(), "bad product payload", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgSomethingWrong})
		return
	}

	id, violations, err := s.catalog.AddListing(r.Context(), fields)
	if err != nil {
		s.log(r).Error(r.Context(), "error adding product", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, s.internalError(err))
		return
	}
	if len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, violationsResponse{Errors: violations})
		return
	}

	s.log(r).Info(r.Context(), "product added", "product_id", id)
	writeJSON(w, http.StatusCreated, struct {
		Message   string `json:"message"`
		ProductID int64  `json:"productId"`
	}{Message: msgProductAdded, ProductID: id})
}

func (s *HTTPServer) handleListProducts(w http.ResponseWriter, r *http.Request) {
	result, err := s.catalog.ListProducts(r.Context())
	if err != nil {
		s.log(r).Error(r.Context(), "error fetching products", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, s.internalError(err))
		return
	}
	if result == nil {
		result = []models.Product{}
	}
	writeJSON(w, http.StatusOK, result)
}

// handleAddToCart inserts one cart line, unvalidated.
func (s *HTTPServer) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var line models.CartLine
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		s.log(r).Error(r.Context(), "bad cart payload", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgSomethingWrong})
		return
	}

	if err := s.cart.AddLine(r.Context(), line.ProductName, line.Price); err != nil {
		s.log(r).Error(r.Context(), "error adding to cart", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msgAddedToCart})
}

func (s *HTTPServer) handleListCart(w http.ResponseWriter, r *http.Request) {
	result, err := s.cart.List(r.Context())
	if err != nil {
		s.log(r).Error(r.Context(), "error fetching cart", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if result == nil {
		result = []models.CartLine{}
	}
	writeJSON(w, http.StatusOK, result)
}

// handleRemoveFromCart deletes every line matching the path segment
// exactly. A name that matches nothing still reports success: the store
// cannot tell "nothing matched" from "matched and removed".
func (s *HTTPServer) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productName := r.PathValue("productname")

	if err := s.cart.RemoveByName(r.Context(), productName); err != nil {
		s.log(r).Error(r.Context(), "error removing from cart", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msgRemovedFromCart})
}

// handleCheckout stores the widget's whole in-memory list in one
// transaction, so a mid-batch failure leaves the cart unchanged.
func (s *HTTPServer) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Items []models.CartLine `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.log(r).Error(r.Context(), "bad checkout payload", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgSomethingWrong})
		return
	}

	n, err := s.cart.Checkout(r.Context(), payload.Items)
	if err != nil {
		s.log(r).Error(r.Context(), "error saving cart", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, s.internalError(err))
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		Count   int    `json:"count"`
	}{Message: msgCartSaved, Count: n})
}

func (s *HTTPServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.staticDir, "MainPage.html"))
}

// internalError builds the redacted 500 body; the store error text is
// exposed only in development mode.
func (s *HTTPServer) internalError(err error) errorResponse {
	resp := errorResponse{Error: msgInternalError}
	if s.development {
		resp.Details = err.Error()
	}
	return resp
}
