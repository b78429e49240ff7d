package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"das-foods/internal/domain"
	"das-foods/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type Services struct {
	Sessions     service.SessionServiceInterface
	Catalog      service.CatalogServiceInterface
	Carts        service.CartServiceInterface
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface
	Feedback     service.FeedbackServiceInterface
	Suggestions  service.SuggestionServiceInterface
	Analytics    service.AnalyticsInterface
}

type Handler struct {
	Services
}

func NewHandler(services Services) *Handler {
	return &Handler{Services: services}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/session", h.currentSession).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu", requireRole(h.createMenuItem, domain.RoleAdmin)).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu/{id}", requireRole(h.updateMenuItem, domain.RoleAdmin)).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", requireRole(h.deleteMenuItem, domain.RoleAdmin)).Methods("DELETE")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders", requireRole(h.getOrders, domain.RoleAdmin, domain.RoleChef)).Methods("GET")
	r.HandleFunc("/api/orders/active", requireRole(h.getActiveOrders, domain.RoleAdmin, domain.RoleChef)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", requireRole(h.updateOrderStatus, domain.RoleAdmin, domain.RoleChef)).Methods("PATCH")

	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations", requireRole(h.getReservations, domain.RoleAdmin)).Methods("GET")
	r.HandleFunc("/api/reservations/{id}/status", requireRole(h.updateReservationStatus, domain.RoleAdmin)).Methods("PATCH")

	r.HandleFunc("/api/feedback", h.createFeedback).Methods("POST")
	r.HandleFunc("/api/feedback", h.getFeedback).Methods("GET")

	r.HandleFunc("/api/suggestions", h.suggestMeal).Methods("POST")

	r.HandleFunc("/api/analytics/popular", requireRole(h.getPopular, domain.RoleAdmin)).Methods("GET")

	r.PathPrefix("/api/").HandlerFunc(h.apiNotFound)

	h.registerViews(r)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "das-foods",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) apiNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "API route not found")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	account, token, err := h.Sessions.Login(SessionFrom(r.Context()), credentials.Username, credentials.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	setSessionCookie(w, token)
	log.Info().Str("username", account.Username).Str("role", string(account.Role)).Msg("signed in")
	writeJSON(w, http.StatusOK, account)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(SessionFrom(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	cart := h.Carts.Get(SessionFrom(r.Context()))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"account":    AccountFrom(r.Context()),
		"cart_count": cart.Count,
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	if grouped, _ := strconv.ParseBool(r.URL.Query().Get("grouped")); grouped {
		writeJSON(w, http.StatusOK, h.Catalog.Grouped())
		return
	}
	writeJSON(w, http.StatusOK, h.Catalog.List())
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	item, err := h.Catalog.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.Catalog.Create(&item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	item.ID = id
	if err := h.Catalog.Update(&item); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rows, err := h.Catalog.Delete(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rows == 0 {
		writeError(w, http.StatusNotFound, service.ErrMenuItemNotFound.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Carts.Get(SessionFrom(r.Context())))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		MenuItemID int `json:"menu_item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	cart, err := h.Carts.Add(SessionFrom(r.Context()), payload.MenuItemID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.Carts.Remove(SessionFrom(r.Context()), id))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Carts.Clear(SessionFrom(r.Context())))
}

type orderResponse struct {
	*domain.Order
	TrackingURL string `json:"tracking_url"`
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CustomerName string           `json:"customer_name"`
		OrderType    domain.OrderType `json:"order_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	order, err := h.Orders.Place(r.Context(), SessionFrom(r.Context()), payload.CustomerName, payload.OrderType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, orderResponse{Order: order, TrackingURL: h.Orders.TrackingURL(order.ID)})
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.Orders.List()))
}

func (h *Handler) getActiveOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.Orders.Active()))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Find(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orderResponse{Order: order, TrackingURL: h.Orders.TrackingURL(order.ID)})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.QRCode(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	order, err := h.Orders.Advance(r.Context(), mux.Vars(r)["id"], payload.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req service.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	reservation, err := h.Reservations.Request(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.Reservations.List()))
}

func (h *Handler) updateReservationStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status domain.ReservationStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	reservation, err := h.Reservations.SetStatus(mux.Vars(r)["id"], payload.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *Handler) createFeedback(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name    string `json:"name"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	feedback, err := h.Feedback.Submit(payload.Name, payload.Rating, payload.Comment)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, feedback)
}

func (h *Handler) getFeedback(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", 3)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, nonNil(h.Feedback.Recent(limit)))
}

func (h *Handler) suggestMeal(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Preference string `json:"preference"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	suggestion, err := h.Suggestions.Suggest(r.Context(), SessionFrom(r.Context()), payload.Preference)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}

func (h *Handler) getPopular(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = service.PeriodAll
	}
	if period != service.PeriodAll && period != service.PeriodToday {
		writeError(w, http.StatusBadRequest, "period must be 'today' or 'all'")
		return
	}
	limit, ok := queryInt(w, r, "limit", 10)
	if !ok {
		return
	}

	items, err := h.Analytics.Popular(r.Context(), period, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func queryInt(w http.ResponseWriter, r *http.Request, key string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		writeError(w, http.StatusBadRequest, "invalid "+key)
		return 0, false
	}
	return value, true
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrReservationNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrSuggestionInProgress):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrSuggestionFailed), errors.Is(err, service.ErrSuggestionInvalid):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, service.ErrSuggestionNotConfigured), errors.Is(err, service.ErrAnalyticsUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.Error().Err(err).Msg("unhandled service error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
