package httpapi

import (
	"net/http"

	"das-foods/internal/domain"

	"github.com/gorilla/mux"
)

// Page routes return the data each screen of the front end renders.
func (h *Handler) registerViews(r *mux.Router) {
	r.HandleFunc("/", h.homeView).Methods("GET")
	r.HandleFunc("/menu", h.menuView).Methods("GET")
	r.HandleFunc("/book", h.bookView).Methods("GET")
	r.HandleFunc("/order-status", h.orderStatusView).Methods("GET")
	r.HandleFunc("/login", h.loginView).Methods("GET")
	r.HandleFunc("/admin", requireView(h.adminView, domain.RoleAdmin)).Methods("GET")
	r.HandleFunc("/kitchen", requireView(h.kitchenView, domain.RoleChef)).Methods("GET")

	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})
}

func (h *Handler) page(r *http.Request, name string) map[string]interface{} {
	return map[string]interface{}{
		"page":       name,
		"account":    AccountFrom(r.Context()),
		"cart_count": h.Carts.Get(SessionFrom(r.Context())).Count,
	}
}

func (h *Handler) homeView(w http.ResponseWriter, r *http.Request) {
	view := h.page(r, "home")
	view["feedback"] = nonNil(h.Feedback.Recent(3))
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) menuView(w http.ResponseWriter, r *http.Request) {
	view := h.page(r, "menu")
	view["categories"] = h.Catalog.Grouped()
	view["cart"] = h.Carts.Get(SessionFrom(r.Context()))
	view["suggestions_enabled"] = h.Suggestions.Enabled()
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) bookView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.page(r, "book"))
}

func (h *Handler) orderStatusView(w http.ResponseWriter, r *http.Request) {
	view := h.page(r, "order-status")
	id := r.URL.Query().Get("id")
	view["order_id"] = id
	view["found"] = false
	view["progress"] = domain.OrderProgress
	if id != "" {
		if order, err := h.Orders.Find(id); err == nil {
			view["order"] = order
			view["found"] = true
		}
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) loginView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.page(r, "login"))
}

func (h *Handler) adminView(w http.ResponseWriter, r *http.Request) {
	view := h.page(r, "admin")
	view["orders"] = nonNil(h.Orders.List())
	view["reservations"] = nonNil(h.Reservations.List())
	view["menu"] = h.Catalog.List()
	view["categories"] = h.Catalog.Categories()
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) kitchenView(w http.ResponseWriter, r *http.Request) {
	view := h.page(r, "kitchen")
	view["orders"] = nonNil(h.Orders.Active())
	writeJSON(w, http.StatusOK, view)
}
