package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/adubrov/boiler-parts/internal/core/service"
	"github.com/adubrov/boiler-parts/internal/port"
)

// NewRouter assembles the full HTTP surface. All catalog, cart and payment
// routes sit behind the session guard; only signup, login and the health
// check are open.
func NewRouter(
	catalog *service.CatalogService,
	cart *service.CartService,
	users *service.UserService,
	payments *service.PaymentService,
	sessions port.SessionStore,
) http.Handler {
	guard := NewAuthGuard(sessions)

	catalogHandler := NewCatalogHandler(catalog)
	cartHandler := NewCartHandler(cart)
	authHandler := NewAuthHandler(users, sessions)
	paymentHandler := NewPaymentHandler(payments)

	r := mux.NewRouter()

	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	r.HandleFunc("/users/signup", authHandler.SignUp).Methods(http.MethodPost)
	r.HandleFunc("/users/login", authHandler.Login).Methods(http.MethodPost)
	r.Handle("/users/login-check", guard.Middleware(http.HandlerFunc(authHandler.LoginCheck))).Methods(http.MethodGet)
	r.Handle("/users/logout", guard.Middleware(http.HandlerFunc(authHandler.Logout))).Methods(http.MethodPost)

	parts := r.PathPrefix("/boiler-parts").Subrouter()
	parts.Use(guard.Middleware)
	parts.HandleFunc("", catalogHandler.List).Methods(http.MethodGet)
	parts.HandleFunc("/bestsellers", catalogHandler.Bestsellers).Methods(http.MethodGet)
	parts.HandleFunc("/new", catalogHandler.New).Methods(http.MethodGet)
	parts.HandleFunc("/find/{id}", catalogHandler.FindOne).Methods(http.MethodGet)
	parts.HandleFunc("/search", catalogHandler.Search).Methods(http.MethodPost)
	parts.HandleFunc("/name", catalogHandler.ByName).Methods(http.MethodPost)

	carts := r.PathPrefix("/shopping-cart").Subrouter()
	carts.Use(guard.Middleware)
	carts.HandleFunc("/add", cartHandler.Add).Methods(http.MethodPost)
	carts.HandleFunc("/count/{id}", cartHandler.UpdateCount).Methods(http.MethodPatch)
	carts.HandleFunc("/total-price/{id}", cartHandler.UpdateTotalPrice).Methods(http.MethodPatch)
	carts.HandleFunc("/one/{id}", cartHandler.RemoveOne).Methods(http.MethodDelete)
	carts.HandleFunc("/all/{userId}", cartHandler.RemoveAll).Methods(http.MethodDelete)
	carts.HandleFunc("/{userId}", cartHandler.GetCart).Methods(http.MethodGet)

	pay := r.PathPrefix("/payment").Subrouter()
	pay.Use(guard.Middleware)
	pay.HandleFunc("", paymentHandler.Make).Methods(http.MethodPost)
	pay.HandleFunc("/info", paymentHandler.Info).Methods(http.MethodPost)

	return loggingMiddleware(r)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
