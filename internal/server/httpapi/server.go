// Package httpapi exposes the marketplace over HTTP: the JSON route table
// for profiles, products, and the cart, plus the static landing page.
// Handlers translate service results into status codes; middleware adds
// request IDs and converts panics into generic 500 responses.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/farmconnect/internal/logging"
	"github.com/dmitrijs2005/farmconnect/internal/server/config"
	"github.com/dmitrijs2005/farmconnect/internal/server/services"
)

type HTTPServer struct {
	address     string
	staticDir   string
	development bool
	logger      logging.Logger
	catalog     *services.CatalogService
	profiles    *services.ProfileService
	cart        *services.CartService
}

func NewHTTPServer(c *config.Config, l logging.Logger,
	catalog *services.CatalogService, profiles *services.ProfileService, cart *services.CartService) (*HTTPServer, error) {
	return &HTTPServer{
		address:     c.EndpointAddr,
		staticDir:   c.StaticDir,
		development: c.IsDevelopment(),
		logger:      l.With("module", "http_server"),
		catalog:     catalog,
		profiles:    profiles,
		cart:        cart,
	}, nil
}

// Routes builds the route table. Method patterns keep the mapping
// declarative; more specific patterns win over the static catch-all.
func (s *HTTPServer) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /submit-profile", s.handleSubmitProfile)
	mux.HandleFunc("POST /products", s.handleAddProduct)
	mux.HandleFunc("GET /products", s.handleListProducts)
	mux.HandleFunc("POST /add-to-cart", s.handleAddToCart)
	mux.HandleFunc("GET /cart", s.handleListCart)
	mux.HandleFunc("DELETE /cart/{productname}", s.handleRemoveFromCart)
	mux.HandleFunc("POST /cart/checkout", s.handleCheckout)

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.Handle("GET /", http.FileServer(http.Dir(s.staticDir)))

	return s.withRequestID(s.withRecovery(mux))
}

// Run serves until ctx is cancelled, then stops accepting connections and
// drains in-flight requests before returning.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
