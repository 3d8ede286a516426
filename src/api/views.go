package api

import (
	"net/http"

	"stockholdings/src/api/handlers"
	"stockholdings/src/api/middleware"
	"stockholdings/src/config"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
)

const healthcheckPath = "/alive"

type Server struct {
	Router         *chi.Mux
	Handler        *handlers.Handler
	TokenAuth      *jwtauth.JWTAuth
	Logger         *logrus.Logger
	AllowedOrigins []string
}

func NewServer(h *handlers.Handler, tokenAuth *jwtauth.JWTAuth, logger *logrus.Logger, allowedOrigins []string) *Server {
	server := &Server{
		Router:         chi.NewRouter(),
		Handler:        h,
		TokenAuth:      tokenAuth,
		Logger:         logger,
		AllowedOrigins: allowedOrigins,
	}
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.AccessLog(s.Logger, healthcheckPath))
	s.Router.Use(chimiddleware.Recoverer)
	s.Router.Use(middleware.CORS(s.AllowedOrigins))

	s.Router.Get(healthcheckPath, handlers.Healthcheck)

	s.Router.Route("/api/stocks", func(r chi.Router) {
		r.Use(middleware.Verifier(s.TokenAuth))
		r.Use(middleware.Authenticator)

		r.Get("/get", s.Handler.GetStocks)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly)
			r.Post("/create", s.Handler.CreateStock)
			r.Get("/get{id}", s.Handler.GetStockByID)
			r.Put("/put{id}", s.Handler.UpdateStock)
			r.Delete("/delete/{id}", s.Handler.DeleteStock)
		})
	})
}

func NewHTTPServer(server *Server, cfg config.ServiceConfig) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		Handler:      server,
	}
	return httpServer
}
