package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/fkhayef/shopped/docs"
	"github.com/fkhayef/shopped/internal/health"
	"github.com/fkhayef/shopped/internal/user"
	mw "github.com/fkhayef/shopped/pkg/middleware"
)

func newRouter(userHandler *user.Handler, healthHandler *health.Handler, log *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler.Check)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Mount("/users", userHandler.Routes())

	return r
}
