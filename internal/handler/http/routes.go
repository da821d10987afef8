// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(middleware.Compress(compressionLevel))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		if h.cfg.AuthRateLimit > 0 {
			r.Use(httprate.LimitByIP(h.cfg.AuthRateLimit, time.Minute))
		}
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
	})

	router.Get("/api/top-restaurants", h.topRestaurants)
	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/health", h.health)
	router.Handle("/metrics", promhttp.Handler())

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		if h.services.TokenService != nil && h.services.TokenService.RevocationEnabled() {
			r.Post("/api/logout", h.logout)
		}
		r.Get("/api/profile", h.getProfile)
		r.Get("/api/profile/favorites", h.getFavorites)
		r.Post("/api/profile/favorite/dish/{dishId}", h.addFavoriteDish)
		r.Post("/api/profile/favorite/restaurant/{restaurantId}", h.addFavoriteRestaurant)
		r.Post("/api/profile/upload/phone", h.uploadPhone)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
