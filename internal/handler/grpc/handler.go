// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the gRPC health and reflection services of the auth
// server.
package grpc

import (
	"github.com/MKhiriev/survey-auth/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health check name of the auth service.
const ServiceName = "survey.auth.v1.Auth"

// Handler is the root gRPC transport handler.
//
// It owns the health server so that the status can be flipped to
// NOT_SERVING before the transport drains. A handler instance is created
// once at startup and shared by the gRPC server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health status is NOT_SERVING until
// [Handler.Register] is called.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches health and reflection to srv and marks the service as
// SERVING.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
	reflection.Register(srv)

	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown marks every service NOT_SERVING. Later status changes are
// ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
