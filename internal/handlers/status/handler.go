package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
)

// storePinger is the interface for checking store connectivity.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthBody is the response body for the health check.
type HealthBody struct {
	Status string `json:"status" doc:"\"ok\" when the store is reachable"`
}

// HealthOutput is the response for the health check.
type HealthOutput struct {
	Body HealthBody
}

// Handler handles GET /health.
type Handler struct {
	Store storePinger
}

// NewHandler creates a new health Handler.
func NewHandler(store storePinger) *Handler {
	return &Handler{Store: store}
}

// Register registers the health endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Issues a trivial query to verify the store is reachable.",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	if err := h.Store.Ping(ctx); err != nil {
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "DB connection failed")
	}

	return &HealthOutput{Body: HealthBody{Status: "ok"}}, nil
}
