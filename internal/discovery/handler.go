package discovery

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/urbanhive/urbanhive-client/internal/app/models/dto"
)

// DefaultPath is the well-known discovery path
const DefaultPath = "/get_server_ip"

// Handler answers discovery requests with the advertised backend ip
type Handler struct {
	advertiseIP string
	logger      zerolog.Logger
}

// NewHandler creates a new Handler
func NewHandler(advertiseIP string, logger zerolog.Logger) *Handler {
	return &Handler{advertiseIP: advertiseIP, logger: logger}
}

// Router mounts the handler on path (DefaultPath when empty)
func (h *Handler) Router(path string) *mux.Router {
	if path == "" {
		path = DefaultPath
	}
	r := mux.NewRouter()
	r.HandleFunc(path, h.GetServerIP).Methods(http.MethodGet)
	return r
}

// GetServerIP writes {"server_ip": "<ip>"}
func (h *Handler) GetServerIP(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug().Str("remote", r.RemoteAddr).Msg("Discovery request")

	w.Header().Set("Content-Type", "application/json")
	if h.advertiseIP == "" {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(dto.NewErrorBody("Server address is not configured"))
		return
	}
	json.NewEncoder(w).Encode(dto.ServerAddressResponse{ServerIP: h.advertiseIP})
}
