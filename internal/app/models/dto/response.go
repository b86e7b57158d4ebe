package dto

// MessageResponse is the generic confirmation body
type MessageResponse struct {
	Message string `json:"message,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// ServerAddressResponse is the body of the discovery endpoint
type ServerAddressResponse struct {
	ServerIP string `json:"server_ip"`
}
