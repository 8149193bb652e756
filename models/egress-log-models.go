package veritrans_integration_models

import "time"

// GatewayLog is a single HTTP exchange with the gateway, persisted by the egress logger.
type GatewayLog struct {
	RequestID    string    `validate:"required,uuid4"`            // X-Request-Id sent with the request
	HTTPMethod   string    `validate:"required,oneof=GET POST"`   // Method used
	RelativePath string    `validate:"required"`                  // Path relative to the gateway base url, e.g. charge
	ResponseCode int       `validate:"omitempty,gte=100,lte=599"` // HTTP status, 0 when no response was received
	ResponseBody string    `validate:"omitempty"`                 // Minified response body
	ErrorMessage string    `validate:"omitempty"`                 // Transport error, if any
	BeginAt      time.Time `validate:"required"`                  // Time the request was sent
	EndAt        time.Time `validate:"required,gtefield=BeginAt"` // Time the response was read
	Latency      string    `validate:"omitempty"`                 // Filled by the logger
}

type GatewayLogPublic struct {
	ID           uint   `json:"id"`
	RequestID    string `json:"request_id"`
	HTTPMethod   string `json:"http_method"`
	RelativePath string `json:"relative_path"`
	ResponseCode int    `json:"response_code"`
	ResponseBody string `json:"response_body"`
	ErrorMessage string `json:"error_message"`
	Latency      string `json:"latency"`
	CreatedAt    string `json:"created_at"`
}

type GatewayLogSearchFilter struct {
	PaginationFilter
	RequestID      string `query:"request_id" validate:"omitempty,uuid4"`
	HTTPMethod     string `query:"http_method" validate:"omitempty,oneof=GET POST"`
	RelativePath   string `query:"relative_path" validate:"omitempty"`
	ResponseCode   int    `query:"response_code" validate:"omitempty,gte=100,lte=599"`
	StartDateRange string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDateRange   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type PaginationFilter struct {
	Limit      uint `query:"page_size" validate:"required,number,min=1"`
	PageNumber uint `query:"page_number" validate:"required,number,min=1"`
}

type PaginationMetadata struct {
	TotalRecords uint `json:"total_records"`
	TotalPages   uint `json:"total_pages"`
	CurrentLimit uint `json:"page_size"`
	CurrentPage  uint `json:"current_page"`
}
