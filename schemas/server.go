package schemas

// HealthCheck describes the health endpoint payload.
type HealthCheck struct {
	Status      string `json:"status" validate:"required"`
	Uptime      string `json:"uptime" validate:"required"`
	Message     string `json:"message" validate:"required"`
	Timestamp   string `json:"timestamp" validate:"required"`
	Version     string `json:"version" validate:"required"`
	Environment string `json:"environment" validate:"required"`
	Unix        int64  `json:"unix" validate:"gte=0"`
}
