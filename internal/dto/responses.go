package dto

import "github.com/BruksfildServices01/barbershop-site/internal/models"

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type UploadResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
}

type SettingsUpdateResponse struct {
	Message  string            `json:"message"`
	Settings map[string]string `json:"settings"`
}

type AuditLogPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}
