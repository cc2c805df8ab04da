package model

// VersionInfo contains version information for the application.
type VersionInfo struct {
	AppVersion string `json:"app_version"`
	GoVersion  string `json:"go_version"`
}

// HealthStatus reports liveness and the size of the in-memory caches.
type HealthStatus struct {
	Status string         `json:"status"`
	Caches map[string]int `json:"caches"`
}
