package dto

// AdminStatsResponse is the admin dashboard counter set.
type AdminStatsResponse struct {
	TotalClients      int64 `json:"total_clients"`
	TotalDevelopers   int64 `json:"total_developers"`
	PendingProjects   int64 `json:"pending_projects"`
	CompletedProjects int64 `json:"completed_projects"`
}
