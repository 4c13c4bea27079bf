package dto

// Response DTOs

type PlatformStatsResponse struct {
	TotalUsers         int64            `json:"total_users"`
	AvailableDonors    int64            `json:"available_donors"`
	HospitalsByStatus  map[string]int64 `json:"hospitals_by_status"`
	RequestsByStatus   map[string]int64 `json:"requests_by_status"`
	TotalDonations     int64            `json:"total_donations"`
	UserGrowthRate30d  float64          `json:"user_growth_rate_30d"`
	NewUsersLast30Days int64            `json:"new_users_last_30_days"`
}

type HospitalStatsResponse struct {
	HospitalID        string           `json:"hospital_id"`
	HospitalName      string           `json:"hospital_name"`
	RequestsByStatus  map[string]int64 `json:"requests_by_status"`
	RequestsByUrgency map[string]int64 `json:"requests_by_urgency"`
	ActiveRequests    int64            `json:"active_requests"`
	TotalDonations    int64            `json:"total_donations"`
}
