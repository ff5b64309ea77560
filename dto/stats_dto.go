package dto

// AdminStatsResponse keeps the revinue field name the dashboard already
// consumes.
type AdminStatsResponse struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revinue   float64 `json:"revinue"`
}
