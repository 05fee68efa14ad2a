package models

type DashboardStats struct {
	UsersTotal        int `json:"users_total"`
	TournamentsTotal  int `json:"tournaments_total"`
	ActiveTournaments int `json:"active_tournaments"`
	CompetitorsTotal  int `json:"competitors_total"`
	MatchesTotal      int `json:"matches_total"`
}
