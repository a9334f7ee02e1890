package dashboard

import "time"

// Stats is the front-desk overview.
type Stats struct {
	ByStatus       map[string]int64 `json:"by_status"`
	OpenBacklog    int64            `json:"open_backlog"`
	Clients        int64            `json:"clients"`
	Vehicles       int64            `json:"vehicles"`
	ScheduledToday int64            `json:"scheduled_today"`
	MonthRevenue   float64          `json:"month_revenue"`
	GeneratedAt    time.Time        `json:"generated_at"`
}
