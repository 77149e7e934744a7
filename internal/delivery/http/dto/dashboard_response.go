package dto

import "careeriq/internal/domain/career"

type DashboardResponse struct {
	User          career.User           `json:"user"`
	Skills        []career.Skill        `json:"skills"`
	Notifications []career.Notification `json:"notifications"`
	Feed          []career.FeedItem     `json:"feed"`
	UnreadCount   int                   `json:"unreadCount"`
}
