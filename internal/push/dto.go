package push

import (
	"time"

	"github.com/dormlife/community-api/internal/model"
)

type CheckRequest struct {
	PushIDs []uint32 `json:"pushIds" binding:"required,min=1,max=100,dive,gt=0"`
}

type NotificationResponse struct {
	ID        uint32    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsChecked bool      `json:"isChecked"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Unchecked     int                    `json:"unchecked"`
}

func newListResponse(notifications []model.PushNotification) *ListResponse {
	response := &ListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}

	for _, n := range notifications {
		if !n.IsChecked {
			response.Unchecked++
		}
		response.Notifications = append(response.Notifications, NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Body:      n.Body,
			IsChecked: n.IsChecked,
			CreatedAt: n.CreatedAt,
		})
	}
	return response
}
