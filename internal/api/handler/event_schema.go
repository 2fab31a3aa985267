package handler

import (
	"time"

	"github.com/comunidad/social-api/internal/core/domain"
)

type createEventRequest struct {
	Title       string `json:"title"       form:"title"       validate:"required"`
	Description string `json:"description" form:"description"`
	Date        string `json:"date"        form:"date"        validate:"required"`
	Time        string `json:"time"        form:"time"        validate:"required"`
	Place       string `json:"place"       form:"place"       validate:"required"`
}

// eventResponse is an event as served to clients. CreatedBy holds the owner
// id right after creation and a creatorResponse when listed.
type eventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Place       string    `json:"place"`
	CreatedBy   any       `json:"createdBy,omitempty" swaggertype:"object"`
	CreatedAt   time.Time `json:"createdAt"`
}

type creatorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func toEventResponse(ev *domain.Event, expand bool) eventResponse {
	return eventResponse{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		Date:        ev.Date,
		Time:        ev.Time,
		Place:       ev.Place,
		CreatedBy:   createdBy(ev.CreatedBy, ev.Creator, expand),
		CreatedAt:   ev.CreatedAt,
	}
}

// createdBy returns the owner id, the expanded creator, or nil so that the
// field is omitted.
func createdBy(ownerID string, creator *domain.Creator, expand bool) any {
	if expand {
		if creator == nil {
			return nil
		}
		return creatorResponse{ID: creator.ID, Username: creator.Username}
	}
	if ownerID == "" {
		return nil
	}
	return ownerID
}
