package handler

import (
	"time"

	"github.com/comunidad/social-api/internal/core/domain"
)

type createPostRequest struct {
	Caption string `json:"caption" form:"caption"`
}

type postResponse struct {
	ID        string    `json:"id"`
	Caption   string    `json:"caption"`
	Media     string    `json:"media,omitempty"`
	CreatedBy any       `json:"createdBy,omitempty" swaggertype:"object"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPostResponse(p *domain.Post, expand bool) postResponse {
	return postResponse{
		ID:        p.ID,
		Caption:   p.Caption,
		Media:     p.Media,
		CreatedBy: createdBy(p.CreatedBy, p.Creator, expand),
		CreatedAt: p.CreatedAt,
	}
}
