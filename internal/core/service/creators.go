package service

import (
	"context"
	"fmt"

	"github.com/comunidad/social-api/internal/core/domain"
	"github.com/comunidad/social-api/internal/core/ports"
)

// resolveCreators loads the owners of a listing in one query. Owners that no
// longer exist are simply missing from the result.
func resolveCreators(ctx context.Context, users ports.UserRepository, ownerIDs []string) (map[string]*domain.Creator, error) {
	seen := make(map[string]struct{}, len(ownerIDs))
	ids := make([]string, 0, len(ownerIDs))
	for _, id := range ownerIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	out := make(map[string]*domain.Creator, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	found, err := users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve creators: %w", err)
	}
	for _, u := range found {
		out[u.ID] = &domain.Creator{ID: u.ID, Username: u.Username}
	}
	return out, nil
}
