package ports

import "context"

// MediaStorage persists uploaded media and returns the public reference
// (path or URL) clients use to fetch it.
type MediaStorage interface {
	Store(ctx context.Context, m MediaInput) (string, error)
}
