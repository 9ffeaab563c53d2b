package backend

import "context"

// Utility abstracts the REST calls made to a running sample store
type Utility interface {
	ResponseBody(ctx context.Context, method, endpoint string, body []byte) ([]byte, error)
}
