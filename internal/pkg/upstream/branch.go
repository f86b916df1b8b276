package upstream

import (
	"context"
	"net/http"
)

// Branch is a store branch as the HR API returns it.
type Branch struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// ListBranches fetches the full branch list.
func (c *Client) ListBranches(ctx context.Context) ([]Branch, error) {
	var branches []Branch
	if err := c.do(ctx, http.MethodGet, "/api/branch/", nil, nil, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}
