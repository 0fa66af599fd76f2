package client

import (
	"context"
	"net/http"
	"time"
)

type Owner struct {
	IDOwner string `json:"idOwner"`
	Name    string `json:"name"`
}

type CreateOwnerInput struct {
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Photo    string    `json:"photo"`
	Birthday time.Time `json:"birthday"`
}

type UpdateOwnerInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (c *Client) Owners(ctx context.Context) ([]Owner, error) {
	var owners []Owner
	err := c.get(ctx, "owners", &owners)
	return owners, err
}

// CreateOwner returns the new owner id. The API responds with the id as a
// bare JSON string.
func (c *Client) CreateOwner(ctx context.Context, in CreateOwnerInput) (string, error) {
	var id string
	if err := c.send(ctx, http.MethodPost, "owners", in, &id); err != nil {
		return "", err
	}
	c.cache.invalidatePrefix("owners")
	return id, nil
}

func (c *Client) UpdateOwner(ctx context.Context, id string, in UpdateOwnerInput) error {
	if err := c.send(ctx, http.MethodPut, "owners/"+id, in, nil); err != nil {
		return err
	}
	c.cache.invalidatePrefix("owners")
	return nil
}

func (c *Client) DeleteOwner(ctx context.Context, id string) error {
	if err := c.send(ctx, http.MethodDelete, "owners/"+id, nil, nil); err != nil {
		return err
	}
	c.cache.invalidatePrefix("owners")
	return nil
}
