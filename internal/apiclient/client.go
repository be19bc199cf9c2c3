// Package apiclient consume la API HTTP de pet-records (usado por petsctl --server).
package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pet-records/internal/platform/httpclient"
)

type Pet struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	AnimalType  string    `json:"animalType"`
	OwnerName   string    `json:"ownerName"`
	DateOfBirth string    `json:"dateOfBirth"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PetWithCounts struct {
	Pet
	VaccineCount int `json:"vaccineCount"`
	AllergyCount int `json:"allergyCount"`
}

type Stats struct {
	TotalPets      int `json:"totalPets"`
	TotalVaccines  int `json:"totalVaccines"`
	TotalAllergies int `json:"totalAllergies"`
}

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// ListPets lista mascotas; owner vacío = todas.
func (c *Client) ListPets(ctx context.Context, owner string) ([]Pet, error) {
	out := []Pet{}
	if err := c.http.Do(ctx, http.MethodGet, "/pets", ownerQuery(owner), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPet(ctx context.Context, id int64) (Pet, error) {
	var out Pet
	err := c.http.Do(ctx, http.MethodGet, "/pets/"+strconv.FormatInt(id, 10), nil, nil, &out)
	return out, err
}

func (c *Client) ListWithCounts(ctx context.Context, owner string) ([]PetWithCounts, error) {
	out := []PetWithCounts{}
	if err := c.http.Do(ctx, http.MethodGet, "/admin/pets", ownerQuery(owner), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var out Stats
	err := c.http.Do(ctx, http.MethodGet, "/admin/stats", nil, nil, &out)
	return out, err
}

func ownerQuery(owner string) url.Values {
	if owner == "" {
		return nil
	}
	return url.Values{"ownerName": {owner}}
}
