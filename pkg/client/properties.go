package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Property struct {
	IDProperty string          `json:"idProperty"`
	IDOwner    string          `json:"idOwner"`
	OwnerName  string          `json:"ownerName"`
	OwnerPhoto string          `json:"ownerPhoto"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	Price      decimal.Decimal `json:"price"`
	Year       int             `json:"year"`
	Image      string          `json:"image"`
}

type PagedProperties struct {
	PageNumber   int        `json:"pageNumber"`
	PageSize     int        `json:"pageSize"`
	TotalPages   int        `json:"totalPages"`
	TotalRecords int        `json:"totalRecords"`
	Data         []Property `json:"data"`
}

type PropertyFilter struct {
	Name       string
	Address    string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	PageNumber int
	PageSize   int
}

type CreatePropertyInput struct {
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Price   decimal.Decimal `json:"price"`
	Year    int             `json:"year"`
	IDOwner string          `json:"idOwner"`
}

type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type AddImageInput struct {
	ImageURL string `json:"imageUrl"`
	PublicID string `json:"publicId"`
}

type Trace struct {
	IDPropertyTrace string          `json:"idPropertyTrace"`
	IDProperty      string          `json:"idProperty"`
	DateSale        time.Time       `json:"dateSale"`
	Name            string          `json:"name"`
	Value           decimal.Decimal `json:"value"`
	Tax             decimal.Decimal `json:"tax"`
}

func (f PropertyFilter) encode() string {
	params := url.Values{}
	if f.Name != "" {
		params.Set("name", f.Name)
	}
	if f.Address != "" {
		params.Set("address", f.Address)
	}
	if f.MinPrice != nil {
		params.Set("minPrice", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		params.Set("maxPrice", f.MaxPrice.String())
	}
	if f.PageNumber > 0 {
		params.Set("pageNumber", strconv.Itoa(f.PageNumber))
	}
	if f.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(f.PageSize))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

func (c *Client) SearchProperties(ctx context.Context, filter PropertyFilter) (PagedProperties, error) {
	var page PagedProperties
	err := c.get(ctx, "properties"+filter.encode(), &page)
	return page, err
}

func (c *Client) Property(ctx context.Context, id string) (Property, error) {
	var property Property
	err := c.get(ctx, "properties/"+id, &property)
	return property, err
}

// CreateProperty returns the stored property; owner and image fields are
// empty on a freshly created one.
func (c *Client) CreateProperty(ctx context.Context, in CreatePropertyInput) (Property, error) {
	var created Property
	if err := c.send(ctx, http.MethodPost, "properties", in, &created); err != nil {
		return Property{}, err
	}
	c.cache.invalidatePrefix("properties")
	return created, nil
}

func (c *Client) UpdatePropertyPrice(ctx context.Context, id string, price decimal.Decimal) error {
	in := struct {
		Price decimal.Decimal `json:"price"`
	}{Price: price}
	if err := c.send(ctx, http.MethodPut, "properties/"+id, in, nil); err != nil {
		return err
	}
	c.cache.invalidatePrefix("properties")
	return nil
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	if err := c.send(ctx, http.MethodDelete, "properties/"+id, nil, nil); err != nil {
		return err
	}
	c.cache.invalidatePrefix("properties")
	return nil
}

func (c *Client) PropertyImages(ctx context.Context, id string) ([]Image, error) {
	var images []Image
	err := c.get(ctx, "properties/"+id+"/images", &images)
	return images, err
}

// AddPropertyImage registers an already-uploaded image URL and returns the
// new image id.
func (c *Client) AddPropertyImage(ctx context.Context, id string, in AddImageInput) (string, error) {
	var resp struct {
		ImageID string `json:"imageId"`
	}
	if err := c.send(ctx, http.MethodPost, "properties/"+id+"/images", in, &resp); err != nil {
		return "", err
	}
	c.cache.invalidatePrefix("properties")
	return resp.ImageID, nil
}

func (c *Client) DeletePropertyImage(ctx context.Context, id, imageID string) error {
	if err := c.send(ctx, http.MethodDelete, "properties/"+id+"/images/"+imageID, nil, nil); err != nil {
		return err
	}
	c.cache.invalidatePrefix("properties")
	return nil
}

func (c *Client) PropertyTraces(ctx context.Context, id string) ([]Trace, error) {
	var traces []Trace
	err := c.get(ctx, "properties/"+id+"/traces", &traces)
	return traces, err
}
