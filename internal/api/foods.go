// internal/api/foods.go
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"lazzat-client/internal/domain/food"
)

// FoodsService wraps the catalog endpoints, including the admin surface.
type FoodsService struct {
	client *Client
}

func NewFoodsService(client *Client) *FoodsService {
	return &FoodsService{client: client}
}

// ListParams filters the public catalog listing.
type ListParams struct {
	Category food.Category
	Search   string
}

func (p ListParams) query() string {
	q := url.Values{}
	if p.Category != "" {
		q.Set("category", string(p.Category))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (s *FoodsService) List(ctx context.Context, params ListParams) ([]food.Food, error) {
	var foods []food.Food
	if err := s.client.doJSON(ctx, http.MethodGet, "/foods/foods/"+params.query(), nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *FoodsService) AdminList(ctx context.Context, params ListParams) ([]food.Food, error) {
	var foods []food.Food
	if err := s.client.doJSON(ctx, http.MethodGet, "/foods/admin/foods/"+params.query(), nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// FoodForm is the multipart payload for admin create/update. Zero-valued
// fields are omitted, which makes the same form usable for partial updates.
type FoodForm struct {
	Name      string
	Price     string
	Category  food.Category
	Available *bool
	ImageName string
	Image     io.Reader
}

func (f FoodForm) encode() (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	set := func(field, value string) error {
		if value == "" {
			return nil
		}
		return w.WriteField(field, value)
	}
	if err := set("name", f.Name); err != nil {
		return nil, "", err
	}
	if err := set("price", f.Price); err != nil {
		return nil, "", err
	}
	if err := set("category", string(f.Category)); err != nil {
		return nil, "", err
	}
	if f.Available != nil {
		if err := w.WriteField("is_available", fmt.Sprintf("%t", *f.Available)); err != nil {
			return nil, "", err
		}
	}
	if f.Image != nil {
		part, err := w.CreateFormFile("image", f.ImageName)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Image); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func (s *FoodsService) Create(ctx context.Context, form FoodForm) (*food.Food, error) {
	return s.submitForm(ctx, http.MethodPost, "/foods/admin/foods/", form)
}

func (s *FoodsService) Update(ctx context.Context, id int64, form FoodForm) (*food.Food, error) {
	return s.submitForm(ctx, http.MethodPatch, fmt.Sprintf("/foods/admin/foods/%d/", id), form)
}

func (s *FoodsService) Delete(ctx context.Context, id int64) error {
	return s.client.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/foods/admin/foods/%d/", id), nil, nil)
}

func (s *FoodsService) submitForm(ctx context.Context, method, path string, form FoodForm) (*food.Food, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return nil, fmt.Errorf("encode food form: %w", err)
	}

	resp, err := s.client.do(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, s.client.decodeError(resp)
	}

	var created food.Food
	if err := decodeJSON(resp.Body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
