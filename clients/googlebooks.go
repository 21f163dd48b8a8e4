package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkos/librarium/config"
)

var (
	// ErrNoResults is returned when a volume search response carries no items.
	ErrNoResults = errors.New("no volumes found")
	// ErrVolumeNotFound is returned when a volume lookup by id misses.
	ErrVolumeNotFound = errors.New("volume not found")
	// ErrMalformedResponse is returned when a response lacks an expected field.
	ErrMalformedResponse = errors.New("malformed volume response")
	// ErrServiceUnavailable is returned when the metadata service cannot be
	// reached or does not answer within the configured deadline.
	ErrServiceUnavailable = errors.New("book metadata service unavailable")
)

// IndustryIdentifier is one entry of a volume's identifier list.
type IndustryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// ImageLinks holds the cover image references of a volume.
type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

// VolumeInfo matches the volumeInfo object of the Google Books volumes API.
type VolumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	PublishedDate       string               `json:"publishedDate"`
	IndustryIdentifiers []IndustryIdentifier `json:"industryIdentifiers"`
	PageCount           int32                `json:"pageCount"`
	ImageLinks          *ImageLinks          `json:"imageLinks"`
	Language            string               `json:"language"`
}

// Volume is one record of the volumes API. VolumeInfo is a pointer so that a
// response missing the field can be told apart from an empty one.
type Volume struct {
	ID         string      `json:"id"`
	VolumeInfo *VolumeInfo `json:"volumeInfo"`
}

type volumeList struct {
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

// GoogleBooksClient is a read-only client for the Google Books volumes API.
type GoogleBooksClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewGoogleBooksClient creates a Google Books client from the app configuration.
func NewGoogleBooksClient(cfg config.Config) *GoogleBooksClient {
	return &GoogleBooksClient{
		client:  NewHTTPClient(cfg.GoogleBooks.Timeout),
		baseURL: cfg.GoogleBooks.BaseURL,
		apiKey:  cfg.GoogleBooks.APIKey,
	}
}

// SearchVolumes runs a full-text or field-scoped volume search and returns the
// matching volumes. ErrNoResults signals a well-formed response without items.
func (c *GoogleBooksClient) SearchVolumes(ctx context.Context, query string) ([]Volume, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	endpoint := c.baseURL + "/volumes?" + params.Encode()

	var list volumeList
	if err := c.get(ctx, endpoint, &list); err != nil {
		return nil, err
	}
	if len(list.Items) == 0 {
		return nil, ErrNoResults
	}
	return list.Items, nil
}

// GetVolume fetches one volume by its external identifier. A response without
// a volumeInfo object is reported as ErrMalformedResponse.
func (c *GoogleBooksClient) GetVolume(ctx context.Context, volumeID string) (*Volume, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + "/volumes/" + url.PathEscape(volumeID) + "?" + params.Encode()

	var volume Volume
	if err := c.get(ctx, endpoint, &volume); err != nil {
		return nil, err
	}
	if volume.VolumeInfo == nil {
		return nil, ErrMalformedResponse
	}
	return &volume, nil
}

func (c *GoogleBooksClient) get(ctx context.Context, endpoint string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrVolumeNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
