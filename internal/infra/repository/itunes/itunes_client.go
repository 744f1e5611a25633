package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/musicmentor/music-mentor-api/internal/app/services/catalog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultBaseURL = "https://itunes.apple.com"
	requestTimeout = 5 * time.Second
)

type Client struct {
	tracer     trace.Tracer
	httpClient *http.Client
	baseURL    string
}

func New(tracer trace.Tracer, httpClient *http.Client) *Client {
	return NewWithBaseURL(tracer, httpClient, defaultBaseURL)
}

// NewWithBaseURL points the client at another host. Used by tests.
func NewWithBaseURL(tracer trace.Tracer, httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		tracer:     tracer,
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// searchResponse mirrors the iTunes Search API envelope. Song results
// carry collectionName for the parent album, album results leave
// previewUrl empty.
type searchResponse struct {
	ResultCount int          `json:"resultCount"`
	Results     []searchItem `json:"results"`
}

type searchItem struct {
	CollectionID      int64  `json:"collectionId"`
	CollectionName    string `json:"collectionName"`
	ArtistName        string `json:"artistName"`
	ArtworkURL100     string `json:"artworkUrl100"`
	ArtworkURL600     string `json:"artworkUrl600"`
	CollectionViewURL string `json:"collectionViewUrl"`
	PreviewURL        string `json:"previewUrl"`
}

func (client *Client) Search(ctx context.Context, term string, entity catalog.Entity, limit int) ([]catalog.SearchResult, error) {
	ctx, span := client.tracer.Start(ctx, "ItunesClient.Search", trace.WithAttributes(
		attribute.String("term", term),
		attribute.String("entity", string(entity)),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	query := url.Values{}
	query.Set("term", term)
	query.Set("entity", string(entity))
	query.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("itunes search: unexpected status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	span.SetAttributes(attribute.Int("result_count", payload.ResultCount))

	results := make([]catalog.SearchResult, 0, len(payload.Results))
	for _, item := range payload.Results {
		results = append(results, catalog.SearchResult{
			CollectionID:      item.CollectionID,
			CollectionName:    item.CollectionName,
			ArtistName:        item.ArtistName,
			ArtworkURL100:     item.ArtworkURL100,
			ArtworkURL600:     item.ArtworkURL600,
			CollectionViewURL: item.CollectionViewURL,
			PreviewURL:        item.PreviewURL,
		})
	}

	return results, nil
}
