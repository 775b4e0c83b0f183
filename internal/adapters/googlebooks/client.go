package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tasklane/tasklane/internal/domain/model"
)

const noDescription = "<No description found>"

// Client fetches the public volumes feed and maps it onto catalog records.
type Client struct {
	url  string
	http *http.Client
}

func New(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

type volumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	AverageRating float64  `json:"averageRating"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumesResponse struct {
	Items []volume `json:"items"`
}

// Fetch downloads the feed and returns it as Book records. Volume ids are
// hashed into stable UUIDs so a re-import keeps the same keys.
func (c *Client) Fetch(ctx context.Context) ([]model.Book, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("googlebooks: unexpected status %s", resp.Status)
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("googlebooks: decode response: %w", err)
	}

	books := make([]model.Book, 0, len(payload.Items))
	for _, v := range payload.Items {
		books = append(books, mapVolume(v))
	}
	return books, nil
}

func mapVolume(v volume) model.Book {
	info := v.VolumeInfo

	description := info.Description
	if description == "" {
		description = noDescription
	}
	description = truncate(description, model.BookDescriptionMax)

	author := strings.Join(info.Authors, ", ")
	if author == "" {
		author = "Unknown"
	}

	rating := int(info.AverageRating * 20) // 0..5 stars to 0..100
	if rating > model.BookRatingMax {
		rating = model.BookRatingMax
	}

	return model.Book{
		ID:          uuid.NewSHA1(uuid.NameSpaceURL, []byte("googlebooks/"+v.ID)),
		Title:       truncate(info.Title, 100),
		Author:      truncate(author, 100),
		Description: description,
		Rating:      rating,
	}
}

// truncate cuts s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
