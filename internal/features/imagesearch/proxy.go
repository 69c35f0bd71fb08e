package imagesearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ProxyClient queries a generic image-search proxy, the last resort of the
// fallback chain when eBay yields nothing.
type ProxyClient struct {
	URL  string
	Key  string
	HTTP *http.Client
}

func NewProxyClient(url, key string) *ProxyClient {
	return &ProxyClient{
		URL:  url,
		Key:  key,
		HTTP: http.DefaultClient,
	}
}

func (p *ProxyClient) Configured() bool {
	return p.URL != ""
}

type proxyRequest struct {
	Queries    []string `json:"queries"`
	SearchType string   `json:"search_type"`
}

type proxyResult struct {
	URL string `json:"url"`
}

type proxyResponse struct {
	Results []proxyResult `json:"results"`
}

func (p *ProxyClient) Search(ctx context.Context, query string) ([]string, error) {
	payload, err := json.Marshal(proxyRequest{
		Queries:    []string{query},
		SearchType: "image",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.Key != "" {
		req.Header.Set("Authorization", "Bearer "+p.Key)
	}

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image proxy request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image proxy returned status %d", resp.StatusCode)
	}

	var body proxyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("image proxy response malformed: %w", err)
	}

	var urls []string
	for _, r := range body.Results {
		if r.URL == "" {
			continue
		}
		urls = append(urls, r.URL)
		if len(urls) >= maxImageURLs {
			break
		}
	}
	return urls, nil
}
