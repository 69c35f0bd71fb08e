package imagesearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	ebayProductionBase = "https://api.ebay.com"
	ebaySandboxBase    = "https://api.sandbox.ebay.com"

	ebayOAuthScope = "https://api.ebay.com/oauth/api_scope"

	// eBay tokens last two hours; refreshing five minutes early avoids
	// racing the expiry on in-flight requests.
	tokenExpirySlack = 5 * time.Minute

	maxImageURLs = 9
)

// EbayClient searches the eBay Browse API for card listing images. Sandbox
// keysets carry "SBX" in the application id, which selects the sandbox host.
type EbayClient struct {
	AppID  string
	CertID string
	HTTP   *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewEbayClient(appID, certID string) *EbayClient {
	return &EbayClient{
		AppID:  appID,
		CertID: certID,
		HTTP:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether credentials are present. An unconfigured client
// is skipped by the fallback chain rather than treated as a failing stage.
func (e *EbayClient) Configured() bool {
	return e.AppID != "" && e.CertID != ""
}

func (e *EbayClient) baseURL() string {
	if strings.Contains(e.AppID, "SBX") {
		return ebaySandboxBase
	}
	return ebayProductionBase
}

type ebayTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// accessToken returns a cached application token, minting a new one via the
// client-credentials grant when the cache is empty or near expiry.
func (e *EbayClient) accessToken(ctx context.Context) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.token != "" && time.Now().Before(e.tokenExpiry) {
		return e.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("scope", ebayOAuthScope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL()+"/identity/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(e.AppID, e.CertID)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("ebay token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ebay token request returned status %d", resp.StatusCode)
	}

	var tok ebayTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("ebay token response malformed: %w", err)
	}
	if tok.AccessToken == "" {
		return "", errors.New("ebay token response missing access_token")
	}

	e.token = tok.AccessToken
	e.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenExpirySlack)
	return e.token, nil
}

type ebayImage struct {
	ImageURL string `json:"imageUrl"`
}

type ebayItemSummary struct {
	Image            *ebayImage  `json:"image"`
	AdditionalImages []ebayImage `json:"additionalImages"`
}

type ebaySearchResponse struct {
	ItemSummaries []ebayItemSummary `json:"itemSummaries"`
}

// Search runs a Browse API item-summary search and returns up to nine image
// URLs, primary images first within each listing. An empty result set is not
// an error.
func (e *EbayClient) Search(ctx context.Context, query string) ([]string, error) {
	token, err := e.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query+" sports card")
	params.Set("limit", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL()+"/buy/browse/v1/item_summary/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := e.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ebay search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ebay search returned status %d", resp.StatusCode)
	}

	var body ebaySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("ebay search response malformed: %w", err)
	}

	var urls []string
	for _, item := range body.ItemSummaries {
		if item.Image != nil && item.Image.ImageURL != "" {
			urls = append(urls, item.Image.ImageURL)
		}
		for _, img := range item.AdditionalImages {
			if img.ImageURL != "" {
				urls = append(urls, img.ImageURL)
			}
		}
		if len(urls) >= maxImageURLs {
			break
		}
	}
	if len(urls) > maxImageURLs {
		urls = urls[:maxImageURLs]
	}
	return urls, nil
}
