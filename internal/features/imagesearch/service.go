package imagesearch

import (
	"context"
	"fmt"
	"time"

	"cardvault/internal/config"

	"go.uber.org/zap"
)

const stageTimeout = 10 * time.Second

// Provider is one image source in the fallback chain.
type Provider interface {
	Configured() bool
	Search(ctx context.Context, query string) ([]string, error)
}

// SearchResult is the response shape: up to nine image URLs and a per-stage
// trace for the UI's debug panel. No results is an empty slice, never an
// error.
type SearchResult struct {
	ImageURLs []string `json:"imageUrls"`
	DebugInfo []string `json:"debugInfo"`
}

type ImageSearchService interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)
}

type ImageSearchServiceImpl struct {
	Ebay   Provider
	Proxy  Provider
	Logger *zap.Logger
}

func NewImageSearchService(cfg *config.Config, logger *zap.Logger) ImageSearchService {
	return &ImageSearchServiceImpl{
		Ebay:   NewEbayClient(cfg.EbayAppID, cfg.EbayCertID),
		Proxy:  NewProxyClient(cfg.ImageSearchURL, cfg.ImageSearchKey),
		Logger: logger,
	}
}

// Search walks the fallback chain until a stage returns at least one image:
// eBay with the full query, eBay with the simplified query, then the generic
// proxy. Unconfigured providers are skipped; failing or empty stages fall
// through to the next.
func (s *ImageSearchServiceImpl) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	result := &SearchResult{ImageURLs: []string{}}

	fullQuery := BuildQuery(req)
	stages := []struct {
		name     string
		query    string
		provider Provider
	}{
		{"ebay", fullQuery, s.Ebay},
		{"ebay-simplified", BuildSimplifiedQuery(req), s.Ebay},
		{"proxy", fullQuery, s.Proxy},
	}

	for _, stage := range stages {
		if !stage.provider.Configured() {
			result.DebugInfo = append(result.DebugInfo, stage.name+": not configured")
			continue
		}
		if stage.query == "" {
			result.DebugInfo = append(result.DebugInfo, stage.name+": empty query")
			continue
		}

		urls, err := s.searchStage(ctx, stage.provider, stage.query)
		if err != nil {
			s.Logger.Warn("image search stage failed",
				zap.String("stage", stage.name),
				zap.Error(err))
			result.DebugInfo = append(result.DebugInfo, fmt.Sprintf("%s: %v", stage.name, err))
			continue
		}
		if len(urls) == 0 {
			result.DebugInfo = append(result.DebugInfo, stage.name+": no results")
			continue
		}

		result.ImageURLs = urls
		result.DebugInfo = append(result.DebugInfo, fmt.Sprintf("%s: %d images for %q", stage.name, len(urls), stage.query))
		return result, nil
	}

	return result, nil
}

// searchStage bounds one provider call and retries once on failure.
func (s *ImageSearchServiceImpl) searchStage(ctx context.Context, p Provider, query string) ([]string, error) {
	urls, err := s.searchOnce(ctx, p, query)
	if err == nil {
		return urls, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}
	return s.searchOnce(ctx, p, query)
}

func (s *ImageSearchServiceImpl) searchOnce(ctx context.Context, p Provider, query string) ([]string, error) {
	stageCtx, cancel := context.WithTimeout(ctx, stageTimeout)
	defer cancel()
	return p.Search(stageCtx, query)
}
