package imagesearch

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

// fakeProvider returns canned responses per query and counts calls.
type fakeProvider struct {
	configured bool
	byQuery    map[string][]string
	err        error
	calls      int
}

func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) Search(_ context.Context, query string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.byQuery[query], nil
}

func newService(ebay, proxy Provider) *ImageSearchServiceImpl {
	return &ImageSearchServiceImpl{
		Ebay:   ebay,
		Proxy:  proxy,
		Logger: zap.NewNop(),
	}
}

func TestSearchFirstStageWins(t *testing.T) {
	req := SearchRequest{PlayerName: "Michael Jordan", Season: "1996-97"}
	full := BuildQuery(req)

	ebay := &fakeProvider{configured: true, byQuery: map[string][]string{
		full: {"https://img.example/a.jpg"},
	}}
	proxy := &fakeProvider{configured: true}

	result, err := newService(ebay, proxy).Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if want := []string{"https://img.example/a.jpg"}; !reflect.DeepEqual(result.ImageURLs, want) {
		t.Errorf("ImageURLs = %v, want %v", result.ImageURLs, want)
	}
	if proxy.calls != 0 {
		t.Errorf("proxy called %d times after a successful first stage", proxy.calls)
	}
}

func TestSearchFallsBackToSimplifiedQuery(t *testing.T) {
	req := SearchRequest{PlayerName: "Michael Jordan", Parallel: "Gold", Autograph: true}

	ebay := &fakeProvider{configured: true, byQuery: map[string][]string{
		BuildSimplifiedQuery(req): {"https://img.example/b.jpg"},
	}}
	proxy := &fakeProvider{configured: true}

	result, err := newService(ebay, proxy).Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(result.ImageURLs) != 1 {
		t.Fatalf("ImageURLs = %v, want the simplified-query hit", result.ImageURLs)
	}
	if proxy.calls != 0 {
		t.Errorf("proxy called %d times, want 0", proxy.calls)
	}
}

func TestSearchFallsThroughToProxy(t *testing.T) {
	req := SearchRequest{PlayerName: "Michael Jordan"}

	ebay := &fakeProvider{configured: true} // no hits for any query
	proxy := &fakeProvider{configured: true, byQuery: map[string][]string{
		BuildQuery(req): {"https://img.example/c.jpg"},
	}}

	result, err := newService(ebay, proxy).Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(result.ImageURLs) != 1 || result.ImageURLs[0] != "https://img.example/c.jpg" {
		t.Errorf("ImageURLs = %v, want the proxy hit", result.ImageURLs)
	}
}

func TestSearchNoResultsIsNotAnError(t *testing.T) {
	req := SearchRequest{PlayerName: "Nobody"}

	result, err := newService(
		&fakeProvider{configured: true},
		&fakeProvider{configured: false},
	).Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(result.ImageURLs) != 0 {
		t.Errorf("ImageURLs = %v, want empty", result.ImageURLs)
	}
	if len(result.DebugInfo) == 0 {
		t.Error("DebugInfo empty, want per-stage trace")
	}
}

func TestSearchRetriesFailingStageOnce(t *testing.T) {
	req := SearchRequest{PlayerName: "Michael Jordan"}

	ebay := &fakeProvider{configured: true, err: errors.New("upstream down")}
	proxy := &fakeProvider{configured: false}

	result, err := newService(ebay, proxy).Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v, provider failures must not surface", err)
	}
	// Two stages use the failing provider, each tried twice.
	if ebay.calls != 4 {
		t.Errorf("ebay calls = %d, want 4 (one retry per stage)", ebay.calls)
	}
	if len(result.ImageURLs) != 0 {
		t.Errorf("ImageURLs = %v, want empty", result.ImageURLs)
	}
}

func TestSearchSkipsUnconfiguredProviders(t *testing.T) {
	req := SearchRequest{PlayerName: "Michael Jordan"}

	ebay := &fakeProvider{configured: false}
	proxy := &fakeProvider{configured: true, byQuery: map[string][]string{
		BuildQuery(req): {"https://img.example/d.jpg"},
	}}

	result, err := newService(ebay, proxy).Search(context.Background(), req)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if ebay.calls != 0 {
		t.Errorf("unconfigured ebay called %d times", ebay.calls)
	}
	if len(result.ImageURLs) != 1 {
		t.Errorf("ImageURLs = %v, want the proxy hit", result.ImageURLs)
	}
}
