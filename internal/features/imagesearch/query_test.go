package imagesearch

import "testing"

func intPtr(n int) *int { return &n }

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name string
		req  SearchRequest
		want string
	}{
		{
			name: "full card",
			req: SearchRequest{
				PlayerName: "Michael Jordan",
				Season:     "1996-97",
				Brand:      "Topps",
				Series:     "Chrome",
				Insert:     "Refractor",
				Parallel:   "Gold",
				CardNumber: "23",
				Numbered:   true,
				NumberedOf: intPtr(499),
				Autograph:  true,
			},
			want: "1996-97 Topps Chrome Michael Jordan Refractor Gold #23 /499 Auto",
		},
		{
			name: "base parallel skipped",
			req: SearchRequest{
				PlayerName: "Larry Bird",
				Season:     "1985-86",
				Parallel:   "Base",
				CardNumber: "7",
			},
			want: "1985-86 Larry Bird #7",
		},
		{
			name: "base parallel skipped regardless of case",
			req:  SearchRequest{PlayerName: "Larry Bird", Parallel: " base "},
			want: "Larry Bird",
		},
		{
			name: "numbered without denominator",
			req:  SearchRequest{PlayerName: "Tim Duncan", Numbered: true},
			want: "Tim Duncan",
		},
		{
			name: "empty request",
			req:  SearchRequest{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildQuery(tt.req); got != tt.want {
				t.Errorf("BuildQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildSimplifiedQuery(t *testing.T) {
	req := SearchRequest{
		PlayerName: "Michael Jordan",
		Season:     "1996-97",
		Brand:      "Topps",
		Series:     "Chrome",
		Insert:     "Refractor",
		Parallel:   "Gold",
		CardNumber: "23",
		Numbered:   true,
		NumberedOf: intPtr(499),
		Autograph:  true,
	}

	want := "1996-97 Topps Chrome Michael Jordan #23"
	if got := BuildSimplifiedQuery(req); got != want {
		t.Errorf("BuildSimplifiedQuery() = %q, want %q", got, want)
	}
}
