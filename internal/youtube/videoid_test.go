package youtube

import "testing"

func TestVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{
			name:   "short link",
			url:    "https://youtu.be/abc123",
			want:   "abc123",
			wantOK: true,
		},
		{
			name:   "watch page with extra params",
			url:    "https://www.youtube.com/watch?v=abc123&t=5",
			want:   "abc123",
			wantOK: true,
		},
		{
			name:   "watch page without www",
			url:    "https://youtube.com/watch?v=dQw4w9WgXcQ",
			want:   "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name: "unknown host",
			url:  "https://example.com/abc123",
		},
		{
			name: "watch path on wrong host",
			url:  "https://vimeo.com/watch?v=abc123",
		},
		{
			name: "short link with nested path",
			url:  "https://youtu.be/abc123/extra",
		},
		{
			name: "watch page without v param",
			url:  "https://www.youtube.com/watch?t=5",
		},
		{
			name: "playlist path",
			url:  "https://www.youtube.com/playlist?list=PL123",
		},
		{
			name: "empty short link",
			url:  "https://youtu.be/",
		},
		{
			name: "not a url",
			url:  "::not-a-url::",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := VideoID(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("VideoID(%q) ok = %v, want %v", tt.url, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Fatalf("VideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
