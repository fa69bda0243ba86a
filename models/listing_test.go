package models

import (
	"reflect"
	"testing"
)

func TestJoinImageURLsRoundTrip(t *testing.T) {
	urls := []string{"http://x/a.jpg", "http://x/b.jpg", "http://x/c.jpg"}

	joined := JoinImageURLs(urls)
	if joined == nil {
		t.Fatal("JoinImageURLs returned nil for non-empty input")
	}
	if *joined != "http://x/a.jpg | http://x/b.jpg | http://x/c.jpg" {
		t.Errorf("joined = %q", *joined)
	}

	back := SplitImageURLs(joined)
	if !reflect.DeepEqual(back, urls) {
		t.Errorf("round trip: got %v, want %v", back, urls)
	}
}

func TestJoinImageURLsDropsEmptyEntries(t *testing.T) {
	joined := JoinImageURLs([]string{"", "http://x/a.jpg", "  ", "http://x/b.jpg"})
	if joined == nil {
		t.Fatal("expected non-nil result")
	}
	if got := SplitImageURLs(joined); len(got) != 2 {
		t.Errorf("expected 2 URLs after dropping empties, got %d (%v)", len(got), got)
	}
}

func TestJoinImageURLsEmpty(t *testing.T) {
	if got := JoinImageURLs(nil); got != nil {
		t.Errorf("JoinImageURLs(nil) = %q; want nil", *got)
	}
	if got := JoinImageURLs([]string{"", " "}); got != nil {
		t.Errorf("JoinImageURLs of blanks = %q; want nil", *got)
	}
	if got := SplitImageURLs(nil); got != nil {
		t.Errorf("SplitImageURLs(nil) = %v; want nil", got)
	}
}
