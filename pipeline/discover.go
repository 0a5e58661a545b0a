package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DiscoverArchives fetches the Companies House bulk accounts data index
// page at indexURL and returns the absolute URLs of every ".zip" link on
// it, in document order.
func DiscoverArchives(ctx context.Context, fetcher *Fetcher, indexURL string) ([]string, error) {
	body, err := fetcher.Get(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("pipeline: discover archives: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("pipeline: parse index page: %w", err)
	}

	base, err := url.Parse(indexURL)
	if err != nil {
		return nil, fmt.Errorf("pipeline: parse index URL: %w", err)
	}

	var archives []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || !strings.HasSuffix(strings.ToLower(href), ".zip") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		archives = append(archives, base.ResolveReference(ref).String())
	})

	return archives, nil
}
