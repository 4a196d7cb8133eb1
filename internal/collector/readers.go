package collector

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	jsoniter "github.com/json-iterator/go"
	"github.com/mmcdole/gofeed"

	"bizpulse/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultHTMLSelector matches typical post containers in saved pages.
const DefaultHTMLSelector = "article, .post"

// ReadJSON decodes a JSON array of posts. Posts without text are dropped.
func ReadJSON(r io.Reader) ([]models.Post, error) {
	var in []models.Post
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	out := in[:0]
	for _, p := range in {
		p.Text = strings.TrimSpace(p.Text)
		if p.Text == "" {
			continue
		}
		if p.Source == "" {
			p.Source = string(SourceJSON)
		}
		out = append(out, p)
	}
	return out, nil
}

// ReadFeed parses an RSS, Atom or JSON feed. Each item becomes a post whose
// text is the title followed by the description with markup removed.
func ReadFeed(r io.Reader) ([]models.Post, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	source := feed.FeedType
	if source == "" {
		source = string(SourceRSS)
	}

	out := make([]models.Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		text := strings.TrimSpace(item.Title + " " + plainText(item.Description))
		if text == "" {
			continue
		}

		p := models.Post{
			ID:     models.PostID(item.GUID),
			Text:   text,
			Source: source,
			URL:    item.Link,
		}
		if item.Author != nil {
			p.Author = item.Author.Name
		}
		switch {
		case item.PublishedParsed != nil:
			p.CreatedAt = models.NewTimestamp(*item.PublishedParsed)
		case item.UpdatedParsed != nil:
			p.CreatedAt = models.NewTimestamp(*item.UpdatedParsed)
		}
		out = append(out, p)
	}
	return out, nil
}

// ReadHTML extracts one post per element matching selector. The first link,
// author and time elements inside a match fill the post's url, author and
// timestamp when present.
func ReadHTML(r io.Reader, selector string) ([]models.Post, error) {
	if selector == "" {
		selector = DefaultHTMLSelector
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var out []models.Post
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		text := collapse(s.Text())
		if text == "" {
			return
		}

		p := models.Post{Text: text, Source: string(SourceHTML)}
		if id, ok := s.Attr("id"); ok {
			p.ID = models.PostID(id)
		}
		if href, ok := s.Find("a[href]").First().Attr("href"); ok {
			p.URL = href
		}
		p.Author = collapse(s.Find(`[rel="author"], .author`).First().Text())
		if dt, ok := s.Find("time[datetime]").First().Attr("datetime"); ok {
			if ts, err := models.ParseTimestamp(dt); err == nil {
				p.CreatedAt = ts
			}
		}
		out = append(out, p)
	})
	return out, nil
}

// plainText strips markup from an HTML fragment.
func plainText(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapse(fragment)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapse(fragment)
	}
	return collapse(doc.Text())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
