package metadata

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/comic-utils/tankobon/pkg/comicinfo"
	"github.com/comic-utils/tankobon/pkg/config"
	"github.com/comic-utils/tankobon/pkg/metadata/stor"
)

const (
	searchURLFormat = "https://www.mangaupdates.com/series.html?search=%s"
	seriesURLFormat = "https://www.mangaupdates.com/series/%s"
)

var (
	seriesIDRe   = regexp.MustCompile(`www\.mangaupdates\.com/series/([^/]+)/`)
	yearRe       = regexp.MustCompile(`^(\d{4})`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// MangaUpdates is a Source backed by the mangaupdates.com catalog. Pages
// are scraped, so the selectors here track the site's markup. An optional
// page cache avoids refetching.
type MangaUpdates struct {
	client *resty.Client
	cache  stor.PageCacheStor
}

// NewMangaUpdates returns a catalog client. cache may be nil to disable
// page caching.
func NewMangaUpdates(cache stor.PageCacheStor) *MangaUpdates {
	client := resty.New().
		SetHeader("User-Agent", config.UserAgent())

	return &MangaUpdates{client: client, cache: cache}
}

func (m *MangaUpdates) Search(ctx context.Context, name string) ([]SearchResult, error) {
	query := strings.ReplaceAll(collapseWhitespace(name), " ", "+")
	pageURL := fmt.Sprintf(searchURLFormat, query)

	doc, err := m.getDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	doc.Find("div.col-12.col-lg-6.p-3.text").Each(func(_ int, node *goquery.Selection) {
		titleLink := node.Find(`div.flex-column > div.text > a[alt="Series Info"]`)
		if titleLink.Length() != 1 {
			return
		}

		match := seriesIDRe.FindStringSubmatch(titleLink.AttrOr("href", ""))
		if match == nil {
			return
		}

		id := match[1]
		title := titleLink.Text()

		yearNode := node.Find("div.d-flex.flex-column.h-100 div.text:last-child")
		if yearNode.Length() != 1 {
			return
		}

		year := "???"
		if yearMatch := yearRe.FindStringSubmatch(strings.TrimSpace(yearNode.Text())); yearMatch != nil {
			year = yearMatch[1]
		}

		genresNode := node.Find("div.textsmall a")
		if genresNode.Length() != 1 {
			return
		}

		results = append(results, SearchResult{
			ID:          id,
			Title:       title,
			Description: fmt.Sprintf("%s (%s) - %s", title, year, genresNode.AttrOr("title", "")),
		})
	})

	return results, nil
}

func (m *MangaUpdates) Fetch(ctx context.Context, id string) (*comicinfo.Metadata, error) {
	pageURL := fmt.Sprintf(seriesURLFormat, id)

	doc, err := m.getDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(doc.Find("span.releasestitle").First().Text())
	if title == "" {
		return nil, errors.Errorf("unable to parse series page %s", pageURL)
	}

	md := comicinfo.New()
	md.Set("Title", title)
	md.Set("Series", title)
	md.Set("Web", pageURL)

	if descMore := doc.Find("div#div_desc_more"); descMore.Length() > 0 {
		md.SetIfValue("Summary", strings.TrimSpace(descMore.Contents().First().Text()))
	} else {
		md.SetIfValue("Summary", firstSectionValue(doc, "Description"))
	}

	md.SetIfValue("Year", firstSectionValue(doc, "Year"))
	md.SetIfValue("Writer", strings.Join(sectionValues(doc, "Author(s)"), ","))
	md.SetIfValue("Penciller", strings.Join(sectionValues(doc, "Artist(s)"), ","))
	md.SetIfValue("Publisher", strings.Join(sectionValues(doc, "Original Publisher"), ","))

	if names := sectionValues(doc, "Associated Names"); names != nil {
		if err := md.PutNote("associated_names", names); err != nil {
			return nil, err
		}
	}

	if genres := sectionValues(doc, "Genre"); genres != nil {
		genres = removeValue(genres, "Search for series of same genre(s)")
		md.SetIfValue("Genre", strings.Join(genres, ","))
	}

	if tags := sectionValues(doc, "Categories"); tags != nil {
		tags = removeValue(tags, "Log in to vote!")
		tags = removeValue(tags, "Show all (some hidden)")
		md.SetIfValue("Tags", strings.Join(tags, ","))
	}

	return md, nil
}

// getDocument fetches (or loads from cache) a page and parses it.
func (m *MangaUpdates) getDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	body, err := m.getPage(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse page %s", pageURL)
	}

	return doc, nil
}

func (m *MangaUpdates) getPage(ctx context.Context, pageURL string) (string, error) {
	if m.cache != nil {
		body, found, err := m.cache.GetPage(pageURL)
		if err != nil {
			return "", err
		}
		if found {
			return body, nil
		}
	}

	resp, err := m.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return "", errors.Wrapf(err, "unable to fetch %s", pageURL)
	}

	if resp.IsError() {
		return "", errors.Errorf("unexpected status %d fetching %s", resp.StatusCode(), pageURL)
	}

	body := resp.String()

	if m.cache != nil {
		if err := m.cache.PutPage(pageURL, body); err != nil {
			return "", err
		}
	}

	return body, nil
}

// sectionValues finds the series-page section labeled label (a div.sCat
// header followed by a sibling div of values) and returns its values,
// whitespace-normalized and sorted. Returns nil when the section is
// absent.
func sectionValues(doc *goquery.Document, label string) []string {
	header := doc.Find("div.sCat").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == label
	}).First()

	if header.Length() == 0 {
		return nil
	}

	node := header.NextFiltered("div")
	if node.Length() == 0 {
		return nil
	}

	var values []string
	for _, line := range textLines(node) {
		line = collapseWhitespace(line)
		if line != "" {
			values = append(values, line)
		}
	}

	sort.Strings(values)
	return values
}

func firstSectionValue(doc *goquery.Document, label string) string {
	values := sectionValues(doc, label)
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

// textLines returns the text of every leaf text node under s, one line
// per node, mirroring how the values appear separated by markup.
func textLines(s *goquery.Selection) []string {
	var lines []string

	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			lines = append(lines, c.Text())
			return
		}

		lines = append(lines, textLines(c)...)
	})

	return lines
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func removeValue(values []string, remove string) []string {
	out := values[:0]
	for _, v := range values {
		if v != remove {
			out = append(out, v)
		}
	}

	return out
}
