// Package fetch downloads remote frequency lists. The download is
// synchronous with a bounded timeout; on failure the run aborts before
// any output is produced, with no retry and no partial result.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultTimeout bounds the whole download when no client is injected.
const DefaultTimeout = 30 * time.Second

// Client downloads frequency lists over HTTP.
type Client struct {
	HTTPClient *http.Client
}

// Download fetches url into a temp file and returns its path. The
// caller removes the file when done. When the server responds with an
// HTML index page instead of plain text, the first link ending in
// .txt is followed once.
func (c *Client) Download(ctx context.Context, url string) (string, error) {
	body, contentType, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	if strings.Contains(contentType, "text/html") {
		link, ok := FindLink(body, ".txt")
		body.Close()
		if !ok {
			return "", fmt.Errorf("fetch %s: no .txt link on index page", url)
		}
		link = resolveLink(url, link)
		body, _, err = c.get(ctx, link)
		if err != nil {
			return "", err
		}
		defer body.Close()
	}

	tmp, err := os.CreateTemp("", "wordfreq-*.txt")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, "", fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: DefaultTimeout}
}

// FindLink walks an HTML document and returns the first anchor href
// ending in suffix.
func FindLink(r io.Reader, suffix string) (string, bool) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", false
	}

	var walk func(*html.Node) (string, bool)
	walk = func(n *html.Node) (string, bool) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && strings.HasSuffix(attr.Val, suffix) {
					return attr.Val, true
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if href, ok := walk(child); ok {
				return href, true
			}
		}
		return "", false
	}
	return walk(doc)
}

// resolveLink joins a relative href against the page URL.
func resolveLink(pageURL, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		if idx := strings.Index(pageURL, "://"); idx >= 0 {
			if slash := strings.Index(pageURL[idx+3:], "/"); slash >= 0 {
				return pageURL[:idx+3+slash] + href
			}
		}
		return strings.TrimRight(pageURL, "/") + href
	}
	if idx := strings.LastIndex(pageURL, "/"); idx > strings.Index(pageURL, "://")+2 {
		return pageURL[:idx+1] + href
	}
	return strings.TrimRight(pageURL, "/") + "/" + href
}
