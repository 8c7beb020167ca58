// Package hocr ingests hOCR output, the HTML-based interchange format many
// recognition engines (Tesseract among them) emit, and converts recognized
// words into positioned fragments.
//
// Only the word level of the hOCR hierarchy is consumed: elements with class
// "ocrx_word" carry a title attribute of the form
//
//	bbox 504 743 655 778; x_wconf 95
//
// from which geometry and confidence are read. Words missing a bbox are
// skipped; a missing x_wconf defaults to full confidence.
package hocr

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/gridform/tablature/model"
)

// ParseFile reads an hOCR file and returns fragments per page, keyed in
// page order. The page id is the ocr_page element's id attribute, or a
// generated "page-N" when absent.
func ParseFile(filename string) ([]PageFragments, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("hocr: opening file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// PageFragments holds the recognized words of one hOCR page.
type PageFragments struct {
	PageID    string
	Fragments []model.Fragment
}

// Parse parses hOCR markup from r.
func Parse(r io.Reader) ([]PageFragments, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("hocr: parsing HTML: %w", err)
	}

	var pages []PageFragments
	collectPages(doc, &pages)
	return pages, nil
}

func collectPages(n *html.Node, pages *[]PageFragments) {
	if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
		pageID := attr(n, "id")
		if pageID == "" {
			pageID = fmt.Sprintf("page-%d", len(*pages)+1)
		}
		page := PageFragments{PageID: pageID}
		collectWords(n, pageID, &page.Fragments)
		*pages = append(*pages, page)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectPages(c, pages)
	}
}

func collectWords(n *html.Node, pageID string, out *[]model.Fragment) {
	if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
		if f, ok := wordFragment(n, pageID, len(*out)); ok {
			*out = append(*out, f)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectWords(c, pageID, out)
	}
}

func wordFragment(n *html.Node, pageID string, id int) (model.Fragment, bool) {
	props := parseTitle(attr(n, "title"))

	box, ok := props["bbox"]
	if !ok || len(box) != 4 {
		return model.Fragment{}, false
	}
	coords := make([]float64, 4)
	for i, s := range box {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.Fragment{}, false
		}
		coords[i] = v
	}

	// Engines occasionally report x_wconf outside 0-100; keep the fragment
	// confidence in its documented 0-1 range regardless.
	confidence := 1.0
	if wc, ok := props["x_wconf"]; ok && len(wc) == 1 {
		if v, err := strconv.ParseFloat(wc[0], 64); err == nil {
			confidence = math.Min(math.Max(v/100, 0), 1)
		}
	}

	text := strings.TrimSpace(textContent(n))
	if text == "" {
		return model.Fragment{}, false
	}

	return model.Fragment{
		ID:         id,
		Text:       text,
		BBox:       model.NewBBoxFromEdges(coords[0], coords[1], coords[2], coords[3]),
		Confidence: confidence,
		PageID:     pageID,
	}, true
}

// parseTitle splits an hOCR title attribute into named properties:
// "bbox 1 2 3 4; x_wconf 95" -> {"bbox": [1 2 3 4], "x_wconf": [95]}.
func parseTitle(title string) map[string][]string {
	props := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) >= 2 {
			props[fields[0]] = fields[1:]
		}
	}
	return props
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
