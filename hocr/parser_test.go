package hocr

import (
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<body>
  <div class="ocr_page" id="page_1" title="image &quot;scan.tif&quot;; bbox 0 0 2480 3508">
    <div class="ocr_carea">
      <p class="ocr_par">
        <span class="ocr_line" title="bbox 500 740 900 780">
          <span class="ocrx_word" title="bbox 504 743 655 778; x_wconf 95">Smith,</span>
          <span class="ocrx_word" title="bbox 670 743 760 778; x_wconf 91">John</span>
        </span>
        <span class="ocr_line" title="bbox 500 800 900 840">
          <span class="ocrx_word" title="bbox 504 803 590 838">do</span>
        </span>
      </p>
    </div>
  </div>
  <div class="ocr_page" title="bbox 0 0 2480 3508">
    <span class="ocrx_word" title="bbox 10 10 60 30; x_wconf 80">Brown</span>
  </div>
</body>
</html>`

func TestParsePages(t *testing.T) {
	pages, err := Parse(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("Parse() returned %d pages, want 2", len(pages))
	}

	if pages[0].PageID != "page_1" {
		t.Errorf("pages[0].PageID = %q, want %q", pages[0].PageID, "page_1")
	}
	// Second page has no id attribute and gets a generated one.
	if pages[1].PageID != "page-2" {
		t.Errorf("pages[1].PageID = %q, want %q", pages[1].PageID, "page-2")
	}
}

func TestParseWords(t *testing.T) {
	pages, err := Parse(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	frags := pages[0].Fragments
	if len(frags) != 3 {
		t.Fatalf("page 1 has %d fragments, want 3", len(frags))
	}

	first := frags[0]
	if first.Text != "Smith," {
		t.Errorf("Text = %q, want %q", first.Text, "Smith,")
	}
	if first.BBox.Left() != 504 || first.BBox.Top() != 743 ||
		first.BBox.Right() != 655 || first.BBox.Bottom() != 778 {
		t.Errorf("BBox = %+v, want edges (504, 743, 655, 778)", first.BBox)
	}
	if first.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want 0.95", first.Confidence)
	}
	if first.PageID != "page_1" {
		t.Errorf("PageID = %q, want %q", first.PageID, "page_1")
	}

	// Word without x_wconf defaults to full confidence.
	if frags[2].Confidence != 1.0 {
		t.Errorf("default Confidence = %v, want 1.0", frags[2].Confidence)
	}
}

// Out-of-range x_wconf values are clamped so fragment confidence stays in
// the 0-1 range.
func TestParseClampsConfidence(t *testing.T) {
	const markup = `<div class="ocr_page" id="p">
	  <span class="ocrx_word" title="bbox 10 20 30 40; x_wconf 120">high</span>
	  <span class="ocrx_word" title="bbox 40 20 60 40; x_wconf -5">low</span>
	</div>`

	pages, err := Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	frags := pages[0].Fragments
	if len(frags) != 2 {
		t.Fatalf("Parse() returned %d fragments, want 2", len(frags))
	}
	if frags[0].Confidence != 1.0 {
		t.Errorf("Confidence for x_wconf 120 = %v, want 1.0", frags[0].Confidence)
	}
	if frags[1].Confidence != 0.0 {
		t.Errorf("Confidence for x_wconf -5 = %v, want 0.0", frags[1].Confidence)
	}
}

func TestParseSkipsMalformedWords(t *testing.T) {
	const markup = `<div class="ocr_page" id="p">
	  <span class="ocrx_word" title="x_wconf 90">no bbox</span>
	  <span class="ocrx_word" title="bbox 1 2 3; x_wconf 90">short bbox</span>
	  <span class="ocrx_word" title="bbox 1 2 3 4; x_wconf 90">  </span>
	  <span class="ocrx_word" title="bbox 10 20 30 40">kept</span>
	</div>`

	pages, err := Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("Parse() returned %d pages, want 1", len(pages))
	}
	if len(pages[0].Fragments) != 1 || pages[0].Fragments[0].Text != "kept" {
		t.Errorf("Fragments = %+v, want only the well-formed word", pages[0].Fragments)
	}
}

func TestParseTitle(t *testing.T) {
	props := parseTitle("bbox 504 743 655 778; x_wconf 95")

	if got := props["bbox"]; len(got) != 4 || got[0] != "504" || got[3] != "778" {
		t.Errorf(`props["bbox"] = %v, want [504 743 655 778]`, got)
	}
	if got := props["x_wconf"]; len(got) != 1 || got[0] != "95" {
		t.Errorf(`props["x_wconf"] = %v, want [95]`, got)
	}
}
