package aggregator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nguyentantai21042004/lecture-flow/internal/layout"
	"github.com/nguyentantai21042004/lecture-flow/internal/llm"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

type recordingClient struct {
	requests []llm.Request
	reply    string
	err      error
}

func (c *recordingClient) Generate(ctx context.Context, req llm.Request) (string, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := layout.WriteText(path, content); err != nil {
		t.Fatalf("WriteText(%s) error = %v", path, err)
	}
}

func newTestAggregator(t *testing.T, maxChars int) (*implAggregator, *recordingClient, *layout.Layout) {
	t.Helper()
	out := layout.New(t.TempDir())
	client := &recordingClient{reply: "consolidated body"}
	agg := New(out, client, maxChars, logger.Nop()).(*implAggregator)
	return agg, client, out
}

func TestConsolidateLectureOrdersNumerically(t *testing.T) {
	agg, client, out := newTestAggregator(t, 0)

	for _, name := range []string{"demo-2", "demo-10", "demo-1"} {
		writeFile(t, filepath.Join(out.GroupDir(name), layout.ImportantFile), "content of "+name)
	}

	got, err := agg.ConsolidateLecture(context.Background(), "demo")
	if err != nil {
		t.Fatalf("ConsolidateLecture() error = %v", err)
	}

	if diff := cmp.Diff([]string{"demo-1", "demo-2", "demo-10"}, got.Sources); diff != "" {
		t.Errorf("Sources mismatch (-want +got):\n%s", diff)
	}

	prompt := client.requests[0].Prompt
	i1 := strings.Index(prompt, "--- From demo-1 ---\ncontent of demo-1")
	i2 := strings.Index(prompt, "--- From demo-2 ---\ncontent of demo-2")
	i10 := strings.Index(prompt, "--- From demo-10 ---\ncontent of demo-10")
	if i1 < 0 || i2 < 0 || i10 < 0 {
		t.Fatalf("prompt missing provenance headers:\n%s", prompt)
	}
	if !(i1 < i2 && i2 < i10) {
		t.Errorf("sections out of order: demo-1@%d demo-2@%d demo-10@%d", i1, i2, i10)
	}
	if client.requests[0].System != consolidateSystem {
		t.Errorf("System = %q", client.requests[0].System)
	}
}

func TestConsolidateLectureFallsBackToAnalysis(t *testing.T) {
	agg, client, out := newTestAggregator(t, 0)

	writeFile(t, filepath.Join(out.GroupDir("slides-1"), layout.ImportantFile), "important one")
	writeFile(t, filepath.Join(out.GroupDir("slides-1"), layout.AnalysisFile), "analysis one")
	writeFile(t, filepath.Join(out.GroupDir("slides-2"), layout.AnalysisFile), "analysis two")
	if err := os.MkdirAll(out.GroupDir("slides-3"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := agg.ConsolidateLecture(context.Background(), "slides")
	if err != nil {
		t.Fatalf("ConsolidateLecture() error = %v", err)
	}
	if diff := cmp.Diff([]string{"slides-1", "slides-2"}, got.Sources); diff != "" {
		t.Errorf("Sources mismatch (-want +got):\n%s", diff)
	}

	prompt := client.requests[0].Prompt
	if strings.Contains(prompt, "analysis one") {
		t.Error("analysis.txt read although important_content.txt exists")
	}
	for _, want := range []string{"important one", "analysis two"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestConsolidateLectureIgnoresOtherGroups(t *testing.T) {
	agg, _, out := newTestAggregator(t, 0)

	writeFile(t, filepath.Join(out.GroupDir("demo-1"), layout.ImportantFile), "mine")
	writeFile(t, filepath.Join(out.GroupDir("demo-extra-1"), layout.ImportantFile), "other lecture")
	writeFile(t, filepath.Join(out.PDFDir("demo-1"), layout.ImportantFile), "a document")

	got, err := agg.ConsolidateLecture(context.Background(), "demo")
	if err != nil {
		t.Fatalf("ConsolidateLecture() error = %v", err)
	}
	if diff := cmp.Diff([]string{"demo-1"}, got.Sources); diff != "" {
		t.Errorf("Sources mismatch (-want +got):\n%s", diff)
	}
}

func TestConsolidateLectureUsesManifest(t *testing.T) {
	agg, _, out := newTestAggregator(t, 0)

	// Directory names that do not follow the pattern still join via manifest.
	for _, g := range []struct {
		dir   string
		index int
	}{{"b", 2}, {"a", 11}, {"c", 1}} {
		dir := out.GroupDir(g.dir)
		writeFile(t, filepath.Join(dir, layout.ImportantFile), g.dir)
		m := layout.NewManifest(g.dir, layout.KindImage, g.dir+".png")
		m.Lecture = "week"
		m.Index = g.index
		if err := layout.WriteManifest(dir, m); err != nil {
			t.Fatal(err)
		}
	}

	got, err := agg.ConsolidateLecture(context.Background(), "week")
	if err != nil {
		t.Fatalf("ConsolidateLecture() error = %v", err)
	}
	if diff := cmp.Diff([]string{"c", "b", "a"}, got.Sources); diff != "" {
		t.Errorf("Sources mismatch (-want +got):\n%s", diff)
	}
}

func TestConsolidateLectureSkipsFailedSlides(t *testing.T) {
	agg, client, out := newTestAggregator(t, 0)

	for i, failed := range []bool{false, true, false} {
		name := fmt.Sprintf("deck-%d", i+1)
		dir := out.GroupDir(name)
		writeFile(t, filepath.Join(dir, layout.ImportantFile), "content of "+name)

		m := layout.NewManifest(name, layout.KindImage, name+".png")
		m.Lecture = "deck"
		m.Index = i + 1
		page := layout.ManifestPage{Page: 1, Analysis: layout.AnalysisFile}
		if failed {
			page = layout.ManifestPage{Page: 1, Error: "quota exceeded"}
		}
		m.Pages = append(m.Pages, page)
		if err := layout.WriteManifest(dir, m); err != nil {
			t.Fatal(err)
		}
	}

	got, err := agg.ConsolidateLecture(context.Background(), "deck")
	if err != nil {
		t.Fatalf("ConsolidateLecture() error = %v", err)
	}
	if diff := cmp.Diff([]string{"deck-1", "deck-3"}, got.Sources); diff != "" {
		t.Errorf("Sources mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(client.requests[0].Prompt, "content of deck-2") {
		t.Error("failed slide content reached the consolidation prompt")
	}
}

func TestConsolidateLectureNotFound(t *testing.T) {
	agg, client, out := newTestAggregator(t, 0)

	if err := os.MkdirAll(out.GroupDir("empty-1"), 0755); err != nil {
		t.Fatal(err)
	}

	for _, lecture := range []string{"missing", "empty"} {
		t.Run(lecture, func(t *testing.T) {
			_, err := agg.ConsolidateLecture(context.Background(), lecture)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("ConsolidateLecture() error = %v, want ErrNotFound", err)
			}
			if layout.Exists(out.ConsolidatedPath(lecture)) {
				t.Error("output file written for empty source set")
			}
		})
	}
	if len(client.requests) != 0 {
		t.Errorf("LLM called %d times, want 0", len(client.requests))
	}
}

func TestConsolidateDocumentPrefersImportantContent(t *testing.T) {
	agg, client, out := newTestAggregator(t, 0)

	writeFile(t, filepath.Join(out.PDFDir("lec"), layout.ImportantFile), "the important bits")
	writeFile(t, out.PageAnalysisPath("lec", 1), "page one analysis")

	got, err := agg.ConsolidateDocument(context.Background(), "lec")
	if err != nil {
		t.Fatalf("ConsolidateDocument() error = %v", err)
	}
	if diff := cmp.Diff([]string{layout.ImportantFile}, got.Sources); diff != "" {
		t.Errorf("Sources mismatch (-want +got):\n%s", diff)
	}
	prompt := client.requests[0].Prompt
	if strings.Contains(prompt, "page one analysis") {
		t.Error("page analyses read although important_content.txt exists")
	}
	if !strings.Contains(prompt, "the important bits") {
		t.Error("prompt missing important content")
	}
	if !strings.Contains(prompt, `titled "lec"`) {
		t.Error("prompt missing title")
	}
}

func TestConsolidateDocumentFallsBackToPages(t *testing.T) {
	agg, client, out := newTestAggregator(t, 0)

	for _, p := range []int{10, 2, 1} {
		writeFile(t, out.PageAnalysisPath("lec", p), "analysis "+layout.PageAnalysisName(p))
	}
	writeFile(t, filepath.Join(out.PDFAnalysisDir("lec"), "notes.txt"), "ignored")

	got, err := agg.ConsolidateDocument(context.Background(), "lec")
	if err != nil {
		t.Fatalf("ConsolidateDocument() error = %v", err)
	}

	want := []string{"page_1_analysis.txt", "page_2_analysis.txt", "page_10_analysis.txt"}
	if diff := cmp.Diff(want, got.Sources); diff != "" {
		t.Errorf("Sources mismatch (-want +got):\n%s", diff)
	}

	prompt := client.requests[0].Prompt
	if strings.Contains(prompt, "ignored") {
		t.Error("non-analysis file included")
	}
	if !strings.Contains(prompt, "--- From page_1_analysis.txt ---\nanalysis page_1_analysis.txt\n\n--- From page_2_analysis.txt ---") {
		t.Errorf("unexpected page concatenation:\n%s", prompt)
	}
}

func TestConsolidateDocumentSkipsFailedPages(t *testing.T) {
	agg, _, out := newTestAggregator(t, 0)

	dir := out.PDFDir("lec")
	writeFile(t, out.PageAnalysisPath("lec", 1), "one")
	writeFile(t, out.PageAnalysisPath("lec", 3), "three")

	m := layout.NewManifest(layout.PDFGroup("lec"), layout.KindPDF, "lec.pdf")
	m.Pages = []layout.ManifestPage{
		{Page: 3, Analysis: "analysis/page_3_analysis.txt"},
		{Page: 2, Error: "rate limited"},
		{Page: 1, Analysis: "analysis/page_1_analysis.txt"},
	}
	if err := layout.WriteManifest(dir, m); err != nil {
		t.Fatal(err)
	}

	got, err := agg.ConsolidateDocument(context.Background(), "lec")
	if err != nil {
		t.Fatalf("ConsolidateDocument() error = %v", err)
	}
	want := []string{"page_1_analysis.txt", "page_3_analysis.txt"}
	if diff := cmp.Diff(want, got.Sources); diff != "" {
		t.Errorf("Sources mismatch (-want +got):\n%s", diff)
	}
}

func TestConsolidateDocumentNotFound(t *testing.T) {
	agg, client, out := newTestAggregator(t, 0)

	if err := os.MkdirAll(out.PDFAnalysisDir("blank"), 0755); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"absent", "blank"} {
		t.Run(name, func(t *testing.T) {
			_, err := agg.ConsolidateDocument(context.Background(), name)
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("ConsolidateDocument() error = %v, want ErrNotFound", err)
			}
			if layout.Exists(out.ConsolidatedPath(name)) {
				t.Error("output file written for empty source set")
			}
		})
	}
	if len(client.requests) != 0 {
		t.Errorf("LLM called %d times, want 0", len(client.requests))
	}
}

func TestConsolidateWritesTitledMarkdown(t *testing.T) {
	agg, _, out := newTestAggregator(t, 0)
	writeFile(t, filepath.Join(out.PDFDir("lec"), layout.ImportantFile), "x")

	got, err := agg.ConsolidateDocument(context.Background(), "lec")
	if err != nil {
		t.Fatalf("ConsolidateDocument() error = %v", err)
	}
	if got.Path != out.ConsolidatedPath("lec") {
		t.Errorf("Path = %q, want %q", got.Path, out.ConsolidatedPath("lec"))
	}

	data, err := os.ReadFile(got.Path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "# lec - Important Content\n\nconsolidated body"; string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestConsolidateTruncatesInput(t *testing.T) {
	agg, client, out := newTestAggregator(t, 50)
	writeFile(t, filepath.Join(out.PDFDir("lec"), layout.ImportantFile), strings.Repeat("a", 500))

	if _, err := agg.ConsolidateDocument(context.Background(), "lec"); err != nil {
		t.Fatalf("ConsolidateDocument() error = %v", err)
	}
	if n := strings.Count(client.requests[0].Prompt, "a"); n > 50+strings.Count(consolidatePrompt, "a") {
		t.Errorf("prompt carries %d 'a' runes, input not truncated", n)
	}
}

func TestConsolidateLLMError(t *testing.T) {
	agg, client, out := newTestAggregator(t, 0)
	client.err = errors.New("boom")
	writeFile(t, filepath.Join(out.PDFDir("lec"), layout.ImportantFile), "x")

	if _, err := agg.ConsolidateDocument(context.Background(), "lec"); err == nil {
		t.Fatal("ConsolidateDocument() error = nil, want error")
	}
	if layout.Exists(out.ConsolidatedPath("lec")) {
		t.Error("output file written after LLM failure")
	}
}

func TestDiscover(t *testing.T) {
	agg, _, out := newTestAggregator(t, 0)

	for _, dir := range []string{"pdf-zeta", "pdf-alpha", "demo-1", "demo-2", "other-3", "notes", ".hidden-1"} {
		if err := os.MkdirAll(out.GroupDir(dir), 0755); err != nil {
			t.Fatal(err)
		}
	}
	m := layout.NewManifest("irregular", layout.KindImage, "irregular.png")
	m.Lecture = "week"
	m.Index = 1
	if err := layout.WriteManifest(out.GroupDir("irregular"), m); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(out.Root(), "demo.md"), "previous run")

	got, err := agg.Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	want := Groups{
		Documents: []string{"alpha", "zeta"},
		Lectures:  []string{"demo", "other", "week"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}
}
