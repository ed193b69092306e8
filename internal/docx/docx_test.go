package docx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseMarkdown(t *testing.T) {
	md := "# Title\n\nIntro **bold** text\n---\n## Section\n- first\n* second\n1. numbered\n```\n"

	want := []block{
		{kind: blockHeading, level: 1, text: "Title"},
		{kind: blockParagraph, text: "Intro **bold** text"},
		{kind: blockHeading, level: 2, text: "Section"},
		{kind: blockBullet, text: "first"},
		{kind: blockBullet, text: "second"},
		{kind: blockParagraph, text: "1. numbered"},
	}

	got := parseMarkdown(md)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(block{})); diff != "" {
		t.Errorf("parseMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestInlineSpans(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []span
	}{
		{"plain", "hello", []span{{text: "hello"}}},
		{"bold middle", "a **b** c", []span{{text: "a "}, {text: "b", bold: true}, {text: " c"}}},
		{"leading bold", "**key**: value", []span{{text: "key", bold: true}, {text: ": value"}}},
		{"code stripped", "use `go test`", []span{{text: "use go test"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inlineSpans(tt.in)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(span{})); diff != "" {
				t.Errorf("inlineSpans(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTranscriptLines(t *testing.T) {
	srt := "1\n00:00:00,000 --> 00:00:02,000\nHello everyone\n\n2\n00:00:02,000 --> 00:00:04,000\nHello everyone\n\n3\n00:00:04,000 --> 00:00:06,000\nToday we cover graphs\n"

	want := []string{"Hello everyone", "Today we cover graphs"}
	if diff := cmp.Diff(want, transcriptLines(srt)); diff != "" {
		t.Errorf("transcriptLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadingSize(t *testing.T) {
	tests := map[int]uint64{1: 16, 2: 15, 3: 14, 4: defaultSize, 6: defaultSize}
	for level, want := range tests {
		if got := headingSize(level); got != want {
			t.Errorf("headingSize(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestExporterWritesFiles(t *testing.T) {
	dir := t.TempDir()
	e := New()

	mdPath := filepath.Join(dir, "nested", "lec.docx")
	if err := e.Markdown("lec", "# Heading\n- point **one**\n", mdPath); err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}

	srtPath := filepath.Join(dir, "talk_transcript.docx")
	if err := e.Transcript("talk", "1\n00:00:00,000 --> 00:00:01,000\nhi\n", srtPath); err != nil {
		t.Fatalf("Transcript() error = %v", err)
	}

	for _, p := range []string{mdPath, srtPath} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("Stat(%s) error = %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}
