// Package docx renders consolidated markdown and SRT transcripts as Word
// documents.
package docx

// Exporter writes .docx files next to the markdown and subtitle outputs.
type Exporter interface {
	// Markdown renders markdown under a bold title line.
	Markdown(title, markdown, outputPath string) error
	// Transcript renders the dialogue of an SRT file, dropping cue numbers,
	// timestamps and repeated lines.
	Transcript(title, srt, outputPath string) error
}
