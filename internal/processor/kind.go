package processor

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is the pipeline a file is dispatched to.
type Kind int

const (
	KindAudio Kind = iota + 1
	KindPDF
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindPDF:
		return "pdf"
	case KindImage:
		return "image"
	default:
		return "unsupported"
	}
}

var extensions = map[string]Kind{
	".mp3":  KindAudio,
	".mp4":  KindAudio,
	".mpeg": KindAudio,
	".mpga": KindAudio,
	".m4a":  KindAudio,
	".wav":  KindAudio,
	".webm": KindAudio,
	".pdf":  KindPDF,
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".gif":  KindImage,
	".bmp":  KindImage,
}

// Classify maps a path to its Kind by extension, case-insensitively.
func Classify(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if k, ok := extensions[ext]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Base(path))
}

// stem is the file name without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
