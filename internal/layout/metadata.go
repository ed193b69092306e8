package layout

import (
	"path/filepath"

	"github.com/google/uuid"
)

// DocumentMetadata is pdf-<name>/metadata.json.
type DocumentMetadata struct {
	FileName  string         `json:"file_name"`
	PageCount int            `json:"page_count"`
	HasText   bool           `json:"has_text"`
	Pages     []PageMetadata `json:"pages"`
}

type PageMetadata struct {
	Page        int  `json:"page"`
	HasAnalysis bool `json:"has_analysis"`
}

// ImageMetadata is <image>/metadata.json.
type ImageMetadata struct {
	FileName    string `json:"file_name"`
	FilePath    string `json:"file_path"`
	HasAnalysis bool   `json:"has_analysis"`
}

// Group kinds recorded in manifests.
const (
	KindPDF   = "pdf"
	KindImage = "image"
)

// Manifest records which artifacts belong to a group so the aggregator can
// look membership up instead of inferring it from directory names.
type Manifest struct {
	RunID   string         `json:"run_id"`
	Group   string         `json:"group"`
	Kind    string         `json:"kind"`
	Source  string         `json:"source"`
	Lecture string         `json:"lecture,omitempty"`
	Index   int            `json:"index,omitempty"`
	Pages   []ManifestPage `json:"pages"`
}

// ManifestPage paths are relative to the group directory.
type ManifestPage struct {
	Page     int    `json:"page"`
	Image    string `json:"image,omitempty"`
	Analysis string `json:"analysis,omitempty"`
	Error    string `json:"error,omitempty"`
}

func NewManifest(group, kind, source string) *Manifest {
	return &Manifest{
		RunID:  uuid.NewString(),
		Group:  group,
		Kind:   kind,
		Source: source,
		Pages:  []ManifestPage{},
	}
}

// ReadManifest loads dir/manifest.json. A missing manifest returns an error
// satisfying errors.Is(err, fs.ErrNotExist).
func ReadManifest(dir string) (*Manifest, error) {
	var m Manifest
	if err := ReadJSON(filepath.Join(dir, ManifestFile), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func WriteManifest(dir string, m *Manifest) error {
	return WriteJSON(filepath.Join(dir, ManifestFile), m)
}
