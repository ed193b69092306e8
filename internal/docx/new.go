package docx

const (
	defaultFont = "Times New Roman"
	defaultSize = 13
	titleSize   = 16
)

type implExporter struct {
	font string
	size uint64
}

func New() Exporter {
	return &implExporter{
		font: defaultFont,
		size: defaultSize,
	}
}
