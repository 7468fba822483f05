package mdv

// Block is a sealed interface representing one unit of renderer output.
// A rendered document is an ordered sequence of blocks: styled text that
// passes through untouched, and image placeholders the pipeline resolves.
// The unexported marker method prevents external implementations.
type Block interface {
	block()
}

// TextBlock is ANSI-styled terminal text, emitted as-is.
type TextBlock struct {
	ANSI string
}

func (TextBlock) block() {}

// ImageBlock is an image placeholder carrying the raw reference from the
// markdown source and its alt text.
type ImageBlock struct {
	Reference string
	Alt       string
}

func (ImageBlock) block() {}

// Interface compliance checks.
var (
	_ Block = TextBlock{}
	_ Block = ImageBlock{}
)

// Renderer converts markdown source into an ordered sequence of display
// blocks. Text blocks are word-wrapped and styled for a terminal of the
// given width. Renderers never fail: unparseable input degrades to text.
type Renderer interface {
	Render(source string, width int) []Block
}
