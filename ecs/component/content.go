package component

import "image/color"

type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockLogo
	BlockCards
	BlockList
	BlockButton
)

type Card struct {
	Title  string
	Body   string
	Accent color.Color
}

// Block is one element of a section, laid out top to bottom.
type Block struct {
	Kind     BlockKind
	Text     string
	Color    color.Color
	SizeRem  float64
	Bold     bool
	MaxWidth float64 // pixels; 0 means unbounded
	Indent   float64 // pixels
	Margin   float64 // pixels above the block
	Items    []string
	Cards    []Card
	Action   string
}

// Section is positioned in document space: TopVH viewport heights from the
// top, InsetVW viewport widths from its aligned edge.
type Section struct {
	ID      string
	Anchors []string
	TopVH   float64
	InsetVW float64
	Align   Align
	// Fade eases the section in and out across its scroll window.
	Fade   bool
	Blocks []Block
}

type NavItem struct {
	Label  string
	Anchor string
}

// Content is the biographical overlay scrolled over the scene.
type Content struct {
	Sections []Section
	Nav      []NavItem
	Contact  string
	// HoveredAction is the button under the cursor during the last frame.
	HoveredAction string

	// Layout is the screen placement of every block, computed while the
	// document was scrolled LayoutPixels down.
	Layout       []Placed
	LayoutPixels float64
	// Windows holds, per section, the span of scroll progress during which
	// any of it is on screen.
	Windows []ScrollWindow
}

// ScrollWindow is a span of scroll progress starting at From.
type ScrollWindow struct {
	From, Distance float64
}

// Placed is a block laid out in screen space.
type Placed struct {
	Block   *Block
	Section int
	Align   Align
	X, Y    float64
	W, H    float64
	SizePx  float64
	Lines   []string
	Cards   []PlacedCard
	Items   [][]string
}

type PlacedCard struct {
	X, Y, W, H float64
	Body       []string
}

// Contains reports whether the point lies inside the placement.
func (p Placed) Contains(x, y float64) bool {
	return x >= p.X && x < p.X+p.W && y >= p.Y && y < p.Y+p.H
}

var ContentComponent = NewComponent[Content]()
