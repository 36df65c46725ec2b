package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/reefolio/scroll"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SceneSpec struct {
	Name           string          `yaml:"name"`
	Scroll         ScrollSpec      `yaml:"scroll"`
	Camera         CameraSpec      `yaml:"camera"`
	Lighting       LightingSpec    `yaml:"lighting"`
	BubbleMaterial MaterialSpec    `yaml:"bubble_material"`
	Bubbles        []BubbleSpec    `yaml:"bubbles"`
	Sparkles       SparklesSpec    `yaml:"sparkles"`
	Ambience       AmbienceSpec    `yaml:"ambience"`
	Content        string          `yaml:"content"`
	RenderLayers   RenderLayerSpec `yaml:"render_layers"`
}

// LoadSceneSpec loads and validates a scene prefab.
func LoadSceneSpec(name string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

func (s *SceneSpec) Validate() error {
	var errs []error
	if len(s.Camera.Path.Points) < 2 {
		errs = append(errs, errors.New("camera.path needs at least two points"))
	}
	// zero smoothing and fov fall back to the camera defaults
	if s.Camera.Smoothing < 0 || s.Camera.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("camera.smoothing %v must be in (0,1]", s.Camera.Smoothing))
	}
	if s.Camera.FOV < 0 || s.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov %v must be in (0,180)", s.Camera.FOV))
	}
	if err := s.Scroll.Config().WithDefaults().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("scroll: %w", err))
	}
	for i, b := range s.Bubbles {
		if b.Radius < 0 || (b.Amplitude != nil && *b.Amplitude < 0) {
			errs = append(errs, fmt.Errorf("bubbles[%d]: radius and amplitude must not be negative", i))
		}
	}
	if s.Sparkles.Count < 0 {
		errs = append(errs, fmt.Errorf("sparkles.count %d must not be negative", s.Sparkles.Count))
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidSpec}, errs...)...)
}

type ScrollSpec struct {
	Pages     float64 `yaml:"pages"`
	Distance  float64 `yaml:"distance"`
	Damping   float64 `yaml:"damping"`
	WheelStep float64 `yaml:"wheel_step"`
	KeyStep   float64 `yaml:"key_step"`
}

// Config converts the prefab fields; omitted fields stay zero for
// scroll.Config.WithDefaults.
func (s ScrollSpec) Config() scroll.Config {
	return scroll.Config{Pages: s.Pages, Distance: s.Distance, Damping: s.Damping}
}

type PathSpec struct {
	Type    string     `yaml:"type"`
	Closed  bool       `yaml:"closed"`
	Tension *float64   `yaml:"tension"`
	Points  []Vec3Spec `yaml:"points"`
}

type CameraSpec struct {
	Name      string   `yaml:"name"`
	FOV       float64  `yaml:"fov"`
	Near      float64  `yaml:"near"`
	Far       float64  `yaml:"far"`
	Position  Vec3Spec `yaml:"position"`
	Smoothing float64  `yaml:"smoothing"`
	LookAhead float64  `yaml:"look_ahead"`
	ArcLength bool     `yaml:"arc_length"`
	Path      PathSpec `yaml:"path"`
}

type LightSpec struct {
	Position  Vec3Spec   `yaml:"position"`
	Color     *YAMLColor `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
}

type LightingSpec struct {
	Ambient        LightSpec  `yaml:"ambient"`
	Point          LightSpec  `yaml:"point"`
	Spot           LightSpec  `yaml:"spot"`
	BackdropTop    *YAMLColor `yaml:"backdrop_top"`
	BackdropBottom *YAMLColor `yaml:"backdrop_bottom"`
}

type MaterialSpec struct {
	Color              *YAMLColor `yaml:"color"`
	Roughness          float64    `yaml:"roughness"`
	Metalness          float64    `yaml:"metalness"`
	Transmission       float64    `yaml:"transmission"`
	Thickness          float64    `yaml:"thickness"`
	IOR                float64    `yaml:"ior"`
	Clearcoat          float64    `yaml:"clearcoat"`
	ClearcoatRoughness float64    `yaml:"clearcoat_roughness"`
	Opacity            float64    `yaml:"opacity"`
	EnvMapIntensity    float64    `yaml:"env_map_intensity"`
}

type BubbleSpec struct {
	Name         string   `yaml:"name"`
	Position     Vec3Spec `yaml:"position"`
	Radius       float64  `yaml:"radius"`
	Speed        float64  `yaml:"speed"`
	Amplitude    *float64 `yaml:"amplitude"`
	Phase        float64  `yaml:"phase"`
	MotionScript string   `yaml:"motion_script"`
}

type SparklesSpec struct {
	Count   int        `yaml:"count"`
	Center  Vec3Spec   `yaml:"center"`
	Scale   Vec3Spec   `yaml:"scale"`
	Size    float64    `yaml:"size"`
	Speed   float64    `yaml:"speed"`
	Opacity float64    `yaml:"opacity"`
	Color   *YAMLColor `yaml:"color"`
	Seed    uint64     `yaml:"seed"`
}

type AmbienceSpec struct {
	Volume float64 `yaml:"volume"`
}

type RenderLayerSpec struct {
	Backdrop int `yaml:"backdrop"`
	Scene    int `yaml:"scene"`
	Content  int `yaml:"content"`
}

type ContentSpec struct {
	Contact  string        `yaml:"contact"`
	Nav      []NavItemSpec `yaml:"nav"`
	Sections []SectionSpec `yaml:"sections"`
}

func LoadContentSpec(name string) (*ContentSpec, error) {
	spec, err := LoadSpec[ContentSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// Validate checks that every navigation anchor resolves to a section.
func (c *ContentSpec) Validate() error {
	anchors := make(map[string]bool)
	for _, s := range c.Sections {
		for _, a := range s.Anchors {
			anchors[a] = true
		}
	}
	var errs []error
	for _, n := range c.Nav {
		if !anchors[n.Anchor] {
			errs = append(errs, fmt.Errorf("nav %q: unknown anchor %q", n.Label, n.Anchor))
		}
	}
	for _, s := range c.Sections {
		switch s.Align {
		case "", "left", "right", "center":
		default:
			errs = append(errs, fmt.Errorf("section %q: unknown align %q", s.ID, s.Align))
		}
		for i, b := range s.Blocks {
			if _, ok := blockKinds[b.Kind]; !ok {
				errs = append(errs, fmt.Errorf("section %q block %d: unknown kind %q", s.ID, i, b.Kind))
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidSpec}, errs...)...)
}

var blockKinds = map[string]struct{}{
	"heading": {}, "paragraph": {}, "logo": {}, "cards": {}, "list": {}, "button": {},
}

type NavItemSpec struct {
	Label  string `yaml:"label"`
	Anchor string `yaml:"anchor"`
}

type SectionSpec struct {
	ID      string      `yaml:"id"`
	Anchors []string    `yaml:"anchors"`
	TopVH   float64     `yaml:"top_vh"`
	InsetVW float64     `yaml:"inset_vw"`
	Align   string      `yaml:"align"`
	Fade    bool        `yaml:"fade"`
	Blocks  []BlockSpec `yaml:"blocks"`
}

type CardSpec struct {
	Title  string     `yaml:"title"`
	Body   string     `yaml:"body"`
	Accent *YAMLColor `yaml:"accent"`
}

type BlockSpec struct {
	Kind     string     `yaml:"kind"`
	Text     string     `yaml:"text"`
	Color    *YAMLColor `yaml:"color"`
	SizeRem  float64    `yaml:"size_rem"`
	Bold     bool       `yaml:"bold"`
	MaxWidth float64    `yaml:"max_width"`
	Indent   float64    `yaml:"indent"`
	Margin   float64    `yaml:"margin"`
	Items    []string   `yaml:"items"`
	Cards    []CardSpec `yaml:"cards"`
	Action   string     `yaml:"action"`
}

// Vec3Spec is a three element YAML sequence.
type Vec3Spec mgl64.Vec3

func (v *Vec3Spec) UnmarshalYAML(value *yaml.Node) error {
	var xs []float64
	if err := value.Decode(&xs); err != nil {
		return fmt.Errorf("vec3 must be a sequence of numbers: %w", err)
	}
	if len(xs) != 3 {
		return fmt.Errorf("vec3 needs 3 components, got %d", len(xs))
	}
	*v = Vec3Spec{xs[0], xs[1], xs[2]}
	return nil
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

type YAMLColor struct {
	color.Color
}

// Or returns the colour, or fallback when the field was absent.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
