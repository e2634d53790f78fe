package pullrefresh

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance.
var validate = validator.New()

// Default tuning values. Distances are in density-independent pixels.
const (
	DefaultMaxDragDistance = 160 // dp
	DefaultTriggerRatio    = 0.6 // of the max drag distance
	DefaultShowDuration    = 200 * time.Millisecond
)

// Config holds the tunables of a Layout. Distances are density-independent
// and multiplied by Density when the config is applied. A zero
// TriggerDistance or RefreshingHeight selects the derived default.
//
// Example YAML:
//
//	drag_rate: 0.5
//	max_drag_distance: 160
//	success_show_duration: 350ms
type Config struct {
	DragRate            float64       `json:"drag_rate" yaml:"drag_rate" validate:"gt=0,lte=1"`
	MaxDragDistance     int           `json:"max_drag_distance" yaml:"max_drag_distance" validate:"gt=0"`
	TriggerDistance     int           `json:"trigger_distance" yaml:"trigger_distance" validate:"gte=0"`
	RefreshingHeight    int           `json:"refreshing_height" yaml:"refreshing_height" validate:"gte=0"`
	SuccessShowDuration time.Duration `json:"success_show_duration" yaml:"success_show_duration" validate:"gte=0"`
	FailureShowDuration time.Duration `json:"failure_show_duration" yaml:"failure_show_duration" validate:"gte=0"`
	HeaderOffset        int           `json:"header_offset" yaml:"header_offset"`
	PinContent          bool          `json:"pin_content" yaml:"pin_content"`
	TouchSlop           int           `json:"touch_slop" yaml:"touch_slop" validate:"gte=0"`
	Density             float64       `json:"density" yaml:"density" validate:"gt=0"`
	Disabled            bool          `json:"disabled" yaml:"disabled"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		DragRate:            DefaultDragRate,
		MaxDragDistance:     DefaultMaxDragDistance,
		SuccessShowDuration: DefaultShowDuration,
		FailureShowDuration: DefaultShowDuration,
		TouchSlop:           defaultTouchSlop,
		Density:             1,
	}
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// metrics are the pixel values a Config resolves to.
type metrics struct {
	maxDrag          int
	trigger          int
	refreshingHeight int // 0 means use the header height
	headerOffset     int
	slop             int
}

// resolve converts dp to pixels. The drag and trigger distances never
// resolve below one pixel.
func (c Config) resolve() metrics {
	px := func(dp int) int { return int(float64(dp) * c.Density) }
	m := metrics{
		maxDrag:          px(c.MaxDragDistance),
		refreshingHeight: px(c.RefreshingHeight),
		headerOffset:     px(c.HeaderOffset),
		slop:             px(c.TouchSlop),
	}
	if c.TriggerDistance > 0 {
		m.trigger = px(c.TriggerDistance)
	} else {
		m.trigger = int(float64(m.maxDrag) * DefaultTriggerRatio)
	}
	m.maxDrag = max(m.maxDrag, 1)
	m.trigger = max(min(m.trigger, m.maxDrag), 1)
	return m
}

// --- Codecs ---

// Codec defines the deserialization contract for configuration data.
type Codec interface {
	// Unmarshal deserializes bytes into a value.
	Unmarshal(data []byte, v any) error

	// ContentType returns the MIME type for observability and debugging.
	ContentType() string
}

// JSONCodec implements Codec using encoding/json. Durations are nanoseconds.
type JSONCodec struct{}

// Unmarshal deserializes JSON bytes into v.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ContentType returns the JSON MIME type.
func (JSONCodec) ContentType() string {
	return "application/json"
}

var _ Codec = JSONCodec{}

// YAMLCodec implements Codec using gopkg.in/yaml.v3. Durations accept Go
// duration strings such as "350ms".
type YAMLCodec struct{}

// Unmarshal deserializes YAML bytes into v.
func (YAMLCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// ContentType returns the YAML MIME type.
func (YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

var _ Codec = YAMLCodec{}

// CodecFor picks a codec from a file extension. Anything other than .json
// is read as YAML.
func CodecFor(path string) Codec {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSONCodec{}
	}
	return YAMLCodec{}
}

// LoadConfig decodes data over DefaultConfig and validates the result, so a
// partial document only overrides the keys it names.
func LoadConfig(data []byte, codec Codec) (Config, error) {
	cfg := DefaultConfig()
	if err := codec.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s config: %w", codec.ContentType(), err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes the config file at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return LoadConfig(data, CodecFor(path))
}
