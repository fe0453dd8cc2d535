package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"github.com/arclio/markdowndeck/layout"
)

// appName names this program's log/report/temp-file artifacts.
const appName = "mdeck"

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type TemplateFieldName string

type (
	// MarginsConfig is the inset, in points, spec.md §4.3 reserves on each
	// side of the slide before the body region begins.
	MarginsConfig struct {
		Top    float64 `yaml:"top" validate:"gte=0"`
		Right  float64 `yaml:"right" validate:"gte=0"`
		Bottom float64 `yaml:"bottom" validate:"gte=0"`
		Left   float64 `yaml:"left" validate:"gte=0"`
	}

	// SlideConfig holds every geometric constant spec.md §4.3/§9 names.
	SlideConfig struct {
		WidthPt            float64       `yaml:"slide_width" validate:"gt=0"`
		HeightPt           float64       `yaml:"slide_height" validate:"gt=0"`
		Margins            MarginsConfig `yaml:"margins"`
		Gap                float64       `yaml:"gap" validate:"gte=0"`
		VSpacing           float64       `yaml:"vspacing" validate:"gte=0"`
		TitleZoneHeight    float64       `yaml:"title_zone_height" validate:"gte=0"`
		SubtitleZoneHeight float64       `yaml:"subtitle_zone_height" validate:"gte=0"`
		FooterZoneHeight   float64       `yaml:"footer_zone_height" validate:"gte=0"`
	}

	// PaginationConfig holds the pagination loop's configurable bounds
	// (spec.md §9's "max_passes" and "default_strategy").
	PaginationConfig struct {
		MaxPasses       int    `yaml:"max_passes" validate:"min=1"`
		DefaultStrategy string `yaml:"default_strategy" validate:"oneof=STANDARD"`
	}

	// FontConfig sizes the process-wide text-measurement cache
	// metrics.NewEngine builds (spec.md §4.1).
	FontConfig struct {
		MeasurementCacheSize int `yaml:"measurement_cache_size" validate:"min=1"`
	}

	EngineConfig struct {
		Version    int               `yaml:"version" validate:"eq=1"`
		Slide      SlideConfig       `yaml:"slide"`
		Pagination PaginationConfig  `yaml:"pagination"`
		Font       FontConfig        `yaml:"font"`
		Logging    LoggingConfig     `yaml:"logging"`
		Reporting  ReporterConfig    `yaml:"reporting"`
	}
)

// LayoutConfig converts the engine's on-disk configuration into the
// layout.Config the Calculator consumes, keeping the YAML schema and the
// layout package's own field names decoupled.
func (c *EngineConfig) LayoutConfig() layout.Config {
	return layout.Config{
		SlideWidth:  c.Slide.WidthPt,
		SlideHeight: c.Slide.HeightPt,
		Margins: layout.Margins{
			Top:    c.Slide.Margins.Top,
			Right:  c.Slide.Margins.Right,
			Bottom: c.Slide.Margins.Bottom,
			Left:   c.Slide.Margins.Left,
		},
		Gap:                c.Slide.Gap,
		VSpacing:           c.Slide.VSpacing,
		TitleZoneHeight:    c.Slide.TitleZoneHeight,
		SubtitleZoneHeight: c.Slide.SubtitleZoneHeight,
		FooterZoneHeight:   c.Slide.FooterZoneHeight,
	}
}

var requiredOptions = append([]func(*gencfg.ProcessingOptions){})

func unmarshalConfig(data []byte, cfg *EngineConfig, process bool) (*EngineConfig, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the expanded configuration template to
// provide sane defaults, and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*EngineConfig, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &EngineConfig{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *EngineConfig) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
