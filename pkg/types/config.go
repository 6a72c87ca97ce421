// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SummaryMode selects how the front matter summary is produced.
type SummaryMode string

const (
	// SummaryPlaceholder always emits the fixed placeholder summary.
	SummaryPlaceholder SummaryMode = "placeholder"
	// SummaryFirstParagraph uses the first paragraph of the body, falling
	// back to the placeholder when there is none.
	SummaryFirstParagraph SummaryMode = "first-paragraph"
)

// ConverterConfig holds settings for the external notebook converter.
type ConverterConfig struct {
	// Command is the converter binary (default "jupyter").
	Command string `json:"command" yaml:"command" mapstructure:"command"`

	// Args precede the notebook path on the command line
	// (default ["nbconvert", "--to", "markdown"]).
	Args []string `json:"args" yaml:"args" mapstructure:"args"`
}

// FrontMatterConfig holds the fixed values written into every bundle header.
type FrontMatterConfig struct {
	// PostType is the post_type tag the site theme keys its badge on.
	PostType string `json:"post_type" yaml:"post_type" mapstructure:"post_type"`

	// Draft is the draft flag written into the header (default false).
	Draft bool `json:"draft" yaml:"draft" mapstructure:"draft"`
}

// SummaryConfig holds settings for summary generation.
type SummaryConfig struct {
	Mode SummaryMode `json:"mode" yaml:"mode" mapstructure:"mode"`
}

// SiteConfig groups all settings read from nb2hugo.yaml.
type SiteConfig struct {
	// ContentDir is the root under which bundles are created (default "content/posts").
	ContentDir  string            `json:"content_dir" yaml:"content_dir" mapstructure:"content_dir"`
	Converter   ConverterConfig   `json:"converter" yaml:"converter" mapstructure:"converter"`
	FrontMatter FrontMatterConfig `json:"front_matter" yaml:"front_matter" mapstructure:"front_matter"`
	Summary     SummaryConfig     `json:"summary" yaml:"summary" mapstructure:"summary"`
}
