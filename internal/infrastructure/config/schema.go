package config

// Config represents the complete configuration for ssnfield.
type Config struct {
	// Appearance controls the colors and border of the field.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	// Field controls the initial display mode and caret behavior.
	Field FieldConfig `mapstructure:"field" toml:"field" json:"field"`
	// Logging controls log level, format and the optional log file.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// ColorPalette holds the hex colors used to render the field.
type ColorPalette struct {
	// Text colors filled digit slots.
	Text string `mapstructure:"text" toml:"text" json:"text" validate:"hexcolor" jsonschema_description:"Color of entered digits"`
	// Muted colors placeholder slots, separators and help.
	Muted string `mapstructure:"muted" toml:"muted" json:"muted" validate:"hexcolor" jsonschema_description:"Color of placeholder slots and help text"`
	// Accent colors the caret and the visibility toggle.
	Accent string `mapstructure:"accent" toml:"accent" json:"accent" validate:"hexcolor" jsonschema_description:"Color of the caret and the visibility toggle"`
	// Border colors the field border.
	Border string `mapstructure:"border" toml:"border" json:"border" validate:"hexcolor" jsonschema_description:"Color of the field border"`
}

// BorderStyle names a lipgloss border.
type BorderStyle string

const (
	BorderRounded BorderStyle = "rounded"
	BorderNormal  BorderStyle = "normal"
	BorderThick   BorderStyle = "thick"
	BorderDouble  BorderStyle = "double"
)

// AppearanceConfig controls field styling.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
	Border  BorderStyle  `mapstructure:"border" toml:"border" json:"border" validate:"oneof=rounded normal thick double" jsonschema:"enum=rounded,enum=normal,enum=thick,enum=double"`
	// Bold renders filled digits in bold.
	Bold bool `mapstructure:"bold" toml:"bold" json:"bold"`
}

// FieldConfig controls the input widget behavior.
type FieldConfig struct {
	// StartMasked opens the field in masked mode.
	StartMasked bool `mapstructure:"start_masked" toml:"start_masked" json:"start_masked" jsonschema_description:"Open the field with digits masked"`
	// CaretMapping selects how a clicked display column maps back to a raw
	// caret position: "truncating" (default) or "exact".
	CaretMapping string `mapstructure:"caret_mapping" toml:"caret_mapping" json:"caret_mapping" validate:"oneof=truncating exact" jsonschema:"enum=truncating,enum=exact"`
}

// LoggingConfig controls logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" validate:"oneof=trace debug info warn error disabled" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" validate:"oneof=console json" jsonschema:"enum=console,enum=json"`
	// File receives log lines while the interactive field runs. Empty disables file logging.
	File      string `mapstructure:"file" toml:"file" json:"file" jsonschema_description:"Log file used by the interactive field; empty disables logging"`
	MaxSizeMB int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" validate:"gte=0,lte=1024"`
}
