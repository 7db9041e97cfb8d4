package config

// Config is the build-tooling configuration document. It only drives the
// build-time steps (theme compilation and class discovery); nothing here
// is read on the render path.
type Config struct {
	Version  string         `yaml:"version" validate:"required,semver"`
	Theme    ThemeConfig    `yaml:"theme" validate:"required"`
	Locales  LocalesConfig  `yaml:"locales,omitempty"`
	Safelist SafelistConfig `yaml:"safelist" validate:"required"`
}

// ThemeConfig locates the token declarations and the compiled output.
type ThemeConfig struct {
	Path   string `yaml:"path" validate:"required"`
	Output string `yaml:"output,omitempty"`
}

// LocalesConfig locates the translation catalogs consumed through the
// lookup interface.
type LocalesConfig struct {
	Dir     string `yaml:"dir,omitempty"`
	Default string `yaml:"default,omitempty"`
}

// SafelistConfig drives static class discovery: which source trees the
// scan covers and which class-name shapes it looks for.
type SafelistConfig struct {
	Output   string   `yaml:"output" validate:"required"`
	Content  []string `yaml:"content" validate:"required,min=1,dive,required"`
	Patterns []string `yaml:"patterns,omitempty" validate:"omitempty,dive,class_pattern"`
}
