// Package config loads the optional edgeposter.yaml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ByLCY/edgeposter/fonts"
)

// DefaultPath is read when no --config flag is given. It may be absent.
const DefaultPath = "edgeposter.yaml"

// Config is the on-disk configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required,hostname_port"`
}

type RenderConfig struct {
	OutputDir   string     `yaml:"output_dir"`
	Format      string     `yaml:"format" validate:"oneof=png pdf jpeg"`
	JPEGQuality int        `yaml:"jpeg_quality" validate:"min=1,max=100"`
	Fonts       FontConfig `yaml:"fonts"`
}

// FontConfig holds font file paths. Title is used for the heavy title weight,
// Body for subtitle and footer. Empty paths are looked up among the System
// families, then fall back to the built-in Go fonts.
type FontConfig struct {
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	System string `yaml:"system"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Render: RenderConfig{
			OutputDir:   ".",
			Format:      "png",
			JPEGQuality: 92,
			Fonts:       FontConfig{System: fonts.SystemCJK},
		},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path means DefaultPath, which
// is allowed to be missing; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	optional := path == ""
	if optional {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("读取配置文件失败: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv applies environment overrides. PORT replaces the port of server.addr.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if port := strings.TrimSpace(getenv("PORT")); port != "" {
		host := c.Server.Addr
		if i := strings.LastIndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		c.Server.Addr = host + ":" + port
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks field constraints and reports the first failure by its yaml path.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return fmt.Errorf("配置项 %s 校验失败 (%s): %v", fieldPath(fe), fe.Tag(), fe.Value())
	}
	return err
}

var yamlNames = map[string]string{
	"jpegquality": "jpeg_quality",
	"outputdir":   "output_dir",
}

// fieldPath 将 Config.Render.JPEGQuality 转为 render.jpeg_quality。
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		p = strings.ToLower(p)
		if n, ok := yamlNames[p]; ok {
			p = n
		}
		parts[i] = p
	}
	return strings.Join(parts, ".")
}
