package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/decker502/linepuncher/pkg/embedded"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内置配置文件路径（位于嵌入的 data/ 目录）
const DefaultConfigPath = "data/puncher.yaml"

// PuncherConfig 动画配置
//
// 所有字段在加载后视为只读，通过构造函数传递给各个模块，
// 不存在进程级的可变全局配置。
//
// 配置文件位置: data/puncher.yaml
type PuncherConfig struct {
	// Nodes 链上的节点数量（固定，运行时不可修改）
	Nodes int `yaml:"nodes"`

	// Lines 每个节点的子线段数量（1 或 2，两段时左右镜像）
	Lines int `yaml:"lines"`

	// StepGap 每个 tick 的总步长，实际步长为 StepGap / Lines
	StepGap float64 `yaml:"stepGap"`

	// DelayMs tick 间隔（毫秒）
	DelayMs int `yaml:"delayMs"`

	// StrokeFactor 线宽因子：线宽 = min(宽, 高) / StrokeFactor
	StrokeFactor float64 `yaml:"strokeFactor"`

	// SizeFactor 竖线长度因子：长度 = 节点间距 / SizeFactor
	SizeFactor float64 `yaml:"sizeFactor"`

	// ForeColor 线条颜色（#rrggbb）
	ForeColor string `yaml:"foreColor"`

	// BackColor 背景颜色（#rrggbb）
	BackColor string `yaml:"backColor"`

	// Width 窗口逻辑宽度（像素）
	Width int `yaml:"width"`

	// Height 窗口逻辑高度（像素）
	Height int `yaml:"height"`
}

// DefaultPuncherConfig 返回默认配置
func DefaultPuncherConfig() *PuncherConfig {
	return &PuncherConfig{
		Nodes:        5,
		Lines:        2,
		StepGap:      0.02,
		DelayMs:      30,
		StrokeFactor: 90,
		SizeFactor:   2.9,
		ForeColor:    "#9c27b0",
		BackColor:    "#bdbdbd",
		Width:        800,
		Height:       600,
	}
}

// ParseConfig 解析 YAML 格式的配置
//
// 文件中未出现的字段保留默认值。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *PuncherConfig: 校验通过的配置
//   - error: 解析或校验失败时返回错误
func ParseConfig(data []byte) (*PuncherConfig, error) {
	cfg := DefaultPuncherConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse puncher config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid puncher config: %w", err)
	}

	return cfg, nil
}

// LoadConfig 从磁盘加载配置文件
func LoadConfig(path string) (*PuncherConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puncher config: %w", err)
	}
	return ParseConfig(data)
}

// LoadEmbeddedConfig 从嵌入资源加载配置文件
// 调用前必须先调用 embedded.Init()
func LoadEmbeddedConfig(path string) (*PuncherConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded puncher config: %w", err)
	}
	return ParseConfig(data)
}

// Validate 验证配置有效性
//
// 节点数、步长、间隔和各尺寸因子必须为正，线段数只能是 1 或 2，
// 颜色必须是合法的十六进制颜色。
func (c *PuncherConfig) Validate() error {
	if c.Nodes <= 0 {
		return fmt.Errorf("nodes must be positive, got %d", c.Nodes)
	}
	if c.Lines != 1 && c.Lines != 2 {
		return fmt.Errorf("lines must be 1 or 2, got %d", c.Lines)
	}
	if c.StepGap <= 0 || c.StepGap > 1 {
		return fmt.Errorf("stepGap must be in (0, 1], got %.4f", c.StepGap)
	}
	if c.DelayMs <= 0 {
		return fmt.Errorf("delayMs must be positive, got %d", c.DelayMs)
	}
	if c.StrokeFactor <= 0 {
		return fmt.Errorf("strokeFactor must be positive, got %.2f", c.StrokeFactor)
	}
	if c.SizeFactor <= 0 {
		return fmt.Errorf("sizeFactor must be positive, got %.2f", c.SizeFactor)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if _, err := colorful.Hex(c.ForeColor); err != nil {
		return fmt.Errorf("foreColor %q: %w", c.ForeColor, err)
	}
	if _, err := colorful.Hex(c.BackColor); err != nil {
		return fmt.Errorf("backColor %q: %w", c.BackColor, err)
	}
	return nil
}

// ScaleGap 每个 tick 的进度增量
func (c *PuncherConfig) ScaleGap() float64 {
	return c.StepGap / float64(c.Lines)
}

// Delay tick 间隔
func (c *PuncherConfig) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// ForeRGBA 线条颜色
// 颜色在 Validate 中已校验，解析失败时回退为黑色
func (c *PuncherConfig) ForeRGBA() color.RGBA {
	return hexToRGBA(c.ForeColor)
}

// BackRGBA 背景颜色
func (c *PuncherConfig) BackRGBA() color.RGBA {
	return hexToRGBA(c.BackColor)
}

func hexToRGBA(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
