package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// 運行模式
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Config 應用全局配置結構體
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"db"`
	Redis      RedisConfig      `mapstructure:"redis"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Log        LogConfig        `mapstructure:"log"`
	Validation ValidationConfig `mapstructure:"validation"`
}

// ServerConfig HTTP 伺服器配置
type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"` // development | production
	CORS CORSConfig `mapstructure:"cors"`
}

// IsProduction 是否為生產模式（決定錯誤訊息揭露程度）
func (c *ServerConfig) IsProduction() bool {
	return c.Mode == ModeProduction
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig PostgreSQL 資料庫配置
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN 生成 PostgreSQL 連線字串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis 配置（用於請求速率限制）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig API 速率限制配置
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LogConfig 日誌配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ValidationConfig 驗證用的枚舉成員清單
// 巡檢員與不良分類屬於業務資料而非程式常數，允許透過配置調整
type ValidationConfig struct {
	Departments      []string `mapstructure:"departments"`
	Inspectors       []string `mapstructure:"inspectors"`
	DefectCategories []string `mapstructure:"defect_categories"`
}

// Load 從配置文件與環境變數加載配置
// 優先級：環境變數 > 配置文件 > 默認值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默認值 ──
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", ModeDevelopment)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "qc_case")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Asia/Taipei")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", "15m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("validation.departments", []string{
		"", "塑膠射出課", "射出加工組", "機械加工課",
	})
	v.SetDefault("validation.inspectors", []string{
		"", "吳小男", "謝小宸", "黃小瀅", "蔡小函", "徐小棉", "杜小綾",
	})
	v.SetDefault("validation.defect_categories", []string{
		"", "無圖面", "圖物不符", "無工單", "無檢驗表單", "尺寸NG", "外觀NG",
	})

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 環境變數 ──
	v.SetEnvPrefix("QC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("讀取配置文件失敗: %w", err)
		}
		// 配置文件不存在時僅依賴默認值和環境變數
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失敗: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校驗關鍵配置項
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校驗失敗: server.port 必須在 1-65535 之間")
	}
	if c.Server.Mode != ModeDevelopment && c.Server.Mode != ModeProduction {
		return fmt.Errorf("配置校驗失敗: server.mode 必須是 development 或 production")
	}
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("配置校驗失敗: rate_limit.requests 必須大於 0")
	}
	return nil
}
