package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AppConf struct {
	Env            string `mapstructure:"env"`
	Port           int    `mapstructure:"port"`
	ReadSeconds    int    `mapstructure:"read_timeout_seconds"`
	WriteSeconds   int    `mapstructure:"write_timeout_seconds"`
	ShutdownSecond int    `mapstructure:"shutdown_seconds"`
}

type MongoConf struct {
	URI             string `mapstructure:"uri"`
	Database        string `mapstructure:"database"`
	UserCollection  string `mapstructure:"user_collection"`
	AssetCollection string `mapstructure:"asset_collection"`
}

type RedisConf struct {
	Addr           string `mapstructure:"addr"`
	Password       string `mapstructure:"password"`
	DB             int    `mapstructure:"db"`
	CodeTTLMinutes int    `mapstructure:"code_ttl_minutes"`
}

type CloudinaryConf struct {
	CloudName  string `mapstructure:"cloud_name"`
	APIKey     string `mapstructure:"api_key"`
	APISecret  string `mapstructure:"api_secret"`
	RootFolder string `mapstructure:"root_folder"`
}

type BrevoConf struct {
	APIKey      string `mapstructure:"api_key"`
	SenderEmail string `mapstructure:"sender_email"`
	SenderName  string `mapstructure:"sender_name"`
}

type Config struct {
	App        AppConf        `mapstructure:"app"`
	Mongo      MongoConf      `mapstructure:"mongodb"`
	Redis      RedisConf      `mapstructure:"redis"`
	Cloudinary CloudinaryConf `mapstructure:"cloudinary"`
	Brevo      BrevoConf      `mapstructure:"brevo"`
	Batch      struct {
		Concurrency int `mapstructure:"concurrency"`
	} `mapstructure:"batch"`
	Upload struct {
		MaxFileSizeMB int `mapstructure:"max_file_size_mb"`
	} `mapstructure:"upload"`

	// derived
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the YAML config at path and lets environment variables override
// any key (dots become underscores, e.g. CLOUDINARY_API_SECRET).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8000)
	v.SetDefault("app.read_timeout_seconds", 30)
	v.SetDefault("app.write_timeout_seconds", 30)
	v.SetDefault("app.shutdown_seconds", 15)
	// empty defaults so AutomaticEnv can fill keys absent from the file
	v.SetDefault("mongodb.uri", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("cloudinary.cloud_name", "")
	v.SetDefault("cloudinary.api_key", "")
	v.SetDefault("cloudinary.api_secret", "")
	v.SetDefault("brevo.api_key", "")
	v.SetDefault("brevo.sender_email", "")
	v.SetDefault("brevo.sender_name", "Cloudee Team")
	v.SetDefault("mongodb.database", "cloudStorageProject")
	v.SetDefault("mongodb.user_collection", "user")
	v.SetDefault("mongodb.asset_collection", "asset")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.code_ttl_minutes", 10)
	v.SetDefault("cloudinary.root_folder", "CloudStorageProject")
	v.SetDefault("batch.concurrency", 4)
	v.SetDefault("upload.max_file_size_mb", 50)

	// the config file is optional: everything can come from the environment
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Mongo.URI == "" {
		return nil, errors.New("MONGODB_URI is required")
	}
	if cfg.Cloudinary.CloudName == "" || cfg.Cloudinary.APIKey == "" || cfg.Cloudinary.APISecret == "" {
		return nil, errors.New("cloudinary cloud_name, api_key and api_secret are required")
	}

	cfg.ReadTimeout = time.Duration(cfg.App.ReadSeconds) * time.Second
	cfg.WriteTimeout = time.Duration(cfg.App.WriteSeconds) * time.Second
	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSecond) * time.Second
	return &cfg, nil
}
