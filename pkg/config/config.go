package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig `mapstructure:"app"`
	Key KeyConfig `mapstructure:"key"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

// KeyConfig WIF 编码的默认配置，可被命令行标志覆盖
type KeyConfig struct {
	Network    string `mapstructure:"network"`    // "mainnet" or "testnet"
	Compressed bool   `mapstructure:"compressed"` // 是否追加压缩标记字节
	Case       string `mapstructure:"case"`       // hex 输入大小写策略: upper / lower / mixed
}

var Global Config

func Init() {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath(".")      // optionally look for config in the working directory
	viper.AddConfigPath("./config")

	// 环境变量设置 (KEY_NETWORK=testnet 这样覆盖)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 设置默认值
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// 没有配置文件时静默使用默认值和环境变量
		} else {
			log.Fatalf("Fatal error config file: %s \n", err)
		}
	}

	if err := viper.Unmarshal(&Global); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("app.env", "development")

	viper.SetDefault("key.network", "mainnet")
	viper.SetDefault("key.compressed", true)
	viper.SetDefault("key.case", "mixed")
}
