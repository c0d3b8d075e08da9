package config

import (
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

//Data : config data
type Data struct {
	AppPort             string `mapstructure:"appPort" yaml:"appPort,omitempty"`
	ServiceName         string `mapstructure:"serviceName" yaml:"serviceName,omitempty"`
	DBHost              string `mapstructure:"dbHost" yaml:"dbHost,omitempty"`
	DBUser              string `mapstructure:"dbUser" yaml:"dbUser,omitempty"`
	DBPassword          string `mapstructure:"dbPassword" yaml:"dbPassword,omitempty"`
	DBName              string `mapstructure:"dbName" yaml:"dbName,omitempty"`
	MaxIdleConns        int    `mapstructure:"maxIdleConns" yaml:"maxIdleConns,omitempty"`
	MaxOpenConns        int    `mapstructure:"maxOpenConns" yaml:"maxOpenConns,omitempty"`
	ConnMaxLifetime     int    `mapstructure:"connMaxLifetime" yaml:"connMaxLifetime,omitempty"`
	DBMigrationPath     string `mapstructure:"dbMigrationPath" yaml:"dbMigrationPath,omitempty"`
	PurgeCacheInterval  int    `mapstructure:"purgeCacheInterval" yaml:"purgeCacheInterval,omitempty"`
	ExpireCacheDuration int    `mapstructure:"expireCacheDuration" yaml:"expireCacheDuration,omitempty"`
	RequestTimeout      int    `mapstructure:"requestTimeout" yaml:"requestTimeout,omitempty"`
	MarketDataAPI       string `mapstructure:"marketDataApiUrl" yaml:"marketDataApiUrl,omitempty"`
	RefreshCronInterval string `mapstructure:"refreshCronInterval" yaml:"refreshCronInterval,omitempty"`
	RefreshWorkerCount  int    `mapstructure:"refreshWorkerCount" yaml:"refreshWorkerCount,omitempty"`
}

//Init : initialize data
func (c *Data) Init(configDir string) {

	dir, dirErr := os.Getwd()
	if dirErr != nil {
		log.Printf("Cannot set default input/output directory to the current working directory >> %s", dirErr)
	}

	viper.SetEnvPrefix("rwa") // Prefix all env variables with RWA
	viper.AutomaticEnv()
	viper.BindEnv("appPort")
	viper.BindEnv("dbUser")
	viper.BindEnv("dbPassword")
	viper.BindEnv("marketDataApiUrl")

	viper.SetDefault("refreshCronInterval", "@every 5m")
	viper.SetDefault("refreshWorkerCount", 4)
	viper.SetDefault("expireCacheDuration", 300)
	viper.SetDefault("purgeCacheInterval", 600)

	viper.SetConfigName("config")
	viper.AddConfigPath("../")
	viper.AddConfigPath(dir)
	viper.AddConfigPath(configDir)
	viper.WatchConfig()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			panic(fmt.Errorf("\n Configuration file not found >>%s ", err))
		} else {
			panic(fmt.Errorf("\n fatal error: could not read from config file >>%s ", err))
		}
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				panic(fmt.Errorf("\n Configuration file not found >>%s ", err))
			} else {
				panic(fmt.Errorf("\n fatal error: could not read from config file >>%s ", err))
			}
		}
		viper.Unmarshal(c)
		fmt.Println("Config file changed:", e.Name)
	})

	viper.Unmarshal(c)
	log.Println("App configuration loaded successfully!")
}
