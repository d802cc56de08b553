package bootstrap

import (
	"log"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout        int    `mapstructure:"CONTEXT_TIMEOUT"`
	MongoURI              string `mapstructure:"MONGO_URI"`
	DBName                string `mapstructure:"DB_NAME"`
	DataDir               string `mapstructure:"DATA_DIR"`
	ModelsDir             string `mapstructure:"MODELS_DIR"`
	MinRatingsItem        int    `mapstructure:"MIN_RATINGS_ITEM"`
	MinRatingsUser        int    `mapstructure:"MIN_RATINGS_USER"`
	MinPeriodsCorr        int    `mapstructure:"MIN_PERIODS_CORR"`
	TrainWorkers          int    `mapstructure:"TRAIN_WORKERS"`
	AccessTokenExpiryHour int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
	AccessTokenSecret     string `mapstructure:"ACCESS_TOKEN_SECRET"`
}

func NewEnv() *Env {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("CONTEXT_TIMEOUT", 10)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "animatch")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("MODELS_DIR", "models")
	viper.SetDefault("MIN_RATINGS_ITEM", 100)
	viper.SetDefault("MIN_RATINGS_USER", 5)
	viper.SetDefault("MIN_PERIODS_CORR", 500)
	viper.SetDefault("TRAIN_WORKERS", 0)
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_HOUR", 24)

	viper.SetConfigFile(".env")
	if err := viper.ReadInConfig(); err != nil {
		log.Println("no .env file found, reading configuration from the environment")
	}
	viper.AutomaticEnv()

	env := Env{}
	if err := viper.Unmarshal(&env); err != nil {
		log.Fatal("environment can't be loaded: ", err)
	}

	if env.AppEnv == "development" {
		log.Println("the app is running in development env")
	}
	return &env
}
