package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "cv-ranker"
)

type Config struct {
	Profile       string `mapstructure:"profile"`
	Folder        string `mapstructure:"folder"`
	ExportFile    string `mapstructure:"export-file"`
	MaxFeatures   int    `mapstructure:"max-features"`
	MinTextLength int    `mapstructure:"min-text-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-ranker is a simple cli for ranking resume PDFs against an ideal profile description",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("folder", "CV_RANKER_FOLDER"); err != nil {
		log.Fatalf("binding CV_RANKER_FOLDER environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-ranker.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	viper.SetDefault("folder", defaultFolder)
	viper.SetDefault("export-file", defaultExportFile)
	viper.SetDefault("max-features", defaultMaxFeatures)
	viper.SetDefault("min-text-length", defaultMinTextLength)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
