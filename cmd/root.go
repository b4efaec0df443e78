package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/splitter/internal/app"
	"github.com/hance08/splitter/internal/config"
	"github.com/hance08/splitter/internal/constants"
	"github.com/hance08/splitter/internal/errhandler"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	e := &env{app: &app.App{}}
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:   "splitter",
		Short: "splitter divides deposits evenly between two recipients",
		Long: `splitter keeps ledgers that split every deposit evenly between two recipients.
An odd unit goes back to the sender, and each party withdraws its balance on its own.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}

			application, closeApp, err := app.NewApp(cfg, migrations)
			if err != nil {
				return err
			}
			*e.app = *application
			cleanup = closeApp
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVarP(&e.ledger, "ledger", "l", "", "ledger address (default: defaults.ledger)")
	rootCmd.PersistentFlags().StringVarP(&e.from, "from", "f", "", "caller address (default: defaults.identity)")

	rootCmd.AddCommand(NewCreateCmd(e))
	rootCmd.AddCommand(NewConfigureCmd(e))
	rootCmd.AddCommand(NewDepositCmd(e))
	rootCmd.AddCommand(NewWithdrawCmd(e))
	rootCmd.AddCommand(NewBalanceCmd(e))
	rootCmd.AddCommand(NewRecipientsCmd(e))
	rootCmd.AddCommand(NewShowCmd(e))
	rootCmd.AddCommand(NewLedgersCmd(e))
	rootCmd.AddCommand(NewHistoryCmd(e))
	rootCmd.AddCommand(NewInfoCmd(e))

	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		errhandler.HandleError(err)
	}
}

func initConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return resolvePaths(cfg)
}

// setDefaults registers every key so defaults are written to a new config
// file and environment overrides apply to keys absent from it.
func setDefaults() {
	def := config.NewDefault()
	viper.SetDefault("database.driver", def.Database.Driver)
	viper.SetDefault("database.path", def.Database.Path)
	viper.SetDefault("database.dsn", def.Database.DSN)
	viper.SetDefault("defaults.ledger", def.Defaults.Ledger)
	viper.SetDefault("defaults.identity", def.Defaults.Identity)
	viper.SetDefault("display.decimals", def.Display.Decimals)
	viper.SetDefault("display.symbol", def.Display.Symbol)
	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.file", def.Log.File)
	viper.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	viper.SetDefault("log.max_backups", def.Log.MaxBackups)
	viper.SetDefault("log.max_age_days", def.Log.MaxAgeDays)
	viper.SetDefault("events.kafka.brokers", def.Events.Kafka.Brokers)
	viper.SetDefault("events.kafka.topic", def.Events.Kafka.Topic)
}

func resolvePaths(c *config.Config) error {
	appDir, err := getAppDataDir()
	if err != nil {
		return err
	}

	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(appDir, constants.DBFileName)
	}
	if c.Database.Path, err = expandPath(c.Database.Path); err != nil {
		return fmt.Errorf("invalid database path: %w", err)
	}

	if c.Log.File == "" {
		c.Log.File = filepath.Join(appDir, constants.LogFileName)
	}
	if c.Log.File, err = expandPath(c.Log.File); err != nil {
		return fmt.Errorf("invalid log path: %w", err)
	}

	return nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

func createDefaultConfig() error {
	appDir, err := getAppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, constants.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
