package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hance08/splitter/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	env *env
}

func NewInfoCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database location, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{env: e}
			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	driver := r.env.app.Store.Driver()
	dbPath := cfg.Database.Path
	dbExists := false
	if driver == "postgres" {
		dbPath = redactDSN(cfg.Database.DSN)
	} else if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	display := fmt.Sprintf("%s (%d decimals)", cfg.Display.Symbol, cfg.Display.Decimals)

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBDriver:        driver,
		DBPath:          dbPath,
		DBExists:        dbExists,
		LogFile:         cfg.Log.File,
		DefaultLedger:   cfg.Defaults.Ledger,
		DefaultIdentity: cfg.Defaults.Identity,
		Display:         display,
		EventBrokers:    strings.Join(cfg.Events.Kafka.Brokers, ", "),
		AppDataDir:      getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

// redactDSN hides the password of a postgres URL.
func redactDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	scheme := strings.Index(dsn, "://")
	if at < 0 || scheme < 0 || scheme+3 > at {
		return dsn
	}
	creds := dsn[scheme+3 : at]
	if colon := strings.Index(creds, ":"); colon >= 0 {
		creds = creds[:colon] + ":****"
	}
	return dsn[:scheme+3] + creds + dsn[at:]
}

func getAppDataDirOrUnknown() string {
	dir, err := getAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
