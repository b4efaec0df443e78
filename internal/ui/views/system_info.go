package views

import (
	"github.com/hance08/splitter/internal/ui"
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	DBDriver        string
	DBPath          string
	DBExists        bool // true = Found, false = Not Found
	LogFile         string
	DefaultLedger   string
	DefaultIdentity string
	Display         string
	EventBrokers    string
	AppDataDir      string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}
	if data.DBDriver == "postgres" {
		dbStatus = pterm.Gray("(remote)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Driver", data.DBDriver},
		{"Database", data.DBPath},
		{"Database Status", dbStatus},
		{"Log File", data.LogFile},
		{"Default Ledger", ui.OrNone(data.DefaultLedger)},
		{"Default Identity", ui.OrNone(data.DefaultIdentity)},
		{"Display Units", data.Display},
		{"Event Brokers", ui.OrNone(data.EventBrokers)},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
