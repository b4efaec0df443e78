package constants

const (
	AppName        = "splitter"
	ConfigFileName = "config.yaml"
	DBFileName     = "splitter.db"
	LogFileName    = "splitter.log"
	EnvPrefix      = "SPLITTER"
)

const (
	DefaultHistoryLimit = 20
	DateTimeFormat      = "2006-01-02 15:04:05"
)
