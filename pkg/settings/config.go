package settings

type Config struct {
	Logger        Logger        `mapstructure:"logger"`
	PriorityQueue PriorityQueue `mapstructure:"priority_queue"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	MaxSize     int    `mapstructure:"max_size"`
	Compress    bool   `mapstructure:"compress"`
}

// PriorityQueue is the configuration for bounded heap priority queues
type PriorityQueue struct {
	Capacity int `mapstructure:"capacity"`
}
