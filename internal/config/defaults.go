package config

const (
	defaultOutputDir     = "~/Downloads/hlsgrab"
	defaultTaskFile      = "~/.local/share/hlsgrab/tasks.json"
	defaultHistoryDB     = "~/.local/share/hlsgrab/history.db"
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultFetchSeconds  = 30
	defaultProbeSeconds  = 5
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			TaskFile:  defaultTaskFile,
			HistoryDB: defaultHistoryDB,
		},
		Tools: Tools{
			FFmpegBinary:  defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
		},
		Timeouts: Timeouts{
			FetchSeconds: defaultFetchSeconds,
			ProbeSeconds: defaultProbeSeconds,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
