package config

const (
	defaultLogDir               = "~/.local/share/slate/logs"
	defaultVersionFile          = "~/.config/slate/VERSION"
	defaultFFmpegBinary         = "ffmpeg"
	defaultFFprobeBinary        = "ffprobe"
	defaultNukeBinary           = "nuke"
	defaultTranscodePreset      = "h264"
	defaultTranscodeFrameRate   = 25
	defaultTranscodeCRF         = 18
	defaultNukeRenderTimeout    = 7200
	defaultNukeConvertTimeout   = 600
	defaultNotifyRequestTimeout = 10
	defaultSendemailBinary      = "sendemail"
	defaultWatchSettleSeconds   = 3
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

func defaultWatchPatterns() []string {
	return []string{"*.mov", "*.mp4", "*.mxf"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:      defaultLogDir,
			VersionFile: defaultVersionFile,
		},
		Transcode: Transcode{
			FFmpegBinary:  defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
			Preset:        defaultTranscodePreset,
			FrameRate:     defaultTranscodeFrameRate,
			CRF:           defaultTranscodeCRF,
		},
		Nuke: Nuke{
			Binary:         defaultNukeBinary,
			RenderTimeout:  defaultNukeRenderTimeout,
			ConvertTimeout: defaultNukeConvertTimeout,
		},
		Notifications: Notifications{
			RequestTimeout:  defaultNotifyRequestTimeout,
			SendemailBinary: defaultSendemailBinary,
			Started:         true,
			Completed:       true,
			Errors:          true,
		},
		Watch: Watch{
			Patterns:      defaultWatchPatterns(),
			SettleSeconds: defaultWatchSettleSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
