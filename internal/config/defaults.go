package config

const (
	defaultDataDir              = "~/.local/share/marquee"
	defaultLogDir               = "~/.local/share/marquee/logs"
	defaultTMDBBaseURL          = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL     = "https://image.tmdb.org/t/p"
	defaultTMDBLanguage         = "en-US"
	defaultOMDBBaseURL          = "https://www.omdbapi.com"
	defaultCacheTTLSeconds      = 600
	defaultMinRequestIntervalMS = 250
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		TMDB: TMDB{
			BaseURL:      defaultTMDBBaseURL,
			ImageBaseURL: defaultTMDBImageBaseURL,
			Language:     defaultTMDBLanguage,
		},
		OMDB: OMDB{
			BaseURL: defaultOMDBBaseURL,
		},
		Gateway: Gateway{
			CacheTTLSeconds:      defaultCacheTTLSeconds,
			MinRequestIntervalMS: defaultMinRequestIntervalMS,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
