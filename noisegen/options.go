package noisegen

// SNRPair holds the SNR levels, in dB, of one noisy/reference configuration.
// By convention Reference > Noisy: the reference mix carries less noise.
type SNRPair struct {
	Noisy     int
	Reference int
}

// config collects the knobs shared across generator constructors. Each
// strategy reads only the fields that concern it.
type config struct {
	seed             int64
	snrPairs         []SNRPair
	noiseTracksDir   string
	noiseTracks      []string
	irDatabasePath   string
	impulseResponses []string
	maxIRLength      int
}

func defaultConfig() config {
	return config{
		seed:           1,
		noiseTracksDir: "noise_tracks",
	}
}

// Option configures a generator constructor.
type Option func(*config)

// WithSeed sets the deterministic seed for white-noise synthesis.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

// WithSNRPairs replaces a generator's default SNR pair table.
func WithSNRPairs(pairs []SNRPair) Option {
	return func(cfg *config) {
		if len(pairs) > 0 {
			cfg.snrPairs = pairs
		}
	}
}

// WithNoiseTracksDir sets the directory holding environmental noise tracks.
func WithNoiseTracksDir(dir string) Option {
	return func(cfg *config) {
		if dir != "" {
			cfg.noiseTracksDir = dir
		}
	}
}

// WithNoiseTracks replaces the default environmental noise track file names.
func WithNoiseTracks(tracks []string) Option {
	return func(cfg *config) {
		if len(tracks) > 0 {
			cfg.noiseTracks = tracks
		}
	}
}

// WithIRDatabasePath sets the impulse-response database file for the echo
// generator.
func WithIRDatabasePath(path string) Option {
	return func(cfg *config) {
		cfg.irDatabasePath = path
	}
}

// WithImpulseResponses replaces the default impulse-response entry names.
func WithImpulseResponses(names []string) Option {
	return func(cfg *config) {
		if len(names) > 0 {
			cfg.impulseResponses = names
		}
	}
}

// WithMaxImpulseResponseLength truncates loaded impulse responses to at
// most n taps. Zero (the default) disables truncation.
func WithMaxImpulseResponseLength(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxIRLength = n
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
