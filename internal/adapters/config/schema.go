package config

// File represents the structure of the agroview.yaml configuration file.
type File struct {
	Server   string       `yaml:"server"`
	StateDir string       `yaml:"stateDir"`
	LogJSON  bool         `yaml:"logJson"`
	Request  *RequestDTO  `yaml:"request"`
	Cache    *CacheDTO    `yaml:"cache"`
	Analysis *AnalysisDTO `yaml:"analysis"`
}

// RequestDTO configures the request executor.
type RequestDTO struct {
	MaxRetries *int   `yaml:"maxRetries"`
	BaseDelay  string `yaml:"baseDelay"`
	Timeout    string `yaml:"timeout"`
}

// CacheDTO configures the response cache.
type CacheDTO struct {
	TTL string `yaml:"ttl"`
}

// AnalysisDTO configures the load coordinator.
type AnalysisDTO struct {
	AttemptBudget int `yaml:"attemptBudget"`
}
