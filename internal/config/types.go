package config

// Config is the top-level livenav configuration, corresponding to .livenav.yml.
type Config struct {
	Port            int      `yaml:"port" koanf:"port"`
	DataDir         string   `yaml:"data_dir" koanf:"data_dir"`
	PagesDir        string   `yaml:"pages_dir" koanf:"pages_dir"`
	SiteDir         string   `yaml:"site_dir" koanf:"site_dir"`
	ProjectName     string   `yaml:"project_name" koanf:"project_name"`
	Include         []string `yaml:"include" koanf:"include"`
	Exclude         []string `yaml:"exclude" koanf:"exclude"`
	LiveClass       string   `yaml:"live_class" koanf:"live_class"`
	NavSelector     string   `yaml:"nav_selector" koanf:"nav_selector"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
