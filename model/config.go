package model

// Config 对应于 config.yaml 的顶级结构
type Config struct {
	Token string `mapstructure:"TOKEN"`
	Avien Avien  `mapstructure:"avien"`
	HTTP  HTTP   `mapstructure:"http"`
}

// Avien 对应 "avien" 部分
type Avien struct {
	AdminGroupID    int64  `mapstructure:"admin_group_id"`
	ChannelID       int64  `mapstructure:"channel_id"`
	DBPath          string `mapstructure:"db_path"`
	PageSize        int    `mapstructure:"page_size"`
	StateTTLMinutes int    `mapstructure:"state_ttl_minutes"`
}

// HTTP 对应 "http" 部分
type HTTP struct {
	Port string `mapstructure:"port"`
}
