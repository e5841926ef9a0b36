package main

type NoticeConfig struct {
	// notice.do url without a query string
	BaseLink string `json:"base_link"`
	// board facet, empty means the unfiltered listing
	Query string `json:"query"`
}

type MongoConfig struct {
	Database string `json:"database"`
}

type Config struct {
	Notice NoticeConfig `json:"notice"`
	Mongo  MongoConfig  `json:"mongo"`
	// dump raw request/response pairs here when set
	DebugHttpDir string `json:"debug_http_dir"`
	Verbose      bool   `json:"verbose"`
}
