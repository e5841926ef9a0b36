package main

type PortalConfig struct {
	// portal entry point, also the post-login home url
	EntryUrl    string `json:"entry_url"`
	SsoLoginUrl string `json:"sso_login_url"`
	HomeUrl     string `json:"home_url"`
	// the findCourLecturePlanDocumentReg gateway url
	CourseEndpoint string `json:"course_endpoint"`

	Year string `json:"year"`
	// term code sent to the portal, e.g. U0002001 for spring
	TermCode string `json:"term_code"`
	// term label baked into collection names, e.g. "2023-1"
	TermLabel string `json:"term_label"`
}

type BrowserConfig struct {
	UserDataDir string `json:"user_data_dir"`
	Headless    bool   `json:"headless"`
}

type MongoConfig struct {
	Database string `json:"database"`
}

type Config struct {
	Portal  PortalConfig  `json:"portal"`
	Browser BrowserConfig `json:"browser"`
	Mongo   MongoConfig   `json:"mongo"`
	// cron spec in portal local time, default weekday mornings
	Schedule string `json:"schedule"`
	// dump raw request/response pairs here when set
	DebugHttpDir string `json:"debug_http_dir"`
	Verbose      bool   `json:"verbose"`
}
