package config

type Airtable struct {
	BaseURL        string `env:"AIRTABLE_BASE_URL" envDefault:"https://api.airtable.com/v0"`
	BaseID         string `env:"AIRTABLE_BASE_ID,required"`
	Token          string `env:"AIRTABLE_TOKEN,required"`
	DebugHTTP      bool   `env:"AIRTABLE_DEBUG_HTTP"`
	LogFieldMaxLen int    `env:"AIRTABLE_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}
