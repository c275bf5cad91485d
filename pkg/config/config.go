package config

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[hookbus]"`
}

// EventBus configures the registry built at startup.
type EventBus struct {
	// Events are declared before any manifest is applied.
	Events []string `envconfig:"EVENTS"`
	// Audit attaches a logging hook with id "audit" to every startup event.
	Audit bool `envconfig:"AUDIT" default:"false"`
}

type App struct {
	Env      string    `envconfig:"APP_ENV" default:"development"`
	Log      *Log      `envconfig:"LOG"`
	EventBus *EventBus `envconfig:"EVENTBUS"`
}
