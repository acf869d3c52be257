package config

import "time"

type Config struct {
	App   App   `json:"app"`
	IRC   IRC   `json:"irc"`
	Admin Admin `json:"admin"`
}

type App struct {
	LogLevel  string `json:"log_level"`
	GinMode   string `json:"gin_mode"`
	HTTPAddr  string `json:"http_addr"`
	AuthToken string `json:"auth_token"`
}

type IRC struct {
	Server    string   `json:"server"`
	Transport string   `json:"transport"` // "tcp" or "websocket"
	TLS       bool     `json:"tls"`
	Nick      string   `json:"nick"`
	User      string   `json:"user"`
	RealName  string   `json:"real_name"`
	Channels  []string `json:"channels"`
	RateLimit Limiter  `json:"rate_limit"`
}

type Limiter struct {
	Requests int           `json:"requests"`
	Per      time.Duration `json:"per"`
}

type Admin struct {
	// Passwords maps login username to its secret. Secrets with a
	// bcrypt prefix ($2a$/$2b$/$2y$) are verified as bcrypt hashes,
	// anything else by constant-time equality.
	Passwords        map[string]string `json:"passwords"`
	MaxLoginAttempts int               `json:"max_login_attempts"`
	AttemptWindow    time.Duration     `json:"attempt_window"`
}
