package config

import "time"

func (m *Manager) GetDefault() *Config {
	return &Config{
		App: App{
			LogLevel: "info",
			GinMode:  "release",
			HTTPAddr: "127.0.0.1:8080",
		},
		IRC: IRC{
			Server:    "irc.libera.chat:6697",
			Transport: "tcp",
			TLS:       true,
			Nick:      "ircadmin",
			User:      "ircadmin",
			RealName:  "ircadmin bot",
			Channels:  []string{},
			RateLimit: Limiter{
				Requests: 2,
				Per:      time.Second,
			},
		},
		Admin: Admin{
			Passwords:        make(map[string]string),
			MaxLoginAttempts: 5,
			AttemptWindow:    10 * time.Minute,
		},
	}
}
