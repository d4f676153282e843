package config

import (
	"os"

	authservice "github.com/assodanse/assoserver/auth/service"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	Debug        bool   `toml:"debug_mode"`
	TgBotEnabled bool   `toml:"tg_bot_enabled"`
	SqliteFile   string `toml:"sqlite_file"`
}

type TgBot struct {
	TelegramApiToken string `toml:"telegram_api_token"`
	SqliteFile       string `toml:"sqlite_file"`
}

type Config struct {
	Server Server
	Auth   authservice.Config
	TgBot  TgBot
}

// New loads the three config files under configs/. Secrets can be overridden
// from the environment so they stay out of the files.
func New() (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}

	var authCfg authservice.Config
	_, err = toml.DecodeFile("configs/auth.toml", &authCfg)
	if err != nil {
		return Config{}, err
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		authCfg.Token = secret
	}
	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		authCfg.AdminPassword = password
	}

	var tgBotCfg TgBot
	_, err = toml.DecodeFile("configs/bot.toml", &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	return Config{
		Server: serverCfg,
		Auth:   authCfg,
		TgBot:  tgBotCfg,
	}, nil
}
