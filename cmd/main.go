package main

import (
	"context"
	"fmt"
	"os"

	authservice "github.com/assodanse/assoserver/auth/service"
	authsqlite "github.com/assodanse/assoserver/auth/storage/sqlite"
	botsqlite "github.com/assodanse/assoserver/bot/botstorage/sqlite"
	"github.com/assodanse/assoserver/bot/tgbot"
	"github.com/assodanse/assoserver/internal/config"
	"github.com/assodanse/assoserver/internal/logger"
	"github.com/assodanse/assoserver/internal/service"
	"github.com/assodanse/assoserver/internal/storage/sqlite"
	"github.com/assodanse/assoserver/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	authStorage, err := authsqlite.New(log, cfg.Auth)
	if err != nil {
		return err
	}
	authService, err := authservice.New(context.Background(), cfg.Auth, authStorage, log)
	if err != nil {
		return err
	}

	siteStorage, err := sqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}
	siteService := service.New(siteStorage, siteStorage, siteStorage, log)

	if cfg.Server.TgBotEnabled {
		botStorage, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return err
		}
		bot, err := tgbot.New(siteService, botStorage, cfg, log)
		if err != nil {
			return err
		}
		siteService.SetNotify(bot.NotifyEventPublished)
		go bot.Run()
		defer bot.Stop()
	}

	return web.New(siteService, cfg.Server, authService, log).Serve()
}
