package tgbot

import (
	"context"
	"strings"

	"github.com/assodanse/assoserver/bot/model"
	"github.com/assodanse/assoserver/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type EventsCommand struct {
	site *service.SiteService
}

func (c *EventsCommand) Run(_ model.User, args string, _ *tgbotapi.MessageConfig) (string, error) {
	events, err := c.site.PublishedEvents(context.Background(), args)
	if err != nil {
		return "", err
	}
	if len(events) == 0 {
		return "Aucun événement à venir.", nil
	}
	var b strings.Builder
	b.WriteString("Prochains événements :\n")
	for _, event := range events {
		b.WriteString(event.StartsAt.Format("02.01.2006") + " — " + event.Title)
		if event.Location != "" {
			b.WriteString(" (" + event.Location + ")")
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (c *EventsCommand) Help() string {
	return "lister les prochains événements"
}

func (c *EventsCommand) Permission() mapset.Set[model.UserRole] {
	return everyone()
}

func (c *EventsCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone()
}
