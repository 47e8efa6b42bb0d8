package tgbot

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/goserg/powerrank/internal/config"
	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/service"
)

type Bot struct {
	bot *tgbotapi.BotAPI
	log *logrus.Entry

	admins mapset.Set[int64]

	// cancel func to stop the bot
	cancel func()

	subs subscriptions

	commands *Commands
}

func New(svc *service.Service, cfg config.Config, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}
	bot.Debug = cfg.Server.Debug

	b := &Bot{
		bot:    bot,
		log:    log.WithField("from", "tg_bot"),
		admins: mapset.NewSet(cfg.TgBot.Admins...),
		subs:   newSubs(),
	}
	b.commands = NewCommands(svc, &b.subs)
	svc.OnUpdate(b.notifyUpdate)
	return b, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.bot.StopReceivingUpdates()
			return
		case update := <-updates:
			b.handleMessage(update)
		}
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

func (b *Bot) handleMessage(update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}
	tgUser := update.SentFrom()
	if tgUser == nil {
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"user_id": tgUser.ID,
		"text":    update.Message.Text,
	})

	user := User{
		ID:        tgUser.ID,
		ChatID:    update.Message.Chat.ID,
		FirstName: tgUser.FirstName,
		Username:  tgUser.UserName,
		Role:      b.role(tgUser.ID),
	}
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	text, err := b.commands.RunCommand(user, update.Message.Command(), update.Message.CommandArguments())
	if err != nil {
		log.WithError(err).Debug("command failed")
		text = err.Error()
	}
	msg.Text = text
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}

func (b *Bot) role(userID int64) UserRole {
	if b.admins.Contains(userID) {
		return RoleAdmin
	}
	return RoleUser
}

func (b *Bot) notifyUpdate(snapshot domain.Snapshot) {
	text := fmt.Sprintf("Ranking updated: %d groups, snapshot %s", len(snapshot.Groups), snapshot.ID)
	for _, chatID := range b.subs.ChatIDs() {
		if _, err := b.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			b.log.WithError(err).WithField("chat_id", chatID).Error("notification failed")
		}
	}
}
