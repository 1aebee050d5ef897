// Package telegram translates chat commands into engine requests and
// renders the answers as Markdown replies.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"mensa-ukon/internal/canteen"
	"mensa-ukon/internal/config"
	"mensa-ukon/internal/fetch"
	"mensa-ukon/internal/mensa"
	"mensa-ukon/internal/plan"
	"mensa-ukon/internal/render"
)

const greeting = "Hello, human!\n" +
	"I am a bot to retrieve the culinary offerings of Uni Konstanz' canteen. " +
	"I can understand several date formats like 'today', 'tomorrow' and ones " +
	"formatted like 'YYYY-MM-DD'.\n" +
	"Please forgive me if I sometimes do not work, you see, " +
	"I'm quite new and still adjusting to this world :).\n\n"

const (
	introHelp     = "It looks like you may need help.\n"
	introCommands = "Here are my *commands*:\n"
	dateHelp      = "[<date>] get what offerings are waiting for you at the specified date " +
		"formatted like 'YYYY-MM-DD'."
	examples = " \n\n*Examples:*\n/mensa tomorrow\n/mensa 2016-02-24\n"
)

// shortcut is a command that filters the plan down to a single meal
// category at one canteen.
type shortcut struct {
	command   string
	meal      string
	canteen   string
	shortHelp string
}

var shortcuts = []shortcut{
	{"stamm", "stammessen", "giessberg", "Show main meal"},
	{"wahl", "wahlessen", "giessberg", "Show alternative meal"},
	{"vegi", "vegetarisch", "giessberg", "Show vegetarian meal"},
	{"teller", "seezeit-teller", "giessberg", "Show Seezeit-Teller"},
	{"kombi", "kombinierbar", "giessberg", "Show KombinierBar"},
	{"hinweg", "hin&weg", "giessberg", "Show hin&weg"},
	{"eintopf", "eintopf", "giessberg", "Show stew"},
	{"pasta", "Al stuDente", "giessberg", "Show Pasta Bar"},
	{"abendessen", "abendessen", "giessberg", "Show dinner"},
	{"grill", "grill", "giessberg", "Show grill"},
	{"bio", "bioessen", "giessberg", "Show bio"},
	{"wok", "wok", "giessberg", "Show wok"},
}

// Bot wraps the Telegram API around the meal-plan service.
type Bot struct {
	api      *tgbotapi.BotAPI
	svc      *mensa.Service
	cfg      *config.Config
	canteen  canteen.Canteen
	commands [][2]string
}

// NewBot initializes the Telegram bot for the configured canteen.
func NewBot(cfg *config.Config, svc *mensa.Service) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	log.Printf("Authorized on account %s", api.Self.UserName)

	c, err := canteen.Lookup(cfg.Canteen)
	if err != nil {
		return nil, err
	}

	b := &Bot{api: api, svc: svc, cfg: cfg, canteen: c}
	b.commands = [][2]string{
		{"start", "start bot"},
		{"help", "display help message"},
		{"mensa", dateHelp},
		{"mensaen", dateHelp + " (english descriptions)"},
	}
	return b, nil
}

// RegisterHandlers sets the webhook and registers the webhook handler
// with the default HTTP mux.
func (b *Bot) RegisterHandlers() error {
	wh, err := tgbotapi.NewWebhook(b.cfg.WebhookURL)
	if err != nil {
		return fmt.Errorf("failed to build webhook config: %w", err)
	}
	resp, err := b.api.Request(wh)
	if err != nil {
		return fmt.Errorf("failed to set webhook to %s: %w", b.cfg.WebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	http.HandleFunc("/webhook", func(w http.ResponseWriter, r *http.Request) {
		update, err := b.api.HandleUpdate(r)
		if err != nil {
			log.Printf("Error parsing update: %v", err)
			return
		}
		go b.handleUpdate(*update)
	})
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return nil
}

// RunPolling consumes updates via long polling until ctx is canceled.
func (b *Bot) RunPolling(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)
	log.Println("Bot running with polling enabled.")
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			go b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return
	}

	args := strings.Fields(msg.CommandArguments())
	// the german auto-correct tends to capitalize the first word after
	// the slash, so commands are matched case-insensitively
	switch cmd := strings.ToLower(msg.Command()); cmd {
	case "start":
		b.reply(msg.Chat.ID, greeting+"\n"+introCommands+b.printCommands()+examples)
	case "help":
		b.reply(msg.Chat.ID, introHelp+introCommands+b.printCommands()+examples)
	case "mensa":
		b.mensaPlan(msg, plan.DE, "", args)
	case "mensaen":
		b.mensaPlan(msg, plan.EN, "", args)
	default:
		for _, s := range shortcuts {
			if s.command == cmd && s.canteen == b.canteen.Shortcut {
				b.mensaPlan(msg, plan.DE, s.meal, args)
				return
			}
		}
		log.Printf("Received unknown command: %s", msg.Command())
		b.reply(msg.Chat.ID, "Sorry, I do not understand that command.\n")
		b.reply(msg.Chat.ID, introHelp+introCommands+b.printCommands()+examples)
	}
}

func (b *Bot) mensaPlan(msg *tgbotapi.Message, lang plan.Language, filterMeal string, args []string) {
	chatID := msg.Chat.ID
	if len(args) > 1 {
		b.reply(chatID, "Give me a single date to fetch meals for.")
		return
	}

	b.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))

	now := time.Now().In(b.cfg.Location)
	date := now
	if len(args) == 1 {
		var err error
		date, err = parseDate(args[0], now)
		if err != nil {
			log.Printf("Got unknown date format: %s", args[0])
			b.reply(chatID, fmt.Sprintf("Sorry, I do not understand the date you gave me: %s", args[0]))
			return
		}
	}

	p, err := b.svc.Retrieve(context.Background(), b.canteen.Shortcut, date, lang, filterMeal)
	if err != nil {
		var notFound *mensa.MealNotFoundError
		var fetchErr *fetch.Error
		switch {
		case errors.As(err, &notFound):
			b.reply(chatID, fmt.Sprintf("No meal found for '%s'.", capitalize(notFound.Meal)))
		case errors.As(err, &fetchErr):
			log.Printf("Fetch failed: %v", fetchErr)
			b.reply(chatID, "Sorry, I could not reach the canteen right now. Try again later.")
		default:
			log.Printf("Retrieve failed: %v", err)
			b.reply(chatID, "\n*Usage:* /mensa [<date>]\ne.g. /mensa 2017-01-01")
		}
		return
	}

	b.reply(chatID, render.Markdown(p, date, now, lang))
}

func (b *Bot) reply(chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeMarkdown
	m.DisableWebPagePreview = true
	if _, err := b.api.Send(m); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

// NotifyAll sends a notice to every configured admin chat.
func (b *Bot) NotifyAll(text string) {
	for _, chatID := range b.cfg.NotifyChatIDs {
		b.reply(chatID, text)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func (b *Bot) printCommands() string {
	var lines []string
	for _, c := range b.commands {
		lines = append(lines, "/"+c[0]+" "+c[1])
	}
	for _, s := range shortcuts {
		if s.canteen == b.canteen.Shortcut {
			lines = append(lines, "/"+s.command+" "+s.shortHelp)
		}
	}
	return strings.Join(lines, "\n")
}
