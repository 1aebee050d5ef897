package telegram

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"mensa-ukon/internal/canteen"
	"mensa-ukon/internal/config"
)

// fakeAPI is a stand-in for the Telegram endpoint. It answers getMe so
// the client can authorize and records every sendMessage chat id.
func fakeAPI(t *testing.T) (*tgbotapi.BotAPI, *[]string) {
	t.Helper()
	var sentTo []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"mensa","username":"mensabot"}}`)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			r.ParseForm()
			sentTo = append(sentTo, r.FormValue("chat_id"))
			fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"chat":{"id":1}}}`)
			return
		}
		fmt.Fprint(w, `{"ok":true,"result":{}}`)
	}))
	t.Cleanup(srv.Close)

	api, err := tgbotapi.NewBotAPIWithAPIEndpoint("123:abc", srv.URL+"/bot%s/%s")
	if err != nil {
		t.Fatalf("Failed to init api against fake endpoint: %v", err)
	}
	return api, &sentTo
}

func testBot(t *testing.T, shortcut string, chatIDs []int64) (*Bot, *[]string) {
	t.Helper()
	api, sentTo := fakeAPI(t)
	c, err := canteen.Lookup(shortcut)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	b := &Bot{
		api:     api,
		cfg:     &config.Config{Canteen: shortcut, NotifyChatIDs: chatIDs},
		canteen: c,
		commands: [][2]string{
			{"start", "start bot"},
			{"help", "display help message"},
		},
	}
	return b, sentTo
}

func TestNotifyAll(t *testing.T) {
	b, sentTo := testBot(t, "giessberg", []int64{123, -456789})

	b.NotifyAll("Bot started (polling).")

	if len(*sentTo) != 2 || (*sentTo)[0] != "123" || (*sentTo)[1] != "-456789" {
		t.Errorf("notified chats = %v, want [123 -456789]", *sentTo)
	}
}

func TestNotifyAllNoChatsConfigured(t *testing.T) {
	b, sentTo := testBot(t, "giessberg", nil)

	b.NotifyAll("Bot shutting down.")

	if len(*sentTo) != 0 {
		t.Errorf("notified chats = %v, want none", *sentTo)
	}
}

func TestPrintCommands(t *testing.T) {
	b, _ := testBot(t, "giessberg", nil)
	out := b.printCommands()
	if !strings.Contains(out, "/stamm ") {
		t.Errorf("giessberg shortcuts missing:\n%s", out)
	}
	if !strings.Contains(out, "/start ") || !strings.Contains(out, "/help ") {
		t.Errorf("base commands missing:\n%s", out)
	}

	// shortcuts are scoped to the bot's canteen
	b, _ = testBot(t, "htwg", nil)
	if out := b.printCommands(); strings.Contains(out, "/stamm") {
		t.Errorf("htwg bot lists giessberg shortcuts:\n%s", out)
	}
}
