package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"avien/bot"
	"avien/comment"
	"avien/config"
	"avien/confession"
	"avien/db"
	"avien/handler/avien"
	"avien/state"
	"avien/syncer"
	"avien/telegram"
	"avien/utils"
	"avien/web"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	err := config.LoadConfig()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	utils.InitLogger(os.Getenv("VERBOSE") != "")
	db.MustInit(config.Cfg.Avien.DBPath)

	// 调试信息：检查token是否被正确读取
	if config.Cfg.Token == "" {
		fmt.Println("Warning: Token is empty!")
	}

	client, err := telegram.NewClient(config.Cfg.Token)
	if err != nil {
		fmt.Println("error creating Telegram session,", err)
		return
	}

	confessions := confession.NewService(client, config.Cfg.Avien.ChannelID)
	comments := comment.NewManager(config.Cfg.Avien.PageSize)
	counterSync := syncer.New(client, config.Cfg.Avien.ChannelID)

	// Public-counter sync runs as a post-commit hook on comment mutations.
	comments.OnCountChanged = counterSync.SyncCount

	states := state.NewMemoryStore(time.Duration(config.Cfg.Avien.StateTTLMinutes) * time.Minute)

	// 注册avien处理程序
	h := avien.NewHandlers(states, confessions, comments,
		config.Cfg.Avien.AdminGroupID, config.Cfg.Avien.ChannelID)
	h.Register()

	web.StartHealthServer(config.Cfg.HTTP.Port)

	go bot.Run(client)
	utils.Log.Infow("bot running", "username", client.Username())
	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	client.Stop()
}
