package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KingsMMA/SuggestionBot/command"
	"github.com/KingsMMA/SuggestionBot/config"
	"github.com/KingsMMA/SuggestionBot/db"
	"github.com/KingsMMA/SuggestionBot/handler"
	"github.com/KingsMMA/SuggestionBot/handler/suggestion"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if cfg.Token == "" {
		logger.Fatal("no bot token configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from database", zap.Error(err))
		}
	}()
	logger.Info("connected to database", zap.String("database", cfg.MongoDatabase))

	store := db.NewGuildStore(client.Database(cfg.MongoDatabase), logger)
	controller := suggestion.NewController(store, suggestion.EmbedRenderer{}, logger)
	handlers := suggestion.NewHandlers(controller, logger)

	router := handler.NewRouter()
	suggestion.Register(router, handlers)

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		logger.Fatal("failed to create Discord session", zap.Error(err))
	}

	dg.AddHandler(router.HandleInteraction)
	dg.AddHandler(handlers.OnMessageCreate)
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	if err := dg.Open(); err != nil {
		logger.Fatal("failed to open Discord connection", zap.Error(err))
	}

	if err := command.Register(dg, cfg.Commands.AllowGuilds); err != nil {
		logger.Fatal("failed to register commands", zap.Error(err))
	}

	logger.Info("bot is now running",
		zap.String("user", dg.State.User.Username),
		zap.String("id", dg.State.User.ID))

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}
