package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jurat11/BiteWise-sub000/bot"
	"github.com/jurat11/BiteWise-sub000/config"
	"github.com/jurat11/BiteWise-sub000/logger"
	"github.com/jurat11/BiteWise-sub000/nutrition"
	"github.com/jurat11/BiteWise-sub000/photos"
	"github.com/jurat11/BiteWise-sub000/sched"
	"github.com/jurat11/BiteWise-sub000/store"
)

func main() {
	config.LoadConfig()
	logger.Init()
	defer logger.Close()

	ctx := context.Background()
	st := openStore(ctx)
	defer func() {
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(shutCtx); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	analyzer, err := nutrition.NewAnalyzer(ctx, config.GeminiAPIKey, config.GeminiModel)
	if err != nil {
		logger.Warn("gemini unavailable, meals will be logged with default estimates", zap.Error(err))
	} else {
		defer analyzer.Close()
	}

	ph, err := photos.New(ctx, config.AWSRegion, config.AWSBucketName)
	if err != nil {
		logger.Warn("photo storage unavailable", zap.Error(err))
		ph, _ = photos.New(ctx, "", "")
	}

	b, err := bot.New(config.BotToken, bot.Deps{
		Store:    st,
		Analyzer: analyzer,
		Photos:   ph,
		AdminID:  config.AdminID,
	})
	if err != nil {
		logger.Fatal("start telegram bot", zap.Error(err))
	}

	scheduler := sched.New(st, b)
	scheduler.PromptWeight = b.PromptWeight
	b.AttachScheduler(scheduler)
	if err := scheduler.InstallAll(ctx); err != nil {
		logger.Warn("install reminders", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		b.Stop()
	}()

	logger.Info("bitewise started")
	b.Start()
}

// openStore connects to Mongo; when the database is unreachable the bot
// degrades to an in-memory store so conversations keep working without
// persistence.
func openStore(ctx context.Context) store.Store {
	if config.MongoURI == "" {
		logger.Warn("MONGO_URI not set, running with in-memory storage")
		return store.NewMemory()
	}
	connCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	m, err := store.ConnectMongo(connCtx, config.MongoURI, config.MongoDB)
	if err != nil {
		logger.Warn("mongo unreachable, running with in-memory storage", zap.Error(err))
		return store.NewMemory()
	}
	logger.Info("connected to mongodb", zap.String("db", config.MongoDB))
	return m
}
