package main

import (
	"context"
	"flag"
	"hash/maphash"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/nmakarov/sweeper/internal/config"
	"github.com/nmakarov/sweeper/internal/database"
	"github.com/nmakarov/sweeper/internal/repository"
	"github.com/nmakarov/sweeper/internal/sessions"
	"github.com/nmakarov/sweeper/internal/store"
)

var (
	log = logrus.New()

	configPath string
	cfg        config.Config
)

func init() {
	const (
		defaultConfigPath = "/run/config.json"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if cfg.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to create file log hook: ", err)
		}
		log.AddHook(hook)
	}
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := config.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("unable to read config %s: %s", configPath, err.Error())
	}

	setupLogging()

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	jwt, err := config.NewJWT(cfg.Jwt)
	if err != nil {
		log.Fatal("unable to load JWT keys: ", err)
	}
	cookies := config.NewCookies(cfg, jwt)

	var (
		repo    sessions.Repository
		scores  sessions.Highscores
		queries *repository.Queries
	)
	if cfg.Postgres != nil {
		pool, err := database.ConnectAndMigrate(
			mainCtx, cfg.Postgres.DSN(), cfg.Postgres.URL(),
		)
		if err != nil {
			log.Fatal("unable to connect to db: ", err)
		}
		defer pool.Close()

		queries = repository.New(pool)
		repo = repository.NewSessions(queries)
		scores = queries
	} else {
		path := cfg.Sqlite
		if path == "" {
			path = "sweeper.db"
		}
		log.Warn("no postgres configured, falling back to sqlite store @ ", path)

		kvs, err := store.Open(path, "gamesessions")
		if err != nil {
			log.Fatal("unable to open sqlite store: ", err)
		}
		defer kvs.Close()

		s := store.NewSessions(kvs)
		repo = s
		scores = s
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: buildHandler(queries, repo, scores, jwt, cookies, createRand()),
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", cfg.Addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
