package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/Drolfothesgnir/tagfinder/api"
	"github.com/Drolfothesgnir/tagfinder/tmpstore"
	"github.com/Drolfothesgnir/tagfinder/util"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	// reading .env config file
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	// catching interrupt signals for graceful shutdown
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	// waitgroup which manages goroutines for starting and stopping HTTP server
	waitGroup, ctx := errgroup.WithContext(ctx)

	RunGinServer(ctx, waitGroup, config)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// newTagsStore returns Redis-backed cache if it's configured, and no-op one otherwise.
func newTagsStore(config *util.Config) tmpstore.Store {
	if config.RedisAddress == "" {
		log.Info().Msg("REDIS_ADDRESS is not set, tags caching is disabled")
		return tmpstore.NopStore{}
	}

	return tmpstore.NewStore(config)
}

// closeTagsStore releases the Redis connection pool if the store has one.
func closeTagsStore(store tmpstore.Store) {
	if rs, ok := store.(*tmpstore.RedisStore); ok {
		if err := rs.Close(); err != nil {
			log.Error().Err(err).Msg("cannot close redis connection")
		}
	}
}

func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
) {
	store := newTagsStore(&config)

	service, err := api.NewService(config, store)
	if err != nil {
		closeTagsStore(store)

		// failing through the wait group, so the process doesn't exit with 0 without serving
		waitGroup.Go(func() error {
			return fmt.Errorf("cannot create HTTP service: %w", err)
		})
		return
	}

	waitGroup.Go(func() error {
		host, port, _ := config.ExtractHostPort()
		log.Info().Str("host", host).Str("port", port).Msg("start HTTP server")

		err := service.Start()

		if err != nil {
			//http.ErrServerClosed is returned once the server begins shutting down
			// which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		// give the server 5 secs to finish all his processes
		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		closeTagsStore(store)

		log.Info().Msg("HTTP server is stopped")

		return err
	})
}
