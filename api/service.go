package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/tagfinder/document"
	"github.com/Drolfothesgnir/tagfinder/finder"
	"github.com/Drolfothesgnir/tagfinder/tmpstore"
	"github.com/Drolfothesgnir/tagfinder/util"
	"github.com/gin-gonic/gin"
)

const (
	// api routes
	RequestIDHeader  = "X-Request-ID"
	TagsURL          = "/tags"
	DocumentsTagsURL = "/documents/tags"
)

const (
	requestIDCtxKey = "request_id"

	// requestBodyLimit is the maximum request body size in bytes.
	requestBodyLimit = 4 << 20
)

var (
	// api errors
	ErrInvalidParams    = errors.New("invalid parameters")
	ErrDocumentTooLong  = errors.New("document has too many lines")
	ErrMissingTagsStore = errors.New("tags store is required")
)

type Service struct {
	config util.Config
	store  tmpstore.Store
	server *http.Server
	router *gin.Engine

	// newFinder creates TagFinders for single lines.
	newFinder document.NewFinderFunc

	// scanner scans whole documents with TagFinders made by newFinder.
	scanner *document.Scanner
}

// Returns new service instance with provided config and tags store.
func NewService(config util.Config, store tmpstore.Store) (*Service, error) {
	if store == nil {
		return nil, ErrMissingTagsStore
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	service := &Service{
		config: config,
		store:  store,
	}

	service.setFinder(func() finder.TagFinder {
		return finder.New()
	})

	addr, err := config.ListenAddress()
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr: addr,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// setFinder replaces the way TagFinders are created, for both single lines and documents.
func (service *Service) setFinder(newFinder document.NewFinderFunc) {
	service.newFinder = newFinder
	service.scanner = document.NewScanner(newFinder)
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
