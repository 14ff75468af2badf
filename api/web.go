package api

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/handlers/account"
	"github.com/carson-networks/finance-server/internal/handlers/user"
	"github.com/carson-networks/finance-server/internal/service"
)

// Web is the browser-facing server. It exposes the subset of the API the
// static pages call and serves the pages themselves.
type Web struct {
	Logger    *logrus.Logger
	Port      string
	StaticDir string
	Service   *service.Service
}

// Serve registers the web routes and blocks serving HTTP.
func (w *Web) Serve() {
	mux := http.NewServeMux()
	api := newAPI(mux, "Finance Web", w.Logger)

	user.NewCreateUserHandler(w.Service.Users).Register(api)
	user.NewListUsersHandler(w.Service.Users).Register(api)

	account.NewCreateAccountHandler(w.Service.Accounts).Register(api)
	account.NewListAccountsHandler(w.Service.Accounts).Register(api)

	mux.Handle("/", http.FileServer(http.Dir(w.StaticDir)))

	server := http.Server{
		Addr:              ":" + w.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	w.Logger.Info("WebServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		w.Logger.WithError(err).Error("WebServer.Serve.listen error")
	}
	w.Logger.Info("WebServer.Serve.shutting down")
}
