package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/handlers/account"
	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/handlers/status"
	"github.com/carson-networks/finance-server/internal/handlers/transaction"
	"github.com/carson-networks/finance-server/internal/handlers/user"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

// Rest is the JSON API server.
type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

// newAPI builds a Huma API on the given mux with the shared error shape and
// request logging middleware. The config is JSON-only and carries no create
// hooks, so responses are plain records with no $schema field or Link
// header, and no docs or schema endpoints are mounted.
func newAPI(mux *http.ServeMux, title string, logger *logrus.Logger) huma.API {
	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		return apierror.New(status, message)
	}

	config := huma.Config{
		OpenAPI: &huma.OpenAPI{
			OpenAPI: "3.1.0",
			Info: &huma.Info{
				Title:   title,
				Version: "1.0.0",
			},
			Components: &huma.Components{
				Schemas: huma.NewMapRegistry("#/components/schemas/", huma.DefaultSchemaNamer),
			},
		},
		Formats: map[string]huma.Format{
			"application/json": huma.DefaultJSONFormat,
			"json":             huma.DefaultJSONFormat,
		},
		DefaultFormat: "application/json",
	}

	api := humago.New(mux, config)
	api.UseMiddleware(logging.NewMiddleware(logger))
	return api
}

// Serve registers the API routes and blocks serving HTTP.
func (r *Rest) Serve() {
	mux := http.NewServeMux()
	api := newAPI(mux, "Finance Server", r.Logger)

	status.NewHandler(r.Storage).Register(api)

	user.NewCreateUserHandler(r.Service.Users).Register(api)
	user.NewUpdateUserHandler(r.Service.Users).Register(api)
	user.NewDeleteUserHandler(r.Service.Users).Register(api)

	account.NewCreateAccountHandler(r.Service.Accounts).Register(api)
	account.NewListUserAccountsHandler(r.Service.Accounts).Register(api)
	account.NewAccountDetailsHandler(r.Service.Accounts).Register(api)
	account.NewAccountCashflowHandler(r.Service.Accounts).Register(api)
	account.NewUpdateAccountHandler(r.Service.Accounts).Register(api)
	account.NewDeleteAccountHandler(r.Service.Accounts).Register(api)

	transaction.NewCreateTransactionHandler(r.Service.Transactions).Register(api)
	transaction.NewListAccountTransactionsHandler(r.Service.Transactions).Register(api)
	transaction.NewUpdateTransactionHandler(r.Service.Transactions).Register(api)
	transaction.NewDeleteTransactionHandler(r.Service.Transactions).Register(api)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
