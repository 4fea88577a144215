package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/ekuzmina/fundgo/docs"
	authhandlers "github.com/ekuzmina/fundgo/internal/handlers/auth"
	fundhandlers "github.com/ekuzmina/fundgo/internal/handlers/funds"
	transferhandlers "github.com/ekuzmina/fundgo/internal/handlers/transfer"
	"github.com/ekuzmina/fundgo/internal/service"
	"github.com/ekuzmina/fundgo/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type FundHandler interface {
	CreateFund(w http.ResponseWriter, r *http.Request)
	ListFunds(w http.ResponseWriter, r *http.Request)
	GetFund(w http.ResponseWriter, r *http.Request)
}

type TransferHandler interface {
	Donate(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetBills(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	FundHandler     FundHandler
	TransferHandler TransferHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		FundHandler:     fundhandlers.New(s.FundService),
		TransferHandler: transferhandlers.New(s.TransferService, s.AuditService),
		jwtService:      jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/funds", func(r chi.Router) {
				r.Post("/", h.FundHandler.CreateFund)
				r.Get("/", h.FundHandler.ListFunds)
				r.Get("/{id}", h.FundHandler.GetFund)
				r.Post("/{id}/donate", h.TransferHandler.Donate)
				r.Post("/{id}/withdraw", h.TransferHandler.Withdraw)
			})
			r.Get("/user/bills", h.TransferHandler.GetBills)
			r.Get("/user/withdrawals", h.TransferHandler.GetWithdrawals)
		})
	})

	return r
}
