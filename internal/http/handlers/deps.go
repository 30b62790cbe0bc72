package handlers

import (
	"misfitpups/internal/repos"
	"misfitpups/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	HomeHandler         *HomeHandler
	ApplicationsHandler *ApplicationsHandler
	ProfileHandler      *ProfileHandler
	APIHandler          *APIHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	breederRepo := repos.NewBreederRepo(db)
	puppyRepo := repos.NewPuppyRepo(db)
	appRepo := repos.NewApplicationRepo(db)

	catalogSvc := services.NewCatalogService(breederRepo, puppyRepo)
	reviewSvc := services.NewReviewService(appRepo)

	return &Deps{
		HomeHandler:         &HomeHandler{Catalog: catalogSvc},
		ApplicationsHandler: &ApplicationsHandler{Reviews: reviewSvc},
		ProfileHandler:      &ProfileHandler{Catalog: catalogSvc},
		APIHandler:          &APIHandler{Catalog: catalogSvc, Reviews: reviewSvc},
	}
}
