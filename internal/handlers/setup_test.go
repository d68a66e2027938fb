package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/eatwithmaddie/menu-backend/internal/models"
	"github.com/eatwithmaddie/menu-backend/internal/repository"
	"github.com/eatwithmaddie/menu-backend/internal/service"
	"github.com/eatwithmaddie/menu-backend/pkg/logger"
)

type stubLoader struct {
	daily models.LoadMenuResult
	full  models.LoadMenuResult
	err   error
}

func (l stubLoader) LoadDaily(ctx context.Context) (models.LoadMenuResult, error) {
	return l.daily, l.err
}

func (l stubLoader) LoadFull(ctx context.Context) (models.LoadMenuResult, error) {
	return l.full, l.err
}

func testLoader() stubLoader {
	return stubLoader{
		daily: models.LoadMenuResult{
			Source: models.SourceSheet,
			Rows: []models.MenuRow{
				{ID: "item-1", Category: "Today", Dish: "Ndole", Price: 2500, SortOrder: 1},
				{ID: "item-2", Category: "Drinks", Dish: "Folere", Price: 1000, SortOrder: 2},
			},
		},
		full: models.LoadMenuResult{
			Source:  models.SourceFallback,
			Warning: "Using fallback data because sheet fetch failed: failed to fetch (500)",
			Rows: []models.MenuRow{
				{ID: "item-1", Category: "Pizzas", Dish: "Margherita", Price: 6000, SortOrder: 1, OnDemand: true},
			},
		},
	}
}

func failingLoader() stubLoader {
	return stubLoader{err: errors.New("bundled menu missing")}
}

type testServices struct {
	repo   *repository.InMemoryMenuRepository
	menus  *service.MenuService
	orders *service.OrderService
}

func newTestServices(loader service.MenuLoader) testServices {
	repo := repository.NewInMemoryMenuRepository()
	menus := service.NewMenuService(loader, repo, nil, time.Minute, logger.Discard())
	orders := service.NewOrderService(menus, nil, "237679719340", nil, logger.Discard())
	return testServices{repo: repo, menus: menus, orders: orders}
}
