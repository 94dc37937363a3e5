package services

import (
	"context"
	"time"

	"cryptoex/internal/generator"
	"cryptoex/internal/models"
	"cryptoex/internal/pagination"
	"cryptoex/internal/presenter"
	"cryptoex/internal/seed"
)

// newsService serves headlines and the landing page.
type newsService struct {
	prices      PriceSource
	data        *seed.Data
	landingSize int
	defaultPage int
	now         func() time.Time
}

// NewNewsService creates a new NewsServicer. landingSize is the number of
// live assets shown on the landing page.
func NewNewsService(prices PriceSource, data *seed.Data, landingSize, defaultPage int) NewsServicer {
	return &newsService{
		prices:      prices,
		data:        data,
		landingSize: landingSize,
		defaultPage: defaultPage,
		now:         time.Now,
	}
}

// ListNews returns a page of headlines, newest first.
func (s *newsService) ListNews(page pagination.PageRequest) (*pagination.PageResponse[models.NewsItem], error) {
	page.Defaults(s.defaultPage)
	items := generator.NewsData(s.data.News, s.now())
	resp := pagination.Paginate(items, page)
	return &resp, nil
}

// GetLanding never fails: when the live snapshot is unavailable the static
// featured cards are returned and Fallback is set.
func (s *newsService) GetLanding(ctx context.Context) (*LandingView, error) {
	crypto := s.prices.MarketsOrEmpty(ctx, s.landingSize)

	view := &LandingView{
		Crypto: crypto,
		News:   generator.NewsData(s.data.News, s.now()),
	}
	if len(crypto) == 0 {
		view.Fallback = true
		view.Featured = presenter.FeaturedCoins(s.data.LandingFallback)
	} else {
		view.Featured = presenter.Prices(crypto)
	}
	return view, nil
}
