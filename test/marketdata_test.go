package test

import (
	"net/http"
	"net/http/httptest"

	"rwa-adapter/services"
)

func (s *Suite) TestTickerQuoteMissingSymbolReturnsError() {
	feed := httptest.NewServer(http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		responseWriter.Header().Set("Content-Type", "application/json")
		responseWriter.Write([]byte(`{}`))
	}))
	defer feed.Close()

	feedConfig := s.Config
	feedConfig.MarketDataAPI = feed.URL
	marketDataService := services.NewMarketDataService(feedConfig)

	_, err := marketDataService.GetTickerPrice("PAX-GOLD")
	s.Require().Error(err)
	s.Require().Contains(err.Error(), "no quote returned for symbol")
}

func (s *Suite) TestTickerQuoteParsesFeedResponse() {
	feed := httptest.NewServer(http.HandlerFunc(func(responseWriter http.ResponseWriter, requestReader *http.Request) {
		responseWriter.Header().Set("Content-Type", "application/json")
		responseWriter.Write([]byte(`{"pax-gold":{"usd":2000,"usd_24h_change":1.5,"usd_24h_vol":35000000}}`))
	}))
	defer feed.Close()

	feedConfig := s.Config
	feedConfig.MarketDataAPI = feed.URL
	marketDataService := services.NewMarketDataService(feedConfig)

	quote, err := marketDataService.GetTickerPrice("PAX-GOLD")
	s.Require().NoError(err)
	s.Require().InDelta(2000, quote.Price, 1e-6)
	s.Require().InDelta(1.5, quote.Change24h, 1e-6)
	s.Require().InDelta(35000000, quote.Volume24h, 1e-6)
}
