package services

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	Config "rwa-adapter/config"
	"rwa-adapter/model"
	"rwa-adapter/utility/apiClient"
)

// tickerResponse ... Wire format of the external market data feed, keyed by symbol id
type tickerResponse map[string]struct {
	USD          float64 `json:"usd"`
	USD24hChange float64 `json:"usd_24h_change"`
	USD24hVol    float64 `json:"usd_24h_vol"`
}

//MarketDataService object
type MarketDataService struct {
	Config Config.Data
}

func NewMarketDataService(config Config.Data) *MarketDataService {
	baseService := MarketDataService{
		Config: config,
	}
	return &baseService
}

// GetTickerPrice ... Fetches the current USD quote for a symbol from the external price feed
func (service *MarketDataService) GetTickerPrice(symbol string) (model.CommodityQuote, error) {
	symbolID := strings.ToLower(symbol)
	responseData := tickerResponse{}

	APIClient := apiClient.New(nil, service.Config, service.Config.MarketDataAPI)
	APIRequest, err := APIClient.NewRequest(http.MethodGet, "", nil)
	if err != nil {
		return model.CommodityQuote{}, err
	}
	params := APIRequest.URL.Query()
	params.Add("ids", symbolID)
	params.Add("vs_currencies", "usd")
	params.Add("include_24hr_change", "true")
	params.Add("include_24hr_vol", "true")
	APIRequest.URL.RawQuery = params.Encode()

	if _, err := APIClient.Do(APIRequest, &responseData); err != nil {
		return model.CommodityQuote{}, err
	}

	ticker, ok := responseData[symbolID]
	if !ok {
		return model.CommodityQuote{}, fmt.Errorf("no quote returned for symbol %s", symbolID)
	}

	return model.CommodityQuote{
		Price:       ticker.USD,
		Change24h:   ticker.USD24hChange,
		Volume24h:   ticker.USD24hVol,
		LastUpdated: time.Now(),
	}, nil
}
