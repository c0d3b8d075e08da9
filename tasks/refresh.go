package tasks

import (
	"sync"

	Config "rwa-adapter/config"
	"rwa-adapter/database"
	"rwa-adapter/model"
	"rwa-adapter/services"
	"rwa-adapter/utility/cache"
	"rwa-adapter/utility/constants"
	"rwa-adapter/utility/logger"

	"github.com/robfig/cron/v3"
	uuid "github.com/satori/go.uuid"
)

// RefreshAllMetrics ... Recomputes and persists every derived value: asset
// current values, pool metrics and token market prices, recording snapshots
// along the way. Entities are processed through a bounded worker pool and each
// failure is logged without stopping the sweep.
func RefreshAllMetrics(memoryCache *cache.Memory, config Config.Data, repository database.IMarketRepository) {
	logger.Info("Metrics refresh sweep begins")

	CalculationService := services.NewCalculationService(memoryCache, config, repository)

	refreshAssetValues(CalculationService, repository, config)
	refreshPoolMetrics(CalculationService, repository, config)
	refreshTokenPrices(CalculationService, repository, config)

	logger.Info("Metrics refresh sweep completed")
}

func refreshAssetValues(calculation *services.CalculationService, repository database.IMarketRepository, config Config.Data) {
	assets := []model.UserAsset{}
	if err := repository.Fetch(&assets); err != nil {
		logger.Error("Refresh sweep could not fetch assets : %s", err)
		return
	}
	forEachBounded(config.RefreshWorkerCount, len(assets), func(i int) {
		asset := assets[i]
		currentValue := calculation.GetAssetCurrentValue(asset)
		calculation.Oracle.UpdateAssetPricing(asset.ID, currentValue)
	})
	logger.Info("Refreshed current value for %d assets", len(assets))
}

func refreshPoolMetrics(calculation *services.CalculationService, repository database.IMarketRepository, config Config.Data) {
	pools := []model.LiquidityPool{}
	if err := repository.FetchActivePools(&pools); err != nil {
		logger.Error("Refresh sweep could not fetch active pools : %s", err)
		return
	}
	forEachBounded(config.RefreshWorkerCount, len(pools), func(i int) {
		pool := pools[i]
		metrics, err := calculation.CalculateLiquidityMetrics(pool.ID, uuid.Nil)
		if err != nil {
			logger.Error("Refresh sweep could not recompute metrics for pool %s : %s", pool.Name, err)
			return
		}
		calculation.Snapshots.Record(constants.ENTITY_POOL, pool.ID, metrics.TotalLiquidity)
	})
	logger.Info("Refreshed metrics for %d pools", len(pools))
}

func refreshTokenPrices(calculation *services.CalculationService, repository database.IMarketRepository, config Config.Data) {
	tokens := []model.Token{}
	if err := repository.Fetch(&tokens); err != nil {
		logger.Error("Refresh sweep could not fetch tokens : %s", err)
		return
	}
	forEachBounded(config.RefreshWorkerCount, len(tokens), func(i int) {
		token := tokens[i]
		price := calculation.CalculateMarketPrice(token.ID)
		calculation.Oracle.UpdateTokenPrice(token.ID, price)
		calculation.Snapshots.Record(constants.ENTITY_TOKEN, token.ID, price)
	})
	logger.Info("Refreshed market price for %d tokens", len(tokens))
}

// forEachBounded ... Runs fn for indexes 0..n-1 with at most workers goroutines in flight
func forEachBounded(workers int, n int, fn func(int)) {
	if workers <= 0 {
		workers = 1
	}
	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(index int) {
			defer wg.Done()
			defer func() { <-semaphore }()
			fn(index)
		}(i)
	}
	wg.Wait()
}

// ExecuteRefreshCronJob ... Schedules the refresh sweep at the configured interval
func ExecuteRefreshCronJob(memoryCache *cache.Memory, config Config.Data, repository database.IMarketRepository) {
	c := cron.New()
	c.AddFunc(config.RefreshCronInterval, func() { RefreshAllMetrics(memoryCache, config, repository) })
	c.Start()
}
