package test

import (
	"errors"
	"net/http"

	"rwa-adapter/database"
	"rwa-adapter/model"
	"rwa-adapter/utility/appError"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jinzhu/gorm"
)

func (s *Suite) mockedRepository() (database.BaseRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)
	gormDB, err := gorm.Open("mysql", db)
	s.Require().NoError(err)

	repository := database.BaseRepository{
		Database: database.Database{
			Config: s.Config,
			DB:     gormDB,
		},
	}
	return repository, mock
}

func (s *Suite) TestRepositoryMapsMissingRowsToNotFound() {
	repository, mock := s.mockedRepository()
	defer repository.DB.Close()

	mock.ExpectQuery("SELECT (.+) FROM `liquidity_pools`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	pool := model.LiquidityPool{}
	err := repository.GetByFieldName(&model.LiquidityPool{Name: "USDC/USDT Stable Pool"}, &pool)

	s.Require().Error(err)
	s.Require().True(appError.IsNotFound(err))
	appErr := err.(appError.Err)
	s.Require().Equal(http.StatusNotFound, appErr.ErrCode)
}

func (s *Suite) TestRepositoryMapsDriverFailuresToServerError() {
	repository, mock := s.mockedRepository()
	defer repository.DB.Close()

	mock.ExpectQuery("SELECT (.+) FROM `liquidity_pools`").
		WillReturnError(errors.New("connection refused"))

	pool := model.LiquidityPool{}
	err := repository.GetByFieldName(&model.LiquidityPool{Name: "USDC/USDT Stable Pool"}, &pool)

	s.Require().Error(err)
	s.Require().False(appError.IsNotFound(err))
	appErr := err.(appError.Err)
	s.Require().Equal(http.StatusInternalServerError, appErr.ErrCode)
}
