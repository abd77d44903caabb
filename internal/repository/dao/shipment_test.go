// Copyright 2024 combiphar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build e2e

package dao_test

import (
	"context"
	"testing"
	"time"

	"github.com/combiphar/remarket/internal/repository/dao"
	testioc "github.com/combiphar/remarket/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestShipmentDAO(t *testing.T) {
	suite.Run(t, new(ShipmentDAOTestSuite))
}

type ShipmentDAOTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.ShipmentDAO
}

func (s *ShipmentDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewGORMShipmentDAO(s.db)
}

func (s *ShipmentDAOTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `shipments`").Error)
}

func (s *ShipmentDAOTestSuite) TestInsertDuplicate() {
	t := s.T()
	ctx := context.Background()
	_, err := s.dao.Insert(ctx, dao.Shipment{
		OrderId:     1001,
		AddressId:   7,
		CourierName: "Premium",
		Status:      1,
	})
	require.NoError(t, err)

	// 每个订单至多一张发货单, 唯一索引兜底
	_, err = s.dao.Insert(ctx, dao.Shipment{
		OrderId:     1001,
		AddressId:   7,
		CourierName: "Standard",
		Status:      1,
	})
	assert.ErrorIs(t, err, dao.ErrShipmentDuplicate)
}

func (s *ShipmentDAOTestSuite) TestUpdateTracking() {
	t := s.T()
	ctx := context.Background()
	id, err := s.dao.Insert(ctx, dao.Shipment{
		OrderId:     1002,
		CourierName: "Premium",
		Status:      1,
	})
	require.NoError(t, err)

	shippedAt := time.Now().UnixMilli()
	require.NoError(t, s.dao.UpdateTracking(ctx, id, "JNE123456", shippedAt))
	after, err := s.dao.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "JNE123456", after.TrackingNumber)
	assert.Equal(t, uint8(3), after.Status)
	assert.Equal(t, shippedAt, after.ShippedAt)

	// 已发货后不允许再改运单号
	err = s.dao.UpdateTracking(ctx, id, "JNE654321", shippedAt)
	assert.ErrorIs(t, err, dao.ErrStateConflict)
}

func (s *ShipmentDAOTestSuite) TestAdvanceStatus() {
	t := s.T()
	ctx := context.Background()
	id, err := s.dao.Insert(ctx, dao.Shipment{
		OrderId:        1003,
		CourierName:    "Premium",
		TrackingNumber: "JNE123456",
		Status:         3,
	})
	require.NoError(t, err)

	deliveredAt := time.Now().UnixMilli()
	require.NoError(t, s.dao.AdvanceStatus(ctx, id, 4, deliveredAt))
	after, err := s.dao.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint8(4), after.Status)
	assert.Equal(t, deliveredAt, after.DeliveredAt)

	// 条件前移: 回退被拒绝
	err = s.dao.AdvanceStatus(ctx, id, 2, 0)
	assert.ErrorIs(t, err, dao.ErrStateConflict)

	err = s.dao.AdvanceStatus(ctx, 99999, 4, 0)
	assert.ErrorIs(t, err, dao.ErrDataNotFound)
}
