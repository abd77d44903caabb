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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShipmentStatus_CanAdvanceTo(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		from ShipmentStatus
		to   ShipmentStatus
		want bool
	}{
		{
			name: "待处理到打包中",
			from: ShipmentStatusPending,
			to:   ShipmentStatusProcessing,
			want: true,
		},
		{
			name: "待处理直接到已发货",
			from: ShipmentStatusPending,
			to:   ShipmentStatusShipped,
			want: true,
		},
		{
			name: "已送达到已确认收货",
			from: ShipmentStatusDelivered,
			to:   ShipmentStatusReceived,
			want: true,
		},
		{
			name: "不允许回退",
			from: ShipmentStatusShipped,
			to:   ShipmentStatusProcessing,
			want: false,
		},
		{
			name: "不允许原地踏步",
			from: ShipmentStatusShipped,
			to:   ShipmentStatusShipped,
			want: false,
		},
		{
			name: "终态之后不允许推进",
			from: ShipmentStatusReceived,
			to:   ShipmentStatusReceived,
			want: false,
		},
		{
			name: "目标状态非法",
			from: ShipmentStatusPending,
			to:   ShipmentStatus(6),
			want: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.from.CanAdvanceTo(tc.to))
		})
	}
}

func TestShipment_HasTrackingNumber(t *testing.T) {
	t.Parallel()
	assert.False(t, Shipment{}.HasTrackingNumber())
	assert.True(t, Shipment{TrackingNumber: "JNE123456"}.HasTrackingNumber())
}
