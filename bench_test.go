// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bus_test

import (
	"testing"

	"code.hybscloud.com/corobus"
)

func BenchmarkTrySendTryRecv(b *testing.B) {
	bs := bus.New()
	id, _ := bs.Open(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bs.TrySend(id, uint32(i))
		_, _ = bs.TryRecv(id)
	}
}

func BenchmarkOpenClose(b *testing.B) {
	bs := bus.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id, _ := bs.Open(4)
		bs.Close(id)
	}
}

func BenchmarkTrySendBatch(b *testing.B) {
	bs := bus.New()
	id, _ := bs.Open(64)
	data := make([]uint32, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bs.TrySendBatch(id, data)
		_, _ = bs.TryRecvBatch(id, data)
	}
}
