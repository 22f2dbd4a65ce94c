// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bus_test

import (
	"fmt"

	"code.hybscloud.com/corobus"
	"code.hybscloud.com/corobus/corort"
)

// ExampleBus_Send runs one producer and one consumer coroutine over a
// capacity-1 channel to completion.
func ExampleBus_Send() {
	b := bus.New()
	id, _ := b.Open(1)
	rt := corort.NewRuntime()

	rt.Go(func(self *corort.Coroutine) {
		_ = b.Send(self, id, 42)
	})
	rt.Go(func(self *corort.Coroutine) {
		v, _ := b.Recv(self, id)
		fmt.Println(v)
	})
	rt.Run()

	// Output: 42
}
