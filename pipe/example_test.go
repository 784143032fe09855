package pipe_test

import (
	"fmt"

	"github.com/cwbudde/algo-pipes/pipe"
)

func ExampleCompute() {
	cfg := pipe.DefaultConfig()
	cfg.Diatonic = true
	cfg.PipeCount = 8

	res, _ := pipe.Compute(cfg)
	for _, p := range res.Pipes {
		fmt.Printf("%d: %.2f cm\n", p.Index, p.LengthCm)
	}
	// Output:
	// 0: 32.78 cm
	// 1: 29.20 cm
	// 2: 26.01 cm
	// 3: 24.55 cm
	// 4: 21.88 cm
	// 5: 19.49 cm
	// 6: 17.36 cm
	// 7: 16.39 cm
}
