package anim_test

import (
	"fmt"

	"github.com/cwbudde/algo-led/led/anim"
)

func ExampleEngine() {
	catalog := anim.Catalog{{
		Name: "fade-in",
		Strip: anim.Sequence{
			{Duration: 100, Deltas: []int8{0, 0, 0, 0, 0, 0, 0}, Ops: anim.Load},
			{Duration: 100, Deltas: []int8{5, 0, 0, 0, 0, 0, 0}, Ops: anim.Ops(anim.OpAdd, anim.OpRepeat), Operand: 2},
		},
		Color: anim.Sequence{
			{Duration: 60000, Deltas: []int8{0, 0, 0, 0}, Ops: anim.Load},
		},
	}}

	ms := uint32(0)
	e, err := anim.New(
		anim.WithCatalog(catalog),
		anim.WithClock(func() uint32 { return ms }),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	ms += 10
	e.Cycle()
	fmt.Println(e.Strip().At(0))

	// The repeat instruction runs three times (operand+1) before the
	// timeline moves past it.
	for i := 0; i < 3; i++ {
		ms += 100
		e.Cycle()
		fmt.Println(e.Strip().At(0))
	}

	// Output:
	// 0
	// 5
	// 10
	// 15
}
