package pressure_test

import (
	"fmt"

	"github.com/emwalker/valvenet/pressure"
)

// A tiny three-valve corridor: the agent walks from AA and opens the two
// positive-flow valves in the most profitable order.
func ExampleMaxPressure() {
	records := []pressure.Record{
		{Name: "AA", Flow: 0, Neighbors: []string{"BB"}},
		{Name: "BB", Flow: 13, Neighbors: []string{"AA", "CC"}},
		{Name: "CC", Flow: 2, Neighbors: []string{"BB"}},
	}

	best, err := pressure.MaxPressure(records, 10, pressure.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(best)
	// Output:
	// 116
}

// With two agents each corridor can be handled independently over the same
// shorter budget.
func ExampleMaxPressureWithHelper() {
	records := []pressure.Record{
		{Name: "AA", Flow: 0, Neighbors: []string{"BB", "CC"}},
		{Name: "BB", Flow: 10, Neighbors: []string{"AA"}},
		{Name: "CC", Flow: 10, Neighbors: []string{"AA"}},
	}

	best, err := pressure.MaxPressureWithHelper(records, 6, pressure.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(best)
	// Output:
	// 80
}
