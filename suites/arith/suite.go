// Package arith is the demonstration suite shipped with the harness. It
// registers two deliberately passing and two deliberately failing cases,
// so running the microunit binary shows every report shape.
package arith

import (
	"github.com/vk/microunit/registry"
	"github.com/vk/microunit/unit"
)

// Double returns 2*n.
func Double(n int) int {
	return 2 * n
}

// DoubleFlawed returns 2*n for small inputs and drifts to 3*n from 100 up.
func DoubleFlawed(n int) int {
	if n < 100 {
		return 2 * n
	}
	return 3 * n
}

// Suite registers the arithmetic demonstration cases into a registry the
// caller owns. The package init function registers the same cases into
// the default registry, so importing the package is enough for the
// harness binary to pick them up.
type Suite struct{}

func init() {
	(&Suite{}).Register(registry.Default())
}

// Register implements registry.Suite.
func (s *Suite) Register(r *registry.Registry) {
	r.Register("Test_Two_Plus_Two", testTwoPlusTwo)
	r.Register("Test_Flawed_Two_Plus_Two", testFlawedTwoPlusTwo)
	r.Register("Test_Double", testDouble)
	r.Register("Test_Double_Flawed", testDoubleFlawed)
}

func testTwoPlusTwo(r *unit.Result) {
	r.AssertTrue(2+2 == 4, "2 + 2 == 4")
}

func testFlawedTwoPlusTwo(r *unit.Result) {
	r.AssertTrue(2+2 == 3, "2 + 2 == 3")
}

func testDouble(r *unit.Result) {
	for i := 0; i < 1000; i++ {
		if Double(i) != 2*i {
			r.Fail()
		}
	}
}

func testDoubleFlawed(r *unit.Result) {
	for i := 0; i < 1000; i++ {
		if DoubleFlawed(i) != 2*i {
			r.Fail()
		}
	}
}
