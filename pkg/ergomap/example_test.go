package ergomap_test

import (
	"fmt"

	"github.com/graph-guard/ergomap/pkg/ergomap"
)

type Player struct {
	Name  string
	Score int
}

func Example() {
	players := ergomap.New[Player]()
	alice := players.Insert(Player{Name: "alice"})
	bob := players.Insert(Player{Name: "bob"})

	players.MustGetPtr(alice).Score += 10
	players.Remove(bob)

	if _, ok := players.Get(bob); !ok {
		fmt.Println("bob is gone")
	}
	fmt.Println(players.MustGet(alice))

	// Output:
	// bob is gone
	// {alice 10}
}

func ExampleMap_InsertAs() {
	m := ergomap.New[string]()
	if _, ok := m.InsertAs(ergomap.KeyValue(7), "seven"); ok {
		fmt.Println("inserted")
	}
	if _, ok := m.InsertAs(ergomap.KeyValue(7), "siete"); !ok {
		fmt.Println("rejected")
	}
	fmt.Println(m.Values())

	// Output:
	// inserted
	// rejected
	// [seven]
}

func ExampleForOne() {
	m := ergomap.New[string](ergomap.WithSequentialIDs())
	id := m.Insert("hello")
	n, ok := ergomap.ForOne(m, id, func(s string) int { return len(s) })
	fmt.Println(id, n, ok)

	// Output:
	// 00000000-0000-0000-0000-000000000001 5 true
}
