package lazystreams

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

type person struct {
	name string
	age  int
}

func TestCollectSlice(t *testing.T) {
	is := is.New(t)

	collect := CollectSlice[int]()

	ints := []int{}
	ints = collect(ints, 1)
	ints = collect(ints, 2)
	ints = collect(ints, 3)

	is.Equal(ints, []int{1, 2, 3})
}

func TestCollectMap_DuplicateKey(t *testing.T) {
	is := is.New(t)

	collect := CollectMap(Identity[int](), itoa)

	mapp := map[int]string{}
	mapp = collect(mapp, 1)
	mapp = collect(mapp, 2)
	mapp = collect(mapp, 2)

	is.Equal(mapp, map[int]string{
		1: "1",
		2: "2",
	})
}

func TestCollectGroup(t *testing.T) {
	is := is.New(t)

	collect := CollectGroup(even, Identity[int]())

	groups := map[bool][]int{}
	for i := 1; i <= 5; i++ {
		groups = collect(groups, i)
	}

	is.Equal(groups, map[bool][]int{
		false: {1, 3, 5},
		true:  {2, 4},
	})
}

func TestToSlice(t *testing.T) {
	is := is.New(t)

	result, err := Empty[int]().ToSlice()
	is.NoErr(err)
	is.Equal(result, []int{})
}

func TestToSet(t *testing.T) {
	is := is.New(t)

	set, err := ToSet(Of(1, 2, 2, 3, 1))
	is.NoErr(err)

	is.Equal(set, map[int]struct{}{
		1: {},
		2: {},
		3: {},
	})
}

func TestToMap_LastWins(t *testing.T) {
	is := is.New(t)

	people := Of(
		person{name: "ann", age: 30},
		person{name: "bob", age: 40},
		person{name: "ann", age: 31},
	)

	byName, err := ToMap(people, func(p person) string {
		return p.name
	})
	is.NoErr(err)

	is.Equal(byName, map[string]person{
		"ann": {name: "ann", age: 31},
		"bob": {name: "bob", age: 40},
	})

	groups, err := GroupBy(people, func(p person) string {
		return p.name
	}).ToSlice()
	is.NoErr(err)
	is.Equal(len(groups), 2)

	anns, err := groups[0].ToSlice()
	is.NoErr(err)
	is.Equal(anns, []person{{name: "ann", age: 30}, {name: "ann", age: 31}})
}

func TestToMapBy(t *testing.T) {
	is := is.New(t)

	ages, err := ToMapBy(Of(person{name: "ann", age: 30}), func(p person) string {
		return p.name
	}, func(p person) int {
		return p.age
	})
	is.NoErr(err)

	is.Equal(ages, map[string]int{"ann": 30})
}

func TestToMap_Error(t *testing.T) {
	is := is.New(t)

	_, err := ToMap(Cast[int](Of[any](1, "2")), Identity[int]())
	is.True(errors.Is(err, ErrTypeMismatch))
}
