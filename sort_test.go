package lazystreams

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

type fruit struct {
	name  *string
	color string
}

func newFruit(name string, color string) fruit {
	return fruit{name: &name, color: color}
}

// fruitName returns the name of f, or nil if it has none.
func fruitName(f fruit) any {
	if f.name == nil {
		return nil
	}

	return *f.name
}

func ascending(a int, b int) bool {
	return a < b
}

func TestSort(t *testing.T) {
	is := is.New(t)

	result, err := Of(5, 3, 4, 1, 2).Sort(ascending).ToSlice()
	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3, 4, 5})
}

func TestSort_Deferred(t *testing.T) {
	is := is.New(t)

	ints, pulls := counting(5, 3, 4, 1, 2)

	sorted := ints.Sort(ascending)
	is.Equal(*pulls, 0)

	cursor := sorted()
	is.Equal(*pulls, 5)

	is.Equal(drain(t, cursor), []int{1, 2, 3, 4, 5})
}

func TestSort_ResortsPerCursor(t *testing.T) {
	is := is.New(t)

	data := []int{5, 3, 4, 1, 2}

	ints := Wrap(func() Iterator[int] {
		return &sliceIterator[int]{elems: data}
	})

	sorted := ints.Sort(ascending)

	is.Equal(drain(t, sorted()), []int{1, 2, 3, 4, 5})

	data = []int{9, 7, 8}

	is.Equal(drain(t, sorted()), []int{7, 8, 9})
}

func TestSort_DoesNotChangeSource(t *testing.T) {
	is := is.New(t)

	data := []int{3, 1, 2}

	result, err := FromSlices(data).Sort(ascending).ToSlice()
	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3})
	is.Equal(data, []int{3, 1, 2})
}

func TestSort_UpstreamError(t *testing.T) {
	is := is.New(t)

	_, err := Cast[int](Of[any](2, "1")).Sort(ascending).ToSlice()
	is.True(errors.Is(err, ErrTypeMismatch))
}

func TestSortBy(t *testing.T) {
	is := is.New(t)

	fruits := Of(
		newFruit("pear", "green"),
		newFruit("apple", "red"),
		newFruit("lime", "green"),
		newFruit("cherry", "red"),
		newFruit("banana", "yellow"),
	)

	byColor := SortBy(fruits, func(f fruit) string {
		return f.color
	})

	names, err := Map(byColor, func(f fruit) string {
		return *f.name
	}).ToSlice()
	is.NoErr(err)

	is.Equal(names, []string{"pear", "lime", "apple", "cherry", "banana"})
}

func TestSortByDescending(t *testing.T) {
	is := is.New(t)

	words := Of("bb", "a", "ccc", "dd")

	result, err := SortByDescending(words, func(word string) int {
		return len(word)
	}).ToSlice()
	is.NoErr(err)

	is.Equal(result, []string{"ccc", "bb", "dd", "a"})
}

func TestGroupBy(t *testing.T) {
	is := is.New(t)

	apple := newFruit("apple", "red")
	pear := newFruit("pear", "green")
	unnamed := fruit{color: "brown"}

	groups, err := GroupBy(Of(apple, pear, unnamed), fruitName).ToSlice()
	is.NoErr(err)

	is.Equal(len(groups), 3)

	is.Equal(groups[0].Key, "apple")
	is.Equal(groups[1].Key, "pear")
	is.Equal(groups[2].Key, nil)

	for idx, want := range []fruit{apple, pear, unnamed} {
		elems, err := groups[idx].ToSlice()
		is.NoErr(err)
		is.Equal(elems, []fruit{want})
	}
}

func TestGroupBy_KeepsAllElements(t *testing.T) {
	is := is.New(t)

	groups, err := GroupBy(Of(1, 2, 3, 4, 5, 6, 7), func(elem int) int {
		return elem % 3
	}).ToSlice()
	is.NoErr(err)

	is.Equal(len(groups), 3)

	want := map[int][]int{
		1: {1, 4, 7},
		2: {2, 5},
		0: {3, 6},
	}

	for idx, key := range []int{1, 2, 0} {
		is.Equal(groups[idx].Key, key)

		elems, err := groups[idx].ToSlice()
		is.NoErr(err)
		is.Equal(elems, want[key])
	}
}

func TestGroupBy_Deferred(t *testing.T) {
	is := is.New(t)

	ints, pulls := counting(1, 2, 3)

	groups := GroupBy(ints, func(elem int) bool {
		return even(elem)
	})
	is.Equal(*pulls, 0)

	cursor := groups()
	is.Equal(*pulls, 3)

	group, err := cursor.Advance()
	is.NoErr(err)
	is.Equal(group.Key, false)

	length, err := group.Length()
	is.NoErr(err)
	is.Equal(length, 2)

	_ = groups()
	is.Equal(*pulls, 6)
}

func TestGroupBy_UpstreamError(t *testing.T) {
	is := is.New(t)

	_, err := GroupBy(Cast[int](Of[any](1, "2")), Identity[int]()).ToSlice()
	is.True(errors.Is(err, ErrTypeMismatch))
}
