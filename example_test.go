package nestwalk_test

import (
	"context"
	"fmt"

	nestwalk "github.com/reoring/nestwalk"
)

func ExampleLeaves() {
	doc := map[string]any{
		"user": 10,
		"time": "2017-03-15T14:02:49.301000",
		"metadata": []any{
			map[string]any{"foo": "bar"},
			"some_string",
		},
	}
	for leaf := range nestwalk.Leaves(doc) {
		fmt.Println(leaf)
	}
	// Output:
	// bar
	// some_string
	// 2017-03-15T14:02:49.301000
	// 10
}

func ExampleLeavesFrom() {
	src := nestwalk.YAMLBytes([]byte("user: 10\nmetadata:\n  - foo: bar\n  - some_string\n"))
	leaves, err := nestwalk.LeavesFrom(context.Background(), src)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, l := range leaves {
		fmt.Println(l.Path, l.Value)
	}
	// Output:
	// /user 10
	// /metadata/0/foo bar
	// /metadata/1 some_string
}

func ExampleFlatten() {
	fmt.Println(nestwalk.Flatten([]any{1, 2, []any{3, []any{4, []any{5, 6, 7}}}}))
	fmt.Println(nestwalk.Flatten("abc"))
	// Output:
	// [1 2 3 4 5 6 7]
	// [abc]
}

type Account struct {
	Owner   string
	Balance int
	pin     string
}

func (a Account) Deposit(n int) Account { a.Balance += n; return a }

func (a Account) String() string { return nestwalk.Repr(a) }

func ExampleRepr() {
	fmt.Println(Account{Owner: "ada", Balance: 10, pin: "1234"})
	// Output:
	// Account(Owner = ada, Balance = 10)
}

func ExampleCompact() {
	fmt.Println(nestwalk.Compact([]int{1, 1, 2, 1, 1, 1, 2, 4, 3, 1, 1, 1, 4, 4}))
	// Output:
	// [1 2 1 2 4 3 1 4]
}

func ExampleRuns() {
	for _, r := range nestwalk.Runs([]string{"a", "a", "b", "a"}) {
		fmt.Printf("%s x%d\n", r.Value, r.Count)
	}
	// Output:
	// a x2
	// b x1
	// a x1
}

func ExampleGatherOrdered() {
	squares, err := nestwalk.GatherOrdered(context.Background(), 4, func(_ context.Context, i int) (int, error) {
		return i * i, nil
	})
	fmt.Println(squares, err)
	// Output:
	// [0 1 4 9] <nil>
}
